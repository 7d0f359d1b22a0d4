package http2

import "github.com/qmuntal/stateless"

// Response phase states/triggers for the explicit state machine layered
// on top of the flag bitset (SPEC_FULL.md section 11). The flag bitset
// remains the contract spec.md section 3 describes; this machine is an
// additional internal assertion that the interim/final sequencing
// required by spec.md section 4.8 and property P5 is never violated,
// expressed the way a protocol phase is normally modeled in Go rather
// than through ad hoc flag juggling alone.
type responsePhase string

const (
	phaseAwaitingStatus responsePhase = "awaiting-status"
	phaseInterim        responsePhase = "interim"
	phaseFinal          responsePhase = "final"
)

type responseTrigger string

const (
	triggerInterimResponse responseTrigger = "interim-response"
	triggerFinalResponse   responseTrigger = "final-response"
)

// responsePhaseMachine wraps a *stateless.StateMachine configured with
// the only two legal transitions: any number of interim responses
// followed by exactly one final response. Firing an event the current
// phase does not permit returns an error, which OnResponseHeadersComplete
// surfaces as ErrStreamSemantics.
type responsePhaseMachine struct {
	sm *stateless.StateMachine
}

func newResponsePhaseMachine() responsePhaseMachine {
	sm := stateless.NewStateMachine(phaseAwaitingStatus)

	sm.Configure(phaseAwaitingStatus).
		Permit(triggerInterimResponse, phaseInterim).
		Permit(triggerFinalResponse, phaseFinal)

	sm.Configure(phaseInterim).
		Permit(triggerInterimResponse, phaseInterim).
		Permit(triggerFinalResponse, phaseFinal)

	// A final response closes the response phase for this stream. The
	// PUSH_PROMISE handoff reuses the same StreamHTTPState and machine,
	// but request-side validation never fires it, so the promised
	// response still starts from phaseAwaitingStatus.
	sm.Configure(phaseFinal)

	return responsePhaseMachine{sm: sm}
}

func (m *responsePhaseMachine) fireInterim() error {
	return m.sm.Fire(triggerInterimResponse)
}

func (m *responsePhaseMachine) fireFinal() error {
	return m.sm.Fire(triggerFinalResponse)
}

func (m *responsePhaseMachine) phase() responsePhase {
	return m.sm.MustState().(responsePhase)
}
