package http2

// Flag is a bit in the accumulated-observations bitset carried by
// StreamHTTPState. Bits are independent; see the table in spec.md
// section 3.
type Flag uint32

const (
	FlagPAuthority Flag = 1 << iota
	FlagPMethod
	FlagPPath
	FlagPScheme
	FlagPStatus
	FlagHost
	FlagMethHead
	FlagMethConnect
	FlagPseudoHeaderDisallowed
	FlagExpectFinalResponse
)

// FlagMethAll covers every method-family flag; it is preserved across
// the flag resets that happen on interim responses and on PUSH_PROMISE
// request/response handoff.
const FlagMethAll = FlagMethHead | FlagMethConnect

// FlagReqHeaders is the convenience mask spec.md defines: all three
// pseudo-headers a regular (non-CONNECT) request must carry.
const FlagReqHeaders = FlagPMethod | FlagPPath | FlagPScheme

// StreamHTTPState is the per-stream HTTP compliance record: one
// instance per stream, created when the stream opens and discarded
// when it closes. It is owned exclusively by its stream and must only
// be mutated by the validator entry points, always from the same
// goroutine that owns the surrounding session (see spec.md section 5).
type StreamHTTPState struct {
	StreamID uint32

	flags Flag

	// statusCode is -1 when unset; reset to -1 between an interim and
	// the next header block.
	statusCode int64

	// contentLength is -1 when unknown/unset.
	contentLength int64

	// recvContentLength is the running tally of DATA bytes delivered to
	// the application.
	recvContentLength uint64

	response responsePhaseMachine
}

// NewStreamHTTPState creates the state for a newly opened stream.
// streamID's parity identifies the initiator: odd means client-
// initiated, even means a server push.
func NewStreamHTTPState(streamID uint32) *StreamHTTPState {
	s := &StreamHTTPState{
		StreamID:      streamID,
		statusCode:    -1,
		contentLength: -1,
	}
	s.response = newResponsePhaseMachine()
	return s
}

// Has reports whether every bit in want is set.
func (s *StreamHTTPState) Has(want Flag) bool { return s.flags&want == want }

// Any reports whether at least one bit in want is set.
func (s *StreamHTTPState) Any(want Flag) bool { return s.flags&want != 0 }

func (s *StreamHTTPState) set(f Flag) { s.flags |= f }

func (s *StreamHTTPState) setOnly(f Flag) { s.flags = f }

// StatusCode returns the response status recorded by the last :status
// header, or -1 if unset.
func (s *StreamHTTPState) StatusCode() int64 { return s.statusCode }

// ContentLength returns the declared message length, or -1 if unknown.
func (s *StreamHTTPState) ContentLength() int64 { return s.contentLength }

// ReceivedContentLength returns the running tally of DATA bytes seen.
func (s *StreamHTTPState) ReceivedContentLength() uint64 { return s.recvContentLength }
