package http2

// Options carries the validator's few runtime knobs, in the same flat,
// no-builder shape the teacher used for Server{MaxStreams int}.
type Options struct {
	// Strict turns the soft-ignore policy (malformed regular headers are
	// dropped, not fatal) into a hard error. spec.md section 9 calls
	// this out as something that should not be hardened "without an
	// explicit configuration knob" — this is that knob. Default false
	// preserves spec.md's documented leniency exactly.
	Strict bool
}

// DefaultOptions is the zero-value Options: lenient on regular headers,
// strict on pseudo-headers, exactly as spec.md section 4.4 specifies.
var DefaultOptions = Options{}
