package http2

// NameValidator and ValueValidator are the two external syntactic
// predicates spec.md treats as collaborators of this package (per-octet
// header name/value validation is explicitly out of scope for the
// semantics validator). They are exposed as package variables so a
// caller embedding a different grammar (e.g. a stricter or more lenient
// HPACK front end) can swap them; DefaultNameValidator accepts a
// lowercase subset of the RFC 7230 token characters and
// DefaultValueValidator implements the RFC 7230 field-value grammar.
type NameValidator func(name []byte) bool
type ValueValidator func(value []byte) bool

// ValidHeaderName and ValidHeaderValue are the predicates OnHeader
// consults. They default to the validators below but may be reassigned
// by a caller that decodes headers through a different front end.
var (
	ValidHeaderName  NameValidator  = DefaultNameValidator
	ValidHeaderValue ValueValidator = DefaultValueValidator
)

// DefaultNameValidator accepts a non-empty name made of lowercase ASCII
// letters, digits, '-', '_', '.' and '~', optionally preceded by exactly
// one ':' for pseudo-headers. Uppercase letters and the other RFC 7230
// section 3.2.6 token symbols (such as '!', '#' or '|') are rejected.
func DefaultNameValidator(name []byte) bool {
	if len(name) == 0 {
		return false
	}
	i := 0
	if name[0] == ':' {
		i = 1
		if len(name) == 1 {
			return false
		}
	}
	for ; i < len(name); i++ {
		if !isTokenChar(name[i]) {
			return false
		}
	}
	return true
}

// DefaultValueValidator implements RFC 7230 section 3.2's field-value
// grammar: VCHAR / SP / HTAB, plus the obs-text range some servers still
// emit, excluding bare CR/LF/NUL which would enable request smuggling
// if allowed through.
func DefaultValueValidator(value []byte) bool {
	for _, c := range value {
		switch {
		case c == 0x00, c == '\r', c == '\n':
			return false
		case c == ' ' || c == '\t':
		case c >= 0x21 && c <= 0x7e:
		case c >= 0x80:
		default:
			return false
		}
	}
	return true
}

func isTokenChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	default:
		return false
	}
}
