package http2

import "math"

// parseUint parses a non-negative decimal integer with no sign, no
// whitespace, and no base prefix. Leading zeros are accepted. It fails
// on empty input, a non-digit byte, or overflow of a signed 63-bit
// integer (mirrors nghttp2_http.c's parse_uint, including its
// two-stage overflow check).
func parseUint(b []byte) (int64, bool) {
	if len(b) == 0 {
		return -1, false
	}
	var n int64
	for _, c := range b {
		if c < '0' || c > '9' {
			return -1, false
		}
		d := int64(c - '0')
		if n > math.MaxInt64/10 {
			return -1, false
		}
		n *= 10
		if n > math.MaxInt64-d {
			return -1, false
		}
		n += d
	}
	return n, true
}

// isAllLWS reports whether every byte is SP or HTAB. Used to reject
// pseudo-header (and host) values that are pure whitespace.
func isAllLWS(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}
