package http2

// Token is the closed set of recognized header names this package gives
// special handling to. Everything else classifies as TokenOther.
type Token int

const (
	TokenOther Token = iota
	TokenAuthority
	TokenMethod
	TokenPath
	TokenScheme
	TokenStatus
	TokenConnection
	TokenContentLength
	TokenHost
	TokenKeepAlive
	TokenProxyConnection
	TokenTE
	TokenTransferEncoding
	TokenUpgrade
)

var tokenNames = [...]string{
	TokenOther:            "other",
	TokenAuthority:        ":authority",
	TokenMethod:           ":method",
	TokenPath:             ":path",
	TokenScheme:           ":scheme",
	TokenStatus:           ":status",
	TokenConnection:       "connection",
	TokenContentLength:    "content-length",
	TokenHost:             "host",
	TokenKeepAlive:        "keep-alive",
	TokenProxyConnection:  "proxy-connection",
	TokenTE:               "te",
	TokenTransferEncoding: "transfer-encoding",
	TokenUpgrade:          "upgrade",
}

// String implements fmt.Stringer so a Token reads as its header name in
// logs and test failures rather than a bare integer.
func (t Token) String() string {
	if int(t) < 0 || int(t) >= len(tokenNames) {
		return "unknown"
	}
	return tokenNames[t]
}

// classify maps a lower-cased header name to its Token. It is
// case-sensitive: HTTP/2 mandates lowercase header names on the wire,
// and anything containing an uppercase letter is rejected earlier by
// the outer syntactic gate in OnHeader.
//
// Dispatch is by length, then by last byte, mirroring the generated
// lookup table nghttp2 uses for the same thirteen names (see
// nghttp2_http.c's lookup_token, generated by genlibtokenlookup.py) so
// the name is never rescanned once a length bucket is chosen.
func classify(name []byte) Token {
	switch len(name) {
	case 2:
		if name[1] == 'e' && name[0] == 't' {
			return TokenTE
		}
	case 4:
		if name[3] == 't' && string(name) == "host" {
			return TokenHost
		}
	case 5:
		if name[4] == 'h' && string(name) == ":path" {
			return TokenPath
		}
	case 7:
		switch name[6] {
		case 'd':
			if string(name) == ":method" {
				return TokenMethod
			}
		case 'e':
			if string(name) == ":scheme" {
				return TokenScheme
			}
			if string(name) == "upgrade" {
				return TokenUpgrade
			}
		case 's':
			if string(name) == ":status" {
				return TokenStatus
			}
		}
	case 10:
		switch name[9] {
		case 'e':
			if string(name) == "keep-alive" {
				return TokenKeepAlive
			}
		case 'n':
			if string(name) == "connection" {
				return TokenConnection
			}
		case 'y':
			if string(name) == ":authority" {
				return TokenAuthority
			}
		}
	case 14:
		if name[13] == 'h' && string(name) == "content-length" {
			return TokenContentLength
		}
	case 16:
		if name[15] == 'n' && string(name) == "proxy-connection" {
			return TokenProxyConnection
		}
	case 17:
		if name[16] == 'g' && string(name) == "transfer-encoding" {
			return TokenTransferEncoding
		}
	}
	return TokenOther
}
