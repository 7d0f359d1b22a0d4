package http2

import "github.com/bradfitz/http2/hpack"

// FrameType distinguishes the two frame types that carry a header
// block relevant to request-side vs response-side dispatch. Every
// other frame type (DATA, SETTINGS, PING, ...) is out of scope: the
// frame decoder is an external collaborator (spec.md section 1).
type FrameType uint8

const (
	FrameHeaders FrameType = iota
	FramePushPromise
)

// HeaderOutcome is the non-error half of OnHeader's three-way result:
// Ok or Ignore. A returned error always means the third outcome,
// Error(HTTP_HEADER), and the outcome value should not be consulted.
type HeaderOutcome int

const (
	HeaderAccepted HeaderOutcome = iota
	HeaderIgnored
)

// OnHeader is the header ingestion entry point (spec.md section 4.4):
// called once per HPACK-decoded header field. It applies the outer
// syntactic gate (shared by both request and response sides) and then
// dispatches to the request-side or response-side validator.
//
// isServer selects the request-side validator for server-received
// HEADERS; frame == FramePushPromise always selects the request-side
// validator regardless of isServer, since a PUSH_PROMISE header block
// describes a request even though it is sent by a server.
func OnHeader(s *StreamHTTPState, isServer bool, frame FrameType, nv hpack.HeaderField, isTrailer bool, opts Options) (HeaderOutcome, error) {
	name := []byte(nv.Name)
	value := []byte(nv.Value)

	if !ValidHeaderName(name) {
		if len(name) == 0 || name[0] == ':' {
			return HeaderAccepted, newHeaderError(TokenOther, "invalid pseudo-header or empty name")
		}
		for _, c := range name {
			if c >= 'A' && c <= 'Z' {
				return HeaderAccepted, newHeaderError(TokenOther, "uppercase header name")
			}
		}
		return ignoreRegularHeader(s, opts, "invalid header name")
	}

	if !ValidHeaderValue(value) {
		if len(name) > 0 && name[0] == ':' {
			return HeaderAccepted, newHeaderError(TokenOther, "invalid pseudo-header value")
		}
		return ignoreRegularHeader(s, opts, "invalid header value")
	}

	if isServer || frame == FramePushPromise {
		return requestHeaderValidator(s, name, value, isTrailer)
	}
	return responseHeaderValidator(s, name, value, isTrailer)
}

// ignoreRegularHeader implements the soft-ignore path: set
// PSEUDO_HEADER_DISALLOWED so ordering discipline still applies, then
// either drop the header (default) or, under Options.Strict, promote it
// to a hard error (spec.md section 9's "explicit configuration knob").
func ignoreRegularHeader(s *StreamHTTPState, opts Options, reason string) (HeaderOutcome, error) {
	s.set(FlagPseudoHeaderDisallowed)
	if opts.Strict {
		return HeaderAccepted, newHeaderError(TokenOther, reason)
	}
	return HeaderIgnored, nil
}

// checkAndSetPseudo implements nghttp2_http.c's check_pseudo_header:
// reject if the flag is already set (duplicate), then reject if the
// value is pure whitespace, else set the flag. The duplicate check runs
// first, so a repeated whitespace-only pseudo-header reports as a
// duplicate, matching the C source's check order.
func checkAndSetPseudo(s *StreamHTTPState, flag Flag, value []byte, tok Token) error {
	if s.Has(flag) {
		return newHeaderError(tok, "duplicate pseudo-header")
	}
	if isAllLWS(value) {
		return newHeaderError(tok, "pseudo-header value is all whitespace")
	}
	s.set(flag)
	return nil
}

func requestHeaderValidator(s *StreamHTTPState, name, value []byte, isTrailer bool) (HeaderOutcome, error) {
	isPseudo := len(name) > 0 && name[0] == ':'
	if isPseudo && (isTrailer || s.Has(FlagPseudoHeaderDisallowed)) {
		return HeaderAccepted, newHeaderError(TokenOther, "pseudo-header after regular header or in trailer")
	}

	tok := classify(name)

	switch tok {
	case TokenAuthority:
		if err := checkAndSetPseudo(s, FlagPAuthority, value, tok); err != nil {
			return HeaderAccepted, err
		}
	case TokenMethod:
		if err := checkAndSetPseudo(s, FlagPMethod, value, tok); err != nil {
			return HeaderAccepted, err
		}
		switch string(value) {
		case "HEAD":
			s.set(FlagMethHead)
		case "CONNECT":
			if s.StreamID%2 == 0 {
				return HeaderAccepted, newHeaderError(tok, "CONNECT not allowed on a pushed stream")
			}
			if s.Any(FlagPPath | FlagPScheme) {
				return HeaderAccepted, newHeaderError(tok, "CONNECT incompatible with :path or :scheme")
			}
			s.set(FlagMethConnect)
		}
	case TokenPath:
		if s.Has(FlagMethConnect) {
			return HeaderAccepted, newHeaderError(tok, ":path not allowed on a CONNECT request")
		}
		if err := checkAndSetPseudo(s, FlagPPath, value, tok); err != nil {
			return HeaderAccepted, err
		}
	case TokenScheme:
		if s.Has(FlagMethConnect) {
			return HeaderAccepted, newHeaderError(tok, ":scheme not allowed on a CONNECT request")
		}
		if err := checkAndSetPseudo(s, FlagPScheme, value, tok); err != nil {
			return HeaderAccepted, err
		}
	case TokenHost:
		if err := checkAndSetPseudo(s, FlagHost, value, tok); err != nil {
			return HeaderAccepted, err
		}
	case TokenContentLength:
		if s.contentLength != -1 {
			return HeaderAccepted, newHeaderError(tok, "duplicate content-length")
		}
		n, ok := parseUint(value)
		if !ok {
			return HeaderAccepted, newHeaderError(tok, "unparseable content-length")
		}
		s.contentLength = n
	case TokenConnection, TokenKeepAlive, TokenProxyConnection, TokenTransferEncoding, TokenUpgrade:
		return HeaderAccepted, newHeaderError(tok, "connection-specific header forbidden on HTTP/2")
	case TokenTE:
		if !isTrailersTE(value) {
			return HeaderAccepted, newHeaderError(tok, "te must be trailers")
		}
	default:
		if isPseudo {
			return HeaderAccepted, newHeaderError(tok, "unknown pseudo-header")
		}
	}

	if !isPseudo {
		s.set(FlagPseudoHeaderDisallowed)
	}
	return HeaderAccepted, nil
}

func responseHeaderValidator(s *StreamHTTPState, name, value []byte, isTrailer bool) (HeaderOutcome, error) {
	isPseudo := len(name) > 0 && name[0] == ':'
	if isPseudo && (isTrailer || s.Has(FlagPseudoHeaderDisallowed)) {
		return HeaderAccepted, newHeaderError(TokenOther, "pseudo-header after regular header or in trailer")
	}

	tok := classify(name)

	switch tok {
	case TokenStatus:
		if err := checkAndSetPseudo(s, FlagPStatus, value, tok); err != nil {
			return HeaderAccepted, err
		}
		if len(value) != 3 {
			return HeaderAccepted, newHeaderError(tok, ":status must be exactly 3 digits")
		}
		n, ok := parseUint(value)
		if !ok {
			return HeaderAccepted, newHeaderError(tok, "unparseable :status")
		}
		s.statusCode = n
	case TokenContentLength:
		if s.contentLength != -1 {
			return HeaderAccepted, newHeaderError(tok, "duplicate content-length")
		}
		n, ok := parseUint(value)
		if !ok {
			return HeaderAccepted, newHeaderError(tok, "unparseable content-length")
		}
		s.contentLength = n
	case TokenConnection, TokenKeepAlive, TokenProxyConnection, TokenTransferEncoding, TokenUpgrade:
		return HeaderAccepted, newHeaderError(tok, "connection-specific header forbidden on HTTP/2")
	case TokenTE:
		if !isTrailersTE(value) {
			return HeaderAccepted, newHeaderError(tok, "te must be trailers")
		}
	default:
		if isPseudo {
			return HeaderAccepted, newHeaderError(tok, "unknown pseudo-header")
		}
	}

	if !isPseudo {
		s.set(FlagPseudoHeaderDisallowed)
	}
	return HeaderAccepted, nil
}

func isTrailersTE(value []byte) bool {
	if len(value) != len("trailers") {
		return false
	}
	for i, c := range value {
		if lower(c) != "trailers"[i] {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
