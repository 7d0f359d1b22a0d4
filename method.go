package http2

import "github.com/bradfitz/http2/hpack"

// RecordRequestMethod primes the method-family flags before full
// validation runs, by scanning a HEADERS or PUSH_PROMISE header list for
// the first :method header (spec.md section 4.12).
//
// "First :method wins": the scan stops at the first header classified
// as :method regardless of its value, matching
// nghttp2_http_record_request_method's actual control flow (every
// branch inside its loop body ends in a return), which spec.md section
// 9 resolves as the intended semantics despite the TODO left in the
// source suggesting stricter handling was once considered.
func RecordRequestMethod(s *StreamHTTPState, frame FrameType, nvs []hpack.HeaderField) {
	if frame != FrameHeaders && frame != FramePushPromise {
		return
	}
	for _, nv := range nvs {
		if classify([]byte(nv.Name)) != TokenMethod {
			continue
		}
		switch nv.Value {
		case "CONNECT":
			s.set(FlagMethConnect)
		case "HEAD":
			s.set(FlagMethHead)
		}
		return
	}
}
