package http2

// OnRequestHeadersComplete is called when a request (or pushed request)
// HEADERS/PUSH_PROMISE block ends (spec.md section 4.7).
func OnRequestHeadersComplete(s *StreamHTTPState, frame FrameType) error {
	if s.Has(FlagMethConnect) {
		if !s.Has(FlagPAuthority) {
			return ErrStreamSemantics
		}
		s.contentLength = -1
	} else if !s.Has(FlagReqHeaders) || !s.Any(FlagPAuthority|FlagHost) {
		return ErrStreamSemantics
	}

	if frame == FramePushPromise {
		// The same stream state is about to validate the promised
		// response; keep only the method-family flags.
		s.setOnly(s.flags & FlagMethAll)
		s.contentLength = -1
	}

	return nil
}

// OnResponseHeadersComplete is called when a response HEADERS block
// ends (spec.md section 4.8).
func OnResponseHeadersComplete(s *StreamHTTPState) error {
	if !s.Has(FlagPStatus) {
		return ErrStreamSemantics
	}

	if s.statusCode/100 == 1 {
		if err := s.response.fireInterim(); err != nil {
			return ErrStreamSemantics
		}
		s.setOnly((s.flags & FlagMethAll) | FlagExpectFinalResponse)
		s.contentLength = -1
		s.statusCode = -1
		return nil
	}

	if err := s.response.fireFinal(); err != nil {
		return ErrStreamSemantics
	}

	s.flags &^= FlagExpectFinalResponse

	if !expectResponseBody(s) {
		s.contentLength = 0
	} else if s.Has(FlagMethConnect) {
		s.contentLength = -1
	}

	return nil
}

// expectResponseBody mirrors nghttp2_http.c's expect_response_body
// verbatim, including the status/100 != 1 arm, which is unreachable
// here (the 1xx case already returned above) but kept for symmetry with
// the source, per spec.md section 4.8's note.
func expectResponseBody(s *StreamHTTPState) bool {
	return !s.Has(FlagMethHead) &&
		s.statusCode/100 != 1 &&
		s.statusCode != 204 &&
		s.statusCode != 304
}

// OnTrailerHeadersComplete is called when a trailer header block ends
// (spec.md section 4.9). A trailer block is only valid on a frame whose
// END_STREAM flag is set.
func OnTrailerHeadersComplete(s *StreamHTTPState, frameEndStream bool) error {
	if !frameEndStream {
		return ErrStreamSemantics
	}
	return nil
}

// OnRemoteEndStream is called when the peer half-closes the stream
// (spec.md section 4.10).
func OnRemoteEndStream(s *StreamHTTPState) error {
	if s.Has(FlagExpectFinalResponse) {
		return ErrStreamSemantics
	}
	if s.contentLength != -1 && s.contentLength != int64(s.recvContentLength) {
		return ErrStreamSemantics
	}
	return nil
}
