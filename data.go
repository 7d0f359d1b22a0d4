package http2

// OnDataChunk accounts for n bytes of DATA payload delivered to the
// application and enforces the declared Content-Length (spec.md
// section 4.11).
func OnDataChunk(s *StreamHTTPState, n uint64) error {
	s.recvContentLength += n

	if s.Has(FlagExpectFinalResponse) {
		return ErrStreamSemantics
	}
	if s.contentLength != -1 && s.recvContentLength > uint64(s.contentLength) {
		return ErrStreamSemantics
	}
	return nil
}
