package http2

import (
	"testing"

	"github.com/bradfitz/http2/hpack"
)

func TestRecordRequestMethodConnect(t *testing.T) {
	s := NewStreamHTTPState(1)
	RecordRequestMethod(s, FrameHeaders, []hpack.HeaderField{
		nv(":authority", "x.test"),
		nv(":method", "CONNECT"),
	})
	if !s.Has(FlagMethConnect) {
		t.Error("expected METH_CONNECT flag set")
	}
}

func TestRecordRequestMethodHead(t *testing.T) {
	s := NewStreamHTTPState(1)
	RecordRequestMethod(s, FrameHeaders, []hpack.HeaderField{
		nv(":method", "HEAD"),
	})
	if !s.Has(FlagMethHead) {
		t.Error("expected METH_HEAD flag set")
	}
}

// First :method wins even if it is neither HEAD nor CONNECT, and even
// if a later :method somehow appeared (malformed input the full
// validator would reject, but the priming scan stops regardless).
func TestRecordRequestMethodFirstWins(t *testing.T) {
	s := NewStreamHTTPState(1)
	RecordRequestMethod(s, FrameHeaders, []hpack.HeaderField{
		nv(":method", "GET"),
		nv(":method", "CONNECT"),
	})
	if s.Has(FlagMethConnect) || s.Has(FlagMethHead) {
		t.Error("expected no method flags: first :method was GET")
	}
}

func TestRecordRequestMethodIgnoresOtherFrameTypes(t *testing.T) {
	s := NewStreamHTTPState(1)
	// There is no frame type besides Headers/PushPromise in this
	// package's closed FrameType set, so this documents the guard
	// exists even though it is presently unreachable from outside.
	RecordRequestMethod(s, FrameType(99), []hpack.HeaderField{
		nv(":method", "CONNECT"),
	})
	if s.Has(FlagMethConnect) {
		t.Error("expected unknown frame type to be ignored")
	}
}
