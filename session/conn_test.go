package session

import (
	"testing"

	"github.com/bradfitz/http2/hpack"
	"github.com/stretchr/testify/require"

	"github.com/baranov1ch/http2"
)

func nv(name, value string) hpack.HeaderField {
	return hpack.HeaderField{Name: name, Value: value}
}

func TestConnWellFormedRequestThenResponse(t *testing.T) {
	req := NewConn(true, http2.DefaultOptions, Noop())
	st := req.Open(1)

	for _, h := range []hpack.HeaderField{
		nv(":method", "GET"),
		nv(":scheme", "https"),
		nv(":path", "/"),
		nv(":authority", "x.test"),
	} {
		_, err := req.OnHeader(st, http2.FrameHeaders, h, false)
		require.NoError(t, err)
	}
	require.NoError(t, req.OnRequestHeadersComplete(st, http2.FrameHeaders))
	reset, _ := st.Reset()
	require.False(t, reset)

	resp := NewConn(false, http2.DefaultOptions, Noop())
	rst := resp.Open(1)
	_, err := resp.OnHeader(rst, http2.FrameHeaders, nv(":status", "204"), false)
	require.NoError(t, err)
	require.NoError(t, resp.OnResponseHeadersComplete(rst))
	require.Equal(t, int64(0), rst.State.ContentLength())
	require.NoError(t, resp.OnRemoteEndStream(rst))
}

func TestConnResetsStreamOnProtocolError(t *testing.T) {
	c := NewConn(true, http2.DefaultOptions, Noop())
	st := c.Open(3)

	_, err := c.OnHeader(st, http2.FrameHeaders, nv("transfer-encoding", "chunked"), false)
	require.Error(t, err)

	reset, resetBy := st.Reset()
	require.True(t, reset)
	require.Error(t, resetBy)
}

func TestConnCloseDiscardsStream(t *testing.T) {
	c := NewConn(true, http2.DefaultOptions, Noop())
	c.Open(5)
	require.NotNil(t, c.Stream(5))
	c.Close(5)
	require.Nil(t, c.Stream(5))
}

func TestConnRecordRequestMethodPrimesFlags(t *testing.T) {
	c := NewConn(true, http2.DefaultOptions, Noop())
	st := c.Open(1)
	c.RecordRequestMethod(st, http2.FrameHeaders, []hpack.HeaderField{
		nv(":method", "HEAD"),
	})
	require.True(t, st.State.Has(http2.FlagMethHead))
}
