package http2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOnRequestHeadersCompleteConnectRequiresAuthority(t *testing.T) {
	s := NewStreamHTTPState(1)
	s.set(FlagMethConnect)
	require.Error(t, OnRequestHeadersComplete(s, FrameHeaders))

	s2 := NewStreamHTTPState(1)
	s2.set(FlagMethConnect | FlagPAuthority)
	require.NoError(t, OnRequestHeadersComplete(s2, FrameHeaders))
	require.Equal(t, int64(-1), s2.ContentLength())
}

func TestOnRequestHeadersCompleteRequiresMethodPathScheme(t *testing.T) {
	s := NewStreamHTTPState(1)
	s.set(FlagPMethod | FlagPPath) // missing :scheme
	s.set(FlagHost)
	require.Error(t, OnRequestHeadersComplete(s, FrameHeaders))

	s2 := NewStreamHTTPState(1)
	s2.set(FlagReqHeaders) // missing authority/host
	require.Error(t, OnRequestHeadersComplete(s2, FrameHeaders))

	s3 := NewStreamHTTPState(1)
	s3.set(FlagReqHeaders | FlagHost)
	require.NoError(t, OnRequestHeadersComplete(s3, FrameHeaders))
}

func TestOnRequestHeadersCompletePushPromiseClearsForResponse(t *testing.T) {
	s := NewStreamHTTPState(2)
	s.set(FlagReqHeaders | FlagHost | FlagMethHead)
	s.contentLength = 10

	require.NoError(t, OnRequestHeadersComplete(s, FramePushPromise))

	require.True(t, s.Has(FlagMethHead))
	require.False(t, s.Has(FlagPMethod))
	require.False(t, s.Has(FlagHost))
	require.Equal(t, int64(-1), s.ContentLength())
}

func TestOnResponseHeadersCompleteRequiresStatus(t *testing.T) {
	s := NewStreamHTTPState(2)
	require.Error(t, OnResponseHeadersComplete(s))
}

func TestOnResponseHeadersCompleteConnectTunnelUnknownLength(t *testing.T) {
	s := NewStreamHTTPState(1)
	s.set(FlagMethConnect)
	s.flags |= FlagPStatus
	s.statusCode = 200
	require.NoError(t, OnResponseHeadersComplete(s))
	require.Equal(t, int64(-1), s.ContentLength())
}

func TestOnResponseHeadersCompleteNoBodyStatuses(t *testing.T) {
	for _, code := range []int64{204, 304} {
		s := NewStreamHTTPState(1)
		s.flags |= FlagPStatus
		s.statusCode = code
		require.NoError(t, OnResponseHeadersComplete(s))
		require.Equal(t, int64(0), s.ContentLength())
	}
}

func TestOnRemoteEndStreamRejectsMidInterim(t *testing.T) {
	s := NewStreamHTTPState(2)
	s.set(FlagExpectFinalResponse)
	require.Error(t, OnRemoteEndStream(s))
}

func TestOnRemoteEndStreamOkWhenLengthsMatch(t *testing.T) {
	s := NewStreamHTTPState(2)
	s.contentLength = 3
	require.NoError(t, OnDataChunk(s, 3))
	require.NoError(t, OnRemoteEndStream(s))
}
