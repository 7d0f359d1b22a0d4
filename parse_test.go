package http2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUint(t *testing.T) {
	n, ok := parseUint([]byte("0"))
	require.True(t, ok)
	require.Equal(t, int64(0), n)

	n, ok = parseUint([]byte("007"))
	require.True(t, ok)
	require.Equal(t, int64(7), n)

	n, ok = parseUint([]byte("9223372036854775807")) // math.MaxInt64
	require.True(t, ok)
	require.Equal(t, int64(math.MaxInt64), n)

	_, ok = parseUint([]byte("9223372036854775808")) // overflow by one
	require.False(t, ok)

	_, ok = parseUint([]byte(""))
	require.False(t, ok)

	_, ok = parseUint([]byte("12a"))
	require.False(t, ok)

	_, ok = parseUint([]byte("-1"))
	require.False(t, ok)
}

func TestIsAllLWS(t *testing.T) {
	require.True(t, isAllLWS([]byte("   \t ")))
	require.True(t, isAllLWS([]byte("")))
	require.False(t, isAllLWS([]byte(" x")))
}
