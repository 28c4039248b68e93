package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMode_Valid(t *testing.T) {
	require.True(t, None.Valid())
	require.True(t, ReduceAUpper.Valid())
	require.False(t, Mode(6).Valid())
}

func TestMode_String(t *testing.T) {
	require.Equal(t, "none", None.String())
	require.Equal(t, "reduceA", ReduceA.String())
	require.Equal(t, "unknown", Mode(9).String())
}

func TestIDFieldWidth(t *testing.T) {
	require.Equal(t, 26, IDFieldWidth("A"))
	require.Equal(t, 26, IDFieldWidth(strings.Repeat("x", 24)))
	require.Equal(t, 26, IDFieldWidth(strings.Repeat("x", 25)))
	require.Equal(t, 27, IDFieldWidth(strings.Repeat("x", 26)))
}
