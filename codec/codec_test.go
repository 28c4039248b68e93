package codec

import (
	"strings"
	"testing"

	"github.com/msacio/msac/errs"
	"github.com/stretchr/testify/require"
)

func TestZstd_RoundTrip(t *testing.T) {
	c := NewZstd()
	src := []byte(strings.Repeat("ACGT..", 500))

	compressed, err := c.Encode(src, 13)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)
	require.Less(t, len(compressed), len(src))

	decoded, err := c.Decode(compressed, len(src)*2)
	require.NoError(t, err)
	require.Equal(t, src, decoded)
}

func TestZstd_DecodedSizeExceeded(t *testing.T) {
	c := NewZstd()
	src := []byte(strings.Repeat("ACGT..", 500))

	compressed, err := c.Encode(src, 13)
	require.NoError(t, err)

	_, err = c.Decode(compressed, 10)
	require.ErrorIs(t, err, errs.ErrDecodedSizeExceeded)
}

func TestZstd_DifferentLevels(t *testing.T) {
	c := NewZstd()
	src := []byte(strings.Repeat("ACGT..", 500))

	for _, level := range []int{1, 9, 19} {
		compressed, err := c.Encode(src, level)
		require.NoError(t, err)

		decoded, err := c.Decode(compressed, len(src)*2)
		require.NoError(t, err)
		require.Equal(t, src, decoded)
	}
}

func TestLZ4_RoundTrip(t *testing.T) {
	c := NewLZ4()
	src := []byte(strings.Repeat("ACGT..", 500))

	compressed, err := c.Encode(src, 0)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)

	decoded, err := c.Decode(compressed, len(src)*2)
	require.NoError(t, err)
	require.Equal(t, src, decoded)
}

func TestNew(t *testing.T) {
	for _, name := range []string{"", "zstd", "lz4"} {
		_, err := New(name)
		require.NoError(t, err)
	}

	_, err := New("bogus")
	require.Error(t, err)
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, c := range []Codec{NewZstd(), NewLZ4()} {
		decoded, err := c.Decode(nil, 100)
		require.NoError(t, err)
		require.Nil(t, decoded)
	}
}
