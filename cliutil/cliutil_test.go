package cliutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msacio/msac/format"
	"github.com/msacio/msac/transform"
)

func TestParse_Defaults(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, format.DefaultTileRows, f.TileRows)
	require.Equal(t, format.DefaultTileCols, f.TileCols)
	require.Equal(t, format.DefaultCodecLevel, f.CodecLevel)
	require.Equal(t, transform.Mode(format.DefaultMode), f.Mode)
	require.Equal(t, "zstd", f.Codec)
	require.Equal(t, "row", f.Framing)
}

func TestParse_Flags(t *testing.T) {
	f, err := Parse([]string{"-a100", "-b50", "-z5", "-p2", "-clz4", "-mcolumn", "ID1", "ID2"})
	require.NoError(t, err)
	require.Equal(t, 100, f.TileRows)
	require.Equal(t, 50, f.TileCols)
	require.Equal(t, 5, f.CodecLevel)
	require.Equal(t, transform.ReduceB, f.Mode)
	require.Equal(t, "lz4", f.Codec)
	require.Equal(t, "column", f.Framing)
	require.Equal(t, []string{"ID1", "ID2"}, f.Positional)
}

func TestParse_ClampsTileRows(t *testing.T) {
	f, err := Parse([]string{"-a0"})
	require.NoError(t, err)
	require.Equal(t, 1, f.TileRows)
}

func TestParse_InvalidPreprocessingTag(t *testing.T) {
	_, err := Parse([]string{"-p9"})
	require.Error(t, err)
}

func TestParse_InvalidCodec(t *testing.T) {
	_, err := Parse([]string{"-cbrotli"})
	require.Error(t, err)
}

func TestParse_UnknownFlag(t *testing.T) {
	_, err := Parse([]string{"-q1"})
	require.Error(t, err)
}
