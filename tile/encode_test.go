package tile

import (
	"testing"

	"github.com/msacio/msac/codec"
	"github.com/msacio/msac/format"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cdc := codec.NewZstd()

	for _, mode := range []format.Mode{format.None, format.ReduceA, format.ReduceB, format.ReduceC} {
		rows := rowsOf(
			[]string{"ID1", "ID2", "ID3"},
			[]string{"AC..GT", "..ACGT", "ACGTAC"},
		)
		tl := Tile{StartX: 0, StartY: 0, Width: 3, Height: 6, Sequences: rows}

		require.NoError(t, Encode(&tl, mode, cdc, format.DefaultCodecLevel))
		require.NotEmpty(t, tl.Compressed)

		entry := FooterEntry{StartX: 0, StartY: 0, Width: 3, Height: 6, CompressedSize: uint64(len(tl.Compressed))}
		ids := []string{"ID1", "ID2", "ID3"}

		decoded, err := Decode(entry, tl.Compressed, mode, cdc, ids)
		require.NoError(t, err)
		require.Len(t, decoded.Sequences, 3)

		if mode == format.ReduceA {
			require.Equal(t, "AC..GT", string(decoded.Sequences[0].Data))
			require.Equal(t, "ACGT", string(decoded.Sequences[1].Data))
		} else {
			require.Equal(t, "AC..GT", string(decoded.Sequences[0].Data))
			require.Equal(t, "..ACGT", string(decoded.Sequences[1].Data))
		}
		require.Equal(t, "ACGTAC", string(decoded.Sequences[2].Data))
	}
}

func TestEncode_DelimiterCollision(t *testing.T) {
	cdc := codec.NewZstd()
	rows := rowsOf([]string{"ID1"}, []string{"AC#GT"})
	tl := Tile{StartX: 0, StartY: 0, Width: 1, Height: 5, Sequences: rows}

	err := Encode(&tl, format.None, cdc, format.DefaultCodecLevel)
	require.Error(t, err)
}

func TestColumnMajor_RoundTrip(t *testing.T) {
	cdc := codec.NewZstd()
	rows := rowsOf(
		[]string{"ID1", "ID2"},
		[]string{"ABCD", "EFGH"},
	)
	tl := Tile{StartX: 0, StartY: 0, Width: 2, Height: 4, Sequences: rows}

	require.NoError(t, EncodeColumnMajor(&tl, cdc, format.DefaultCodecLevel))

	entry := FooterEntry{StartX: 0, StartY: 0, Width: 2, Height: 4, CompressedSize: uint64(len(tl.Compressed))}
	decoded, err := DecodeColumnMajor(entry, tl.Compressed, cdc, []string{"ID1", "ID2"})
	require.NoError(t, err)

	require.Equal(t, "ABCD", string(decoded.Sequences[0].Data))
	require.Equal(t, "EFGH", string(decoded.Sequences[1].Data))
}
