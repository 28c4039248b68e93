package tile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rowsOf(ids []string, data []string) []Sequence {
	seqs := make([]Sequence, len(ids))
	for i := range ids {
		seqs[i] = Sequence{ID: ids[i], Data: []byte(data[i])}
	}

	return seqs
}

func TestPartition_Coverage(t *testing.T) {
	rows := rowsOf([]string{"ID1", "ID2", "ID3"}, []string{"AAAA", "AAAA", "AAAA"})

	tiles := Partition(rows, 0, 2)
	require.Len(t, tiles, 2)
	require.Equal(t, 0, tiles[0].StartY)
	require.Equal(t, 2, tiles[0].Height)
	require.Equal(t, 2, tiles[1].StartY)
	require.Equal(t, 2, tiles[1].Height)

	for _, tl := range tiles {
		require.Equal(t, 3, tl.Width)
		for _, seq := range tl.Sequences {
			require.Len(t, seq.Data, tl.Height)
		}
	}
}

func TestPartition_RemainderBand(t *testing.T) {
	rows := rowsOf([]string{"ID1"}, []string{"ABCDE"})

	tiles := Partition(rows, 0, 2)
	require.Len(t, tiles, 3)
	require.Equal(t, 2, tiles[0].Height)
	require.Equal(t, 2, tiles[1].Height)
	require.Equal(t, 1, tiles[2].Height)
}

func TestPartition_DoesNotAliasInput(t *testing.T) {
	rows := rowsOf([]string{"ID1"}, []string{"ABCD"})

	tiles := Partition(rows, 0, 4)
	tiles[0].Sequences[0].Data[0] = 'X'
	require.Equal(t, byte('A'), rows[0].Data[0])
}
