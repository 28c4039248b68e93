package seqid

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoder_Write(t *testing.T) {
	enc := NewEncoder()
	defer enc.Release()

	require.NoError(t, enc.Write("A"))
	require.NoError(t, enc.Write("B2"))

	got := enc.Bytes()
	require.Equal(t, []byte{1, 0, 'A', 2, 0, 'B', '2'}, got)
}

func TestEncoder_Write_TooLong(t *testing.T) {
	enc := NewEncoder()
	defer enc.Release()

	err := enc.Write(strings.Repeat("x", MaxIDLength+1))
	require.Error(t, err)
}

func TestReadAll_RoundTrip(t *testing.T) {
	ids := []string{"seq1", "seq_longer_id", "x"}

	enc := NewEncoder()
	for _, id := range ids {
		require.NoError(t, enc.Write(id))
	}
	data := append([]byte(nil), enc.Bytes()...)
	enc.Release()

	got, err := ReadAll(bytes.NewReader(data), len(ids))
	require.NoError(t, err)
	require.Equal(t, ids, got)
}

func TestReadUntil_RoundTrip(t *testing.T) {
	ids := []string{"r0", "r1", "r2", "r3"}

	enc := NewEncoder()
	for _, id := range ids {
		require.NoError(t, enc.Write(id))
	}
	data := append([]byte(nil), enc.Bytes()...)
	enc.Release()

	r := bytes.NewReader(data)
	pos := func() int64 { return int64(len(data)) - int64(r.Len()) }

	got, err := ReadUntil(r, pos, int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, ids, got)
}
