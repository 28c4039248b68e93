package transform

import (
	"testing"

	"github.com/msacio/msac/format"
	"github.com/stretchr/testify/require"
)

func TestReduceA(t *testing.T) {
	require.Equal(t, "A2B1", string(reduceA([]byte("..A..B."))))
	require.Equal(t, "ABC", string(reduceA([]byte("ABC"))))
	require.Nil(t, reduceA([]byte("...")))
}

func TestReduceA_Inverse(t *testing.T) {
	got := reduceAInverse(reduceA([]byte("..A..B.")))
	require.Equal(t, "A..B.", string(got))
}

func TestReduceB(t *testing.T) {
	require.Equal(t, "0,2,3,2,6,1,@AB", string(reduceB([]byte("..A..B."))))
	require.Equal(t, "@ABC", string(reduceB([]byte("ABC"))))
	require.Equal(t, "0,3,@", string(reduceB([]byte("..."))))
}

func TestReduceB_Inverse(t *testing.T) {
	for _, row := range []string{"..A..B.", "ABC", "...", "A", ".", "A.B.C"} {
		got := reduceBInverse(reduceB([]byte(row)))
		require.Equal(t, row, string(got), "row %q", row)
	}
}

func TestReduceC(t *testing.T) {
	require.Equal(t, "0,2,1,2,1,1@AB", string(reduceC([]byte("..A..B."))))
	require.Equal(t, "3@ABC", string(reduceC([]byte("ABC"))))
	require.Equal(t, "0,3@", string(reduceC([]byte("..."))))
}

func TestReduceC_Inverse(t *testing.T) {
	for _, row := range []string{"..A..B.", "ABC", "...", "A", ".", "A.B.C"} {
		got := reduceCInverse(reduceC([]byte(row)))
		require.Equal(t, row, string(got), "row %q", row)
	}
}

func TestApplyReverse_RoundTrip(t *testing.T) {
	rows := []string{"..A..B.", "ABC", "...", "A", ".", "A.B.C", "MNO...PQ.."}

	lossy := map[format.Mode]bool{
		format.ReduceA:      true,
		format.ReduceALower: true,
		format.ReduceAUpper: true,
	}

	for _, mode := range []format.Mode{format.None, format.ReduceA, format.ReduceB, format.ReduceC, format.ReduceALower, format.ReduceAUpper} {
		for _, row := range rows {
			encoded, err := Apply(mode, []byte(row))
			require.NoError(t, err)

			decoded, err := Reverse(mode, encoded)
			require.NoError(t, err)

			if lossy[mode] {
				want := row[firstNonGap([]byte(row)):]
				if firstNonGap([]byte(row)) < 0 {
					want = ""
				}
				if mode == format.ReduceALower {
					want = string(foldCase([]byte(want), toLower))
				}
				if mode == format.ReduceAUpper {
					want = string(foldCase([]byte(want), toUpper))
				}
				require.Equal(t, want, string(decoded), "mode %s row %q", mode, row)
				continue
			}

			require.Equal(t, row, string(decoded), "mode %s row %q", mode, row)
		}
	}
}

func TestApply_CaseFolding(t *testing.T) {
	encoded, err := Apply(format.ReduceAUpper, []byte("..ac..g."))
	require.NoError(t, err)

	decoded, err := Reverse(format.ReduceAUpper, encoded)
	require.NoError(t, err)
	require.Equal(t, "AC..G.", string(decoded))
}

func TestApply_UnknownMode(t *testing.T) {
	_, err := Apply(format.Mode(99), []byte("ABC"))
	require.Error(t, err)
}

func TestApply_EmptyRow(t *testing.T) {
	got, err := Apply(format.ReduceA, nil)
	require.NoError(t, err)
	require.Nil(t, got)
}
