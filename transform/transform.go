// Package transform implements the six reversible per-row gap-preprocessing
// transforms described in spec.md §4.1: none, and three "reducers" (A, B,
// C) that rewrite runs of the gap byte '.' as compact numeric encodings,
// plus case-folding variants of reducer A.
//
// Only reducer A and its case-folding variants are lossy: they drop a
// row's leading gap run (the run preceding its first non-gap symbol), and
// the case-folding variants also discard the original letter case.
// Reducers B and C preserve the leading gap run and round-trip every row
// exactly.
package transform

import (
	"fmt"

	"github.com/msacio/msac/errs"
	"github.com/msacio/msac/format"
)

// Mode selects one of the six reversible gap-preprocessing transforms.
// It is an alias of format.Mode, the type the wire-level constants
// (None, ReduceA, ...) are defined on, so callers can spell either
// transform.Mode or format.Mode interchangeably.
type Mode = format.Mode

// Apply runs the forward transform for mode over row, returning a new byte
// slice. row is not modified.
func Apply(mode format.Mode, row []byte) ([]byte, error) {
	if len(row) == 0 {
		return nil, nil
	}

	switch mode {
	case format.None:
		return append([]byte(nil), row...), nil
	case format.ReduceA:
		return reduceA(row), nil
	case format.ReduceB:
		return reduceB(row), nil
	case format.ReduceC:
		return reduceC(row), nil
	case format.ReduceALower:
		return reduceA(foldCase(row, toLower)), nil
	case format.ReduceAUpper:
		return reduceA(foldCase(row, toUpper)), nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidPreprocessingTag, mode)
	}
}

// Reverse runs the inverse transform for mode over encoded, the bytes
// produced by a prior call to Apply with the same mode.
func Reverse(mode format.Mode, encoded []byte) ([]byte, error) {
	if len(encoded) == 0 {
		return nil, nil
	}

	switch mode {
	case format.None:
		return append([]byte(nil), encoded...), nil
	case format.ReduceA, format.ReduceALower, format.ReduceAUpper:
		return reduceAInverse(encoded), nil
	case format.ReduceB:
		return reduceBInverse(encoded), nil
	case format.ReduceC:
		return reduceCInverse(encoded), nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidPreprocessingTag, mode)
	}
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}

// foldCase maps every non-gap byte of row through fn, leaving gap bytes
// untouched. The case change is irreversible: the inverse transforms never
// attempt to restore original casing.
func foldCase(row []byte, fn func(byte) byte) []byte {
	out := make([]byte, len(row))
	for i, c := range row {
		if c == format.GapByte {
			out[i] = c
		} else {
			out[i] = fn(c)
		}
	}

	return out
}

// firstNonGap returns the index of the first byte in row that is not the
// gap byte, or -1 if row is entirely gaps.
func firstNonGap(row []byte) int {
	for i, c := range row {
		if c != format.GapByte {
			return i
		}
	}

	return -1
}

func appendDecimal(dst []byte, n int) []byte {
	if n == 0 {
		return append(dst, '0')
	}

	var tmp [20]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
	}

	return append(dst, tmp[i:]...)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseDigits reads the decimal integer starting at data[i] (i must point
// at a digit) and returns its value and the index just past the last digit
// consumed.
func parseDigits(data []byte, i int) (int, int) {
	n := 0
	for i < len(data) && isDigit(data[i]) {
		n = n*10 + int(data[i]-'0')
		i++
	}

	return n, i
}
