package transform

import "github.com/msacio/msac/format"

// gapRun records one run of consecutive gap bytes: p is the run's starting
// index in the original (undecoded) row, k its length.
type gapRun struct {
	p, k int
}

// reduceB encodes row as "<positions>@<literals>": positions is every gap
// run's (start, length) pair, each number individually comma-terminated
// (including the last), followed by an '@' and then every non-gap byte of
// row in order. Unlike reduceA, reduceB preserves a leading gap run: it is
// recorded as the pair (0, k).
func reduceB(row []byte) []byte {
	var runs []gapRun
	literals := make([]byte, 0, len(row))

	i := 0
	for i < len(row) {
		if row[i] == format.GapByte {
			start := i
			for i < len(row) && row[i] == format.GapByte {
				i++
			}
			runs = append(runs, gapRun{p: start, k: i - start})
		} else {
			literals = append(literals, row[i])
			i++
		}
	}

	out := make([]byte, 0, len(row)+len(runs)*4+1)
	for _, r := range runs {
		out = appendDecimal(out, r.p)
		out = append(out, ',')
		out = appendDecimal(out, r.k)
		out = append(out, ',')
	}
	out = append(out, '@')
	out = append(out, literals...)

	return out
}

// reduceBInverse expands reduceB's output back into a row, placing literals
// and gap runs at their recorded original positions. Lossless.
func reduceBInverse(encoded []byte) []byte {
	at := indexByte(encoded, '@')
	if at < 0 {
		at = len(encoded)
	}
	positions, literals := encoded[:at], encoded[min(at+1, len(encoded)):]

	var runs []gapRun
	i := 0
	for i < len(positions) {
		if positions[i] == ',' {
			i++
			continue
		}
		p, next := parseDigits(positions, i)
		i = next
		if i < len(positions) && positions[i] == ',' {
			i++
		}
		k, next2 := parseDigits(positions, i)
		i = next2
		if i < len(positions) && positions[i] == ',' {
			i++
		}
		runs = append(runs, gapRun{p: p, k: k})
	}

	total := len(literals)
	for _, r := range runs {
		total += r.k
	}

	out := make([]byte, 0, total)
	runIdx, litIdx, pos := 0, 0, 0
	for pos < total {
		if runIdx < len(runs) && runs[runIdx].p == pos {
			for k := 0; k < runs[runIdx].k; k++ {
				out = append(out, format.GapByte)
			}
			pos += runs[runIdx].k
			runIdx++
			continue
		}
		out = append(out, literals[litIdx])
		litIdx++
		pos++
	}

	return out
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}

	return -1
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
