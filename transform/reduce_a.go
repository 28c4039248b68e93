package transform

import "github.com/msacio/msac/format"

// reduceA encodes row as a sequence of "<symbol><decimal run length>"
// tokens, one per non-gap symbol followed by its trailing run of gaps. The
// run length is omitted when zero. Any gap run preceding the first non-gap
// symbol is dropped entirely; an all-gap row encodes to nothing.
func reduceA(row []byte) []byte {
	start := firstNonGap(row)
	if start < 0 {
		return nil
	}

	out := make([]byte, 0, len(row))
	i := start
	for i < len(row) {
		out = append(out, row[i])
		i++
		run := 0
		for i < len(row) && row[i] == format.GapByte {
			run++
			i++
		}
		if run > 0 {
			out = appendDecimal(out, run)
		}
	}

	return out
}

// reduceAInverse expands reduceA's output back into a row. The leading gap
// run reduceA dropped is not restored.
func reduceAInverse(encoded []byte) []byte {
	out := make([]byte, 0, len(encoded)*2)
	i := 0
	for i < len(encoded) {
		literal := encoded[i]
		i++
		run := 0
		if i < len(encoded) && isDigit(encoded[i]) {
			run, i = parseDigits(encoded, i)
		}
		out = append(out, literal)
		for k := 0; k < run; k++ {
			out = append(out, format.GapByte)
		}
	}

	return out
}
