package transform

import "github.com/msacio/msac/format"

// reduceC encodes row as "<numbers>@<literals>": numbers is a
// comma-separated (not comma-terminated) list of alternating run lengths,
// literal-run length first, starting with 0 if row begins with a gap. The
// final gap-run length is omitted entirely when it is zero (row ends on a
// literal). literals holds every non-gap byte of row in order.
func reduceC(row []byte) []byte {
	var numbers []int
	literals := make([]byte, 0, len(row))

	i := 0
	expectLiteralRun := true
	for i < len(row) {
		start := i
		if expectLiteralRun {
			for i < len(row) && row[i] != format.GapByte {
				literals = append(literals, row[i])
				i++
			}
		} else {
			for i < len(row) && row[i] == format.GapByte {
				i++
			}
		}
		numbers = append(numbers, i-start)
		expectLiteralRun = !expectLiteralRun
	}

	// Trailing gap-run length of zero is implicit, not emitted, unless the
	// row is entirely gaps (in which case the leading 0 literal-run must
	// still be followed by the gap-run count).
	if len(numbers) > 0 && !expectLiteralRun && numbers[len(numbers)-1] == 0 {
		numbers = numbers[:len(numbers)-1]
	}

	out := make([]byte, 0, len(row)+len(numbers)*4+1)
	for idx, n := range numbers {
		if idx > 0 {
			out = append(out, ',')
		}
		out = appendDecimal(out, n)
	}
	out = append(out, '@')
	out = append(out, literals...)

	return out
}

// reduceCInverse expands reduceC's output back into a row. Lossless.
func reduceCInverse(encoded []byte) []byte {
	at := indexByte(encoded, '@')
	if at < 0 {
		at = len(encoded)
	}
	numbersPart, literals := encoded[:at], encoded[min(at+1, len(encoded)):]

	var numbers []int
	i := 0
	for i < len(numbersPart) {
		if numbersPart[i] == ',' {
			i++
			continue
		}
		n, next := parseDigits(numbersPart, i)
		numbers = append(numbers, n)
		i = next
	}

	out := make([]byte, 0, len(literals)*2)
	litIdx := 0
	isLiteralRun := true
	for _, n := range numbers {
		if isLiteralRun {
			out = append(out, literals[litIdx:litIdx+n]...)
			litIdx += n
		} else {
			for k := 0; k < n; k++ {
				out = append(out, format.GapByte)
			}
		}
		isLiteralRun = !isLiteralRun
	}

	return out
}
