// Package cliutil parses msac's command-line flag shape, a prefix form
// ("-a200", not "-a 200") that does not fit the standard library's flag
// package. Grounded on the original MSACompressor.cpp main() dispatcher,
// which switches on argv[i].substr(0,2), translated into an idiomatic
// []string walk that returns typed errs.UsageError values instead of
// printing and exiting directly.
package cliutil

import (
	"strconv"
	"strings"

	"github.com/msacio/msac/errs"
	"github.com/msacio/msac/format"
	"github.com/msacio/msac/transform"
)

// Flags holds the parsed -a/-b/-z/-p/-c/-m values and the remaining
// positional arguments (mode-specific: row IDs, column indices, or a
// column range).
type Flags struct {
	TileRows   int
	TileCols   int
	CodecLevel int
	Mode       transform.Mode
	Codec      string
	Framing    string
	Positional []string
}

// Default returns the flag defaults from spec.md §6.
func Default() Flags {
	return Flags{
		TileRows:   format.DefaultTileRows,
		TileCols:   format.DefaultTileCols,
		CodecLevel: format.DefaultCodecLevel,
		Mode:       format.DefaultMode,
		Codec:      "zstd",
		Framing:    "row",
	}
}

// Parse walks args (everything after <in> <out>), recognizing
// -a/-b/-z/-p/-c/-m prefixes and collecting everything else as
// positional arguments.
func Parse(args []string) (Flags, error) {
	f := Default()
	for _, arg := range args {
		if len(arg) < 2 || arg[0] != '-' {
			f.Positional = append(f.Positional, arg)
			continue
		}

		switch arg[1] {
		case 'a':
			n, err := parseIntFlag(arg)
			if err != nil {
				return f, err
			}
			f.TileRows = clamp(n, 1, 1<<31-1)
		case 'b':
			n, err := parseIntFlag(arg)
			if err != nil {
				return f, err
			}
			f.TileCols = clamp(n, 1, 1<<31-1)
		case 'z':
			n, err := parseIntFlag(arg)
			if err != nil {
				return f, err
			}
			f.CodecLevel = clamp(n, format.MinCodecLevel, format.MaxCodecLevel)
		case 'p':
			n, err := parseIntFlag(arg)
			if err != nil {
				return f, err
			}
			if n < 0 || n > int(format.MaxMode) {
				return f, &errs.UsageError{Err: errs.ErrInvalidPreprocessingTag}
			}
			f.Mode = transform.Mode(n)
		case 'c':
			v := strings.TrimPrefix(arg, "-c")
			if v != "zstd" && v != "lz4" {
				return f, &errs.UsageError{Err: errs.ErrInvalidFlag}
			}
			f.Codec = v
		case 'm':
			v := strings.TrimPrefix(arg, "-m")
			if v != "row" && v != "column" {
				return f, &errs.UsageError{Err: errs.ErrInvalidFlag}
			}
			f.Framing = v
		default:
			return f, &errs.UsageError{Err: errs.ErrInvalidFlag}
		}
	}

	return f, nil
}

func parseIntFlag(arg string) (int, error) {
	n, err := strconv.Atoi(arg[2:])
	if err != nil {
		return 0, &errs.UsageError{Err: errs.ErrInvalidFlag}
	}

	return n, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Usage is the text printed to stderr on a UsageError, documenting all
// five modes and every flag including the domain-stack additions -c/-m
// that spec.md's C++ ancestor did not have.
const Usage = `msac <mode> <in> <out> [flags...] [args...]

Modes:
  Sc  <in> <out> [-a<int>] [-b<int>] [-z<int>] [-p<int>] [-c<zstd|lz4>] [-m<row|column>]
        Compress <in> (MSA text) into <out> (binary container).
  Sd  <in> <out> [-p<int>]
        Fully decompress <in> into <out>.
  Ds  <in> <out> [-p<int>] <id1> [<id2> ...]
        Decompress only the named rows.
  Dc  <in> <out> [-p<int>] <col1> [<col2> ...]
        Decompress only the named columns.
  Drc <in> <out> [-p<int>] <startCol> <stopCol>
        Decompress an inclusive column range.

Flags:
  -a<int>  tile row count A, default 200000, clamped to >= 1
  -b<int>  tile column count B, default 9000, clamped to >= 1
  -z<int>  codec level, default 13, clamped to [1, 19]
  -p<int>  preprocessing tag in 0..5, default 1
  -c<tag>  entropy codec, "zstd" (default) or "lz4"
  -m<tag>  tile framing, "row" (default) or "column"
`
