// Command msac compresses and selectively decompresses MSA text files
// into/from the tiled binary container, mirroring the five-mode CLI of
// the original MSACompressor.cpp (spec.md §6).
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/msacio/msac/cliutil"
	"github.com/msacio/msac/codec"
	"github.com/msacio/msac/container"
	"github.com/msacio/msac/errs"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if isUsageError(err) {
			fmt.Fprint(os.Stderr, cliutil.Usage)
		}
		os.Exit(1)
	}
}

func isUsageError(err error) bool {
	var usageErr *errs.UsageError

	return asUsageError(err, &usageErr)
}

func asUsageError(err error, target **errs.UsageError) bool {
	for err != nil {
		if ue, ok := err.(*errs.UsageError); ok {
			*target = ue
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}

	return false
}

func run(args []string) error {
	if len(args) < 3 {
		return &errs.UsageError{Err: errs.ErrUnknownMode}
	}

	mode, inPath, outPath := args[0], args[1], args[2]
	flags, err := cliutil.Parse(args[3:])
	if err != nil {
		return err
	}

	cdc, err := codec.New(flags.Codec)
	if err != nil {
		return &errs.CodecError{Message: "constructing codec", Err: err}
	}

	switch mode {
	case "Sc":
		return runCompress(inPath, outPath, flags, cdc)
	case "Sd":
		return runDecompress(inPath, outPath, flags, cdc)
	case "Ds":
		return runDecompressRows(inPath, outPath, flags, cdc)
	case "Dc":
		return runDecompressColumns(inPath, outPath, flags, cdc)
	case "Drc":
		return runDecompressColumnRange(inPath, outPath, flags, cdc)
	default:
		return &errs.UsageError{Err: errs.ErrUnknownMode}
	}
}

func runCompress(inPath, outPath string, flags cliutil.Flags, cdc codec.Codec) error {
	in, err := os.Open(inPath)
	if err != nil {
		return &errs.IOError{Op: "open", Path: inPath, Err: err}
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return &errs.IOError{Op: "create", Path: outPath, Err: err}
	}
	defer out.Close()

	cfg := container.Config{
		TileRows:   flags.TileRows,
		TileCols:   flags.TileCols,
		CodecLevel: flags.CodecLevel,
		Mode:       flags.Mode,
		Codec:      cdc,
	}

	var opts []container.Option
	if flags.Framing == "column" {
		opts = append(opts, container.WithColumnMajorFraming())
	}

	return container.Compress(in, out, cfg, opts...)
}

func runDecompress(inPath, outPath string, flags cliutil.Flags, cdc codec.Codec) error {
	in, out, err := openPair(inPath, outPath)
	if err != nil {
		return err
	}
	defer in.Close()
	defer out.Close()

	return container.Decompress(in, out, flags.Mode, cdc)
}

func runDecompressRows(inPath, outPath string, flags cliutil.Flags, cdc codec.Codec) error {
	if len(flags.Positional) == 0 {
		return &errs.UsageError{Err: errs.ErrInvalidFlag}
	}

	in, out, err := openPair(inPath, outPath)
	if err != nil {
		return err
	}
	defer in.Close()
	defer out.Close()

	return container.DecompressRows(in, out, flags.Mode, cdc, flags.Positional)
}

func runDecompressColumns(inPath, outPath string, flags cliutil.Flags, cdc codec.Codec) error {
	cols, err := parseInts(flags.Positional)
	if err != nil {
		return err
	}

	in, out, ferr := openPair(inPath, outPath)
	if ferr != nil {
		return ferr
	}
	defer in.Close()
	defer out.Close()

	return container.DecompressColumns(in, out, flags.Mode, cdc, cols)
}

func runDecompressColumnRange(inPath, outPath string, flags cliutil.Flags, cdc codec.Codec) error {
	if len(flags.Positional) != 2 {
		return &errs.UsageError{Err: errs.ErrInvalidFlag}
	}
	bounds, err := parseInts(flags.Positional)
	if err != nil {
		return err
	}

	in, out, ferr := openPair(inPath, outPath)
	if ferr != nil {
		return ferr
	}
	defer in.Close()
	defer out.Close()

	return container.DecompressColumnRange(in, out, flags.Mode, cdc, bounds[0], bounds[1])
}

func openPair(inPath, outPath string) (*os.File, *os.File, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return nil, nil, &errs.IOError{Op: "open", Path: inPath, Err: err}
	}

	out, err := os.Create(outPath)
	if err != nil {
		in.Close()
		return nil, nil, &errs.IOError{Op: "create", Path: outPath, Err: err}
	}

	return in, out, nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, &errs.UsageError{Err: errs.ErrInvalidFlag}
		}
		out = append(out, n)
	}

	return out, nil
}
