// Package errs defines the sentinel errors shared across msac's packages.
//
// Call sites wrap a sentinel with additional context using fmt.Errorf's %w
// verb, e.g. fmt.Errorf("%w: tag %d", errs.ErrInvalidPreprocessingTag, tag),
// so callers can still match on the sentinel with errors.Is.
package errs

import "errors"

var (
	// ErrUnknownMode is returned when the CLI is given a mode other than
	// Sc, Sd, Ds, Dc, or Drc.
	ErrUnknownMode = errors.New("msac: unknown mode")

	// ErrInvalidFlag is returned when a command-line flag cannot be parsed.
	ErrInvalidFlag = errors.New("msac: invalid flag")

	// ErrInvalidPreprocessingTag is returned when -p is outside 0..5.
	ErrInvalidPreprocessingTag = errors.New("msac: invalid preprocessing tag")

	// ErrTrailerTruncated is returned when a container is shorter than the
	// 24-byte trailer.
	ErrTrailerTruncated = errors.New("msac: trailer truncated")

	// ErrFooterOverrun is returned when the container ends partway through
	// a footer entry, and when a tile's framed payload does not match the
	// dimensions in its footer entry.
	ErrFooterOverrun = errors.New("msac: footer overrun")

	// ErrDecodedSizeExceeded is returned when a tile's declared or actual
	// decoded size exceeds the destination bound.
	ErrDecodedSizeExceeded = errors.New("msac: decoded size exceeds bound")

	// ErrRowDelimiterCollision is returned when a row's raw bytes (or the
	// output of a reducer) contain the '#' framing delimiter.
	ErrRowDelimiterCollision = errors.New("msac: row data collides with '#' delimiter")

	// ErrSequenceIDTooLong is returned when a sequence ID does not fit in
	// the u16 length prefix used by the ID directory.
	ErrSequenceIDTooLong = errors.New("msac: sequence id exceeds 65535 bytes")

	// ErrUnknownSequenceID names a requested row ID that is not present in
	// the container's ID directory. DecompressRows does not return it: it
	// skips requested IDs that the directory lacks.
	ErrUnknownSequenceID = errors.New("msac: unknown sequence id")

	// ErrColumnOutOfRange is returned when a requested column index falls
	// outside [0, totalCols).
	ErrColumnOutOfRange = errors.New("msac: column index out of range")

	// ErrEmptyRow is the undefined-behavior boundary of spec.md §4.1:
	// reducers assume a non-empty row.
	ErrEmptyRow = errors.New("msac: row has zero length")

	// ErrBadMagic is returned by WithMagic() readers when the leading
	// 4-byte magic does not match the expected value.
	ErrBadMagic = errors.New("msac: bad magic prefix")
)

// IOError wraps a failure to open, read, or write a file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "msac: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// CodecError wraps a failure reported by the entropy codec.
type CodecError struct {
	Message string
	Err     error
}

func (e *CodecError) Error() string {
	if e.Err == nil {
		return "msac: codec: " + e.Message
	}

	return "msac: codec: " + e.Message + ": " + e.Err.Error()
}

func (e *CodecError) Unwrap() error { return e.Err }

// UsageError wraps a malformed CLI invocation. cmd/msac prints
// cliutil.Usage and exits 1 when it sees one of these.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// FormatError wraps a structurally invalid container (bad trailer, footer
// that never hits its terminator, unknown preprocessing tag, ...).
//
// FormatError is "recommended, not present in source" per spec.md §7: the
// original C++ implementation reports these as generic stderr messages and
// exit(1); this implementation gives them a distinct, matchable type.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string { return "msac: format: " + e.Err.Error() }

func (e *FormatError) Unwrap() error { return e.Err }
