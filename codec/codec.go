// Package codec adapts third-party block compressors to the fixed
// Encode/Decode shape the tile engine needs: a single compressed blob in,
// a single decompressed blob out, with no framing of its own.
//
// Grounded on mebo's compress package (compress/codec.go, compress/zstd.go,
// compress/zstd_pure.go, compress/lz4.go): the same pooled-encoder pattern,
// the same "small interface, swappable backend" shape, generalized from
// mebo's fixed-compression-type Compressor/Decompressor pair to a single
// Codec that also accepts a per-call level (the MSA CLI's -z flag ranges
// 1..19, unlike mebo's single baked-in speed setting).
package codec

import "github.com/msacio/msac/errs"

// Codec compresses and decompresses whole tile payloads.
type Codec interface {
	// Encode compresses src at the given level. Level meaning is
	// implementation-specific; callers pass format.DefaultCodecLevel when
	// the backend does not use one.
	Encode(src []byte, level int) ([]byte, error)

	// Decode decompresses src. maxDstSize bounds the expected decompressed
	// size (the tile engine sizes it at 2 * rows * cols); implementations
	// that can learn the true decompressed size from the compressed
	// stream itself should check it against maxDstSize before allocating,
	// returning errs.ErrDecodedSizeExceeded if it would be exceeded.
	Decode(src []byte, maxDstSize int) ([]byte, error)
}

// Error wraps a codec-specific failure with the backend's name.
type Error struct {
	Backend string
	Err     error
}

func (e *Error) Error() string {
	return "msac: " + e.Backend + " codec: " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func wrapErr(backend string, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Backend: backend, Err: err}
}

// checkDstSize reports errs.ErrDecodedSizeExceeded when declaredSize is
// known (>= 0) and exceeds maxDstSize.
func checkDstSize(declaredSize, maxDstSize int64) error {
	if declaredSize < 0 || maxDstSize <= 0 {
		return nil
	}
	if declaredSize > int64(maxDstSize) {
		return errs.ErrDecodedSizeExceeded
	}

	return nil
}

// New returns the built-in codec named by name ("zstd" or "lz4").
func New(name string) (Codec, error) {
	switch name {
	case "", "zstd":
		return NewZstd(), nil
	case "lz4":
		return NewLZ4(), nil
	default:
		return nil, wrapErr(name, errs.ErrUnknownMode)
	}
}
