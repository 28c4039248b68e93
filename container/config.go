// Package container implements the MSA text parser and the binary
// container reader/writer (C5): the compression driver, the full and
// selective decompression drivers, and the two-pass skeleton-then-patch
// write strategy.
//
// Grounded on the teacher's blob.NumericEncoder/blob.NumericDecoder
// accumulate-then-flush state machine shape and on its functional-option
// convention (internal/options), generalized here to the container's own
// compress/decompress configuration.
package container

import (
	"github.com/msacio/msac/codec"
	"github.com/msacio/msac/internal/options"
	"github.com/msacio/msac/transform"
)

// config holds the opt-in behaviors controlling Open-Question resolutions
// (SPEC_FULL.md §9): every field defaults to the legacy, bit-compatible
// behavior.
type config struct {
	explicitFooterCount bool
	storedMode          bool
	autoDetectMode      bool
	magic               bool
	parallelism         int
	columnMajor         bool
}

// Option configures a Compress or Decompress* call.
type Option = options.Option[*config]

func newConfig(opts []Option) (*config, error) {
	c := &config{}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// WithExplicitFooterCount switches the footer from the legacy
// sentinel-terminated scan (Open Question O2) to a 4-byte entry count
// written immediately before the footer. Writer and reader calls must
// agree on this option.
func WithExplicitFooterCount() Option {
	return options.NoError[*config](func(c *config) { c.explicitFooterCount = true })
}

// WithStoredMode makes Compress append a "#__msac_p:<n>" pseudo-header
// line recording the preprocessing mode (Open Question O1), still inside
// the ordinary '#'-header convention so readers that don't understand it
// simply preserve it verbatim.
func WithStoredMode() Option {
	return options.NoError[*config](func(c *config) { c.storedMode = true })
}

// WithAutoDetectMode makes Decompress* parse a "#__msac_p:<n>" header
// line, if present, and use it in place of the mode argument.
func WithAutoDetectMode() Option {
	return options.NoError[*config](func(c *config) { c.autoDetectMode = true })
}

// WithMagic adds/expects a 4-byte "MSA1" magic plus a 1-byte version
// immediately before the header section (Open Question O4).
func WithMagic() Option {
	return options.NoError[*config](func(c *config) { c.magic = true })
}

// WithParallelism records a worker count n for compressing the tiles of
// one row-band. Compress does not read it: compression is single-threaded
// whatever n is.
func WithParallelism(n int) Option {
	return options.NoError[*config](func(c *config) { c.parallelism = n })
}

// WithColumnMajorFraming selects tile.EncodeColumnMajor/DecodeColumnMajor
// framing (spec.md §4.3's alternate, source-only path) instead of the
// default row-major framing.
func WithColumnMajorFraming() Option {
	return options.NoError[*config](func(c *config) { c.columnMajor = true })
}

// Config bundles the tiling and codec parameters for Compress.
type Config struct {
	// TileRows is A, the tile row count. Clamped to >= 1.
	TileRows int
	// TileCols is B, the tile column count. Clamped to >= 1.
	TileCols int
	// CodecLevel is the compressor level, clamped to [1, 19].
	CodecLevel int
	// Mode is the preprocessing tag applied to every tile.
	Mode transform.Mode
	// Codec compresses each tile's framed buffer.
	Codec codec.Codec
}

const (
	magicBytes  = "MSA1"
	magicVers   = byte(1)
	storedModeHeaderPrefix = "#__msac_p:"
)
