// Package format defines the wire-level constants and small enumerations
// shared by the transform, tile, and container packages: the preprocessing
// mode tag, framing bytes, and the fixed sizes of the footer entry and
// trailer.
//
// Adapted from mebo's format package (format/types.go), which defines
// EncodingType/CompressionType the same way — a small uint8 enum with a
// String() method used for logging and CLI validation.
package format

// Mode selects one of the six reversible gap-preprocessing transforms
// applied to a tile's rows before entropy coding (spec.md §4.1). Mode is a
// caller-supplied parameter at both compress and decompress time; it is
// not recorded in the container (see Open Question O1 in SPEC_FULL.md).
type Mode uint8

const (
	// None applies no preprocessing.
	None Mode = 0
	// ReduceA encodes gap runs as "<symbol><decimal run length>", dropping
	// any leading gap run.
	ReduceA Mode = 1
	// ReduceB records gap runs as a side list of (position, length) pairs
	// alongside the literal bytes.
	ReduceB Mode = 2
	// ReduceC records gap runs as alternating literal-run/gap-run lengths
	// alongside the literal bytes.
	ReduceC Mode = 3
	// ReduceALower is ReduceA with all symbols folded to lowercase first.
	ReduceALower Mode = 4
	// ReduceAUpper is ReduceA with all symbols folded to uppercase first.
	ReduceAUpper Mode = 5
)

// MaxMode is the highest valid Mode tag.
const MaxMode = ReduceAUpper

// Valid reports whether m is one of the six defined modes.
func (m Mode) Valid() bool { return m <= MaxMode }

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case ReduceA:
		return "reduceA"
	case ReduceB:
		return "reduceB"
	case ReduceC:
		return "reduceC"
	case ReduceALower:
		return "reduceA+lowercase"
	case ReduceAUpper:
		return "reduceA+uppercase"
	default:
		return "unknown"
	}
}

const (
	// RowDelimiter separates rows within a tile's framed payload (spec.md
	// §4.3). It must never appear in raw sequence data or in the output of
	// any reducer.
	RowDelimiter = '#'

	// GapByte is the literal gap symbol the transforms target.
	GapByte = '.'

	// FooterEntrySize is the on-disk size, in bytes, of one footer entry:
	// four little-endian int32 fields plus one little-endian uint64.
	FooterEntrySize = 4*4 + 8

	// TrailerSize is the on-disk size, in bytes, of the trailer: three
	// little-endian uint64 offsets.
	TrailerSize = 8 * 3

	// IDPadThreshold is the length below which a sequence ID is padded
	// with spaces out to column 26 when laid out in decompressed text:
	// "<id> " followed by (25 - len(id)) more spaces when len(id) < 25
	// (spec.md §4.5). IDs of length >= 25 get exactly one separating
	// space and no further padding.
	IDPadThreshold = 25

	// DefaultTileRows is the default -a value: tile row count.
	DefaultTileRows = 200000
	// DefaultTileCols is the default -b value: tile column count.
	DefaultTileCols = 9000
	// DefaultCodecLevel is the default -z value.
	DefaultCodecLevel = 13
	// DefaultMode is the default -p value.
	DefaultMode = ReduceA

	// MinCodecLevel and MaxCodecLevel bound the -z flag.
	MinCodecLevel = 1
	MaxCodecLevel = 19
)

// IDFieldWidth returns the number of columns an ID occupies, including its
// trailing padding, when laid out as the left-hand column of a
// decompressed row: "<id> " plus (25 - len(id)) more spaces when len(id)
// is below IDPadThreshold, or just "<id> " otherwise (spec.md §4.5).
func IDFieldWidth(id string) int {
	if len(id) < IDPadThreshold {
		return len(id) + 1 + (IDPadThreshold - len(id))
	}

	return len(id) + 1
}
