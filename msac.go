// Package msac compresses Multiple Sequence Alignment (MSA) text files
// into a tiled binary container and supports full or selective
// decompression (by row ID or by column index/range) without
// materializing the whole matrix.
//
// # Basic usage
//
//	cdc := codec.NewZstd()
//	cfg := container.Config{
//	    TileRows:   format.DefaultTileRows,
//	    TileCols:   format.DefaultTileCols,
//	    CodecLevel: format.DefaultCodecLevel,
//	    Mode:       format.DefaultMode,
//	    Codec:      cdc,
//	}
//	err := container.Compress(msaText, containerFile, cfg)
//
// See the container, tile, transform, and codec packages for the pieces
// this ties together, and cmd/msac for the command-line driver.
package msac
