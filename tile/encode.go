package tile

import (
	"fmt"

	"github.com/msacio/msac/codec"
	"github.com/msacio/msac/errs"
	"github.com/msacio/msac/format"
	"github.com/msacio/msac/internal/pool"
	"github.com/msacio/msac/transform"
)

// Encode preprocesses and frames t's rows, then compresses the framed
// buffer with cdc at level. The result is stored in t.Compressed.
//
// Framing concatenates each row's preprocessed bytes with a trailing '#'
// delimiter (MSACompressor::compressRectangle), so the framed buffer has
// exactly t.Width occurrences of '#'. '#' must not appear in raw sequence
// data or in any reducer's output; Encode returns
// errs.ErrRowDelimiterCollision if it does.
func Encode(t *Tile, mode transform.Mode, cdc codec.Codec, level int) error {
	buf := pool.GetTileBuffer()
	defer pool.PutTileBuffer(buf)

	for _, seq := range t.Sequences {
		encoded, err := transform.Apply(mode, seq.Data)
		if err != nil {
			return err
		}
		if indexByte(encoded, format.RowDelimiter) >= 0 {
			return fmt.Errorf("%w: sequence %q", errs.ErrRowDelimiterCollision, seq.ID)
		}

		buf.Grow(len(encoded) + 1)
		buf.B = append(buf.B, encoded...)
		if err := buf.WriteByte(format.RowDelimiter); err != nil {
			return err
		}
	}

	compressed, err := cdc.Encode(buf.Bytes(), level)
	if err != nil {
		return err
	}
	t.Compressed = compressed

	return nil
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}

	return -1
}
