package tile

import (
	"fmt"

	"github.com/msacio/msac/codec"
	"github.com/msacio/msac/errs"
	"github.com/msacio/msac/format"
	"github.com/msacio/msac/internal/pool"
)

// EncodeColumnMajor frames t's cells column by column instead of row by
// row: for each column, the bytes of that column across every row are
// emitted in row order, followed by a '#' delimiter, giving t.Height
// occurrences of '#' instead of t.Width.
//
// This is the alternate framing present but unused in the original source
// (MSACompressor::compressRectangleByColumn, dead-code-commented in
// main()); it bypasses the row-oriented preprocessor entirely, since the
// gap-run reducers are only meaningful scanning along a row.
func EncodeColumnMajor(t *Tile, cdc codec.Codec, level int) error {
	buf := pool.GetTileBuffer()
	defer pool.PutTileBuffer(buf)

	for col := 0; col < t.Height; col++ {
		buf.Grow(t.Width + 1)
		for _, seq := range t.Sequences {
			if indexByte(seq.Data[col:col+1], format.RowDelimiter) >= 0 {
				return fmt.Errorf("%w: sequence %q", errs.ErrRowDelimiterCollision, seq.ID)
			}
			buf.B = append(buf.B, seq.Data[col])
		}
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

// DecodeColumnMajor inverts EncodeColumnMajor.
func DecodeColumnMajor(entry FooterEntry, payload []byte, cdc codec.Codec, ids []string) (*Tile, error) {
	if len(ids) != int(entry.Width) {
		return nil, fmt.Errorf("%w: footer entry wants %d ids, got %d", errs.ErrFooterOverrun, entry.Width, len(ids))
	}

	maxDstSize := 2 * int(entry.Width) * int(entry.Height)
	decoded, err := cdc.Decode(payload, maxDstSize)
	if err != nil {
		return nil, err
	}

	columns := splitRows(decoded, int(entry.Height))
	if len(columns) != int(entry.Height) {
		return nil, fmt.Errorf("%w: expected %d framed columns, found %d", errs.ErrFooterOverrun, entry.Height, len(columns))
	}

	seqs := make([]Sequence, entry.Width)
	for i := range seqs {
		seqs[i] = Sequence{ID: ids[i], Data: make([]byte, entry.Height)}
	}
	for col, column := range columns {
		if len(column) != int(entry.Width) {
			return nil, fmt.Errorf("%w: column %d has %d bytes, want %d", errs.ErrFooterOverrun, col, len(column), entry.Width)
		}
		for row, b := range column {
			seqs[row].Data[col] = b
		}
	}

	return &Tile{
		StartX:    int(entry.StartX),
		StartY:    int(entry.StartY),
		Width:     int(entry.Width),
		Height:    int(entry.Height),
		Sequences: seqs,
	}, nil
}
