package tile

import (
	"fmt"

	"github.com/msacio/msac/codec"
	"github.com/msacio/msac/errs"
	"github.com/msacio/msac/format"
	"github.com/msacio/msac/transform"
)

// Decode decompresses payload with cdc, splits the result on the '#' row
// delimiter, and inverse-preprocesses each row, pairing decoded rows with
// ids in order (ids must have exactly entry.Width entries, the sequence
// IDs of the rows entry.StartX..entry.StartX+entry.Width).
//
// Grounded on MSACompressor::decompressRectangle; unlike the original,
// which sizes its destination buffer and then trusts its length
// unconditionally (Open Question O6), codec.Decode returns the decoder's
// own reported length, so no NUL-padding tolerance is needed here.
func Decode(entry FooterEntry, payload []byte, mode transform.Mode, cdc codec.Codec, ids []string) (*Tile, error) {
	if len(ids) != int(entry.Width) {
		return nil, fmt.Errorf("%w: footer entry wants %d ids, got %d", errs.ErrFooterOverrun, entry.Width, len(ids))
	}

	maxDstSize := 2 * int(entry.Width) * int(entry.Height)
	decoded, err := cdc.Decode(payload, maxDstSize)
	if err != nil {
		return nil, err
	}

	rows := splitRows(decoded, int(entry.Width))
	if len(rows) != int(entry.Width) {
		return nil, fmt.Errorf("%w: expected %d framed rows, found %d", errs.ErrFooterOverrun, entry.Width, len(rows))
	}

	seqs := make([]Sequence, entry.Width)
	for i, row := range rows {
		data, err := transform.Reverse(mode, row)
		if err != nil {
			return nil, err
		}
		seqs[i] = Sequence{ID: ids[i], Data: data}
	}

	return &Tile{
		StartX:    int(entry.StartX),
		StartY:    int(entry.StartY),
		Width:     int(entry.Width),
		Height:    int(entry.Height),
		Sequences: seqs,
	}, nil
}

// splitRows splits framed on the '#' delimiter, returning one segment per
// delimiter (want only sizes the result's initial capacity). Bytes after
// the final delimiter are discarded.
func splitRows(framed []byte, want int) [][]byte {
	rows := make([][]byte, 0, want)
	start := 0
	for i, c := range framed {
		if c == format.RowDelimiter {
			rows = append(rows, framed[start:i])
			start = i + 1
		}
	}

	return rows
}
