// Package tile implements the partitioner (C4) and tile engine (C3):
// gridding a row-band buffer into bounded rectangles, and framing/
// deframing a tile's rows around the transform and codec layers.
//
// Grounded on MSACompressor::splitSequencesIntoRectangles (partitioning)
// and MSACompressor::compressRectangle/decompressRectangle (framing), with
// the framed buffer itself built on mebo's internal/pool.ByteBuffer growth
// pattern (internal/pool/byte_buffer_pool.go) rather than repeated []byte
// reallocation.
package tile

// Sequence is one row of an MSA: an identifier and its gapped alignment
// data.
type Sequence struct {
	ID   string
	Data []byte
}

// Tile is a rectangular submatrix of the alignment, the unit of
// independent compression and random access (spec.md §3, "Rectangle").
type Tile struct {
	// StartX is the first global row index this tile covers.
	StartX int
	// StartY is the first global column index this tile covers.
	StartY int
	// Width is the row count, Height the column count.
	Width, Height int

	Sequences  []Sequence
	Compressed []byte
}

// FooterEntry is the on-disk descriptor for one tile: its coordinates,
// dimensions, and the size of its compressed payload.
type FooterEntry struct {
	StartX, StartY, Width, Height int32
	CompressedSize                uint64
}

// Partition grids one row-band of rows (already bounded to at most A rows
// by the caller) into column-bands of at most b columns each, in
// left-to-right order. startX is the global row index of the first row in
// rows. The partitioner does not retain or mutate rows; every tile gets
// its own copy of the relevant Sequence data.
func Partition(rows []Sequence, startX, b int) []Tile {
	if len(rows) == 0 {
		return nil
	}

	totalCols := len(rows[0].Data)
	if b <= 0 {
		b = totalCols
	}

	var tiles []Tile
	for startY := 0; startY < totalCols || (totalCols == 0 && startY == 0); startY += b {
		height := b
		if startY+height > totalCols {
			height = totalCols - startY
		}
		if totalCols == 0 {
			height = 0
		}

		seqs := make([]Sequence, len(rows))
		for i, row := range rows {
			data := make([]byte, height)
			copy(data, row.Data[startY:startY+height])
			seqs[i] = Sequence{ID: row.ID, Data: data}
		}

		tiles = append(tiles, Tile{
			StartX:    startX,
			StartY:    startY,
			Width:     len(rows),
			Height:    height,
			Sequences: seqs,
		})

		if totalCols == 0 {
			break
		}
	}

	return tiles
}
