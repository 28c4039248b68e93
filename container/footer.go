package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/msacio/msac/errs"
	"github.com/msacio/msac/format"
	"github.com/msacio/msac/tile"
)

// writeFooterEntry appends one 24-byte footer entry: four little-endian
// int32 fields followed by one little-endian uint64 (spec.md §4.5).
//
// Grounded on section.NumericIndexEntry's fixed-size binary layout
// (24 bytes, little-endian via encoding/binary), adapted from delta-offset
// fields to the footer's plain (startX, startY, width, height,
// compressedSize) tuple.
func writeFooterEntry(w io.Writer, e tile.FooterEntry) error {
	var buf [format.FooterEntrySize]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(e.StartX))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(e.StartY))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(e.Width))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(e.Height))
	binary.LittleEndian.PutUint64(buf[16:24], e.CompressedSize)
	_, err := w.Write(buf[:])

	return err
}

// writeTrailer appends the three-offset trailer, the file's last 24
// bytes.
func writeTrailer(w io.Writer, dataStartPos, sequenceIdsStartPos, footerStartPos int64) error {
	var buf [format.TrailerSize]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(dataStartPos))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(sequenceIdsStartPos))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(footerStartPos))
	_, err := w.Write(buf[:])

	return err
}

// readTrailer reads the last 24 bytes of r and returns the three offsets
// in file order: dataStartPos, sequenceIdsStartPos, footerStartPos.
func readTrailer(r io.ReadSeeker) (dataStartPos, sequenceIdsStartPos, footerStartPos int64, err error) {
	if _, err = r.Seek(-format.TrailerSize, io.SeekEnd); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %s", errs.ErrTrailerTruncated, err)
	}

	var buf [format.TrailerSize]byte
	if _, err = io.ReadFull(r, buf[:]); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %s", errs.ErrTrailerTruncated, err)
	}

	dataStartPos = int64(binary.LittleEndian.Uint64(buf[0:8]))
	sequenceIdsStartPos = int64(binary.LittleEndian.Uint64(buf[8:16]))
	footerStartPos = int64(binary.LittleEndian.Uint64(buf[16:24]))

	return dataStartPos, sequenceIdsStartPos, footerStartPos, nil
}

// readFooterSentinel reads footer entries from r (positioned at
// footerStartPos) until the next would-be startX field equals
// dataStartPos, the legacy terminator convention of Open Question O2: the
// reader has overrun into the trailer's first field and treats that as
// "no more entries."
func readFooterSentinel(r io.Reader, dataStartPos int64) ([]tile.FooterEntry, error) {
	var entries []tile.FooterEntry
	for {
		var startXBuf [4]byte
		n, err := io.ReadFull(r, startXBuf[:])
		if err == io.EOF || (err == io.ErrUnexpectedEOF && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading footer entry %d: %s", errs.ErrFooterOverrun, len(entries), err)
		}

		startX := int32(binary.LittleEndian.Uint32(startXBuf[:]))
		if int64(startX) == dataStartPos {
			break
		}

		var rest [format.FooterEntrySize - 4]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return nil, fmt.Errorf("%w: reading footer entry %d: %s", errs.ErrFooterOverrun, len(entries), err)
		}

		entries = append(entries, tile.FooterEntry{
			StartX:          startX,
			StartY:          int32(binary.LittleEndian.Uint32(rest[0:4])),
			Width:           int32(binary.LittleEndian.Uint32(rest[4:8])),
			Height:          int32(binary.LittleEndian.Uint32(rest[8:12])),
			CompressedSize:  binary.LittleEndian.Uint64(rest[12:20]),
		})
	}

	return entries, nil
}

// readFooterExplicit reads a u32 entry count followed by exactly that
// many footer entries (the Open Question O2 fix, opt-in via
// WithExplicitFooterCount).
func readFooterExplicit(r io.Reader) ([]tile.FooterEntry, error) {
	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: reading footer count: %s", errs.ErrFooterOverrun, err)
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	entries := make([]tile.FooterEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		var buf [format.FooterEntrySize]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("%w: reading footer entry %d: %s", errs.ErrFooterOverrun, i, err)
		}

		entries = append(entries, tile.FooterEntry{
			StartX:          int32(binary.LittleEndian.Uint32(buf[0:4])),
			StartY:          int32(binary.LittleEndian.Uint32(buf[4:8])),
			Width:           int32(binary.LittleEndian.Uint32(buf[8:12])),
			Height:          int32(binary.LittleEndian.Uint32(buf[12:16])),
			CompressedSize:  binary.LittleEndian.Uint64(buf[16:24]),
		})
	}

	return entries, nil
}

func writeExplicitFooterCount(w io.Writer, count int) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(count))
	_, err := w.Write(buf[:])

	return err
}
