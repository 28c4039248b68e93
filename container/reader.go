package container

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/msacio/msac/codec"
	"github.com/msacio/msac/errs"
	"github.com/msacio/msac/format"
	"github.com/msacio/msac/internal/idhash"
	"github.com/msacio/msac/internal/seqid"
	"github.com/msacio/msac/tile"
	"github.com/msacio/msac/transform"
)

// Decompress fully materializes the MSA text encoded in r, writing it to
// w (spec.md §4.5, "Full decompression driver").
func Decompress(r io.ReadSeeker, w io.WriteSeeker, mode transform.Mode, cdc codec.Codec, opts ...Option) error {
	return decompressRows(r, w, mode, cdc, nil, opts)
}

// DecompressRows materializes only the rows whose IDs are in ids, laid out
// one per line with the standard ID padding (spec.md §4.5, "Selective
// decompression by row IDs").
func DecompressRows(r io.ReadSeeker, w io.WriteSeeker, mode transform.Mode, cdc codec.Codec, ids []string, opts ...Option) error {
	return decompressRows(r, w, mode, cdc, ids, opts)
}

// DecompressColumns materializes only the given column indices, for every
// row (spec.md §4.5, "Selective decompression by column indices").
func DecompressColumns(r io.ReadSeeker, w io.WriteSeeker, mode transform.Mode, cdc codec.Codec, cols []int, opts ...Option) error {
	return decompressColumns(r, w, mode, cdc, cols, opts)
}

// DecompressColumnRange expands the inclusive range [start, stop] into a
// column list and delegates to DecompressColumns (spec.md's "Drc" mode).
func DecompressColumnRange(r io.ReadSeeker, w io.WriteSeeker, mode transform.Mode, cdc codec.Codec, start, stop int, opts ...Option) error {
	if stop < start {
		start, stop = stop, start
	}
	cols := make([]int, 0, stop-start+1)
	for c := start; c <= stop; c++ {
		cols = append(cols, c)
	}

	return decompressColumns(r, w, mode, cdc, cols, opts)
}

// containerMeta holds everything phase 1 of either driver needs once the
// trailer and footer have been read.
type containerMeta struct {
	dataStartPos, sequenceIdsStartPos, footerStartPos int64
	headerStart                                       int64
	footer                                             []tile.FooterEntry
	totalCols                                          int
	totalRows                                          int
	ids                                                []string
	mode                                               transform.Mode
}

func readContainerMeta(r io.ReadSeeker, mode transform.Mode, c *config) (*containerMeta, error) {
	dataStartPos, sequenceIdsStartPos, footerStartPos, err := readTrailer(r)
	if err != nil {
		return nil, err
	}

	headerStart := int64(0)
	if c.magic {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		var prefix [5]byte
		if _, err := io.ReadFull(r, prefix[:]); err != nil {
			return nil, fmt.Errorf("%w: reading magic prefix: %s", errs.ErrTrailerTruncated, err)
		}
		if string(prefix[:4]) != magicBytes {
			return nil, &errs.FormatError{Err: fmt.Errorf("%w: got %q", errs.ErrBadMagic, prefix[:4])}
		}
		headerStart = 5
	}

	if _, err := r.Seek(footerStartPos, io.SeekStart); err != nil {
		return nil, err
	}

	var footer []tile.FooterEntry
	if c.explicitFooterCount {
		footer, err = readFooterExplicit(r)
	} else {
		footer, err = readFooterSentinel(r, dataStartPos)
	}
	if err != nil {
		return nil, err
	}

	totalCols, totalRows := 0, 0
	for _, e := range footer {
		if e.StartX == 0 {
			totalCols += int(e.Height)
		}
		if e.StartY == 0 {
			totalRows += int(e.Width)
		}
	}

	resolvedMode := mode
	if c.autoDetectMode {
		if _, err := r.Seek(headerStart, io.SeekStart); err != nil {
			return nil, err
		}
		headerBytes := make([]byte, dataStartPos-headerStart)
		if _, err := io.ReadFull(r, headerBytes); err != nil {
			return nil, fmt.Errorf("%w: reading headers: %s", errs.ErrTrailerTruncated, err)
		}
		if detected, ok := detectStoredMode(headerBytes); ok {
			resolvedMode = detected
		}
	}

	if _, err := r.Seek(sequenceIdsStartPos, io.SeekStart); err != nil {
		return nil, err
	}
	ids, err := seqid.ReadAll(r, totalRows)
	if err != nil {
		return nil, err
	}

	return &containerMeta{
		dataStartPos:        dataStartPos,
		sequenceIdsStartPos: sequenceIdsStartPos,
		footerStartPos:      footerStartPos,
		headerStart:          headerStart,
		footer:              footer,
		totalCols:            totalCols,
		totalRows:            totalRows,
		ids:                  ids,
		mode:                 resolvedMode,
	}, nil
}

func detectStoredMode(header []byte) (transform.Mode, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(header))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, storedModeHeaderPrefix) {
			n, err := strconv.Atoi(strings.TrimPrefix(line, storedModeHeaderPrefix))
			if err != nil {
				continue
			}

			return transform.Mode(n), true
		}
	}

	return 0, false
}

// copyHeaders copies the header section (post-magic, if any) from r to w
// verbatim.
func copyHeaders(r io.ReadSeeker, w io.Writer, meta *containerMeta) error {
	if _, err := r.Seek(meta.headerStart, io.SeekStart); err != nil {
		return err
	}
	_, err := io.CopyN(w, r, meta.dataStartPos-meta.headerStart)

	return err
}

func writeIDField(w io.Writer, id string) error {
	if _, err := io.WriteString(w, id); err != nil {
		return err
	}
	pad := 1
	if len(id) < format.IDPadThreshold {
		pad += format.IDPadThreshold - len(id)
	}

	return writeSpaces(w, pad)
}

func writeSpaces(w io.Writer, n int) error {
	const blank = "                                                                "
	for n > 0 {
		chunk := n
		if chunk > len(blank) {
			chunk = len(blank)
		}
		if _, err := io.WriteString(w, blank[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}

	return nil
}

func currentOffset(w io.Seeker) (int64, error) {
	return w.Seek(0, io.SeekCurrent)
}

// decodeTile decodes one tile payload with the framing selected by c.
func decodeTile(c *config, e tile.FooterEntry, payload []byte, mode transform.Mode, cdc codec.Codec, ids []string) (*tile.Tile, error) {
	if c.columnMajor {
		return tile.DecodeColumnMajor(e, payload, cdc, ids)
	}

	return tile.Decode(e, payload, mode, cdc, ids)
}

// decompressRows implements both the full driver (chosenIDs == nil) and
// the "selective decompression by row IDs" driver (spec.md §4.5).
func decompressRows(r io.ReadSeeker, w io.WriteSeeker, mode transform.Mode, cdc codec.Codec, chosenIDs []string, opts []Option) error {
	c, err := newConfig(opts)
	if err != nil {
		return err
	}

	meta, err := readContainerMeta(r, mode, c)
	if err != nil {
		return err
	}

	// wantHash prefilters candidate rows by a 64-bit hash before falling
	// back to exact string comparison, so a row whose ID cannot possibly
	// be in chosenIDs never pays a string compare.
	var wantHash map[uint64]bool
	var want map[string]bool
	if chosenIDs != nil {
		wantHash = make(map[uint64]bool, len(chosenIDs))
		want = make(map[string]bool, len(chosenIDs))
		for _, id := range chosenIDs {
			wantHash[idhash.Sum64(id)] = true
			want[id] = true
		}
	}

	isWanted := func(id string) bool {
		if want == nil {
			return true
		}

		return wantHash[idhash.Sum64(id)] && want[id]
	}

	if err := copyHeaders(r, w, meta); err != nil {
		return err
	}

	// Phase 1: lay out the text skeleton, one padded line per selected id,
	// in the ID directory's order.
	rowOffset := make(map[string]int64, len(meta.ids))
	selected := make([]bool, len(meta.ids))
	for i, id := range meta.ids {
		if !isWanted(id) {
			continue
		}
		selected[i] = true

		if err := writeIDField(w, id); err != nil {
			return err
		}
		off, err := currentOffset(w)
		if err != nil {
			return err
		}
		rowOffset[id] = off

		if err := writeSpaces(w, meta.totalCols); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	// chosenFooter: entries whose row range intersects at least one
	// selected row.
	chosenFooter := make([]bool, len(meta.footer))
	for fi, e := range meta.footer {
		for i := int(e.StartX); i < int(e.StartX)+int(e.Width); i++ {
			if i < len(selected) && selected[i] {
				chosenFooter[fi] = true
				break
			}
		}
	}

	// Phase 2: read the footer's payloads sequentially, patching only the
	// chosen entries and skipping the rest (Open Question O3).
	if _, err := r.Seek(meta.dataStartPos, io.SeekStart); err != nil {
		return err
	}

	for fi, e := range meta.footer {
		if !chosenFooter[fi] {
			if _, err := r.Seek(int64(e.CompressedSize), io.SeekCurrent); err != nil {
				return err
			}

			continue
		}

		payload := make([]byte, e.CompressedSize)
		if _, err := io.ReadFull(r, payload); err != nil {
			return err
		}

		ids := meta.ids[e.StartX : int(e.StartX)+int(e.Width)]
		t, err := decodeTile(c, e, payload, meta.mode, cdc, ids)
		if err != nil {
			return err
		}

		for _, seq := range t.Sequences {
			off, ok := rowOffset[seq.ID]
			if !ok {
				continue
			}
			if _, err := w.Seek(off, io.SeekStart); err != nil {
				return err
			}
			if _, err := w.Write(seq.Data); err != nil {
				return err
			}
			rowOffset[seq.ID] = off + int64(len(seq.Data))
		}
	}

	return nil
}

// decompressColumns implements the "selective decompression by column
// indices" driver (spec.md §4.5), including the Drc range expansion
// already performed by the caller.
func decompressColumns(r io.ReadSeeker, w io.WriteSeeker, mode transform.Mode, cdc codec.Codec, cols []int, opts []Option) error {
	c, err := newConfig(opts)
	if err != nil {
		return err
	}

	meta, err := readContainerMeta(r, mode, c)
	if err != nil {
		return err
	}

	seen := make(map[int]bool, len(cols))
	ordered := make([]int, 0, len(cols))
	for _, col := range cols {
		if col < 0 || col >= meta.totalCols {
			return fmt.Errorf("%w: column %d, total %d", errs.ErrColumnOutOfRange, col, meta.totalCols)
		}
		if seen[col] {
			continue
		}
		seen[col] = true
		ordered = append(ordered, col)
	}
	sort.Ints(ordered)

	colPos := make(map[int]int, len(ordered))
	for i, col := range ordered {
		colPos[col] = i
	}

	if err := copyHeaders(r, w, meta); err != nil {
		return err
	}

	// Phase 1: every row gets len(ordered) spaces, regardless of selection.
	rowOffset := make(map[string]int64, len(meta.ids))
	for _, id := range meta.ids {
		if err := writeIDField(w, id); err != nil {
			return err
		}
		off, err := currentOffset(w)
		if err != nil {
			return err
		}
		rowOffset[id] = off

		if err := writeSpaces(w, len(ordered)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	chosenFooter := make([]bool, len(meta.footer))
	for fi, e := range meta.footer {
		for _, col := range ordered {
			if col >= int(e.StartY) && col < int(e.StartY)+int(e.Height) {
				chosenFooter[fi] = true
				break
			}
		}
	}

	if _, err := r.Seek(meta.dataStartPos, io.SeekStart); err != nil {
		return err
	}

	for fi, e := range meta.footer {
		if !chosenFooter[fi] {
			if _, err := r.Seek(int64(e.CompressedSize), io.SeekCurrent); err != nil {
				return err
			}

			continue
		}

		payload := make([]byte, e.CompressedSize)
		if _, err := io.ReadFull(r, payload); err != nil {
			return err
		}

		ids := meta.ids[e.StartX : int(e.StartX)+int(e.Width)]
		t, err := decodeTile(c, e, payload, meta.mode, cdc, ids)
		if err != nil {
			return err
		}

		for _, seq := range t.Sequences {
			base, ok := rowOffset[seq.ID]
			if !ok {
				continue
			}
			for _, col := range ordered {
				if col < int(e.StartY) || col >= int(e.StartY)+int(e.Height) {
					continue
				}
				local := col - int(e.StartY)
				if _, err := w.Seek(base+int64(colPos[col]), io.SeekStart); err != nil {
					return err
				}
				if _, err := w.Write(seq.Data[local : local+1]); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
