package container

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/msacio/msac/errs"
	"github.com/msacio/msac/format"
	"github.com/msacio/msac/internal/seqid"
	"github.com/msacio/msac/tile"
)

// countingWriter tracks the number of bytes written so far, letting
// Compress record dataStartPos/sequenceIdsStartPos/footerStartPos without
// a separate Seek-based offset query (grounded on mebo's ByteBuffer
// pattern of tracking length alongside content).
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

// Compress reads MSA text from r, tiles and compresses it per cfg, and
// writes the binary container to w (spec.md §4.5, "Compression driver").
func Compress(r io.Reader, w io.Writer, cfg Config, opts ...Option) error {
	c, err := newConfig(opts)
	if err != nil {
		return err
	}

	a, b := clamp(cfg.TileRows, 1, 1<<31-1), clamp(cfg.TileCols, 1, 1<<31-1)
	level := clamp(cfg.CodecLevel, format.MinCodecLevel, format.MaxCodecLevel)

	cw := &countingWriter{w: w}

	if c.magic {
		if _, err := cw.Write([]byte(magicBytes)); err != nil {
			return err
		}
		if _, err := cw.Write([]byte{magicVers}); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<24)

	dataStarted := false
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "#"):
			if _, err := fmt.Fprintf(cw, "%s\n", line); err != nil {
				return err
			}
		case strings.HasPrefix(line, "/"):
			// terminator encountered before any data: skip.
		case strings.TrimSpace(line) == "":
			// blank line before data: skip.
		default:
			dataStarted = true
			goto headerDone
		}
	}

headerDone:
	if c.storedMode {
		if _, err := fmt.Fprintf(cw, "%s%d\n", storedModeHeaderPrefix, cfg.Mode); err != nil {
			return err
		}
	}
	dataStartPos := cw.n

	var ids []string
	var footer []tile.FooterEntry
	var rowBuffer []tile.Sequence
	currentX := 0

	flush := func() error {
		if len(rowBuffer) == 0 {
			return nil
		}

		tiles := tile.Partition(rowBuffer, currentX, b)
		for i := range tiles {
			t := &tiles[i]
			if c.columnMajor {
				if err := tile.EncodeColumnMajor(t, cfg.Codec, level); err != nil {
					return err
				}
			} else if err := tile.Encode(t, cfg.Mode, cfg.Codec, level); err != nil {
				return err
			}

			if _, err := cw.Write(t.Compressed); err != nil {
				return err
			}
			if t.StartY == 0 {
				for _, seq := range t.Sequences {
					ids = append(ids, seq.ID)
				}
			}
			footer = append(footer, tile.FooterEntry{
				StartX:         int32(t.StartX),
				StartY:         int32(t.StartY),
				Width:          int32(t.Width),
				Height:         int32(t.Height),
				CompressedSize: uint64(len(t.Compressed)),
			})
		}

		currentX += len(rowBuffer)
		rowBuffer = rowBuffer[:0]

		return nil
	}

	// The header-scan loop above already consumed the first data line (if
	// any) to detect dataStarted; process it before continuing the scan.
	if dataStarted {
		if err := appendDataLine(&rowBuffer, scanner.Text()); err != nil {
			return err
		}
		if len(rowBuffer) == a {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "/") {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := appendDataLine(&rowBuffer, line); err != nil {
			return err
		}
		if len(rowBuffer) == a {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}

	sequenceIdsStartPos := cw.n
	enc := seqid.NewEncoder()
	for _, id := range ids {
		if err := enc.Write(id); err != nil {
			enc.Release()
			return err
		}
	}
	if _, err := cw.Write(enc.Bytes()); err != nil {
		enc.Release()
		return err
	}
	enc.Release()

	footerStartPos := cw.n
	if c.explicitFooterCount {
		if err := writeExplicitFooterCount(cw, len(footer)); err != nil {
			return err
		}
	}
	for _, entry := range footer {
		if err := writeFooterEntry(cw, entry); err != nil {
			return err
		}
	}

	return writeTrailer(cw, dataStartPos, sequenceIdsStartPos, footerStartPos)
}

// appendDataLine parses "<id><whitespace><data>" and appends the
// resulting Sequence to buf.
func appendDataLine(buf *[]tile.Sequence, line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("%w: malformed data line %q", errs.ErrEmptyRow, line)
	}

	*buf = append(*buf, tile.Sequence{ID: fields[0], Data: []byte(fields[1])})

	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
