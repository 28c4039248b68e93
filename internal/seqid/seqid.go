// Package seqid encodes and decodes the MSA container's ID directory: an
// ordered list of sequence identifiers, each stored as a little-endian
// uint16 length prefix followed by that many raw bytes (spec.md §3, "ID
// directory").
//
// Adapted from mebo's encoding.VarStringEncoder (encoding/varstring.go),
// which uses the same length-prefix-then-bytes shape for metric names and
// tags but with a uint8 prefix capped at 255 bytes; msac generalizes the
// prefix to uint16 since spec.md only bounds sequence IDs at "typical ≤ 24
// bytes", not a hard 255-byte ceiling.
package seqid

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/msacio/msac/errs"
	"github.com/msacio/msac/internal/pool"
)

// MaxIDLength is the largest sequence ID the directory's uint16 length
// prefix can represent.
const MaxIDLength = 1<<16 - 1

// Encoder appends sequence IDs to an internal buffer in directory format.
type Encoder struct {
	buf *pool.ByteBuffer
}

// NewEncoder creates an Encoder backed by a pooled buffer.
func NewEncoder() *Encoder {
	return &Encoder{buf: pool.GetTileBuffer()}
}

// Write appends one ID to the directory in (u16 length, bytes) form.
func (e *Encoder) Write(id string) error {
	if len(id) > MaxIDLength {
		return fmt.Errorf("%w: %q is %d bytes", errs.ErrSequenceIDTooLong, id, len(id))
	}

	e.buf.Grow(2 + len(id))
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(id))) //nolint:gosec
	e.buf.B = append(e.buf.B, lenBuf[:]...)
	e.buf.B = append(e.buf.B, id...)

	return nil
}

// Bytes returns the encoded directory built so far. The slice is only
// valid until the next call to Release.
func (e *Encoder) Bytes() []byte { return e.buf.Bytes() }

// Release returns the encoder's buffer to the pool. The Encoder must not
// be used afterward.
func (e *Encoder) Release() {
	pool.PutTileBuffer(e.buf)
	e.buf = nil
}

// ReadAll reads a directory of exactly count IDs from r, stopping exactly
// at the end of the last entry (the caller is responsible for knowing
// where the directory ends, e.g. via footerStartPos).
func ReadAll(r io.Reader, count int) ([]string, error) {
	ids := make([]string, 0, count)
	var lenBuf [2]byte
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, fmt.Errorf("%w: reading id %d length: %s", errs.ErrTrailerTruncated, i, err)
		}
		n := binary.LittleEndian.Uint16(lenBuf[:])
		idBytes := make([]byte, n)
		if _, err := io.ReadFull(r, idBytes); err != nil {
			return nil, fmt.Errorf("%w: reading id %d bytes: %s", errs.ErrTrailerTruncated, i, err)
		}
		ids = append(ids, string(idBytes))
	}

	return ids, nil
}

// ReadUntil reads sequence IDs from r until the reader's position (as
// reported by pos()) reaches stopAt. Used when the exact row count is not
// yet known but the byte offset where the directory ends is (spec.md's
// "read the ID directory sequentially" driver, bounded by footerStartPos).
func ReadUntil(r io.Reader, pos func() int64, stopAt int64) ([]string, error) {
	var ids []string
	var lenBuf [2]byte
	for pos() < stopAt {
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, fmt.Errorf("%w: reading id length: %s", errs.ErrTrailerTruncated, err)
		}
		n := binary.LittleEndian.Uint16(lenBuf[:])
		idBytes := make([]byte, n)
		if _, err := io.ReadFull(r, idBytes); err != nil {
			return nil, fmt.Errorf("%w: reading id bytes: %s", errs.ErrTrailerTruncated, err)
		}
		ids = append(ids, string(idBytes))
	}

	return ids, nil
}
