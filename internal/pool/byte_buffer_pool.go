// Package pool provides a pooled, growable byte buffer used to frame tile
// payloads before they reach the codec.
//
// Adapted from github.com/arloliu/mebo's internal/pool package: the same
// ByteBuffer + sync.Pool shape, trimmed to the single tile-sized pool msac
// needs (mebo also pools a much larger "blob set" buffer for a concept —
// batches of many metric blobs — that has no MSA analogue).
package pool

import "sync"

// TileBufferDefaultSize is the default capacity handed out by the tile
// buffer pool. A×B defaults to 200000×9000, but most tiles framed during
// compression are a single row-band's worth of one column-band, so a
// modest default avoids over-allocating for the common case while still
// growing cheaply for larger -b values.
const (
	TileBufferDefaultSize  = 1024 * 64  // 64KiB
	TileBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB; larger buffers are discarded rather than pooled
)

// ByteBuffer is a growable byte slice with an amortized growth strategy,
// reused across tiles via ByteBufferPool to avoid per-tile allocation.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Reset empties the buffer while keeping its backing array for reuse.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Grow ensures the buffer can accept requiredBytes more bytes without a
// further reallocation.
//
// Growth strategy: for small buffers (capacity up to 4x the default size),
// grow by a full TileBufferDefaultSize increment; for larger buffers, grow by 25% of
// the current capacity, to balance allocation count against wasted memory.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := TileBufferDefaultSize
	if cap(bb.B) > 4*TileBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer, growing it as needed. It always
// returns len(data), nil, satisfying io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// WriteByte appends a single byte to the buffer, growing it as needed.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.Grow(1)
	bb.B = append(bb.B, c)

	return nil
}

// ByteBufferPool pools ByteBuffers of a given default size, discarding
// buffers that have grown past maxThreshold instead of retaining them.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and
// are discarded (not recycled) once they exceed maxThreshold capacity.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse, after resetting it.
// Buffers larger than maxThreshold are dropped to avoid memory bloat from
// one oversized tile pinning a large backing array in the pool forever.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var tileBufferPool = NewByteBufferPool(TileBufferDefaultSize, TileBufferMaxThreshold)

// GetTileBuffer retrieves a ByteBuffer from the default tile-framing pool.
func GetTileBuffer() *ByteBuffer { return tileBufferPool.Get() }

// PutTileBuffer returns a ByteBuffer to the default tile-framing pool.
func PutTileBuffer(bb *ByteBuffer) { tileBufferPool.Put(bb) }
