package codec

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4Codec compresses with github.com/pierrec/lz4/v4, grounded on
// compress/lz4.go's pooled lz4.Compressor and adaptive-buffer decompress
// loop. lz4 has no declared-size frame header to check against
// maxDstSize, so Decode falls back to the doubling-buffer strategy.
type lz4Codec struct {
	compressors sync.Pool
}

var _ Codec = (*lz4Codec)(nil)

// NewLZ4 returns a Codec backed by github.com/pierrec/lz4/v4.
func NewLZ4() Codec {
	c := &lz4Codec{}
	c.compressors.New = func() any { return &lz4.Compressor{} }

	return c
}

func (c *lz4Codec) Encode(src []byte, _ int) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(src)))

	lc := c.compressors.Get().(*lz4.Compressor)
	defer c.compressors.Put(lc)

	n, err := lc.CompressBlock(src, dst)
	if err != nil {
		return nil, wrapErr("lz4", err)
	}

	return dst[:n], nil
}

const lz4MaxBufferSize = 128 * 1024 * 1024

func (c *lz4Codec) Decode(src []byte, maxDstSize int) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	bufSize := len(src) * 4
	if maxDstSize > bufSize {
		bufSize = maxDstSize
	}

	for bufSize <= lz4MaxBufferSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(src, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < lz4MaxBufferSize {
				bufSize *= 2
				continue
			}

			return nil, wrapErr("lz4", err)
		}

		return buf[:n], nil
	}

	return nil, wrapErr("lz4", lz4.ErrInvalidSourceShortBuffer)
}
