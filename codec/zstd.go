package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdCodec compresses with klauspost/compress/zstd, pooling one encoder
// per distinct level and a single decoder pool shared across all levels
// (zstd decoders are level-agnostic; level only affects the encoder).
//
// Grounded on compress/zstd_pure.go's zstdEncoderPool/zstdDecoderPool,
// generalized to a pool-of-pools keyed by level since the CLI's -z flag
// is caller-chosen per invocation rather than fixed at compile time.
type zstdCodec struct {
	decoders sync.Pool
	encoders sync.Map // int level -> *sync.Pool
}

var _ Codec = (*zstdCodec)(nil)

// NewZstd returns a Codec backed by github.com/klauspost/compress/zstd.
func NewZstd() Codec {
	c := &zstdCodec{}
	c.decoders.New = func() any {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("codec: failed to create zstd decoder: %v", err))
		}

		return dec
	}

	return c
}

func (c *zstdCodec) encoderPool(level int) *sync.Pool {
	if p, ok := c.encoders.Load(level); ok {
		return p.(*sync.Pool)
	}

	p := &sync.Pool{
		New: func() any {
			enc, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
				zstd.WithEncoderCRC(false),
			)
			if err != nil {
				panic(fmt.Sprintf("codec: failed to create zstd encoder level %d: %v", level, err))
			}

			return enc
		},
	}
	actual, _ := c.encoders.LoadOrStore(level, p)

	return actual.(*sync.Pool)
}

func (c *zstdCodec) Encode(src []byte, level int) ([]byte, error) {
	pool := c.encoderPool(level)
	enc := pool.Get().(*zstd.Encoder)
	defer pool.Put(enc)

	return enc.EncodeAll(src, nil), nil
}

func (c *zstdCodec) Decode(src []byte, maxDstSize int) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	var hdr zstd.Header
	if err := hdr.Decode(src); err == nil && hdr.HasFCS {
		if err := checkDstSize(int64(hdr.FrameContentSize), int64(maxDstSize)); err != nil {
			return nil, err
		}
	}

	dec := c.decoders.Get().(*zstd.Decoder)
	defer c.decoders.Put(dec)

	out, err := dec.DecodeAll(src, nil)
	if err != nil {
		return nil, wrapErr("zstd", err)
	}

	return out, nil
}
