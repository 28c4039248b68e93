package container

import (
	"io"
)

// seekBuf is a minimal in-memory io.ReadWriteSeeker backed by a growable
// byte slice, standing in for a real file in tests.
type seekBuf struct {
	data []byte
	pos  int64
}

func (b *seekBuf) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = b.pos + offset
	case io.SeekEnd:
		target = int64(len(b.data)) + offset
	}
	if target < 0 {
		return 0, io.ErrUnexpectedEOF
	}
	b.pos = target

	return b.pos, nil
}

func (b *seekBuf) Read(p []byte) (int, error) {
	if b.pos >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:])
	b.pos += int64(n)

	return n, nil
}

func (b *seekBuf) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:end], p)
	b.pos = end

	return len(p), nil
}

func (b *seekBuf) Bytes() []byte { return b.data }
