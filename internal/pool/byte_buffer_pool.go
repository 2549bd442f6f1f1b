// Package pool provides pooled byte buffers for reading package database archives.
package pool

import (
	"errors"
	"io"
	"sync"
)

const (
	ArchiveBufferDefaultSize  = 1024 * 1024      // 1MiB
	ArchiveBufferMaxThreshold = 1024 * 1024 * 32 // 32MiB
	minReadSize               = 1024 * 32        // 32KiB
)

// ErrTooLarge is returned by Fill when the input exceeds the buffer limit.
var ErrTooLarge = errors.New("pool: input exceeds buffer limit")

// ByteBuffer is a growable byte slice that can be returned to a ByteBufferPool.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a buffer with defaultSize capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the buffered data. The slice is only valid until the buffer is reused.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Grow ensures room for at least requiredBytes more bytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return // Sufficient capacity
	}

	growBy := max(cap(bb.B), minReadSize, requiredBytes)

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Fill appends everything r yields until EOF.
//
// A positive limit bounds the total buffer length; reading more returns ErrTooLarge.
func (bb *ByteBuffer) Fill(r io.Reader, limit int) (int64, error) {
	var total int64
	for {
		bb.Grow(minReadSize)
		free := bb.B[len(bb.B):cap(bb.B)]
		n, err := r.Read(free)
		bb.B = bb.B[:len(bb.B)+n]
		total += int64(n)

		if limit > 0 && len(bb.B) > limit {
			return total, ErrTooLarge
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// ByteBufferPool pools ByteBuffers and drops the ones that grew past maxThreshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum size threshold for buffers
}

func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var archiveDefaultPool = NewByteBufferPool(ArchiveBufferDefaultSize, ArchiveBufferMaxThreshold)

// GetArchiveBuffer returns an empty buffer for reading a compressed archive.
func GetArchiveBuffer() *ByteBuffer {
	return archiveDefaultPool.Get()
}

// PutArchiveBuffer returns a buffer obtained from GetArchiveBuffer.
func PutArchiveBuffer(bb *ByteBuffer) {
	archiveDefaultPool.Put(bb)
}
