package rapidescape

import (
	"sync"
)

// Buffer is a growable output sink for escaped text.
//
// Use AcquireBuffer for creating new buffers.
type Buffer struct {
	B []byte
}

// Write appends p to bb.
func (bb *Buffer) Write(p []byte) (int, error) {
	bb.B = append(bb.B, p...)
	return len(p), nil
}

// WriteString appends s to bb.
func (bb *Buffer) WriteString(s string) (int, error) {
	bb.B = append(bb.B, s...)
	return len(s), nil
}

// WriteByte appends c to bb.
func (bb *Buffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Bytes returns the buffer contents.
func (bb *Buffer) Bytes() []byte {
	return bb.B
}

// String returns the buffer contents as a string.
func (bb *Buffer) String() string {
	return string(bb.B)
}

// Len returns the number of buffered bytes.
func (bb *Buffer) Len() int {
	return len(bb.B)
}

// Reset empties bb, keeping its capacity.
func (bb *Buffer) Reset() {
	bb.B = bb.B[:0]
}

// AcquireBuffer returns an empty buffer from the pool.
//
// Return unneeded buffers to the pool by calling ReleaseBuffer
// in order to reduce memory allocations.
func AcquireBuffer() *Buffer {
	v := bufferPool.Get()
	if v == nil {
		return &Buffer{}
	}
	return v.(*Buffer)
}

// ReleaseBuffer returns bb to the pool. bb must not be used afterwards.
func ReleaseBuffer(bb *Buffer) {
	// Keep huge buffers out of the pool
	if cap(bb.B) > maxPooledBufferSize {
		return
	}
	bb.Reset()
	bufferPool.Put(bb)
}

const maxPooledBufferSize = 1 << 20

var bufferPool sync.Pool
