package rapidescape

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// Writer escapes everything written to it and forwards the result to the
// underlying [io.Writer]. Each Write is escaped independently; no state is
// carried between calls.
type Writer struct {
	w   io.Writer
	buf []byte

	writeMu sync.Mutex
}

// NewWriter returns a new [Writer] writing escaped text to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Reset makes ew write to w, keeping its scratch buffer.
// This permits reusing a [Writer] rather than allocating a new one.
func (ew *Writer) Reset(w io.Writer) {
	ew.writeMu.Lock()
	defer ew.writeMu.Unlock()

	ew.w = w
	ew.buf = ew.buf[:0]
}

var errWriterNil = errors.New("writer is nil")

// Write writes the escaped form of p to the underlying [io.Writer].
// It returns len(p) on success and 0 if the underlying write failed.
func (ew *Writer) Write(p []byte) (n int, err error) {
	ew.writeMu.Lock()
	defer ew.writeMu.Unlock()

	if ew.w == nil {
		return 0, errWriterNil
	}
	if len(p) == 0 {
		return 0, nil
	}

	if maxLen := MaxLength(len(p)); cap(ew.buf) < maxLen && cap(ew.buf) < maxScratchSize {
		ew.buf = make([]byte, 0, min(maxLen, maxScratchSize))
	}

	ew.buf = AppendEscape(ew.buf[:0], p)
	if _, err := ew.w.Write(ew.buf); err != nil {
		return 0, fmt.Errorf("[rapidescape] write of %d escaped bytes: %w", len(ew.buf), err)
	}

	return len(p), nil
}

// WriteString is like Write but takes a string.
func (ew *Writer) WriteString(s string) (int, error) {
	return ew.Write(unsafeStrToBytes(s))
}

// maxScratchSize caps the preallocated scratch buffer; larger writes grow it by append.
const maxScratchSize = 64 * 1024

// AcquireWriter returns a writer from the pool writing escaped text to w.
//
// Return unneeded writers to the pool by calling ReleaseWriter
// in order to reduce memory allocations.
func AcquireWriter(w io.Writer) *Writer {
	v := writerPool.Get()
	if v == nil {
		return NewWriter(w)
	}
	ew := v.(*Writer)
	ew.Reset(w)
	return ew
}

// ReleaseWriter returns ew to the pool.
//
// Do not access released writer, otherwise data races may occur.
func ReleaseWriter(ew *Writer) {
	ew.Reset(nil)
	// Keep huge scratch buffers out of the pool
	if cap(ew.buf) > maxPooledBufferSize {
		ew.buf = nil
	}
	writerPool.Put(ew)
}

var writerPool sync.Pool
