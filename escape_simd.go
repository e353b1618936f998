package rapidescape

import (
	"math/bits"
	"unsafe"
)

// escapeSIMD escapes src into dst one vector at a time: an unaligned head
// up to the first width-aligned address, aligned full blocks, then a tail
// read that overlaps already scanned bytes so it ends exactly at len(src).
//
// len(src) must be at least k.width.
func escapeSIMD(k kernel, dst, src []byte) []byte {
	width := k.width
	end := len(src)
	start := 0

	aligned := width - int(uintptr(unsafe.Pointer(unsafe.SliceData(src)))&uintptr(width-1))

	mask := k.mask(src)
	for mask != 0 {
		i := bits.TrailingZeros32(mask)
		if i >= aligned {
			break
		}
		dst, start = escapeAt(dst, src, start, i)
		mask &= mask - 1
	}

	pos := aligned
	for pos+width <= end {
		mask = k.mask(src[pos:])
		for mask != 0 {
			dst, start = escapeAt(dst, src, start, pos+bits.TrailingZeros32(mask))
			mask &= mask - 1
		}
		pos += width
	}

	if pos < end {
		backs := width - (end - pos)
		mask = k.mask(src[end-width:]) >> backs
		for mask != 0 {
			dst, start = escapeAt(dst, src, start, pos+bits.TrailingZeros32(mask))
			mask &= mask - 1
		}
	}

	return append(dst, src[start:]...)
}

// escapeAt resolves the candidate src[i]. If it is escaped, the pending run
// src[start:i] and the replacement are appended and the new start is i+1.
func escapeAt(dst, src []byte, start, i int) ([]byte, int) {
	e := escapeLUT[src[i]]
	if e >= escapedLen {
		return dst, start
	}
	dst = append(dst, src[start:i]...)
	return append(dst, escaped[e]...), i + 1
}

// needsEscapeSIMD reports whether any byte of src is in escapeLUT.
// len(src) must be at least k.width.
func needsEscapeSIMD(k kernel, src []byte) bool {
	pos := 0
	for ; pos+k.width <= len(src); pos += k.width {
		if hasEscape(src[pos:], k.mask(src[pos:])) {
			return true
		}
	}
	if pos < len(src) {
		tail := src[len(src)-k.width:]
		return hasEscape(tail, k.mask(tail))
	}
	return false
}

func hasEscape(p []byte, mask uint32) bool {
	for mask != 0 {
		if escapeLUT[p[bits.TrailingZeros32(mask)]] < escapedLen {
			return true
		}
		mask &= mask - 1
	}
	return false
}
