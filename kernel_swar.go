package rapidescape

import "encoding/binary"

const (
	lsb = 0x0101010101010101
	msb = 0x8080808080808080
	low = 0x7f7f7f7f7f7f7f7f

	// gather moves bit 7 of each byte lane into the top byte, lane k to bit 56+k.
	gather = 0x0102040810204080
)

// candidateMaskSWAR checks 16 bytes as two uint64 lanes.
func candidateMaskSWAR(p []byte) uint32 {
	_ = p[15]
	lo := candidateWord(binary.LittleEndian.Uint64(p))
	hi := candidateWord(binary.LittleEndian.Uint64(p[8:]))
	return movemask(lo) | movemask(hi)<<8
}

// candidateWord sets bit 7 of every byte of w that satisfies isCandidate.
func candidateWord(w uint64) uint64 {
	return zeroBytes((w|candidateOr1*lsb)^candidateKey1*lsb) |
		zeroBytes((w|candidateOr2*lsb)^candidateKey2*lsb)
}

// zeroBytes sets bit 7 of exactly the zero bytes of x. Unlike the classic
// haszero trick it has no false positives, as no carry crosses a lane.
func zeroBytes(x uint64) uint64 {
	return ^((x&low + low) | x) & msb
}

// movemask packs the bit 7 of each byte of m into an 8-bit mask, byte 0 lowest.
func movemask(m uint64) uint32 {
	return uint32((m >> 7) * gather >> 56)
}
