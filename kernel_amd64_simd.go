//go:build goexperiment.simd && amd64

package rapidescape

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

var (
	kernelAVX2    = kernel{name: "avx2", width: 32, mask: candidateMaskAVX2}
	kernelAVX2x16 = kernel{name: "avx2-16", width: 16, mask: candidateMaskAVX2x16}
)

// Both archsimd kernels broadcast their constants with VPBROADCASTB, which
// is AVX2 even for 128-bit vectors. Without AVX2 the SWAR kernel stays.
func init() {
	if cpu.X86.HasAVX2 {
		escapeKernel = kernelAVX2
	}
}

// availableKernels returns every kernel this CPU can run.
func availableKernels() []kernel {
	if !cpu.X86.HasAVX2 {
		return []kernel{kernelSWAR}
	}
	return []kernel{kernelSWAR, kernelAVX2x16, kernelAVX2}
}

func candidateMaskAVX2x16(p []byte) uint32 {
	v := archsimd.LoadUint8x16Slice(p)
	m1 := v.Or(archsimd.BroadcastUint8x16(candidateOr1)).Equal(archsimd.BroadcastUint8x16(candidateKey1))
	m2 := v.Or(archsimd.BroadcastUint8x16(candidateOr2)).Equal(archsimd.BroadcastUint8x16(candidateKey2))
	return uint32(m1.Or(m2).ToBits())
}

func candidateMaskAVX2(p []byte) uint32 {
	v := archsimd.LoadUint8x32Slice(p)
	m1 := v.Or(archsimd.BroadcastUint8x32(candidateOr1)).Equal(archsimd.BroadcastUint8x32(candidateKey1))
	m2 := v.Or(archsimd.BroadcastUint8x32(candidateOr2)).Equal(archsimd.BroadcastUint8x32(candidateKey2))
	return m1.Or(m2).ToBits()
}
