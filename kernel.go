package rapidescape

// kernel computes the candidate mask for one vector of input.
//
// mask reads the first width bytes of p (len(p) >= width) and returns a mask
// with bit i set when p[i] may need escaping. A byte is a candidate when
// (b|0x05) == 0x27 or (b|0x02) == 0x3e, which selects " # & ' < and >.
// Every byte in escapeLUT is a candidate; '#' is filtered by the table lookup.
type kernel struct {
	name  string
	width int
	mask  func(p []byte) uint32
}

const (
	candidateOr1  = 0x05
	candidateKey1 = 0x27
	candidateOr2  = 0x02
	candidateKey2 = 0x3e
)

// isCandidate is the scalar form of the kernel predicate.
func isCandidate(c byte) bool {
	return c|candidateOr1 == candidateKey1 || c|candidateOr2 == candidateKey2
}

// useSIMDEscape indicates whether the vector scanner is used for inputs of
// at least one vector width.
var useSIMDEscape = true

var kernelSWAR = kernel{name: "swar", width: 16, mask: candidateMaskSWAR}

// escapeKernel is the kernel used by escapeSIMD, replaced in init on
// platforms with native vector support.
var escapeKernel = kernelSWAR
