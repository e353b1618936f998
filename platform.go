package rapidescape

// EscapeKernel returns the name of the implementation being used for escape operations
// of at least one vector width: "avx2", "swar" or "generic".
func EscapeKernel() string {
	if !useSIMDEscape {
		return "generic"
	}
	return escapeKernel.name
}

// VectorWidth returns the number of bytes the escape kernel scans per step.
func VectorWidth() int {
	return escapeKernel.width
}
