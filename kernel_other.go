//go:build !(goexperiment.simd && amd64)

package rapidescape

// availableKernels returns every kernel this CPU can run.
func availableKernels() []kernel {
	return []kernel{kernelSWAR}
}
