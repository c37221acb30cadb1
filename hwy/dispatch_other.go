//go:build !amd64 && !arm64 && !arm

package hwy

func detectCPUFeatures() Capabilities {
	// Non-x86, non-ARM architectures fall back to scalar mode for now.
	return Scalar()
}
