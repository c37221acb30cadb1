//go:build arm

package hwy

import "golang.org/x/sys/cpu"

func detectCPUFeatures() Capabilities {
	// 32-bit ARM reports NEON through HWCAP. No NEON kernels are built for
	// GOARCH=arm, so this only informs callers that print capabilities.
	return Capabilities{NEON: cpu.ARM.HasNEON}
}
