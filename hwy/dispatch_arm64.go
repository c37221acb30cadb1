//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func detectCPUFeatures() Capabilities {
	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	// We still check the cpu package for consistency.
	return Capabilities{NEON: cpu.ARM64.HasASIMD}
}
