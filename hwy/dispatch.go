// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"os"
	"strconv"
	"strings"
)

// DispatchLevel represents a SIMD instruction set a fill kernel can target.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Capabilities describes the vector instruction sets available on the host.
// It is a plain value: detection happens once, and callers pass the result
// explicitly to whatever needs to choose between implementations.
type Capabilities struct {
	// SSE2 reports 128-bit x86 SIMD with non-temporal stores.
	SSE2 bool

	// AVX2 reports 256-bit x86 SIMD.
	AVX2 bool

	// NEON reports ARM Advanced SIMD.
	NEON bool
}

// Has reports whether the instruction set for level is present.
// DispatchScalar is always present.
func (c Capabilities) Has(level DispatchLevel) bool {
	switch level {
	case DispatchScalar:
		return true
	case DispatchSSE2:
		return c.SSE2
	case DispatchAVX2:
		return c.AVX2
	case DispatchNEON:
		return c.NEON
	default:
		return false
	}
}

// Level returns the widest instruction set present.
func (c Capabilities) Level() DispatchLevel {
	switch {
	case c.NEON:
		return DispatchNEON
	case c.AVX2:
		return DispatchAVX2
	case c.SSE2:
		return DispatchSSE2
	default:
		return DispatchScalar
	}
}

// String lists the present instruction sets, e.g. "sse2+avx2".
func (c Capabilities) String() string {
	var names []string
	for _, l := range []DispatchLevel{DispatchSSE2, DispatchAVX2, DispatchNEON} {
		if c.Has(l) {
			names = append(names, l.String())
		}
	}
	if len(names) == 0 {
		return DispatchScalar.String()
	}
	return strings.Join(names, "+")
}

// current is the descriptor detected at init.
// Set by init() in dispatch_*.go files and never written afterwards.
var current Capabilities

// Current returns the capabilities detected when the package was initialized.
func Current() Capabilities {
	return current
}

// Scalar returns a descriptor with every SIMD instruction set disabled.
func Scalar() Capabilities {
	return Capabilities{}
}

// Detect probes the CPU and returns its capabilities, honoring
// PIXFILL_NO_SIMD. Most callers want Current instead.
func Detect() Capabilities {
	if NoSimdEnv() {
		return Scalar()
	}
	return detectCPUFeatures()
}

// NoSimdEnv checks if the PIXFILL_NO_SIMD environment variable is set.
// When set, detection reports no SIMD support regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("PIXFILL_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func init() {
	current = Detect()
}
