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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd, AVX2 is detected through x/sys/cpu, which also
// checks that the OS saves the YMM state.

func detectCPUFeatures() Capabilities {
	return Capabilities{
		// SSE2 is baseline for amd64, but ask anyway so a hypervisor that
		// masks it is respected.
		SSE2: cpu.X86.HasSSE2,
		AVX2: cpu.X86.HasAVX2,
	}
}
