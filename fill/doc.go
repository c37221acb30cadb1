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

// Package fill writes a constant color over a rectangular span of a pixel
// buffer.
//
// A span is described the way a locked surface exposes it: a byte slice
// starting at the top-left pixel, the pitch (bytes between row starts), the
// color, and the span size in pixels. Kernels exist for 1, 2, 3 and 4 byte
// pixels. Select picks the fastest kernel for a pixel width given the
// capabilities reported by the hwy package:
//
//	k, ok := fill.Select(4, hwy.Current())
//	if !ok {
//	    return errUnsupported
//	}
//	color := fill.Replicate(c, 4)
//	k.Fill(pixels[y*pitch+x*4:], pitch, color, w, h)
//
// # Tiers
//
// Vectorized kernels are tried in this order, each only when its instruction
// set is both reported by the probe and compiled into the binary:
//
//   - NEON (arm64 assembly)
//   - AVX2 (amd64, requires GOEXPERIMENT=simd)
//   - SSE2 (amd64 assembly, non-temporal stores)
//
// Everything else, and every 3-byte format, uses the scalar kernels. Build
// with -tags noasm to drop the assembly tiers.
package fill
