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

package fill

import (
	"fmt"

	"github.com/ajroetker/go-pixfill/fill/asm"
	"github.com/ajroetker/go-pixfill/hwy"
)

// Kernel identifies one fill routine: an instruction set tier and the pixel
// width it writes. The zero value is not a valid kernel; obtain one from
// Select.
type Kernel struct {
	Tier          hwy.DispatchLevel
	BytesPerPixel int

	// BigEndian selects the triplet order of 3-byte kernels: most
	// significant byte first when set. Other widths store the color word in
	// host order and ignore it.
	BigEndian bool
}

// String returns the kernel name, e.g. "sse2/4".
func (k Kernel) String() string {
	return fmt.Sprintf("%v/%d", k.Tier, k.BytesPerPixel)
}

// vectorTiers lists the vectorized tiers in selection priority.
var vectorTiers = [...]hwy.DispatchLevel{hwy.DispatchNEON, hwy.DispatchAVX2, hwy.DispatchSSE2}

// Compiled reports whether kernels for tier are built into this binary.
// The scalar tier is always compiled.
func Compiled(tier hwy.DispatchLevel) bool {
	switch tier {
	case hwy.DispatchScalar:
		return true
	case hwy.DispatchNEON:
		return asm.HasNEON
	case hwy.DispatchAVX2:
		return asm.HasAVX2
	case hwy.DispatchSSE2:
		return asm.HasSSE
	default:
		return false
	}
}

// Select returns the kernel to use for bytesPerPixel on a CPU with caps.
// It returns false when bytesPerPixel is not 1, 2, 3 or 4.
//
// 3-byte pixels always get the scalar kernel: three does not divide the
// vector width, so a vector body would need lane shuffles.
func Select(bytesPerPixel int, caps hwy.Capabilities) (Kernel, bool) {
	switch bytesPerPixel {
	case 1, 2, 4:
		for _, tier := range vectorTiers {
			if caps.Has(tier) && Compiled(tier) {
				return Kernel{Tier: tier, BytesPerPixel: bytesPerPixel}, true
			}
		}
		return Kernel{Tier: hwy.DispatchScalar, BytesPerPixel: bytesPerPixel}, true
	case 3:
		return Kernel{Tier: hwy.DispatchScalar, BytesPerPixel: 3}, true
	default:
		return Kernel{}, false
	}
}

// Replicate spreads a packed color over the 32-bit word the kernels store:
// a 1-byte color is copied into all four bytes and a 2-byte color into both
// halves. 3- and 4-byte colors are returned unchanged.
func Replicate(color uint32, bytesPerPixel int) uint32 {
	switch bytesPerPixel {
	case 1:
		color &= 0xFF
		color |= color << 8
		color |= color << 16
	case 2:
		color &= 0xFFFF
		color |= color << 16
	}
	return color
}

// Fill writes color over a w x h span. pixels starts at the span's top-left
// pixel and rows are pitch bytes apart. color must already be replicated
// with Replicate.
//
// Fill performs no validation: the caller guarantees that
// len(pixels) >= (h-1)*pitch + w*BytesPerPixel.
func (k Kernel) Fill(pixels []byte, pitch int, color uint32, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if k.BytesPerPixel != 3 {
		switch k.Tier {
		case hwy.DispatchNEON:
			fillVector(pixels, pitch, color, w, h, k.BytesPerPixel, asm.NEONBlocks)
			return
		case hwy.DispatchAVX2:
			fillVector(pixels, pitch, color, w, h, k.BytesPerPixel, asm.AVX2Blocks)
			return
		case hwy.DispatchSSE2:
			fillVector(pixels, pitch, color, w, h, k.BytesPerPixel, asm.StreamBlocks)
			return
		}
	}
	switch k.BytesPerPixel {
	case 1:
		fill1(pixels, pitch, color, w, h)
	case 2:
		fill2(pixels, pitch, color, w, h)
	case 3:
		fill3(pixels, pitch, color, w, h, k.BigEndian)
	case 4:
		fill4(pixels, pitch, color, w, h)
	}
}
