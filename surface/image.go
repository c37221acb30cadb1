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

package surface

import (
	"encoding/binary"
	"image"
	"image/color"
)

// FromRGBA returns a surface sharing the pixels of img. The surface is
// always locked, and fills are visible through img immediately.
func FromRGBA(img *image.RGBA) *Surface {
	b := img.Rect
	return fromImage(img.Pix, img.PixOffset(b.Min.X, b.Min.Y), b.Dx(), b.Dy(), img.Stride, RGBA32)
}

// FromGray returns a surface sharing the pixels of img, see FromRGBA.
func FromGray(img *image.Gray) *Surface {
	b := img.Rect
	return fromImage(img.Pix, img.PixOffset(b.Min.X, b.Min.Y), b.Dx(), b.Dy(), img.Stride, Index8)
}

func fromImage(pix []byte, off, w, h, stride int, format PixelFormat) *Surface {
	if w <= 0 || h <= 0 {
		return newSurface(nil, 0, 0, stride, format, nil)
	}
	return newSurface(pix[off:], w, h, stride, format, nil)
}

// PackRGBA returns the 32-bit value that, filled into an RGBA32 surface,
// stores the bytes R, G, B, A in memory order.
func PackRGBA(c color.RGBA) uint32 {
	return binary.NativeEndian.Uint32([]byte{c.R, c.G, c.B, c.A})
}
