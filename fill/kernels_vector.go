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

import "github.com/ajroetker/go-pixfill/fill/asm"

// blockStore writes len(dst)/asm.BlockSize blocks of color. dst starts on an
// asm.Alignment boundary.
type blockStore func(dst []byte, color uint32)

// fillVector is the row loop shared by every vectorized tier. For each row:
// scalar stores up to the next 16-byte boundary, 64-byte blocks through
// store, scalar stores for what is left.
//
// Rows shorter than one block, or rows whose start is not a multiple of the
// pixel width (odd pitch), go through the scalar loop only; aligning those
// would split a pixel.
func fillVector(pixels []byte, pitch int, color uint32, w, h, bytesPerPixel int, store blockStore) {
	rowBytes := w * bytesPerPixel
	for row := range h {
		off := row * pitch
		p := pixels[off : off+rowBytes]

		if len(p) >= asm.BlockSize && addr(p)%uintptr(bytesPerPixel) == 0 {
			if adjust := int(-addr(p) & (asm.Alignment - 1)); adjust > 0 {
				storePixels(p[:adjust], color, bytesPerPixel)
				p = p[adjust:]
			}
			bulk := len(p) &^ (asm.BlockSize - 1)
			store(p[:bulk], color)
			p = p[bulk:]
		}

		storePixels(p, color, bytesPerPixel)
	}
}
