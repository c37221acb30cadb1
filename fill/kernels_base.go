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
	"encoding/binary"
	"unsafe"
)

// addr returns the address of the first byte of p. p must not be empty.
func addr(p []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(p)))
}

// memset4 writes n copies of the 32-bit word color, in host byte order, to
// the start of dst. Uses a doubling pattern so the bulk of the work is done
// by Go's optimized memmove.
func memset4(dst []byte, color uint32, n int) {
	if n <= 0 {
		return
	}
	dst = dst[:n*4]
	binary.NativeEndian.PutUint32(dst, color)
	for filled := 4; filled < len(dst); filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}

// fill1 fills 1-byte pixels. color holds the byte replicated four times.
func fill1(pixels []byte, pitch int, color uint32, w, h int) {
	c := byte(color)
	for row := range h {
		off := row * pitch
		p := pixels[off : off+w]
		n := w

		if n > 3 {
			i := 0
			switch addr(p) & 3 {
			case 1:
				p[i] = c
				i++
				fallthrough
			case 2:
				p[i] = c
				i++
				fallthrough
			case 3:
				p[i] = c
				i++
			}
			p = p[i:]
			n -= i
			memset4(p, color, n>>2)
			p = p[n&^3:]
		}

		switch n & 3 {
		case 3:
			p[2] = c
			fallthrough
		case 2:
			p[1] = c
			fallthrough
		case 1:
			p[0] = c
		}
	}
}

// fill2 fills 2-byte pixels. color holds the pixel replicated into both
// halves, so a word store writes two pixels.
func fill2(pixels []byte, pitch int, color uint32, w, h int) {
	px := uint16(color)
	for row := range h {
		off := row * pitch
		p := pixels[off : off+w*2]
		n := w

		if n > 1 {
			// Word stores only need an even pixel index relative to a
			// 4-byte boundary.
			if addr(p)&2 != 0 {
				binary.NativeEndian.PutUint16(p, px)
				p = p[2:]
				n--
			}
			memset4(p, color, n>>1)
		}
		if n&1 != 0 {
			binary.NativeEndian.PutUint16(p[(n-1)*2:], px)
		}
	}
}

// fill3 fills 3-byte pixels one byte at a time.
func fill3(pixels []byte, pitch int, color uint32, w, h int, bigEndian bool) {
	b1, b2, b3 := byte(color), byte(color>>8), byte(color>>16)
	if bigEndian {
		b1, b3 = b3, b1
	}
	for row := range h {
		off := row * pitch
		p := pixels[off : off+w*3]
		for i := 0; i < len(p); i += 3 {
			p[i] = b1
			p[i+1] = b2
			p[i+2] = b3
		}
	}
}

// fill4 fills 4-byte pixels, one memset4 per row.
func fill4(pixels []byte, pitch int, color uint32, w, h int) {
	for row := range h {
		memset4(pixels[row*pitch:], color, w)
	}
}

// storePixels writes color over every pixel of p with scalar stores.
// len(p) must be a multiple of bytesPerPixel.
func storePixels(p []byte, color uint32, bytesPerPixel int) {
	switch bytesPerPixel {
	case 1:
		c := byte(color)
		for i := range p {
			p[i] = c
		}
	case 2:
		px := uint16(color)
		for i := 0; i+2 <= len(p); i += 2 {
			binary.NativeEndian.PutUint16(p[i:], px)
		}
	case 4:
		for i := 0; i+4 <= len(p); i += 4 {
			binary.NativeEndian.PutUint32(p[i:], color)
		}
	}
}
