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
	"fmt"
	"math"
)

// ByteOrder is the order in which the bytes of a 3-byte pixel are stored.
// Wider and narrower pixels are stored as host-order integers.
type ByteOrder uint8

const (
	// LittleEndian stores the least significant byte of the color first.
	LittleEndian ByteOrder = iota

	// BigEndian stores the most significant byte of the color first.
	BigEndian
)

// String returns "little" or "big".
func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big"
	}
	return "little"
}

// NativeEndian returns the byte order of the host.
func NativeEndian() ByteOrder {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	if b[0] == 1 {
		return LittleEndian
	}
	return BigEndian
}

// PixelFormat is the part of a pixel format the fill path needs.
type PixelFormat struct {
	// BitsPerPixel is the pixel depth. Depths below 8 are packed.
	BitsPerPixel int

	// BytesPerPixel is the pixel width in bytes, 0 for packed formats.
	BytesPerPixel int

	// Order is the byte order of 3-byte pixels.
	Order ByteOrder
}

// Predefined formats.
var (
	Index4 = PixelFormat{BitsPerPixel: 4}
	Index8 = PixelFormat{BitsPerPixel: 8, BytesPerPixel: 1}
	RGB565 = PixelFormat{BitsPerPixel: 16, BytesPerPixel: 2}

	// RGB24 stores 0xRRGGBB as the bytes R, G, B.
	RGB24 = PixelFormat{BitsPerPixel: 24, BytesPerPixel: 3, Order: BigEndian}

	// BGR24 stores 0xRRGGBB as the bytes B, G, R.
	BGR24 = PixelFormat{BitsPerPixel: 24, BytesPerPixel: 3, Order: LittleEndian}

	RGBA32 = PixelFormat{BitsPerPixel: 32, BytesPerPixel: 4}
)

// String describes the format, e.g. "24bpp/3B/big".
func (f PixelFormat) String() string {
	if f.BytesPerPixel == 3 {
		return fmt.Sprintf("%dbpp/%dB/%v", f.BitsPerPixel, f.BytesPerPixel, f.Order)
	}
	return fmt.Sprintf("%dbpp/%dB", f.BitsPerPixel, f.BytesPerPixel)
}

// rowBytes returns the number of bytes holding w pixels, and false when that
// count does not fit in an int.
func (f PixelFormat) rowBytes(w int) (int, bool) {
	if f.BytesPerPixel > 0 {
		if w > math.MaxInt/f.BytesPerPixel {
			return 0, false
		}
		return w * f.BytesPerPixel, true
	}
	if f.BitsPerPixel <= 0 {
		return 0, true
	}
	if w > (math.MaxInt-7)/f.BitsPerPixel {
		return 0, false
	}
	return (w*f.BitsPerPixel + 7) / 8, true
}
