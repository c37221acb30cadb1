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
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ajroetker/go-pixfill/fill"
	"github.com/ajroetker/go-pixfill/hwy"
)

// Filler fills surfaces using the kernels chosen for one set of CPU
// capabilities. Kernel selection happens once, in NewFiller. A Filler holds
// no other state and is safe for concurrent use on different surfaces.
type Filler struct {
	caps    hwy.Capabilities
	kernels [5]fill.Kernel // indexed by bytes per pixel
	ok      [5]bool
}

// NewFiller returns a Filler whose kernels are selected for caps. Passing
// hwy.Scalar() gives the reference implementation.
func NewFiller(caps hwy.Capabilities) *Filler {
	f := &Filler{caps: caps}
	for bpp := 1; bpp < len(f.kernels); bpp++ {
		f.kernels[bpp], f.ok[bpp] = fill.Select(bpp, caps)
	}
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("fill kernels selected",
			slog.String("caps", caps.String()),
			slog.String("1", f.kernels[1].String()),
			slog.String("2", f.kernels[2].String()),
			slog.String("3", f.kernels[3].String()),
			slog.String("4", f.kernels[4].String()),
		)
	}
	return f
}

// Capabilities returns the descriptor the kernels were selected for.
func (f *Filler) Capabilities() hwy.Capabilities {
	return f.caps
}

// Kernel returns the kernel used for bytesPerPixel, and false when the width
// is unsupported.
func (f *Filler) Kernel(bytesPerPixel int) (fill.Kernel, bool) {
	if bytesPerPixel <= 0 || bytesPerPixel >= len(f.kernels) {
		return fill.Kernel{}, false
	}
	return f.kernels[bytesPerPixel], f.ok[bytesPerPixel]
}

var defaultFiller = sync.OnceValue(func() *Filler {
	return NewFiller(hwy.Current())
})

// FillRect fills rect of dst with color using the kernels for the host CPU.
// A nil rect fills the clip rectangle. See Filler.FillRect.
func FillRect(dst Target, rect *Rect, color uint32) error {
	return defaultFiller().FillRect(dst, rect, color)
}

// FillRects fills each of rects in dst with color using the kernels for the
// host CPU. See Filler.FillRects.
func FillRects(dst Target, rects []Rect, color uint32) error {
	return defaultFiller().FillRects(dst, rects, color)
}

// FillRect fills rect of dst with color. A nil rect fills the current clip
// rectangle; when that is empty nothing is written and nil is returned.
func (f *Filler) FillRect(dst Target, rect *Rect, color uint32) error {
	if isNil(dst) {
		return fmt.Errorf("%w: dst is nil", ErrInvalidParameter)
	}
	if rect == nil {
		clip := dst.ClipRect()
		if clip.Empty() {
			return nil
		}
		rect = &clip
	}
	return f.FillRects(dst, []Rect{*rect}, color)
}

// FillRects fills each of rects, clipped to the clip rectangle of dst, with
// color. color holds the packed pixel value in its low bytes.
//
// All validation happens before any pixel is written; once filling starts
// it cannot fail. Rectangles that miss the clip rectangle are skipped, and a
// surface with no pixels is a no-op.
//
// Surfaces with fewer than 8 bits per pixel only support a fill of the whole
// surface by a single rectangle; anything else returns
// ErrUnsupportedFormat.
func (f *Filler) FillRects(dst Target, rects []Rect, color uint32) error {
	if isNil(dst) {
		return fmt.Errorf("%w: dst is nil", ErrInvalidParameter)
	}

	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return nil
	}

	pixels := dst.Pixels()
	if pixels == nil {
		return reject(ErrNotLocked, "surface must be locked")
	}
	if rects == nil {
		return reject(ErrInvalidParameter, "rects is nil")
	}

	format, pitch := dst.Format(), dst.Pitch()
	if err := checkGeometry(len(pixels), w, h, pitch, format); err != nil {
		Logger().Debug("fill rejected", slog.Any("err", err))
		return err
	}

	if format.BitsPerPixel < 8 {
		return f.fillPacked(pixels, w, h, pitch, format, rects, color)
	}

	bpp := format.BytesPerPixel
	k, ok := f.Kernel(bpp)
	if !ok {
		return reject(ErrUnsupportedFormat, fmt.Sprintf("%d bytes per pixel", bpp))
	}
	k.BigEndian = format.Order == BigEndian
	color = fill.Replicate(color, bpp)

	// Targets other than *Surface may report a clip outside their bounds.
	clip, ok := dst.ClipRect().Intersect(Rect{W: w, H: h})
	if !ok {
		return nil
	}

	for _, r := range rects {
		c, ok := r.Intersect(clip)
		if !ok {
			continue
		}
		k.Fill(pixels[c.Y*pitch+c.X*bpp:], pitch, color, c.W, c.H)
	}
	return nil
}

// fillPacked handles sub-byte formats. Only 4-bit pixels are supported, and
// only when the single rectangle covers the whole surface: the color nibble
// is doubled into a byte and every byte of every row, padding included, is
// set to it.
func (f *Filler) fillPacked(pixels []byte, w, h, pitch int, format PixelFormat, rects []Rect, color uint32) error {
	full := Rect{W: w, H: h}
	if format.BitsPerPixel != 4 || len(rects) != 1 || rects[0] != full {
		return reject(ErrUnsupportedFormat, fmt.Sprintf("%d-bit surfaces only support a full-surface fill", format.BitsPerPixel))
	}
	if pitch <= 0 || h > len(pixels)/pitch {
		return reject(ErrInvalidParameter, "buffer shorter than height*pitch")
	}

	nibble := color & 0x0F
	b := nibble<<4 | nibble
	k, _ := f.Kernel(1)
	k.Fill(pixels, h*pitch, fill.Replicate(b, 1), h*pitch, 1)
	return nil
}

// reject wraps err with detail and logs it at debug level.
func reject(err error, detail string) error {
	err = fmt.Errorf("%w: %s", err, detail)
	Logger().Debug("fill rejected", slog.Any("err", err))
	return err
}

// isNil reports whether dst is nil or a nil *Surface.
func isNil(dst Target) bool {
	if dst == nil {
		return true
	}
	s, ok := dst.(*Surface)
	return ok && s == nil
}
