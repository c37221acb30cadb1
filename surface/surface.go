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
	"fmt"
	"math"
)

// Target is a pixel buffer that can be filled. *Surface implements it;
// other surface implementations can be filled by implementing it too.
type Target interface {
	// Width and Height are the surface size in pixels.
	Width() int
	Height() int

	// Pitch is the number of bytes between the starts of consecutive rows.
	Pitch() int

	// Format describes the pixel layout.
	Format() PixelFormat

	// Pixels returns the buffer, starting at pixel (0, 0), or nil when the
	// pixels are not currently accessible.
	Pixels() []byte

	// ClipRect is the rectangle fills are restricted to.
	ClipRect() Rect
}

// Surface is an in-memory pixel buffer with a clip rectangle.
type Surface struct {
	width  int
	height int
	pitch  int
	format PixelFormat
	pixels []byte
	clip   Rect

	mustLock bool
	locked   int
}

// Option configures a Surface during creation.
type Option func(*Surface)

// MustLock makes the pixels accessible only between Lock and Unlock.
func MustLock() Option {
	return func(s *Surface) {
		s.mustLock = true
	}
}

// New allocates a zeroed w x h surface. Rows are padded to a multiple of 4
// bytes.
func New(w, h int, format PixelFormat, opts ...Option) (*Surface, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidParameter, w, h)
	}
	if format.BitsPerPixel <= 0 {
		return nil, fmt.Errorf("%w: format %v", ErrUnsupportedFormat, format)
	}
	row, ok := format.rowBytes(w)
	if !ok || row > math.MaxInt-3 {
		return nil, fmt.Errorf("%w: width %d too large for %v", ErrInvalidParameter, w, format)
	}
	pitch := (row + 3) &^ 3
	if pitch > 0 && h > math.MaxInt/pitch {
		return nil, fmt.Errorf("%w: size %dx%d too large for %v", ErrInvalidParameter, w, h, format)
	}
	return newSurface(make([]byte, pitch*h), w, h, pitch, format, opts), nil
}

// NewFrom wraps a caller-owned buffer. pixels must hold h rows of pitch
// bytes, except that the last row only needs to hold its pixels. The
// surface never copies or retains anything beyond the slice.
func NewFrom(pixels []byte, w, h, pitch int, format PixelFormat, opts ...Option) (*Surface, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidParameter, w, h)
	}
	if format.BitsPerPixel <= 0 {
		return nil, fmt.Errorf("%w: format %v", ErrUnsupportedFormat, format)
	}
	if err := checkGeometry(len(pixels), w, h, pitch, format); err != nil {
		return nil, err
	}
	return newSurface(pixels, w, h, pitch, format, opts), nil
}

func newSurface(pixels []byte, w, h, pitch int, format PixelFormat, opts []Option) *Surface {
	s := &Surface{
		width:  w,
		height: h,
		pitch:  pitch,
		format: format,
		pixels: pixels,
		clip:   Rect{W: w, H: h},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// checkGeometry verifies that a w x h surface with the given pitch fits in
// n bytes. The check is written so that no intermediate product can
// overflow: once it passes, (h-1)*pitch+row <= n.
func checkGeometry(n, w, h, pitch int, format PixelFormat) error {
	row, ok := format.rowBytes(w)
	if !ok {
		return fmt.Errorf("%w: width %d too large for %v", ErrInvalidParameter, w, format)
	}
	if pitch < 0 || pitch < row {
		return fmt.Errorf("%w: pitch %d below row size %d", ErrInvalidParameter, pitch, row)
	}
	if h == 0 {
		return nil
	}
	if n < row || (h > 1 && pitch > 0 && h-1 > (n-row)/pitch) {
		return fmt.Errorf("%w: buffer of %d bytes too small for %dx%d pitch %d", ErrInvalidParameter, n, w, h, pitch)
	}
	return nil
}

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.height }

// Pitch returns the row stride in bytes.
func (s *Surface) Pitch() int { return s.pitch }

// Format returns the pixel format.
func (s *Surface) Format() PixelFormat { return s.format }

// Bounds returns the full surface rectangle.
func (s *Surface) Bounds() Rect { return Rect{W: s.width, H: s.height} }

// Lock makes the pixels accessible. Locks nest; each Lock needs a matching
// Unlock.
func (s *Surface) Lock() {
	s.locked++
}

// Unlock releases one Lock. Extra calls are ignored.
func (s *Surface) Unlock() {
	if s.locked > 0 {
		s.locked--
	}
}

// Locked reports whether the pixels are currently accessible.
func (s *Surface) Locked() bool {
	return !s.mustLock || s.locked > 0
}

// Pixels returns the pixel buffer, or nil for a MustLock surface that is not
// locked.
func (s *Surface) Pixels() []byte {
	if !s.Locked() {
		return nil
	}
	return s.pixels
}

// Bytes returns the pixel buffer regardless of lock state.
func (s *Surface) Bytes() []byte {
	return s.pixels
}

// ClipRect returns the current clip rectangle.
func (s *Surface) ClipRect() Rect {
	return s.clip
}

// SetClipRect restricts fills to r intersected with the surface bounds.
// A nil r resets the clip to the whole surface. It reports whether the
// resulting clip rectangle is non-empty.
func (s *Surface) SetClipRect(r *Rect) bool {
	if r == nil {
		s.clip = s.Bounds()
		return !s.clip.Empty()
	}
	clip, ok := r.Intersect(s.Bounds())
	if !ok {
		clip = Rect{}
	}
	s.clip = clip
	return ok
}
