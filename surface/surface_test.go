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
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestNewPitch(t *testing.T) {
	tests := []struct {
		w      int
		format PixelFormat
		want   int
	}{
		{1, Index8, 4},
		{5, Index8, 8},
		{3, RGB565, 8},
		{3, RGB24, 12},
		{5, RGB24, 16},
		{3, RGBA32, 12},
		{7, Index4, 4},
		{9, Index4, 8},
	}
	for _, tt := range tests {
		s, err := New(tt.w, 2, tt.format)
		if err != nil {
			t.Fatalf("New(%d, %v): %v", tt.w, tt.format, err)
		}
		if s.Pitch() != tt.want {
			t.Errorf("New(%d, %v).Pitch() = %d, want %d", tt.w, tt.format, s.Pitch(), tt.want)
		}
		if len(s.Bytes()) != tt.want*2 {
			t.Errorf("New(%d, %v) allocated %d bytes", tt.w, tt.format, len(s.Bytes()))
		}
		if s.ClipRect() != s.Bounds() {
			t.Errorf("initial clip %+v, want bounds", s.ClipRect())
		}
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(-1, 1, RGBA32); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("New(-1) = %v, want ErrInvalidParameter", err)
	}
	if _, err := New(1, 1, PixelFormat{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("New(zero format) = %v, want ErrUnsupportedFormat", err)
	}

	tooLarge := []struct {
		name   string
		w, h   int
		format PixelFormat
	}{
		{"huge width", math.MaxInt / 2, 1, RGBA32},
		{"huge packed width", math.MaxInt, 1, Index4},
		{"width at padding limit", math.MaxInt - 1, 1, Index8},
		{"huge height", 4, math.MaxInt / 8, RGBA32},
	}
	for _, tt := range tooLarge {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w, tt.h, tt.format); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("New(%d, %d, %v) = %v, want ErrInvalidParameter", tt.w, tt.h, tt.format, err)
			}
		})
	}
}

func TestNewFromValidation(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		w, h  int
		pitch int
		ok    bool
	}{
		{"exact", 32, 4, 2, 16, true},
		{"short last row", 28, 4, 2, 12, false},
		{"last row unpadded", 28, 3, 2, 16, true},
		{"pitch too small", 64, 4, 2, 15, false},
		{"buffer too small", 20, 4, 2, 16, false},
		{"empty", 0, 0, 0, 0, true},
		{"single row zero pitch", 0, 0, 1, 0, true},
		{"negative pitch", 64, 0, 2, -1, false},
		{"huge pitch", 64, 4, 3, math.MaxInt / 2, false},
		{"huge width", 64, math.MaxInt/4 + 1, 1, 8, false},
		{"huge height", 64, 4, math.MaxInt, 16, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFrom(make([]byte, tt.n), tt.w, tt.h, tt.pitch, RGBA32)
			if tt.ok && err != nil {
				t.Errorf("NewFrom: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("NewFrom = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestLockNesting(t *testing.T) {
	s, _ := New(2, 2, RGBA32, MustLock())
	if s.Locked() || s.Pixels() != nil {
		t.Fatal("MustLock surface starts locked")
	}
	s.Lock()
	s.Lock()
	s.Unlock()
	if !s.Locked() || s.Pixels() == nil {
		t.Fatal("surface unlocked after one of two Unlocks")
	}
	s.Unlock()
	s.Unlock() // extra, ignored
	if s.Locked() {
		t.Fatal("surface still locked")
	}
	s.Lock()
	if !s.Locked() {
		t.Fatal("Lock after extra Unlock did not lock")
	}

	plain, _ := New(2, 2, RGBA32)
	if !plain.Locked() || plain.Pixels() == nil {
		t.Error("surface without MustLock must always expose pixels")
	}
}

func TestSetClipRect(t *testing.T) {
	s, _ := New(10, 10, Index8)

	if !s.SetClipRect(&Rect{X: -5, Y: 2, W: 10, H: 20}) {
		t.Fatal("SetClipRect overlapping bounds returned false")
	}
	if want := (Rect{X: 0, Y: 2, W: 5, H: 8}); s.ClipRect() != want {
		t.Errorf("clip = %+v, want %+v", s.ClipRect(), want)
	}

	if s.SetClipRect(&Rect{X: 20, Y: 20, W: 1, H: 1}) {
		t.Error("SetClipRect outside bounds returned true")
	}
	if !s.ClipRect().Empty() {
		t.Errorf("clip = %+v, want empty", s.ClipRect())
	}

	if !s.SetClipRect(nil) || s.ClipRect() != s.Bounds() {
		t.Errorf("SetClipRect(nil) left clip %+v", s.ClipRect())
	}
}

func TestFromRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 14, 13))
	s := FromRGBA(img)
	if s.Width() != 4 || s.Height() != 3 || s.Pitch() != img.Stride || s.Format() != RGBA32 {
		t.Fatalf("FromRGBA: %dx%d pitch %d format %v", s.Width(), s.Height(), s.Pitch(), s.Format())
	}
	c := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	if err := FillRect(s, &Rect{X: 1, Y: 1, W: 1, H: 1}, PackRGBA(c)); err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(11, 11); got != c {
		t.Errorf("RGBAAt(11, 11) = %v, want %v", got, c)
	}
	if got := img.RGBAAt(10, 10); got != (color.RGBA{}) {
		t.Errorf("RGBAAt(10, 10) = %v, want zero", got)
	}
}

func TestFromImageEmpty(t *testing.T) {
	s := FromGray(image.NewGray(image.Rectangle{}))
	if s.Width() != 0 || s.Height() != 0 {
		t.Fatalf("empty image gave %dx%d surface", s.Width(), s.Height())
	}
	if err := FillRect(s, nil, 1); err != nil {
		t.Errorf("FillRect(empty) = %v", err)
	}
}

func TestPixelFormatString(t *testing.T) {
	if got := RGB24.String(); got != "24bpp/3B/big" {
		t.Errorf("RGB24.String() = %q", got)
	}
	if got := RGBA32.String(); got != "32bpp/4B" {
		t.Errorf("RGBA32.String() = %q", got)
	}
}

func TestNativeEndian(t *testing.T) {
	o := NativeEndian()
	if o != LittleEndian && o != BigEndian {
		t.Fatalf("NativeEndian() = %d", o)
	}
	t.Logf("host byte order: %v", o)
}
