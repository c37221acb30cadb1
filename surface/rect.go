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
	"image"
	"math"
)

// Rect is a rectangle with its top-left corner at (X, Y). A rectangle with
// W <= 0 or H <= 0 is empty.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the overlap of r and s, and false when it is empty.
// The returned rectangle is meaningless when the result is false.
func (r Rect) Intersect(s Rect) (Rect, bool) {
	if r.Empty() || s.Empty() {
		return Rect{}, false
	}
	x, w := overlap(r.X, r.W, s.X, s.W)
	y, h := overlap(r.Y, r.H, s.Y, s.H)
	out := Rect{X: x, Y: y, W: w, H: h}
	return out, !out.Empty()
}

// overlap intersects the spans [a, a+aw) and [b, b+bw) and returns the start
// and length of the result. Far edges are never formed, so spans reaching
// past math.MaxInt are truncated instead of wrapping. aw and bw are positive.
func overlap(a, aw, b, bw int) (int, int) {
	start := max(a, b)
	return start, min(remaining(a, aw, start), remaining(b, bw, start))
}

// remaining returns how much of [a, a+aw) lies at or after start >= a.
func remaining(a, aw, start int) int {
	if a < 0 && start > a+math.MaxInt {
		// start-a exceeds any possible width.
		return 0
	}
	return aw - (start - a)
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// RectFromImage converts an image.Rectangle to a Rect.
func RectFromImage(r image.Rectangle) Rect {
	r = r.Canon()
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}
