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

// Package surface fills rectangles of a locked pixel surface with a solid
// color.
//
// FillRect and FillRects clip every rectangle against the surface's clip
// rectangle and hand the result to the fastest kernel from package fill for
// the surface's pixel width:
//
//	s, _ := surface.New(640, 480, surface.RGBA32)
//	s.SetClipRect(&surface.Rect{X: 0, Y: 0, W: 320, H: 480})
//	err := surface.FillRects(s, []surface.Rect{
//	    {X: 10, Y: 10, W: 100, H: 50},
//	    {X: 300, Y: 10, W: 100, H: 50}, // clipped to 20 pixels wide
//	}, 0xFF0000FF)
//
// Colors are already packed for the format: the low BytesPerPixel bytes of
// the uint32 are the pixel value. No conversion happens here.
//
// Surfaces created with MustLock expose their pixels only between Lock and
// Unlock; filling an unlocked one fails with ErrNotLocked. The caller owns
// exclusive access to the pixels for the duration of a fill; nothing in this
// package synchronizes concurrent fills of the same surface.
package surface
