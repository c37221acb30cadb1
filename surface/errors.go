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

import "errors"

var (
	// ErrInvalidParameter is returned for a nil surface, a nil rectangle
	// list, or surface geometry that does not fit its pixel buffer.
	ErrInvalidParameter = errors.New("surface: invalid parameter")

	// ErrNotLocked is returned when the surface pixels are not accessible.
	ErrNotLocked = errors.New("surface: pixels not locked")

	// ErrUnsupportedFormat is returned for pixel widths without a fill
	// kernel, and for 4-bit surfaces unless the whole surface is filled.
	ErrUnsupportedFormat = errors.New("surface: unsupported pixel format")
)
