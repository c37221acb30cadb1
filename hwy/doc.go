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

// Package hwy detects which SIMD instruction sets the host CPU offers.
//
// Detection runs once at package initialization and the result is exposed
// as a Capabilities value:
//
//	caps := hwy.Current()
//	if caps.Has(hwy.DispatchSSE2) {
//	    // ...
//	}
//
// Setting PIXFILL_NO_SIMD to a true value makes detection report no SIMD
// support, which forces every consumer onto its scalar path. This is useful
// for testing and for comparing against the reference implementation.
package hwy
