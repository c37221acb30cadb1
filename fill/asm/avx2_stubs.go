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

//go:build !amd64 || !goexperiment.simd

package asm

// HasAVX2 reports that the AVX2 block store is compiled in.
const HasAVX2 = false

// Stub implementation for builds without GOEXPERIMENT=simd.
// It should never be called - the fill package checks HasAVX2 first.
func AVX2Blocks(dst []byte, color uint32) { panic("AVX2 not available") }
