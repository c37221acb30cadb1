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

//go:build amd64 && goexperiment.simd

package asm

import (
	"simd/archsimd"
	"unsafe"
)

// HasAVX2 reports that the AVX2 block store is compiled in.
const HasAVX2 = true

// AVX2Blocks fills dst with color using two 256-bit stores per block.
func AVX2Blocks(dst []byte, color uint32) {
	blocks := len(dst) / BlockSize
	if blocks == 0 {
		return
	}
	words := unsafe.Slice((*int32)(unsafe.Pointer(&dst[0])), blocks*BlockSize/4)
	v := archsimd.BroadcastInt32x8(int32(color))
	for i := 0; i+16 <= len(words); i += 16 {
		v.StoreSlice(words[i : i+8])
		v.StoreSlice(words[i+8 : i+16])
	}
}
