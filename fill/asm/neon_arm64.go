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

//go:build !noasm && arm64

package asm

import "unsafe"

// HasNEON reports that the NEON block store is compiled in.
const HasNEON = true

// NEONBlocks fills dst with color using four 128-bit NEON registers per
// block and post-incremented stores.
func NEONBlocks(dst []byte, color uint32) {
	blocks := len(dst) / BlockSize
	if blocks == 0 {
		return
	}
	storeBlocksNEON(unsafe.Pointer(&dst[0]), blocks, color)
}

// This function is implemented in neon_arm64.s
//
//go:noescape
func storeBlocksNEON(dst unsafe.Pointer, blocks int, color uint32)
