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

//go:build !noasm && amd64

package asm

import "unsafe"

// HasSSE reports that the SSE non-temporal block store is compiled in.
const HasSSE = true

// StreamBlocks fills dst with color using non-temporal (cache-bypassing)
// 128-bit stores, followed by a store fence.
func StreamBlocks(dst []byte, color uint32) {
	blocks := len(dst) / BlockSize
	if blocks == 0 {
		return
	}
	streamBlocksSSE(unsafe.Pointer(&dst[0]), blocks, color)
}

// This function is implemented in sse_amd64.s
//
//go:noescape
func streamBlocksSSE(dst unsafe.Pointer, blocks int, color uint32)
