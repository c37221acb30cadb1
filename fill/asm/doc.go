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

// Package asm holds the bulk block stores used by the vectorized fill
// kernels. Every routine writes len(dst)/BlockSize blocks of 64 bytes, each
// block being sixteen copies of a 32-bit color word.
//
// Callers own alignment: dst must start on a 16-byte boundary and its length
// must be a multiple of BlockSize. Routines for instruction sets that are not
// compiled into this build are stubs that panic; check the Has* constants
// before calling.
package asm

// BlockSize is the number of bytes written per loop iteration.
const BlockSize = 64

// Alignment is the address alignment required of dst.
const Alignment = 16
