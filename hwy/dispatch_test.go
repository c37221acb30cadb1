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

package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCapabilitiesLevel(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		want DispatchLevel
	}{
		{"none", Capabilities{}, DispatchScalar},
		{"sse2", Capabilities{SSE2: true}, DispatchSSE2},
		{"avx2", Capabilities{SSE2: true, AVX2: true}, DispatchAVX2},
		{"neon", Capabilities{NEON: true}, DispatchNEON},
		{"all", Capabilities{SSE2: true, AVX2: true, NEON: true}, DispatchNEON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.caps.Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCapabilitiesHas(t *testing.T) {
	c := Capabilities{SSE2: true}
	if !c.Has(DispatchScalar) {
		t.Error("scalar must always be present")
	}
	if !c.Has(DispatchSSE2) {
		t.Error("Has(sse2) = false, want true")
	}
	if c.Has(DispatchAVX2) || c.Has(DispatchNEON) {
		t.Error("Has reported an instruction set that was not set")
	}
	if c.Has(DispatchLevel(-1)) {
		t.Error("Has(unknown) = true, want false")
	}
}

func TestCapabilitiesString(t *testing.T) {
	if got := Scalar().String(); got != "scalar" {
		t.Errorf("Scalar().String() = %q, want scalar", got)
	}
	if got := (Capabilities{SSE2: true, AVX2: true}).String(); got != "sse2+avx2" {
		t.Errorf("String() = %q, want sse2+avx2", got)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("PIXFILL_NO_SIMD", tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestDetectHonorsNoSimd(t *testing.T) {
	t.Setenv("PIXFILL_NO_SIMD", "1")
	if got := Detect(); got != Scalar() {
		t.Errorf("Detect() with PIXFILL_NO_SIMD = %+v, want scalar", got)
	}
}

func TestCurrentIsStable(t *testing.T) {
	if Current() != Current() {
		t.Error("Current() changed between calls")
	}
	t.Logf("detected: %v (level %v)", Current(), Current().Level())
}
