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

// Command fillinfo reports which fill kernels this binary selects on the
// host CPU, and optionally measures fill throughput.
//
// Usage:
//
//	fillinfo                         # capabilities and kernel per pixel width
//	fillinfo -bench -size 1920x1080  # also time full-surface fills
//	fillinfo -scalar -bench          # same, forcing the scalar kernels
//
// Set PIXFILL_NO_SIMD=1 to make detection report no SIMD support.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ajroetker/go-pixfill/fill"
	"github.com/ajroetker/go-pixfill/hwy"
	"github.com/ajroetker/go-pixfill/surface"
)

var (
	bench   = flag.Bool("bench", false, "Time full-surface fills for every pixel width")
	size    = flag.String("size", "1920x1080", "Surface size for -bench, as WIDTHxHEIGHT")
	iters   = flag.Int("n", 200, "Fills per pixel width for -bench")
	scalar  = flag.Bool("scalar", false, "Use the scalar kernels regardless of CPU support")
	verbose = flag.Bool("v", false, "Log kernel selection to stderr")
)

var formats = []surface.PixelFormat{surface.Index8, surface.RGB565, surface.RGB24, surface.RGBA32}

func main() {
	flag.Parse()

	if *verbose {
		surface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	caps := hwy.Current()
	if *scalar {
		caps = hwy.Scalar()
	}
	f := surface.NewFiller(caps)
	report(os.Stdout, f)

	if !*bench {
		return
	}
	var w, h int
	if _, err := fmt.Sscanf(*size, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid -size %q\n", *size)
		os.Exit(1)
	}
	if err := runBench(os.Stdout, f, w, h, *iters); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func report(out io.Writer, f *surface.Filler) {
	caps := f.Capabilities()
	fmt.Fprintf(out, "capabilities: %v (level %v)\n", caps, caps.Level())
	for _, tier := range []hwy.DispatchLevel{hwy.DispatchNEON, hwy.DispatchAVX2, hwy.DispatchSSE2} {
		fmt.Fprintf(out, "  %-6s cpu=%-5v compiled=%v\n", tier, caps.Has(tier), fill.Compiled(tier))
	}
	for bpp := 1; bpp <= 4; bpp++ {
		k, _ := f.Kernel(bpp)
		fmt.Fprintf(out, "  %d bytes/pixel -> %v\n", bpp, k)
	}
}

func runBench(out io.Writer, f *surface.Filler, w, h, n int) error {
	for _, format := range formats {
		s, err := surface.New(w, h, format)
		if err != nil {
			return err
		}
		rects := []surface.Rect{s.Bounds()}

		start := time.Now()
		for i := range n {
			if err := f.FillRects(s, rects, uint32(i)*0x01010101); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)

		bytes := float64(len(s.Bytes())) * float64(n)
		fmt.Fprintf(out, "%-12v %8.2f GB/s  (%v per fill)\n",
			format, bytes/elapsed.Seconds()/1e9, elapsed/time.Duration(max(n, 1)))
	}
	return nil
}
