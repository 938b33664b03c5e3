package main

import (
	"math/rand"
	"sync"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestFrameBufferGridDimensions(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		step   int
		gw, gh int
	}{
		{"exact fit", 100, 60, 2, 50, 30},
		{"remainder rows", 101, 61, 2, 51, 31},
		{"step one", 10, 10, 1, 10, 10},
		{"step clamped to one", 10, 10, 0, 10, 10},
		{"coarse", 960, 540, 3, 320, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := newFrameBuffer(tt.w, tt.h, tt.step)
			if fb.gw != tt.gw || fb.gh != tt.gh {
				t.Errorf("grid = %dx%d, want %dx%d", fb.gw, fb.gh, tt.gw, tt.gh)
			}
			if len(fb.pix) != tt.w*tt.h*4 {
				t.Errorf("pixel buffer %d bytes, want %d", len(fb.pix), tt.w*tt.h*4)
			}
			if len(fb.vals) != tt.gw*tt.gh {
				t.Errorf("sample grid %d entries, want %d", len(fb.vals), tt.gw*tt.gh)
			}
		})
	}
}

func TestSetBlockReplicates(t *testing.T) {
	fb := newFrameBuffer(7, 5, 3)
	fb.setBlock(1, 1, 10, 20, 30)

	// The block behind sample (1,1) spans x 3..5, y 3..4 (clipped at the
	// bottom edge).
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			base := (y*7 + x) * 4
			inBlock := x >= 3 && x < 6 && y >= 3
			if inBlock {
				if fb.pix[base] != 10 || fb.pix[base+1] != 20 || fb.pix[base+2] != 30 || fb.pix[base+3] != 255 {
					t.Errorf("pixel (%d,%d) = %v, want block color", x, y, fb.pix[base:base+4])
				}
			} else if fb.pix[base+3] != 0 {
				t.Errorf("pixel (%d,%d) outside the block was written", x, y)
			}
		}
	}
}

func TestSampleSourcesMatchesDirectEvaluation(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	ps := testWaveTuning()
	p := newFieldParams(ps)
	sources := []Source{
		randomWaveSource(20, 30, ps, rng),
		randomWaveSource(70, 10, ps, rng),
		randomWaveSource(50, 50, ps, rng),
	}
	fb := newFrameBuffer(96, 54, 2)
	sampleSources(fb, sources, 12.3, p)

	for gy := 0; gy < fb.gh; gy++ {
		for gx := 0; gx < fb.gw; gx++ {
			want := sumField(sources, float64(gx*2), float64(gy*2), 12.3, p)
			got := fb.vals[gy*fb.gw+gx]
			if !scalar.EqualWithinAbs(got, want, 1e-12) {
				t.Fatalf("sample (%d,%d) = %v, want %v", gx, gy, got, want)
			}
		}
	}
}

func TestPaintGrayCoversEveryPixel(t *testing.T) {
	fb := newFrameBuffer(33, 19, 4)
	for i := range fb.vals {
		fb.vals[i] = float64(i % 3)
	}
	paintGray(fb, func(f float64) byte { return byte(100 + int(f)) })
	for i := 0; i < len(fb.pix); i += 4 {
		r, g, b, a := fb.pix[i], fb.pix[i+1], fb.pix[i+2], fb.pix[i+3]
		if a != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i/4, a)
		}
		if r != g || g != b {
			t.Fatalf("pixel %d = (%d,%d,%d), want monochrome", i/4, r, g, b)
		}
		if r < 100 || r > 102 {
			t.Fatalf("pixel %d brightness %d outside painted range", i/4, r)
		}
	}
}

func TestRowParallelCoversRowsOnce(t *testing.T) {
	for _, rows := range []int{0, 1, 2, 7, 64, 1000} {
		counts := make([]int32, rows)
		var mu sync.Mutex
		rowParallel(rows, func(y0, y1 int) {
			mu.Lock()
			defer mu.Unlock()
			for y := y0; y < y1; y++ {
				counts[y]++
			}
		})
		for y, c := range counts {
			if c != 1 {
				t.Fatalf("rows=%d: row %d visited %d times", rows, y, c)
			}
		}
	}
}
