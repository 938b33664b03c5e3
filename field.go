package main

import (
	"runtime"
	"sync"
)

// frameBuffer holds one demo's full-canvas RGBA pixels plus the coarse grid of
// field samples behind them. Samples are taken every step pixels and
// replicated across their step×step block; the blockiness is an intentional
// throughput trade, not interpolation done badly.
type frameBuffer struct {
	w, h int
	step int

	// sample grid dimensions
	gw, gh int

	pix  []byte
	vals []float64
}

func newFrameBuffer(w, h, step int) *frameBuffer {
	if step < 1 {
		step = 1
	}
	gw := (w + step - 1) / step
	gh := (h + step - 1) / step
	return &frameBuffer{
		w: w, h: h, step: step,
		gw: gw, gh: gh,
		pix:  make([]byte, w*h*4),
		vals: make([]float64, gw*gh),
	}
}

// setBlock fills the step×step pixel block behind sample (gx, gy) with one
// opaque color.
func (fb *frameBuffer) setBlock(gx, gy int, r, g, b byte) {
	x0 := gx * fb.step
	y0 := gy * fb.step
	x1 := x0 + fb.step
	if x1 > fb.w {
		x1 = fb.w
	}
	y1 := y0 + fb.step
	if y1 > fb.h {
		y1 = fb.h
	}
	for y := y0; y < y1; y++ {
		base := (y*fb.w + x0) * 4
		for x := x0; x < x1; x++ {
			fb.pix[base] = r
			fb.pix[base+1] = g
			fb.pix[base+2] = b
			fb.pix[base+3] = 255
			base += 4
		}
	}
}

// rowParallel splits rows [0, rows) into one chunk per CPU and runs fn on each
// chunk concurrently, returning once all chunks finish.
func rowParallel(rows int, fn func(y0, y1 int)) {
	workers := runtime.NumCPU()
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		fn(0, rows)
		return
	}
	per := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		y0 := i * per
		if y0 >= rows {
			break
		}
		y1 := y0 + per
		if y1 > rows {
			y1 = rows
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

// fieldSampler fills a coarse sample grid with superposed field values. The
// OpenCL build provides a GPU implementation; see opencl_field.go.
type fieldSampler interface {
	Sample(vals []float64, gw, gh, step int, sources []Source, t float64, p fieldParams) error
	DeviceName() string
	Close()
}

// sampleSources fills fb.vals with the superposed field of all sources on the
// CPU, rows fanned out across cores.
func sampleSources(fb *frameBuffer, sources []Source, t float64, p fieldParams) {
	rowParallel(fb.gh, func(gy0, gy1 int) {
		for gy := gy0; gy < gy1; gy++ {
			y := float64(gy * fb.step)
			row := fb.vals[gy*fb.gw : (gy+1)*fb.gw]
			for gx := range row {
				row[gx] = sumField(sources, float64(gx*fb.step), y, t, p)
			}
		}
	})
}

// paintGray maps every sampled value through the tone function and replicates
// it into the pixel buffer as monochrome blocks.
func paintGray(fb *frameBuffer, tone toneMapFunc) {
	rowParallel(fb.gh, func(gy0, gy1 int) {
		for gy := gy0; gy < gy1; gy++ {
			for gx := 0; gx < fb.gw; gx++ {
				v := tone(fb.vals[gy*fb.gw+gx])
				fb.setBlock(gx, gy, v, v, v)
			}
		}
	})
}
