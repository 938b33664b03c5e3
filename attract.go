package main

import (
	"github.com/aquilax/go-perlin"
)

// attractor drives the unattended demo mode: a virtual pointer wanders the
// canvas along smooth Perlin-noise paths and clicks every few seconds, with an
// occasional double-click to clear the accumulated sources.
type attractor struct {
	noise *perlin.Perlin
	t     float64
	ticks int
	count int
}

func newAttractor(seed int64) *attractor {
	return &attractor{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

// position maps the noise pair at the current path parameter into canvas
// coordinates, clamped to the bounds.
func (a *attractor) position(c Canvas) (float64, float64) {
	nx := a.noise.Noise2D(a.t, 0.5)
	ny := a.noise.Noise2D(0.5, a.t)
	x := (nx*0.9 + 0.5) * float64(c.W)
	y := (ny*0.9 + 0.5) * float64(c.H)
	if x < 0 {
		x = 0
	} else if x > float64(c.W-1) {
		x = float64(c.W - 1)
	}
	if y < 0 {
		y = 0
	} else if y > float64(c.H-1) {
		y = float64(c.H - 1)
	}
	return x, y
}

// Tick advances the pointer path one frame and reports whether a synthetic
// click fired this tick, and whether it was a double-click.
func (a *attractor) Tick(c Canvas) (x, y float64, click, double bool) {
	a.t += attractNoiseStep
	a.ticks++
	x, y = a.position(c)
	if a.ticks < attractClickEvery {
		return x, y, false, false
	}
	a.ticks = 0
	a.count++
	if a.count%attractDoubleEvery == 0 {
		return x, y, true, true
	}
	return x, y, true, false
}
