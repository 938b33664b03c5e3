package main

import (
	"math"
	"math/rand"
	"time"
)

// newSourceFunc builds the source a click at (x, y) adds.
type newSourceFunc func(x, y float64, ps PointSourceTuning, rng *rand.Rand) Source

// canonicalFunc builds the initial source configuration for a canvas. It is
// re-invoked on reset and on resize so positions always derive from the
// current dimensions.
type canonicalFunc func(c Canvas, ps PointSourceTuning) []Source

// sourceSim owns the mutable state of a point-source demo: the bounded source
// list, the simulation clock, and the canvas it is laid out for. All mutation
// happens on the tick goroutine; there is nothing to lock.
type sourceSim struct {
	canvas    Canvas
	tuning    PointSourceTuning
	clockStep float64

	sources []Source
	clock   float64

	rng       *rand.Rand
	newSource newSourceFunc
	canonical canonicalFunc
}

func newSourceSim(c Canvas, ps PointSourceTuning, clockStep float64, mk newSourceFunc, canon canonicalFunc, rng *rand.Rand) *sourceSim {
	s := &sourceSim{
		canvas:    c,
		tuning:    ps,
		clockStep: clockStep,
		rng:       rng,
		newSource: mk,
		canonical: canon,
	}
	s.Reset()
	return s
}

// Tick advances the clock by one frame step.
func (s *sourceSim) Tick() {
	s.clock += s.clockStep
}

// AddAt inserts a new source at the click position, evicting the oldest one
// once the bound is reached.
func (s *sourceSim) AddAt(x, y float64) {
	s.sources = append(s.sources, s.newSource(x, y, s.tuning, s.rng))
	if max := s.tuning.MaxSources; len(s.sources) > max {
		s.sources = s.sources[len(s.sources)-max:]
	}
}

// Reset restores the canonical source configuration and rewinds the clock.
func (s *sourceSim) Reset() {
	s.sources = s.canonical(s.canvas, s.tuning)
	s.clock = 0
}

// Resize adopts new canvas dimensions. Source positions are absolute pixel
// coordinates, so the list is rebuilt for the new canvas rather than carried
// over.
func (s *sourceSim) Resize(c Canvas) {
	s.canvas = c
	s.Reset()
}

// canonicalWaveSources spreads three in-phase wave sources across the canvas
// midline.
func canonicalWaveSources(c Canvas, ps PointSourceTuning) []Source {
	w := float64(c.W)
	y := float64(c.H) / 2
	freqs := []float64{0.05, 0.06, 0.07}
	out := make([]Source, 0, len(freqs))
	for i, f := range freqs {
		out = append(out, Source{
			Kind: sourceWave,
			X:    w * float64(i+1) / 4,
			Y:    y,
			Freq: f,
			Amp:  ps.Amplitude,
		})
	}
	return out
}

// canonicalDipoles places a single horizontal dipole at the canvas center.
func canonicalDipoles(c Canvas, ps PointSourceTuning) []Source {
	return []Source{{
		Kind: sourceDipole,
		X:    float64(c.W) / 2,
		Y:    float64(c.H) / 2,
		Freq: 0.05,
		Amp:  ps.Amplitude,
	}}
}

// clickTracker classifies pointer clicks into single and double clicks. The
// caller supplies timestamps so the window is testable without a real clock.
type clickTracker struct {
	lastAt   time.Time
	lastX    float64
	lastY    float64
	havePrev bool
}

// Observe records a click and reports whether it completed a double-click.
// A double-click consumes both clicks: the next one starts fresh.
func (ct *clickTracker) Observe(now time.Time, x, y float64) bool {
	if ct.havePrev &&
		now.Sub(ct.lastAt) <= doubleClickWindow &&
		math.Hypot(x-ct.lastX, y-ct.lastY) <= doubleClickSlopPx {
		ct.havePrev = false
		return true
	}
	ct.lastAt = now
	ct.lastX = x
	ct.lastY = y
	ct.havePrev = true
	return false
}
