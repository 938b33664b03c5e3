package main

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// interferenceDemo sums up to MaxSources wave emitters with linear distance
// falloff and renders the normalized superposition as grayscale.
type interferenceDemo struct {
	sim    *sourceSim
	tuning PointSourceTuning
	params fieldParams

	sampler fieldSampler // optional GPU path, nil for CPU sampling
}

func newInterferenceDemo(t *Tuning, rng *rand.Rand, sampler fieldSampler) *interferenceDemo {
	ps := t.Interference
	return &interferenceDemo{
		tuning:  ps,
		params:  newFieldParams(ps),
		sampler: sampler,
		sim: newSourceSim(Canvas{W: defaultWindowW, H: defaultWindowH, Scale: 1},
			ps, t.ClockStep, randomWaveSource, canonicalWaveSources, rng),
	}
}

func (d *interferenceDemo) Name() string       { return "interference" }
func (d *interferenceDemo) SampleStep() int    { return d.tuning.SampleStep }
func (d *interferenceDemo) Resize(c Canvas)    { d.sim.Resize(c) }
func (d *interferenceDemo) Click(x, y float64) { d.sim.AddAt(x, y) }
func (d *interferenceDemo) DoubleClick()       { d.sim.Reset() }
func (d *interferenceDemo) Tick()              { d.sim.Tick() }

func (d *interferenceDemo) Render(fb *frameBuffer) {
	sampled := false
	if d.sampler != nil {
		if err := d.sampler.Sample(fb.vals, fb.gw, fb.gh, fb.step, d.sim.sources, d.sim.clock, d.params); err != nil {
			log.Printf("GPU sampling failed, falling back to CPU: %v", err)
			d.sampler.Close()
			d.sampler = nil
		} else {
			sampled = true
		}
	}
	if !sampled {
		sampleSources(fb, d.sim.sources, d.sim.clock, d.params)
	}
	n := len(d.sim.sources)
	paintGray(fb, func(f float64) byte { return interferenceBrightness(f, n) })
}

func (d *interferenceDemo) Overlay(screen *ebiten.Image) {
	drawSourceMarkers(screen, d.sim.sources)
}
