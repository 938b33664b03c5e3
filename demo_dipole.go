package main

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// dipoleDemo renders superposed dipole radiators. The two registered variants
// differ only in tuning (falloff exponent, pattern floor, tone map) and in
// whether axis markers and device-scale sampling are on.
type dipoleDemo struct {
	name   string
	sim    *sourceSim
	tuning PointSourceTuning
	params fieldParams
	tone   toneMapFunc

	showAxes bool
	sampler  fieldSampler // optional GPU path, nil for CPU sampling
}

func newDipoleDemo(name string, ps PointSourceTuning, clockStep float64, showAxes bool, rng *rand.Rand, sampler fieldSampler) *dipoleDemo {
	return &dipoleDemo{
		name:     name,
		tuning:   ps,
		params:   newFieldParams(ps),
		tone:     selectToneMap(ps.ToneMap, ps.Gain),
		showAxes: showAxes,
		sampler:  sampler,
		sim: newSourceSim(Canvas{W: defaultWindowW, H: defaultWindowH, Scale: 1},
			ps, clockStep, randomDipole, canonicalDipoles, rng),
	}
}

func (d *dipoleDemo) Name() string       { return d.name }
func (d *dipoleDemo) SampleStep() int    { return d.tuning.SampleStep }
func (d *dipoleDemo) Resize(c Canvas)    { d.sim.Resize(c) }
func (d *dipoleDemo) Click(x, y float64) { d.sim.AddAt(x, y) }
func (d *dipoleDemo) DoubleClick()       { d.sim.Reset() }
func (d *dipoleDemo) Tick()              { d.sim.Tick() }

func (d *dipoleDemo) Render(fb *frameBuffer) {
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
	paintGray(fb, d.tone)
}

func (d *dipoleDemo) Overlay(screen *ebiten.Image) {
	if d.showAxes {
		drawDipoleAxes(screen, d.sim.sources)
	}
}
