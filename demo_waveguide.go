package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// waveguideDemo visualizes two-mode power transfer between parallel guides.
// Clicks steer the separation parameter instead of adding sources.
type waveguideDemo struct {
	sim *waveguideSim
}

func newWaveguideDemo(t *Tuning) *waveguideDemo {
	return &waveguideDemo{
		sim: newWaveguideSim(Canvas{W: defaultWindowW, H: defaultWindowH, Scale: 1},
			t.Waveguide, t.ClockStep),
	}
}

func (d *waveguideDemo) Name() string    { return "waveguide" }
func (d *waveguideDemo) SampleStep() int { return d.sim.tuning.SampleStep }
func (d *waveguideDemo) Resize(c Canvas) { d.sim.Resize(c) }
func (d *waveguideDemo) DoubleClick()    { d.sim.Reset() }
func (d *waveguideDemo) Tick()           { d.sim.Tick() }

// Click sets the guide separation from the click height; the x coordinate is
// ignored.
func (d *waveguideDemo) Click(_, y float64) {
	d.sim.SetSeparationFromClick(y)
}

func (d *waveguideDemo) Render(fb *frameBuffer) {
	renderWaveguide(fb, d.sim)
}

func (d *waveguideDemo) Overlay(screen *ebiten.Image) {
	y1, y2 := d.sim.guideCenters()
	drawGuideLines(screen, y1, y2)
}
