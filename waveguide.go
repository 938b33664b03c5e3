package main

import "math"

// Coupled-mode theory for two parallel waveguides: optical power oscillates
// between the guides with propagation distance, at a rate set by the coupling
// coefficient. The rendering wraps this closed form in a traveling Gaussian
// packet so the exchange is visible as a moving pulse.

// couplingCoefficient returns κ for a full power transfer over couplingLength.
func couplingCoefficient(couplingLength float64) float64 {
	return math.Pi / (2 * couplingLength)
}

// effectiveCoupling weakens κ as the guides separate. The quartic form is
// visual calibration, kept opaque.
func effectiveCoupling(kappa, separation float64) float64 {
	s := separation / 3
	return kappa / math.Sqrt(1+s*s*s*s)
}

// guidePowers returns the power fraction in each guide at propagation
// distance x. They sum to exactly 1; the packet envelope only scales the
// result down afterwards.
func guidePowers(kappaEff, x float64) (p1, p2 float64) {
	c := math.Cos(kappaEff * x)
	s := math.Sin(kappaEff * x)
	return c * c, s * s
}

// packetEnvelope is the Gaussian window localizing the traveling pulse, in
// (x − v·t) space.
func packetEnvelope(u, sigma float64) float64 {
	n := u / sigma
	return math.Exp(-n * n)
}

// waveguideSim owns the waveguide demo state: one separation scalar and the
// clock. There is no source list in this demo; clicks mutate separation
// instead.
type waveguideSim struct {
	canvas    Canvas
	tuning    WaveguideTuning
	clockStep float64

	separation float64
	clock      float64
}

func newWaveguideSim(c Canvas, wt WaveguideTuning, clockStep float64) *waveguideSim {
	s := &waveguideSim{canvas: c, tuning: wt, clockStep: clockStep}
	s.Reset()
	return s
}

func (s *waveguideSim) Tick() {
	s.clock += s.clockStep
}

// SetSeparationFromClick maps the click's vertical position onto the
// separation range: top of the canvas is touching guides, bottom is maximum
// separation.
func (s *waveguideSim) SetSeparationFromClick(y float64) {
	frac := y / float64(s.canvas.H)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	s.separation = frac * s.tuning.MaxSeparation
}

// Reset restores the default separation and rewinds the clock.
func (s *waveguideSim) Reset() {
	s.separation = s.tuning.DefaultSeparation
	s.clock = 0
}

func (s *waveguideSim) Resize(c Canvas) {
	s.canvas = c
	s.Reset()
}

// guideCenters returns the y coordinates of the two guide centerlines. The
// visual gap widens with separation so the parameter reads directly off the
// screen.
func (s *waveguideSim) guideCenters() (float64, float64) {
	h := float64(s.canvas.H)
	gap := h*0.12 + s.separation*h*0.025
	mid := h / 2
	return mid - gap/2, mid + gap/2
}

// packetPosition returns the packet center, wrapped so it re-enters from the
// left after leaving the canvas.
func (s *waveguideSim) packetPosition() float64 {
	w := float64(s.canvas.W)
	margin := 2 * s.tuning.PacketSigma
	span := w + 2*margin
	return math.Mod(s.tuning.Velocity*s.clock, span) - margin
}

// waveguideColor maps a signed field value and a band intensity to RGB.
// Positive field tints red, negative blue; low magnitude trends white, full
// magnitude is fully saturated, and intensity scales everything up from the
// dark baseline. Per-channel by design of the original look; kept opaque.
func waveguideColor(signed, intensity, baseline float64) (byte, byte, byte) {
	m := math.Abs(signed)
	if m > 1 {
		m = 1
	}
	if intensity > 1 {
		intensity = 1
	}
	r, g, b := 1.0, 1-m, 1-m
	if signed < 0 {
		r, g, b = 1-m, 1-m, 1.0
	}
	scale := baseline + (1-baseline)*intensity
	return clampChannel(255 * r * scale),
		clampChannel(255 * g * scale),
		clampChannel(255 * b * scale)
}

// renderWaveguide paints the coupled-guide field into the frame buffer and
// records the signed field in the sample grid.
func renderWaveguide(fb *frameBuffer, s *waveguideSim) {
	wt := s.tuning
	kappaEff := effectiveCoupling(couplingCoefficient(wt.CouplingLength), s.separation)
	packetX := s.packetPosition()
	y1, y2 := s.guideCenters()

	// Everything that depends only on x is hoisted out of the row loops.
	amp1 := make([]float64, fb.gw)
	amp2 := make([]float64, fb.gw)
	phase := make([]float64, fb.gw)
	env := make([]float64, fb.gw)
	for gx := 0; gx < fb.gw; gx++ {
		x := float64(gx * fb.step)
		p1, p2 := guidePowers(kappaEff, x)
		amp1[gx] = math.Sqrt(p1)
		amp2[gx] = math.Sqrt(p2)
		u := x - packetX
		phase[gx] = math.Sin(wt.Beta * u)
		env[gx] = packetEnvelope(u, wt.PacketSigma)
	}

	rowParallel(fb.gh, func(gy0, gy1 int) {
		for gy := gy0; gy < gy1; gy++ {
			y := float64(gy * fb.step)
			d1 := (y - y1) / wt.GuideHalfWidth
			d2 := (y - y2) / wt.GuideHalfWidth
			w1 := math.Exp(-d1 * d1)
			w2 := math.Exp(-d2 * d2)
			for gx := 0; gx < fb.gw; gx++ {
				e := env[gx]
				signed := (w1*amp1[gx] + w2*amp2[gx]) * e * phase[gx]
				intensity := (w1*amp1[gx] + w2*amp2[gx]) * e
				fb.vals[gy*fb.gw+gx] = signed
				r, g, b := waveguideColor(signed, intensity, wt.Baseline)
				fb.setBlock(gx, gy, r, g, b)
			}
		}
	})
}
