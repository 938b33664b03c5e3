package main

import (
	"math"
	"math/rand"
)

// sourceKind tags the field formula a Source contributes with.
type sourceKind int

const (
	sourceWave sourceKind = iota
	sourceDipole
)

// Source is a fixed point emitter of a time-varying scalar field. Position
// never changes after creation; interaction replaces sources rather than
// moving them.
type Source struct {
	Kind  sourceKind
	X, Y  float64
	Freq  float64 // angular frequency ω
	Amp   float64
	Phase float64 // wave sources only
	Axis  float64 // dipole orientation angle, radians from +x
}

// fieldParams carries the tuning a field evaluation needs. Building it once
// per frame keeps the per-pixel path free of tuning lookups.
type fieldParams struct {
	waveNumber   float64 // k = 2π/wavelength
	maxRange     float64 // wave sources: linear falloff range
	falloffExp   float64 // dipoles: 1/d^p
	patternFloor float64 // dipoles: 0 keeps the exact axis null
}

// newFieldParams derives per-pixel evaluation constants from demo tuning.
func newFieldParams(ps PointSourceTuning) fieldParams {
	return fieldParams{
		waveNumber:   2 * math.Pi / ps.Wavelength,
		maxRange:     ps.MaxRange,
		falloffExp:   ps.FalloffExp,
		patternFloor: ps.PatternFloor,
	}
}

// FieldAt returns this source's contribution at (x, y) and clock time t.
// Total over its domain: the only guard is the sub-pixel distance cutoff that
// keeps the dipole singularity out of the buffer.
func (s Source) FieldAt(x, y, t float64, p fieldParams) float64 {
	dx := x - s.X
	dy := y - s.Y
	d := math.Hypot(dx, dy)
	switch s.Kind {
	case sourceWave:
		atten := 1 - d/p.maxRange
		if atten <= 0 {
			return 0
		}
		return s.Amp * atten * math.Sin(p.waveNumber*d-s.Freq*t+s.Phase)
	case sourceDipole:
		if d < 1 {
			return 0
		}
		theta := math.Atan2(dy, dx) - s.Axis
		pattern := p.patternFloor + (1-p.patternFloor)*math.Abs(math.Sin(theta))
		return s.Amp / math.Pow(d, p.falloffExp) * pattern * math.Sin(p.waveNumber*d-s.Freq*t)
	}
	return 0
}

// sumField evaluates the linear superposition of every source at one point.
func sumField(sources []Source, x, y, t float64, p fieldParams) float64 {
	var sum float64
	for _, s := range sources {
		sum += s.FieldAt(x, y, t, p)
	}
	return sum
}

// randomWaveSource creates a wave source at the click position with frequency
// and phase drawn from the tuning ranges.
func randomWaveSource(x, y float64, ps PointSourceTuning, rng *rand.Rand) Source {
	return Source{
		Kind:  sourceWave,
		X:     x,
		Y:     y,
		Freq:  ps.FreqMin + rng.Float64()*(ps.FreqMax-ps.FreqMin),
		Amp:   ps.Amplitude,
		Phase: rng.Float64() * 2 * math.Pi,
	}
}

// randomDipole creates a dipole at the click position with a random frequency
// and orientation.
func randomDipole(x, y float64, ps PointSourceTuning, rng *rand.Rand) Source {
	return Source{
		Kind: sourceDipole,
		X:    x,
		Y:    y,
		Freq: ps.FreqMin + rng.Float64()*(ps.FreqMax-ps.FreqMin),
		Amp:  ps.Amplitude,
		Axis: rng.Float64() * math.Pi,
	}
}
