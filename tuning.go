package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultTuningYAML []byte

// Tuning holds every visual calibration parameter for the demos. Defaults are
// embedded at build time; a -tuning file overrides only the fields it sets.
type Tuning struct {
	// ClockStep is the simulation time advanced per animation tick.
	ClockStep float64 `yaml:"clock_step"`

	Interference PointSourceTuning `yaml:"interference"`
	Dipole       PointSourceTuning `yaml:"dipole"`
	DipoleHD     PointSourceTuning `yaml:"dipole_hd"`
	Waveguide    WaveguideTuning   `yaml:"waveguide"`
}

// PointSourceTuning configures the two point-source demo families. The
// interference demo ignores the dipole-only fields.
type PointSourceTuning struct {
	Wavelength   float64 `yaml:"wavelength"`
	Amplitude    float64 `yaml:"amplitude"`
	MaxRange     float64 `yaml:"max_range"`     // interference only: linear falloff range
	FalloffExp   float64 `yaml:"falloff_exp"`   // dipole only: 1/d^p
	PatternFloor float64 `yaml:"pattern_floor"` // dipole only: 0 = exact axis null
	Gain         float64 `yaml:"gain"`
	ToneMap      string  `yaml:"tone_map"` // clamp or tanh (dipole only)
	MaxSources   int     `yaml:"max_sources"`
	FreqMin      float64 `yaml:"freq_min"`
	FreqMax      float64 `yaml:"freq_max"`
	SampleStep   int     `yaml:"sample_step"`
}

// WaveguideTuning configures the coupled-waveguide demo.
type WaveguideTuning struct {
	CouplingLength    float64 `yaml:"coupling_length"`
	Beta              float64 `yaml:"beta"`
	Velocity          float64 `yaml:"velocity"`
	PacketSigma       float64 `yaml:"packet_sigma"`
	GuideHalfWidth    float64 `yaml:"guide_half_width"`
	DefaultSeparation float64 `yaml:"default_separation"`
	MaxSeparation     float64 `yaml:"max_separation"`
	Baseline          float64 `yaml:"baseline"`
	SampleStep        int     `yaml:"sample_step"`
}

// LoadTuning parses the embedded defaults and, when path is non-empty, layers
// the override file on top.
func LoadTuning(path string) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(defaultTuningYAML, &t); err != nil {
		return nil, fmt.Errorf("parsing embedded tuning defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading tuning override: %w", err)
		}
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("parsing tuning override %s: %w", path, err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate rejects tuning values that would produce degenerate rendering.
func (t *Tuning) Validate() error {
	if t.ClockStep <= 0 {
		return fmt.Errorf("clock_step must be positive, got %v", t.ClockStep)
	}
	for name, ps := range map[string]*PointSourceTuning{
		"interference": &t.Interference,
		"dipole":       &t.Dipole,
		"dipole_hd":    &t.DipoleHD,
	} {
		if ps.Wavelength <= 0 {
			return fmt.Errorf("%s.wavelength must be positive", name)
		}
		if ps.MaxSources < 1 {
			return fmt.Errorf("%s.max_sources must be at least 1", name)
		}
		if ps.FreqMin <= 0 || ps.FreqMax < ps.FreqMin {
			return fmt.Errorf("%s frequency range [%v, %v] is invalid", name, ps.FreqMin, ps.FreqMax)
		}
		if ps.SampleStep < 1 {
			return fmt.Errorf("%s.sample_step must be at least 1", name)
		}
	}
	switch t.Dipole.ToneMap {
	case toneMapClamp, toneMapTanh:
	default:
		return fmt.Errorf("dipole.tone_map %q is not clamp or tanh", t.Dipole.ToneMap)
	}
	switch t.DipoleHD.ToneMap {
	case toneMapClamp, toneMapTanh:
	default:
		return fmt.Errorf("dipole_hd.tone_map %q is not clamp or tanh", t.DipoleHD.ToneMap)
	}
	wg := &t.Waveguide
	if wg.CouplingLength <= 0 {
		return fmt.Errorf("waveguide.coupling_length must be positive")
	}
	if wg.PacketSigma <= 0 || wg.GuideHalfWidth <= 0 {
		return fmt.Errorf("waveguide gaussian widths must be positive")
	}
	if wg.SampleStep < 1 {
		return fmt.Errorf("waveguide.sample_step must be at least 1")
	}
	if wg.DefaultSeparation < 0 || wg.MaxSeparation < wg.DefaultSeparation {
		return fmt.Errorf("waveguide separation range [%v, %v] is invalid", wg.DefaultSeparation, wg.MaxSeparation)
	}
	return nil
}
