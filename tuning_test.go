package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTuningDefaults(t *testing.T) {
	tuning, err := LoadTuning("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}
	if tuning.ClockStep <= 0 {
		t.Errorf("clock_step = %v, want positive", tuning.ClockStep)
	}
	if tuning.Interference.MaxSources != 8 {
		t.Errorf("interference max_sources = %d, want 8", tuning.Interference.MaxSources)
	}
	if tuning.Dipole.MaxSources != 6 {
		t.Errorf("dipole max_sources = %d, want 6", tuning.Dipole.MaxSources)
	}
	if tuning.Dipole.FalloffExp != 1.0 {
		t.Errorf("dipole falloff_exp = %v, want 1.0", tuning.Dipole.FalloffExp)
	}
	if tuning.DipoleHD.FalloffExp != 0.55 {
		t.Errorf("dipole_hd falloff_exp = %v, want 0.55", tuning.DipoleHD.FalloffExp)
	}
	if tuning.DipoleHD.PatternFloor != 0.2 {
		t.Errorf("dipole_hd pattern_floor = %v, want 0.2", tuning.DipoleHD.PatternFloor)
	}
	if tuning.Dipole.ToneMap != toneMapClamp || tuning.DipoleHD.ToneMap != toneMapTanh {
		t.Errorf("tone maps = %q/%q, want clamp/tanh", tuning.Dipole.ToneMap, tuning.DipoleHD.ToneMap)
	}
}

func TestLoadTuningOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	err := os.WriteFile(path, []byte("interference:\n  wavelength: 55\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("loading override: %v", err)
	}
	if tuning.Interference.Wavelength != 55 {
		t.Errorf("overridden wavelength = %v, want 55", tuning.Interference.Wavelength)
	}
	// Fields the override does not mention keep their embedded defaults.
	if tuning.Interference.MaxRange != 400 {
		t.Errorf("max_range = %v, want default 400", tuning.Interference.MaxRange)
	}
	if tuning.Waveguide.CouplingLength != 260 {
		t.Errorf("coupling_length = %v, want default 260", tuning.Waveguide.CouplingLength)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing override file")
	}
}

func TestTuningValidate(t *testing.T) {
	base := func(t *testing.T) *Tuning {
		t.Helper()
		tuning, err := LoadTuning("")
		if err != nil {
			t.Fatal(err)
		}
		return tuning
	}
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero clock step", func(tu *Tuning) { tu.ClockStep = 0 }},
		{"negative wavelength", func(tu *Tuning) { tu.Dipole.Wavelength = -1 }},
		{"zero max sources", func(tu *Tuning) { tu.Interference.MaxSources = 0 }},
		{"inverted frequency range", func(tu *Tuning) { tu.Dipole.FreqMin = 0.5; tu.Dipole.FreqMax = 0.1 }},
		{"unknown tone map", func(tu *Tuning) { tu.DipoleHD.ToneMap = "sigmoid" }},
		{"zero sample step", func(tu *Tuning) { tu.Waveguide.SampleStep = 0 }},
		{"inverted separation range", func(tu *Tuning) { tu.Waveguide.MaxSeparation = 1; tu.Waveguide.DefaultSeparation = 3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := base(t)
			tt.mutate(tuning)
			if err := tuning.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
