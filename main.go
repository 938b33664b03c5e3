package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	tuning, err := LoadTuning(*tuningFlag)
	if err != nil {
		log.Fatalf("loading tuning: %v", err)
	}

	if *recordProfileFlag != "" {
		stop, err := startCPUProfile(*recordProfileFlag)
		if err != nil {
			log.Fatalf("starting CPU profile: %v", err)
		}
		defer stop()
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var sampler fieldSampler
	if *openCLSamplerFlag {
		maxSources := tuning.Interference.MaxSources
		if tuning.Dipole.MaxSources > maxSources {
			maxSources = tuning.Dipole.MaxSources
		}
		s, err := newOpenCLFieldSampler(maxSources)
		if err != nil {
			log.Printf("OpenCL sampler unavailable, using CPU sampling: %v", err)
		} else {
			log.Printf("OpenCL sampler enabled (device: %s)", s.DeviceName())
			sampler = s
		}
	}

	host := &demoHost{}
	switch *demoFlag {
	case "interference":
		d := newInterferenceDemo(tuning, rng, sampler)
		host.d = d
		host.sources = func() int { return len(d.sim.sources) }
	case "dipole":
		d := newDipoleDemo("dipole", tuning.Dipole, tuning.ClockStep, true, rng, sampler)
		host.d = d
		host.sources = func() int { return len(d.sim.sources) }
	case "dipole-hd":
		d := newDipoleDemo("dipole-hd", tuning.DipoleHD, tuning.ClockStep, false, rng, sampler)
		host.d = d
		host.sources = func() int { return len(d.sim.sources) }
		host.useDeviceScale = true
	case "waveguide":
		host.d = newWaveguideDemo(tuning)
	default:
		log.Fatalf("unknown demo %q (want interference, dipole, dipole-hd, or waveguide)", *demoFlag)
	}

	if *attractFlag {
		host.attract = newAttractor(time.Now().UnixNano())
	}
	if *telemetryDirFlag != "" {
		tc, err := newTelemetryCollector(*telemetryDirFlag, host.d.Name())
		if err != nil {
			log.Printf("telemetry disabled: %v", err)
		} else {
			host.telemetry = tc
			defer tc.Close()
		}
	}

	log.Printf("starting %s demo", host.d.Name())
	ebiten.SetWindowSize(defaultWindowW, defaultWindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(fmt.Sprintf("fieldlab - %s", host.d.Name()))
	ebiten.SetTPS(defaultTPS)
	if err := ebiten.RunGame(host); err != nil {
		log.Fatalf("run: %v", err)
	}
}
