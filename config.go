package main

import "time"

// Structural constants shared by every demo. Visual tuning values (wavelengths,
// gains, falloff ranges) live in the embedded tuning file instead; see
// tuning.go.
const (
	defaultWindowW = 960
	defaultWindowH = 540

	// The drawable surface is always the largest 16:9 box that fits the
	// window.
	aspectW = 16
	aspectH = 9

	defaultTPS = 60.0

	// Clicks closer together than this in time and space count as a
	// double-click.
	doubleClickWindow = 350 * time.Millisecond
	doubleClickSlopPx = 6.0

	// Source marker overlay radius, interference demo.
	markerRadiusPx = 4.0

	// Dipole axis marker half-length, basic dipole demo.
	axisMarkerHalfPx = 10.0

	// Telemetry aggregation window, in ticks.
	telemetryWindowTicks = 60

	// Attract mode: synthetic click cadence and noise step.
	attractClickEvery  = 150
	attractNoiseStep   = 0.004
	attractDoubleEvery = 12 // every Nth synthetic click is a reset

	minCanvasDim = 32
)
