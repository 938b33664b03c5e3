package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
)

// frameWindow is one aggregated telemetry row covering telemetryWindowTicks
// frames.
type frameWindow struct {
	WindowEndTick int     `csv:"window_end"`
	RenderMSMean  float64 `csv:"render_ms_mean"`
	FieldMin      float64 `csv:"field_min"`
	FieldMax      float64 `csv:"field_max"`
	FieldMeanAbs  float64 `csv:"field_mean_abs"`
	Sources       int     `csv:"sources"`
}

// telemetryCollector aggregates per-frame field statistics into windows and
// appends them to a CSV file. Everything runs on the frame goroutine; a slow
// flush just lengthens that frame.
type telemetryCollector struct {
	file          *os.File
	headerWritten bool

	tick     int
	frames   int
	msSum    float64
	min      float64
	max      float64
	absSum   float64
	absCount int
	sources  int
}

// newTelemetryCollector opens <dir>/<demo>_frames.csv for the run.
func newTelemetryCollector(dir, demoName string) (*telemetryCollector, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating telemetry directory: %w", err)
	}
	path := filepath.Join(dir, demoName+"_frames.csv")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	tc := &telemetryCollector{file: f}
	tc.resetWindow()
	return tc, nil
}

func (tc *telemetryCollector) resetWindow() {
	tc.frames = 0
	tc.msSum = 0
	tc.min = 0
	tc.max = 0
	tc.absSum = 0
	tc.absCount = 0
	tc.sources = 0
}

// Record folds one frame's sample grid into the current window and flushes a
// row on the window boundary.
func (tc *telemetryCollector) Record(renderMS float64, vals []float64, sources int) {
	tc.tick++
	if len(vals) > 0 {
		mn := floats.Min(vals)
		mx := floats.Max(vals)
		if tc.frames == 0 || mn < tc.min {
			tc.min = mn
		}
		if tc.frames == 0 || mx > tc.max {
			tc.max = mx
		}
		tc.absSum += floats.Norm(vals, 1)
		tc.absCount += len(vals)
	}
	tc.msSum += renderMS
	tc.sources = sources
	tc.frames++
	if tc.frames >= telemetryWindowTicks {
		tc.flushWindow()
	}
}

func (tc *telemetryCollector) flushWindow() {
	if tc.frames == 0 {
		return
	}
	row := frameWindow{
		WindowEndTick: tc.tick,
		RenderMSMean:  tc.msSum / float64(tc.frames),
		FieldMin:      tc.min,
		FieldMax:      tc.max,
		Sources:       tc.sources,
	}
	if tc.absCount > 0 {
		row.FieldMeanAbs = tc.absSum / float64(tc.absCount)
	}
	rows := []frameWindow{row}
	var err error
	if tc.headerWritten {
		err = gocsv.MarshalWithoutHeaders(&rows, tc.file)
	} else {
		err = gocsv.Marshal(&rows, tc.file)
		tc.headerWritten = true
	}
	if err != nil {
		// Telemetry must never take the frame loop down with it.
		fmt.Fprintf(os.Stderr, "telemetry write failed: %v\n", err)
	}
	tc.resetWindow()
}

// Close flushes the partial window and closes the file.
func (tc *telemetryCollector) Close() error {
	if tc == nil {
		return nil
	}
	tc.flushWindow()
	return tc.file.Close()
}
