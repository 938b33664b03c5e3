package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestTelemetryWindowAggregation(t *testing.T) {
	dir := t.TempDir()
	tc, err := newTelemetryCollector(dir, "testdemo")
	if err != nil {
		t.Fatal(err)
	}

	vals := []float64{-2, 0, 1, 3}
	for i := 0; i < telemetryWindowTicks; i++ {
		tc.Record(2.0, vals, 5)
	}
	if err := tc.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "testdemo_frames.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("CSV has %d lines, want header plus one window row", len(lines))
	}
	header := lines[0]
	for _, col := range []string{"window_end", "render_ms_mean", "field_min", "field_max", "field_mean_abs", "sources"} {
		if !strings.Contains(header, col) {
			t.Errorf("header %q missing column %q", header, col)
		}
	}
	fields := strings.Split(lines[1], ",")
	if len(fields) != 6 {
		t.Fatalf("row has %d fields, want 6: %q", len(fields), lines[1])
	}
	if fields[0] != "60" {
		t.Errorf("window_end = %q, want 60", fields[0])
	}
	if fields[2] != "-2" {
		t.Errorf("field_min = %q, want -2", fields[2])
	}
	if fields[3] != "3" {
		t.Errorf("field_max = %q, want 3", fields[3])
	}
	if fields[5] != "5" {
		t.Errorf("sources = %q, want 5", fields[5])
	}
}

func TestTelemetryMeanAbs(t *testing.T) {
	dir := t.TempDir()
	tc, err := newTelemetryCollector(dir, "meanabs")
	if err != nil {
		t.Fatal(err)
	}
	defer tc.Close()

	tc.Record(1, []float64{-2, 2}, 0)
	// Mean |f| of {-2, 2} is 2; the window has not flushed yet.
	if got := tc.absSum / float64(tc.absCount); !scalar.EqualWithinAbs(got, 2, 1e-12) {
		t.Errorf("running mean abs = %v, want 2", got)
	}
}

func TestTelemetryPartialWindowFlushOnClose(t *testing.T) {
	dir := t.TempDir()
	tc, err := newTelemetryCollector(dir, "partial")
	if err != nil {
		t.Fatal(err)
	}
	tc.Record(1, []float64{1}, 1)
	tc.Record(1, []float64{1}, 1)
	if err := tc.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "partial_frames.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("partial window not flushed on close: %d lines", len(lines))
	}
}

func TestTelemetryEmptyGrid(t *testing.T) {
	dir := t.TempDir()
	tc, err := newTelemetryCollector(dir, "empty")
	if err != nil {
		t.Fatal(err)
	}
	// An empty sample grid must not panic the min/max reductions.
	tc.Record(1, nil, 0)
	if err := tc.Close(); err != nil {
		t.Fatal(err)
	}
}
