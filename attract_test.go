package main

import "testing"

func TestAttractorStaysInBounds(t *testing.T) {
	a := newAttractor(42)
	c := testCanvas()
	for i := 0; i < 10000; i++ {
		x, y, _, _ := a.Tick(c)
		if x < 0 || x > float64(c.W-1) || y < 0 || y > float64(c.H-1) {
			t.Fatalf("tick %d: pointer at (%v, %v) outside %dx%d", i, x, y, c.W, c.H)
		}
	}
}

func TestAttractorClickCadence(t *testing.T) {
	a := newAttractor(7)
	c := testCanvas()
	clicks := 0
	doubles := 0
	ticks := attractClickEvery * attractDoubleEvery * 2
	for i := 0; i < ticks; i++ {
		if _, _, click, double := a.Tick(c); click {
			clicks++
			if double {
				doubles++
			}
		}
	}
	if want := 2 * attractDoubleEvery; clicks != want {
		t.Errorf("clicks = %d, want %d", clicks, want)
	}
	if doubles != 2 {
		t.Errorf("double-clicks = %d, want 2", doubles)
	}
}
