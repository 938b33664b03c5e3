package main

// Canvas describes the drawable surface a demo renders into: logical pixel
// dimensions plus the device scale factor applied by the high-fidelity
// variant.
type Canvas struct {
	W, H  int
	Scale float64
}

// fitCanvas returns the largest aspectW:aspectH box that fits inside the given
// outside dimensions, never smaller than minCanvasDim on either edge.
func fitCanvas(outsideW, outsideH int) (int, int) {
	if outsideW < minCanvasDim {
		outsideW = minCanvasDim
	}
	if outsideH < minCanvasDim {
		outsideH = minCanvasDim
	}
	w := outsideW
	h := w * aspectH / aspectW
	if h > outsideH {
		h = outsideH
		w = h * aspectW / aspectH
	}
	if w < minCanvasDim {
		w = minCanvasDim
	}
	if h < minCanvasDim {
		h = minCanvasDim
	}
	return w, h
}

// newCanvas builds a Canvas for the given outside size. scale < 1 is treated
// as 1 so the sampling grid never grows past the logical resolution.
func newCanvas(outsideW, outsideH int, scale float64) Canvas {
	if scale < 1 {
		scale = 1
	}
	w, h := fitCanvas(outsideW, outsideH)
	return Canvas{W: w, H: h, Scale: scale}
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
