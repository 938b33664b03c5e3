package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay geometry drawn after the field buffer: source markers, dipole axes,
// guide centerlines. Purely cosmetic, no physics feedback.

var (
	markerColor = color.RGBA{255, 80, 80, 255}
	axisColor   = color.RGBA{90, 160, 255, 220}
	guideColor  = color.RGBA{230, 230, 230, 200}
)

// drawSourceMarkers paints a small filled circle at each source position.
func drawSourceMarkers(screen *ebiten.Image, sources []Source) {
	for _, s := range sources {
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), markerRadiusPx, markerColor, true)
	}
}

// drawDipoleAxes strokes a short segment through each dipole along its axis.
func drawDipoleAxes(screen *ebiten.Image, sources []Source) {
	for _, s := range sources {
		dx := math.Cos(s.Axis) * axisMarkerHalfPx
		dy := math.Sin(s.Axis) * axisMarkerHalfPx
		vector.StrokeLine(screen,
			float32(s.X-dx), float32(s.Y-dy),
			float32(s.X+dx), float32(s.Y+dy),
			2, axisColor, true)
	}
}

// drawGuideLines strokes the two waveguide centerlines across the canvas.
func drawGuideLines(screen *ebiten.Image, y1, y2 float64) {
	w := float32(screen.Bounds().Dx())
	vector.StrokeLine(screen, 0, float32(y1), w, float32(y1), 1, guideColor, true)
	vector.StrokeLine(screen, 0, float32(y2), w, float32(y2), 1, guideColor, true)
}
