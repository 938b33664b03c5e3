package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// demo is the behavior a single visualization plugs into the shared host:
// react to canvas changes and pointer input, advance its clock once per tick,
// and fill the frame buffer.
type demo interface {
	Name() string
	SampleStep() int
	Resize(c Canvas)
	Click(x, y float64)
	DoubleClick()
	Tick()
	Render(fb *frameBuffer)
	Overlay(screen *ebiten.Image)
}

// demoHost adapts a demo to ebiten's Game interface and owns everything the
// demos share: canvas fitting, click classification, the frame buffer, attract
// mode, telemetry, and the debug HUD.
type demoHost struct {
	d demo

	canvas Canvas
	fb     *frameBuffer

	// useDeviceScale renders at device resolution instead of logical pixels.
	useDeviceScale bool

	clicks    clickTracker
	attract   *attractor
	telemetry *telemetryCollector

	sources func() int // source count for telemetry; nil means 0
}

// Layout reports the 16:9 canvas for the current window. A dimension change
// reallocates the frame buffer and resets the demo; absolute source positions
// do not survive a resize.
func (h *demoHost) Layout(outsideW, outsideH int) (int, int) {
	scale := 1.0
	if h.useDeviceScale {
		scale = ebiten.Monitor().DeviceScaleFactor()
	}
	c := newCanvas(int(float64(outsideW)*scale), int(float64(outsideH)*scale), scale)
	if c.W != h.canvas.W || c.H != h.canvas.H {
		h.canvas = c
		h.fb = newFrameBuffer(c.W, c.H, h.d.SampleStep())
		h.d.Resize(h.canvas)
	}
	return c.W, c.H
}

// Update handles pointer input and advances the simulation clock by one tick.
func (h *demoHost) Update() error {
	if h.fb == nil {
		// Layout has not produced a surface yet; silently skip the tick.
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		h.pointerClick(float64(cx), float64(cy))
	}
	if h.attract != nil {
		if x, y, click, double := h.attract.Tick(h.canvas); click {
			if double {
				h.d.DoubleClick()
			} else {
				h.d.Click(x, y)
			}
		}
	}
	h.d.Tick()
	return nil
}

func (h *demoHost) pointerClick(x, y float64) {
	if h.clicks.Observe(time.Now(), x, y) {
		h.d.DoubleClick()
		return
	}
	h.d.Click(x, y)
}

// Draw renders the field buffer, blits it in a single write, then draws the
// overlay geometry on top.
func (h *demoHost) Draw(screen *ebiten.Image) {
	if h.fb == nil {
		return
	}
	start := time.Now()
	h.d.Render(h.fb)
	renderMS := time.Since(start).Seconds() * 1000

	screen.WritePixels(h.fb.pix)
	h.d.Overlay(screen)

	if h.telemetry != nil {
		n := 0
		if h.sources != nil {
			n = h.sources()
		}
		h.telemetry.Record(renderMS, h.fb.vals, n)
	}

	if *debugFlag {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nRender: %.2f ms\nGrid: %dx%d step %d",
			ebiten.ActualFPS(), renderMS, h.fb.gw, h.fb.gh, h.fb.step))
	}
}
