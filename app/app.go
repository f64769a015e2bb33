// Package app assembles the Motor-Monitor UI: the page tree, the bound
// settings and motor setpoints, and the per-frame step loop that drives the
// menu engine over the HAL.
package app

import (
	"time"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/haoyibits/Motor-Monitor/gfx"
	"github.com/haoyibits/Motor-Monitor/hal"
	"github.com/haoyibits/Motor-Monitor/menu"
)

// Config selects optional behavior of the UI.
type Config struct {
	// ShowFPS starts with the FPS readout enabled.
	ShowFPS bool
}

type ui struct {
	h      hal.HAL
	fb     hal.Framebuffer
	canvas *gfx.Canvas
	eng    *menu.Engine

	lastMs int64
	halted bool

	st state
}

// New initializes the UI with default config and returns the step function
// the host loop calls once per frame.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig initializes the UI and returns the per-frame step function.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	fb := h.Display().Framebuffer()
	canvas := gfx.NewCanvas(fb, []gfx.Font{
		{Height: 8, Face: &proggy.TinySZ8pt7b},
		{Height: 6, Face: &tinyfont.Org01},
	})

	u := &ui{h: h, fb: fb, canvas: canvas}
	u.st.init(cfg)

	root := u.buildPages()
	u.eng = menu.New(canvas, h.Input(), h.Logger(), root, menu.Config{})
	u.lastMs = h.Clock().NowMs()

	if l := h.Logger(); l != nil {
		l.WriteLineString("motor-monitor: ui ready")
	}
	return u.step
}

// step runs one display frame: it catches the tick clock up to wall time,
// advances the simulated telemetry, renders, and presents.
func (u *ui) step() error {
	if u.halted {
		return nil
	}
	defer u.panicToScreen()

	now := u.h.Clock().NowMs()
	// After a long stall (debugger, window drag) don't replay the whole gap.
	if now-u.lastMs > 250 {
		u.lastMs = now - 250
	}
	for u.lastMs < now {
		u.eng.Tick()
		u.lastMs++
	}

	u.st.update(now)
	u.fb.SetBrightness(u.st.brightness)

	u.eng.Frame()

	if u.st.darkMode {
		w, h := u.canvas.Size()
		u.canvas.ReverseRect(0, 0, w, h)
	}
	return u.fb.Present()
}

// Run drives the UI forever at the display rate (TinyGo entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		if err := step(); err != nil {
			return
		}
		time.Sleep(time.Second / 60)
	}
}
