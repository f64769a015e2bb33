// Package gfx draws monochrome primitives and text into a hal.Framebuffer.
//
// The canvas owns no pixels itself: it writes straight into the page-packed
// buffer exposed by the framebuffer, so drawing is allocation-free and the
// result is pushed to the panel by a single Present call.
package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/haoyibits/Motor-Monitor/hal"
)

// Canvas draws into a monochrome framebuffer.
type Canvas struct {
	fb    hal.Framebuffer
	w, h  int
	fonts fontSet
}

// NewCanvas wraps fb. Fonts may be nil if no text is drawn.
func NewCanvas(fb hal.Framebuffer, fonts []Font) *Canvas {
	c := &Canvas{fb: fb, w: fb.Width(), h: fb.Height()}
	c.fonts = newFontSet(fonts)
	return c
}

// Size returns the framebuffer dimensions in pixels.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// Clear switches every pixel off.
func (c *Canvas) Clear() { c.fb.Clear() }

func (c *Canvas) setPixel(x, y int, on bool) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	buf := c.fb.Buffer()
	idx := (y/8)*c.w + x
	mask := byte(1) << (y % 8)
	if on {
		buf[idx] |= mask
	} else {
		buf[idx] &^= mask
	}
}

func (c *Canvas) getPixel(x, y int) bool {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return false
	}
	return c.fb.Buffer()[(y/8)*c.w+x]&(byte(1)<<(y%8)) != 0
}

// ClearPixel switches a single pixel off.
func (c *Canvas) ClearPixel(x, y int) { c.setPixel(x, y, false) }

// FillRect switches every pixel in the rectangle on.
func (c *Canvas) FillRect(x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.setPixel(xx, yy, true)
		}
	}
}

// ClearRect switches every pixel in the rectangle off.
func (c *Canvas) ClearRect(x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.setPixel(xx, yy, false)
		}
	}
}

// DrawRect draws a one-pixel rectangle outline.
func (c *Canvas) DrawRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.DrawHLine(x, y, w)
	c.DrawHLine(x, y+h-1, w)
	c.DrawVLine(x, y, h)
	c.DrawVLine(x+w-1, y, h)
}

// DrawRoundedRect draws an outline with the corner pixels dropped, the
// two-pixel-radius look of small OLED panels.
func (c *Canvas) DrawRoundedRect(x, y, w, h int) {
	if w < 3 || h < 3 {
		c.DrawRect(x, y, w, h)
		return
	}
	c.DrawHLine(x+1, y, w-2)
	c.DrawHLine(x+1, y+h-1, w-2)
	c.DrawVLine(x, y+1, h-2)
	c.DrawVLine(x+w-1, y+1, h-2)
}

// DrawHLine draws a horizontal line of width w starting at (x, y).
func (c *Canvas) DrawHLine(x, y, w int) {
	for xx := x; xx < x+w; xx++ {
		c.setPixel(xx, y, true)
	}
}

// DrawVLine draws a vertical line of height h starting at (x, y).
func (c *Canvas) DrawVLine(x, y, h int) {
	for yy := y; yy < y+h; yy++ {
		c.setPixel(x, yy, true)
	}
}

// ReverseRect inverts every pixel in the rectangle.
func (c *Canvas) ReverseRect(x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if xx < 0 || xx >= c.w || yy < 0 || yy >= c.h {
				continue
			}
			c.setPixel(xx, yy, !c.getPixel(xx, yy))
		}
	}
}

// DrawBitmap blits a 1bpp row-major MSB-first bitmap at (x, y).
func (c *Canvas) DrawBitmap(x, y, w, h int, data []byte) {
	stride := (w + 7) / 8
	for yy := 0; yy < h; yy++ {
		for xx := 0; xx < w; xx++ {
			idx := yy*stride + xx/8
			if idx >= len(data) {
				return
			}
			if data[idx]&(0x80>>(xx%8)) != 0 {
				c.setPixel(x+xx, y+yy, true)
			}
		}
	}
}

// displayer adapts the canvas to drivers.Displayer so tinyfont can render
// glyphs onto it, optionally clipped to a rectangle.
type displayer struct {
	c              *Canvas
	clip           bool
	cx, cy, cw, ch int
}

func (d *displayer) Size() (int16, int16) {
	return int16(d.c.w), int16(d.c.h)
}

func (d *displayer) SetPixel(x, y int16, col color.RGBA) {
	xi, yi := int(x), int(y)
	if d.clip {
		if xi < d.cx || xi >= d.cx+d.cw || yi < d.cy || yi >= d.cy+d.ch {
			return
		}
	}
	on := col.R > 0 || col.G > 0 || col.B > 0
	d.c.setPixel(xi, yi, on)
}

func (d *displayer) Display() error { return nil }

func (d *displayer) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}
