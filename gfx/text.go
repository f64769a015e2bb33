package gfx

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// Font binds a tinyfont face to the nominal line height the menu layout
// uses for it.
type Font struct {
	Height int
	Face   tinyfont.Fonter
}

type fontSet struct {
	fonts []Font
}

func newFontSet(fonts []Font) fontSet {
	return fontSet{fonts: fonts}
}

// face returns the registered face whose height is closest to h.
func (fs fontSet) face(h int) tinyfont.Fonter {
	var best tinyfont.Fonter
	bestDiff := 1 << 30
	for _, f := range fs.fonts {
		diff := f.Height - h
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			best = f.Face
		}
	}
	return best
}

var textColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// StringWidth measures s in the face registered for fontHeight.
func (c *Canvas) StringWidth(fontHeight int, s string) int {
	face := c.fonts.face(fontHeight)
	if face == nil {
		return 0
	}
	_, outbox := tinyfont.LineWidth(face, s)
	return int(outbox)
}

// DrawString draws s with its top-left corner at (x, y).
func (c *Canvas) DrawString(x, y, fontHeight int, s string) {
	face := c.fonts.face(fontHeight)
	if face == nil {
		return
	}
	d := &displayer{c: c}
	tinyfont.WriteLine(d, face, int16(x), int16(y+fontHeight-1), s, textColor)
}

// DrawStringClipped draws s with its top-left corner at (x, y), discarding
// pixels outside the clip rectangle (cx, cy, cw, ch).
func (c *Canvas) DrawStringClipped(cx, cy, cw, ch, x, y, fontHeight int, s string) {
	face := c.fonts.face(fontHeight)
	if face == nil {
		return
	}
	d := &displayer{c: c, clip: true, cx: cx, cy: cy, cw: cw, ch: ch}
	tinyfont.WriteLine(d, face, int16(x), int16(y+fontHeight-1), s, textColor)
}
