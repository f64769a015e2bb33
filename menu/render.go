package menu

import (
	"fmt"
	"math"
	"strconv"
)

// readout formats an item's bound numeric value for display.
func (it *Item) readout() string {
	switch it.Bind.Kind() {
	case BindInt:
		return strconv.Itoa(*it.Bind.Int)
	case BindFloat:
		return strconv.FormatFloat(*it.Bind.Float, 'f', 2, 64)
	}
	return ""
}

// prefixSymbol is the one-character row prefix telling what Enter does on
// the item.
func prefixSymbol(it *Item) string {
	switch {
	case it.Bind.Bool != nil:
		return "o"
	case it.Action() == ActionSubmenu:
		return ">"
	case it.Action() == ActionInvoke:
		return "*"
	default:
		return " "
	}
}

func (e *Engine) render() {
	switch e.page.Kind {
	case PageList:
		e.renderList()
	case PageTiles:
		e.renderTiles()
	}
	e.renderCursor()
	if e.page.AuxDraw != nil {
		e.page.AuxDraw(e.disp)
	}
	e.renderWindow()
}

func (e *Engine) renderList() {
	p := e.page
	num := p.ItemCount()
	fh := p.FontHeight

	fx := int(e.frame.X.Current)
	fy := int(e.frame.Y.Current)
	fw := int(e.frame.W.Current)
	fht := int(e.frame.H.Current)

	// The outline sits one pixel outside the menu area so it never collides
	// with the rows.
	if p.DrawFrame {
		e.disp.DrawRect(fx-1, fy-1, fw+2, fht+2)
	}

	prefixW := 0
	if p.DrawPrefix {
		prefixW = e.disp.StringWidth(fh, ">") + prefixGap
	}

	x := e.origin.X.Current
	y := e.origin.Y.Current
	step := float64(fh) + e.lineStep.Current

	for i := 0; i < num; i++ {
		if y+float64(fh) < 0 || y > float64(e.screenH) {
			y += step
			continue
		}
		it := &p.Items[i]
		strW := e.disp.StringWidth(fh, it.Label)

		if p.DrawPrefix {
			e.disp.DrawStringClipped(fx, fy, fw-scrollBarW-1, fht,
				int(x), int(y), fh, prefixSymbol(it))
		}

		comp := 0
		switch it.Bind.Kind() {
		case BindBool:
			comp = fh + 2
			e.drawCheckbox(int(x)+fw-comp-9, int(y)+1, fh-2, *it.Bind.Bool)
		case BindInt, BindFloat:
			txt := it.readout()
			comp = e.disp.StringWidth(fh, txt) + 2
			e.disp.DrawStringClipped(fx, fy, fw-scrollBarW-1, fht,
				int(x)+fw-comp-9, int(y), fh, txt)
		}

		// Overflowing labels crawl left once the page has settled, then
		// re-enter from the right edge.
		limit := int(e.frame.X.Target+e.frame.W.Target) - scrollBarW - 1 - 2 -
			int(e.origin.X.Target) - prefixW - comp
		if strW > limit {
			if e.cfg.MarqueeWhileMoving || e.frame.Settled() {
				it.slip -= e.cfg.MarqueeSpeed
			}
			if it.slip < -float64(strW) {
				it.slip = e.frame.X.Target + e.frame.W.Target - float64(scrollBarW+1) -
					x - float64(prefixW)
			}
		}

		e.disp.DrawStringClipped(
			fx+prefixW+p.StartX, fy,
			fw-scrollBarW-1-prefixW-p.StartX-2-comp, fht,
			int(x)+prefixW+int(it.slip), int(y), fh, it.Label)

		y += step
	}

	barH := e.bar.Current
	if barH > float64(p.Frame.H) {
		barH = float64(p.Frame.H)
	}
	e.disp.FillRect(fx+fw-scrollBarW, fy, scrollBarW, int(barH))
	e.disp.DrawVLine(fx+fw-3, fy, fht)
}

func (e *Engine) drawCheckbox(x, y, size int, on bool) {
	if size < 3 {
		return
	}
	e.disp.DrawRect(x, y, size, size)
	if on {
		e.disp.FillRect(x+2, y+2, size-4, size-4)
	}
}

func (e *Engine) renderTiles() {
	p := e.page
	num := p.ItemCount()
	fh := p.FontHeight

	x := e.origin.X.Current
	y := e.origin.Y.Current
	step := float64(p.TileW) + e.lineStep.Current

	for i := 0; i < num; i++ {
		if x+float64(p.TileW) < 0 || x > float64(e.screenW) {
			x += step
			continue
		}
		it := &p.Items[i]
		if i == p.active && len(it.Frames) > 0 {
			if it.frame >= len(it.Frames) {
				it.frame = 0
			}
			e.disp.DrawBitmap(int(math.Ceil(x)), int(y), p.TileW, p.TileH, it.Frames[it.frame])
			if e.frameCount%e.cfg.TileFrameEvery == 0 {
				it.frame++
				if it.frame >= len(it.Frames) {
					it.frame = 0
				}
			}
		} else if it.Icon != nil {
			e.disp.DrawBitmap(int(math.Ceil(x)), int(y), p.TileW, p.TileH, it.Icon)
		}
		x += step
	}

	// Selection indicator around the centered tile.
	e.disp.DrawRoundedRect(e.screenW/2-p.TileW/2-2, tilesStartY-2, p.TileW+4, p.TileH+4)

	if num > 0 {
		it := &p.Items[p.active]
		strW := e.disp.StringWidth(fh, it.Label)
		labelY := e.screenH - fh - tilesBottomDist
		if strW > e.screenW {
			if e.cfg.MarqueeWhileMoving || e.origin.Settled() {
				it.slip -= e.cfg.MarqueeSpeed
			}
			if it.slip < -float64(strW) {
				it.slip = float64(e.screenW + 1)
			}
			e.disp.DrawStringClipped(0, 0, e.screenW, e.screenH,
				int(it.slip), labelY, fh, it.Label)
		} else {
			p.resetSlips()
			e.disp.DrawStringClipped(0, 0, e.screenW, e.screenH,
				e.screenW/2-strW/2+int(it.slip), labelY, fh, it.Label)
		}
	}

	barY := tilesStartY + p.TileH + tilesScrollGap
	barH := 3
	if e.screenH >= 128 {
		barH = 5
	}
	e.disp.FillRect(0, barY, int(e.bar.Current), barH)
	e.disp.DrawHLine(0, barY+barH/2, e.screenW)
}

func (e *Engine) renderCursor() {
	x := int(e.cursor.X.Current)
	y := int(e.cursor.Y.Current)
	w := int(e.cursor.W.Current)
	h := int(e.cursor.H.Current)
	if w <= 0 || h <= 0 {
		return
	}
	switch e.page.Cursor {
	case CursorReverse:
		e.disp.ReverseRect(x, y, w, h)
	case CursorReverseRounded:
		e.disp.ReverseRect(x, y, w, h)
		e.reverseCorners(x, y, w, h)
	case CursorHollow:
		e.disp.ReverseRect(x, y, w, h)
		e.disp.ReverseRect(x+1, y+1, w-2, h-2)
	case CursorHollowRounded:
		e.disp.ReverseRect(x, y, w, h)
		e.disp.ReverseRect(x+1, y+1, w-2, h-2)
		e.reverseCorners(x, y, w, h)
	case CursorNone:
	}
}

func (e *Engine) reverseCorners(x, y, w, h int) {
	if w < 3 || h < 3 {
		return
	}
	e.disp.ReverseRect(x, y, 1, 1)
	e.disp.ReverseRect(x+w-1, y, 1, 1)
	e.disp.ReverseRect(x, y+h-1, 1, 1)
	e.disp.ReverseRect(x+w-1, y+h-1, 1, 1)
}

// windowReadout formats a window's bound value the way the slider shows it.
func windowReadout(b Bind) string {
	switch b.Kind() {
	case BindInt:
		return fmt.Sprintf("%3d", *b.Int)
	case BindFloat:
		return fmt.Sprintf("%5.2f", *b.Float)
	}
	return ""
}

func (e *Engine) renderWindow() {
	w := e.win
	if w == nil {
		return
	}

	wx := int(e.winArea.X.Current)
	wy := int(e.winArea.Y.Current)
	ww := int(e.winArea.W.Current)
	wh := int(e.winArea.H.Current)

	retreated := !e.winSustain &&
		e.winArea.Settled() &&
		e.winArea.W.Target == retreatW &&
		e.winArea.Y.Target == retreatY
	if retreated {
		// The retreat animation has carried the window off screen; only now
		// does the slot free up.
		e.win = nil
		return
	}

	switch w.Kind {
	case WindowRounded:
		e.disp.DrawRoundedRect(wx-1, wy-1, ww+2, wh+2)
	default:
		e.disp.DrawRect(wx-1, wy-1, ww+2, wh+2)
	}
	e.disp.ClearRect(wx, wy, ww, wh)

	fh := w.FontHeight
	maxLen := ww - 2*w.TextSide - prefixGap

	dataTxt := windowReadout(w.Bind)
	if dataTxt != "" {
		dataLen := e.disp.StringWidth(fh, dataTxt)
		maxLen = ww - 2*w.TextSide - dataLen - prefixGap
		e.disp.DrawStringClipped(wx, wy, ww, wh,
			wx+w.W-1-w.TextSide-dataLen, wy+w.TextTop, fh, dataTxt)

		// Slider track and fill.
		trackY := wy + wh - w.BarHeight - w.BarBottom
		trackW := ww - 2*w.BarSide
		e.disp.DrawRoundedRect(wx+w.BarSide, trackY, trackW, w.BarHeight)
		fill := int(e.prob.Current)
		if fill > trackW-4 {
			fill = trackW - 4
		}
		if fill > 0 {
			e.disp.FillRect(wx+w.BarSide+2, trackY+2, fill, w.BarHeight-4)
		}
	}

	if w.Text != "" {
		strW := e.disp.StringWidth(fh, w.Text)
		if strW > maxLen {
			if e.cfg.MarqueeWhileMoving || e.winArea.Settled() {
				w.slip -= e.cfg.MarqueeSpeed
			}
			if w.slip < -float64(strW) {
				w.slip = float64(maxLen + 1)
			}
		}
		e.disp.DrawStringClipped(
			wx+w.TextSide, wy+w.TextTop, maxLen, wh,
			wx+w.TextSide+int(w.slip), wy+w.TextTop, fh, w.Text)
	}
}
