package menu

// fadeDir records which navigation started the running transition.
type fadeDir uint8

const (
	fadeNone fadeDir = iota
	fadeEnter
	fadeBack
)

// fadeRun is the state of the 7-phase dissolve that bridges two pages.
// Phase 0 computes the affected region, phases 1..5 darken it through the
// dither levels, phase 6 repeats full black and swaps the page underneath.
type fadeRun struct {
	dir        fadeDir
	seq        int
	seqStartMs int64
	region     Rect
}

func (f *fadeRun) active() bool { return f.dir != fadeNone }

func (f *fadeRun) begin(dir fadeDir, nowMs int64) {
	f.dir = dir
	f.seq = 0
	f.seqStartMs = nowMs
}

// fadePatterns maps dither level 1..5 to which pixels of each 2x2 cell go
// dark. Level 1 keeps everything lit, level 5 kills the cell.
var fadePatterns = [5][2][2]bool{
	{{false, false}, {false, false}},
	{{true, false}, {false, false}},
	{{true, false}, {false, true}},
	{{true, false}, {true, true}},
	{{true, true}, {true, true}},
}

// fadeStep runs after rendering so the dither mask lands on the finished
// frame.
func (e *Engine) fadeStep() {
	f := &e.fade
	if !f.active() {
		return
	}
	if f.seq != 0 && e.nowMs >= f.seqStartMs+int64(e.cfg.FadePhaseMs) {
		f.seq++
		f.seqStartMs = e.nowMs
	}

	switch {
	case f.seq == 0:
		f.region = e.fadeRegion()
		f.seq = 1
		f.seqStartMs = e.nowMs

	case f.seq >= 6:
		e.applyFadeMask(5)
		e.fadeFinish()

	default: // 1..5
		e.applyFadeMask(f.seq)
	}
}

// fadeRegion decides how much of the screen dissolves. A list-to-list hop
// only dissolves the menu area (minus the scrollbar strip) so the shared
// frame stays put; everything else dissolves the whole screen.
func (e *Engine) fadeRegion() Rect {
	p := e.page
	if p.Kind == PageList {
		var dest *Page
		if e.fade.dir == fadeEnter {
			dest = p.Items[p.active].Submenu
		} else {
			dest = p.Parent
		}
		if dest != nil && dest.Kind == PageList {
			return Rect{X: p.Frame.X, Y: p.Frame.Y, W: p.Frame.W - scrollBarW, H: p.Frame.H - 2}
		}
	}
	return Rect{X: 0, Y: 0, W: e.screenW, H: e.screenH}
}

func (e *Engine) applyFadeMask(level int) {
	if level < 1 {
		return
	}
	if level > 5 {
		level = 5
	}
	pat := &fadePatterns[level-1]
	r := e.fade.region
	for y := 0; y < r.H; y++ {
		row := &pat[y%2]
		for x := 0; x < r.W; x++ {
			if row[x%2] {
				e.disp.ClearPixel(r.X+x, r.Y+y)
			}
		}
	}
}

// fadeFinish swaps the page under the fully dark frame, so the next frame
// renders the destination already unfolding.
func (e *Engine) fadeFinish() {
	p := e.page
	switch e.fade.dir {
	case fadeEnter:
		next := p.Items[p.active].Submenu
		if next == nil {
			break
		}
		if !(p.Kind == PageList && next.Kind == PageList) {
			e.bar.Current = 0
		}
		p.savedOrigin = Point2{X: e.origin.X.Target, Y: e.origin.Y.Target}
		e.page = next
		e.pageInit()

	case fadeBack:
		parent := p.Parent
		if parent == nil {
			break
		}
		if p.Kind == PageTiles || parent.Kind != PageList {
			e.bar.Current = 0
		}
		e.page = parent
		e.pageRestore()
	}

	e.cursor.Zero()
	e.fade.dir = fadeNone
	e.fade.seq = 0
	e.enc.SetEnabled(true)
}
