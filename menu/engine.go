package menu

import (
	"github.com/haoyibits/Motor-Monitor/hal"
)

// Config tunes engine behavior. The zero value gets usable defaults from
// New.
type Config struct {
	// FadePhaseMs is how long each dissolve phase of a page transition
	// lasts, measured in Tick calls.
	FadePhaseMs int

	// MarqueeSpeed is how many pixels per frame an overflowing label
	// scrolls.
	MarqueeSpeed float64

	// MarqueeWhileMoving lets overflowing labels scroll while geometry is
	// still animating. Off by default: the marquee waits until the page
	// settles so the two motions do not fight visually.
	MarqueeWhileMoving bool

	// LongPressMs is how long Up or Down must be held before it starts
	// repeating. RepeatMs is the initial repeat interval; after
	// FastRepeatAfterMs more of holding, FastRepeatMs takes over.
	LongPressMs       int
	RepeatMs          int
	FastRepeatAfterMs int
	FastRepeatMs      int

	// TileFrameEvery is how many rendered frames each animation frame of
	// an active tile stays on screen.
	TileFrameEvery int
}

func (c *Config) setDefaults() {
	if c.FadePhaseMs == 0 {
		c.FadePhaseMs = 20
	}
	if c.MarqueeSpeed == 0 {
		c.MarqueeSpeed = 1
	}
	if c.LongPressMs == 0 {
		c.LongPressMs = 500
	}
	if c.RepeatMs == 0 {
		c.RepeatMs = 200
	}
	if c.FastRepeatAfterMs == 0 {
		c.FastRepeatAfterMs = 1500
	}
	if c.FastRepeatMs == 0 {
		c.FastRepeatMs = 50
	}
	if c.TileFrameEvery == 0 {
		c.TileFrameEvery = 3
	}
}

// Layout constants shared by all pages.
const (
	scrollBarW      = 5
	prefixGap       = 2
	tilesStartY     = 10
	tilesBottomDist = 2
	tilesScrollGap  = 4

	// Off-screen parking spot a dismissed window retreats to.
	retreatW = 60
	retreatH = 30
	retreatY = -40
)

// Engine drives one page tree. Call Tick at a fixed 1ms interval for input
// and timing, Frame once per display refresh for animation and drawing, and
// push the framebuffer to the panel after Frame returns.
//
// Tick and Frame must be called from the same goroutine, or externally
// serialized; the engine does no locking of its own.
type Engine struct {
	disp Display
	keys hal.Keys
	enc  hal.Encoder
	log  hal.Logger
	cfg  Config

	page *Page
	scan keyScanner

	nowMs int64

	// Animated geometry. origin is where the first item is drawn, so
	// scrolling moves every row at once; lineStep animating from a small
	// value is what makes a fresh page unfold.
	cursor   Area
	frame    Area
	origin   Point
	lineStep Distance
	bar      Distance
	prob     Distance

	win        *Window
	winArea    Area
	winSustain bool
	winElapsed int

	fade fadeRun

	enterBusy     bool
	pendingInvoke func()

	screenW int
	screenH int

	frameCount int
}

// New builds an engine over the given display and input, rooted at root.
// The root page is initialized with its unfold animation, same as a page
// entered through navigation.
func New(disp Display, in hal.Input, log hal.Logger, root *Page, cfg Config) *Engine {
	cfg.setDefaults()
	w, h := disp.Size()
	e := &Engine{
		disp:    disp,
		keys:    in.Keys(),
		enc:     in.Encoder(),
		log:     log,
		cfg:     cfg,
		page:    root,
		screenW: w,
		screenH: h,
	}
	e.pageInit()
	return e
}

// CurrentPage returns the page the engine is on (or transitioning away
// from).
func (e *Engine) CurrentPage() *Page { return e.page }

// ActiveWindow returns the live modal window, or nil once its sustain time
// has expired, even while its retreat animation is still on screen.
func (e *Engine) ActiveWindow() *Window {
	if !e.winSustain {
		return nil
	}
	return e.win
}

// NowMs returns the engine's tick clock in milliseconds.
func (e *Engine) NowMs() int64 { return e.nowMs }

// Tick advances the input and timing state by one millisecond. It is cheap
// enough to run from a timer interrupt or a tight catch-up loop.
func (e *Engine) Tick() {
	e.nowMs++

	// Input is frozen while a callback or a page transition is in flight.
	// The window sustain clock below still runs.
	if !e.enterBusy && !e.fade.active() {
		cur := keyLevels{
			up:    e.keys.UpLevel(),
			down:  e.keys.DownLevel(),
			enter: e.keys.EnterLevel(),
			back:  e.keys.BackLevel(),
		}
		ev := e.scan.scan(cur, &e.cfg)
		raw := ev.delta + e.enc.Delta()

		if e.winSustain {
			// A live window captures the encoder and Up/Down: they adjust
			// the bound value and keep the window alive.
			if raw != 0 {
				e.winElapsed = 0
				e.win.Bind.adjust(raw)
			}
		} else {
			e.applyDelta(raw)
		}

		if ev.back {
			if e.winSustain {
				e.winElapsed = 0
			} else {
				e.backEvent()
			}
		}
		if ev.enter {
			if e.winSustain {
				e.winElapsed = 0
			} else {
				e.enterEvent()
			}
		}
	}

	if e.winSustain {
		e.winElapsed++
		if e.win != nil && e.winElapsed >= e.win.DurationMs {
			e.winSustain = false
			e.winElapsed = 0
		}
	}
}

// Frame advances animations and redraws the screen. The caller presents the
// framebuffer afterwards.
func (e *Engine) Frame() {
	e.frameCount++
	e.disp.Clear()

	e.setTargets()
	e.advance()
	e.render()
	e.runInvoke()
	e.fadeStep()
}

// Back simulates a Back press: it dismisses nothing while a window is live
// (it restarts the window's timer instead), otherwise it starts the
// transition to the parent page.
func (e *Engine) Back() {
	if e.winSustain {
		e.winElapsed = 0
		return
	}
	e.backEvent()
}

// CreateWindow shows w centered on screen. Any window already live is
// displaced without a transition.
func (e *Engine) CreateWindow(w *Window) {
	e.winSustain = true
	e.winElapsed = 0
	e.prob.Current = 0
	e.winArea.SetTargets(
		float64((e.screenW-w.W)/2),
		float64((e.screenH-w.H)/2),
		float64(w.W),
		float64(w.H),
	)
	w.slip = 0
	e.win = w
	if e.log != nil {
		e.log.WriteLineString("menu: window " + w.Text)
	}
}

// applyDelta moves the selection by raw steps, wrapping past either end to
// the opposite one in a single jump.
func (e *Engine) applyDelta(raw int) {
	if raw == 0 {
		return
	}
	p := e.page
	n := p.ItemCount()
	if n == 0 {
		return
	}
	next := p.active + raw
	if next > n-1 {
		next = 0
	}
	if next < 0 {
		next = n - 1
	}
	for safe := next - p.active; safe != 0; {
		if safe < 0 {
			e.stepUp()
			safe++
		} else {
			e.stepDown()
			safe--
		}
	}
}

func (e *Engine) stepUp() {
	p := e.page
	switch p.Kind {
	case PageList:
		if p.slot == 0 && p.active != 0 {
			// Cursor pinned at the top slot: scroll the page down instead.
			e.origin.Y.Target += float64(p.LineSpace + p.FontHeight)
		}
		if p.slot > 0 {
			p.slot--
		}
		p.active--
	case PageTiles:
		p.active--
		e.origin.X.Target += float64(p.LineSpace + p.TileW)
	}
}

func (e *Engine) stepDown() {
	p := e.page
	switch p.Kind {
	case PageList:
		if p.slot == p.MaxVisibleSlots()-1 && p.active != p.ItemCount() {
			e.origin.Y.Target -= float64(p.LineSpace + p.FontHeight)
		}
		if p.slot < p.MaxVisibleSlots()-1 {
			p.slot++
		}
		p.active++
	case PageTiles:
		p.active++
		e.origin.X.Target -= float64(p.LineSpace + p.TileW)
	}
}

func (e *Engine) enterEvent() {
	p := e.page
	if p.ItemCount() == 0 {
		return
	}
	it := &p.Items[p.active]
	switch it.Action() {
	case ActionInvoke:
		e.pendingInvoke = it.Invoke
		e.enterBusy = true
		e.enc.SetEnabled(false)
	case ActionSubmenu:
		e.fade.begin(fadeEnter, e.nowMs)
		e.enc.SetEnabled(false)
		if e.log != nil {
			e.log.WriteLineString("menu: enter " + it.Label)
		}
	}
	if it.Bind.Bool != nil {
		*it.Bind.Bool = !*it.Bind.Bool
	}
}

func (e *Engine) backEvent() {
	if e.page.Parent == nil {
		return
	}
	e.fade.begin(fadeBack, e.nowMs)
	e.enc.SetEnabled(false)
	if e.log != nil {
		e.log.WriteLineString("menu: back")
	}
}

// runInvoke executes a pending item callback. It runs to completion on the
// Frame goroutine; navigation stays frozen until it returns.
func (e *Engine) runInvoke() {
	if !e.enterBusy {
		return
	}
	if e.pendingInvoke != nil {
		e.pendingInvoke()
		e.pendingInvoke = nil
	}
	e.enterBusy = false
	// A callback may itself start a transition (Back from inside an item);
	// the encoder then stays off until the fade lands.
	if !e.fade.active() {
		e.enc.SetEnabled(true)
	}
}

// pageInit resets a freshly entered page: selection back to the top and
// geometry parked off target so the page unfolds into place.
func (e *Engine) pageInit() {
	p := e.page
	switch p.Kind {
	case PageList:
		e.origin.X.Current = e.frame.X.Current + float64(p.StartX+e.screenW)
		e.origin.Y.Current = e.frame.Y.Current + float64(p.StartY)
		e.origin.X.Target = float64(p.Frame.X + p.StartX)
		e.origin.Y.Target = float64(p.Frame.Y + p.StartY)
		e.frame.SetTargets(float64(p.Frame.X), float64(p.Frame.Y), float64(p.Frame.W), float64(p.Frame.H))
		e.lineStep.Current = -3
		e.lineStep.Target = float64(p.LineSpace)
		p.active = 0
		p.slot = 0
	case PageTiles:
		e.origin.X.Target = float64(e.screenW/2 - p.TileW/2)
		e.origin.Y.Target = tilesStartY
		e.origin.X.Current = -50
		e.origin.Y.Current = float64(-p.TileW)
		e.lineStep.Current = 1
		e.lineStep.Target = float64(p.LineSpace)
		p.active = 0
	}
	p.resetSlips()
}

// pageRestore re-enters a parent page with the selection and scroll it had
// when it was left, sliding in from the opposite side an entered page comes
// from.
func (e *Engine) pageRestore() {
	p := e.page
	switch p.Kind {
	case PageList:
		e.origin.X.Current = e.frame.X.Current + float64(p.StartX-e.screenW)
		e.origin.Y.Current = p.savedOrigin.Y
		e.origin.X.Target = p.savedOrigin.X
		e.origin.Y.Target = p.savedOrigin.Y
		e.lineStep.Set(float64(p.LineSpace))
	case PageTiles:
		e.origin.X.Current = p.savedOrigin.X + float64(p.TileW)
		e.origin.Y.Current = float64(-p.TileH - 1)
		e.origin.X.Target = p.savedOrigin.X
		e.origin.Y.Target = p.savedOrigin.Y
		e.lineStep.Set(float64(p.LineSpace))
	}
	p.resetSlips()
}

// setTargets recomputes every animation target from the logical state.
func (e *Engine) setTargets() {
	e.setCursorTarget()
	p := e.page
	e.frame.SetTargets(float64(p.Frame.X), float64(p.Frame.Y), float64(p.Frame.W), float64(p.Frame.H))
	e.setBarTarget()
	e.setProbTarget()
	if e.win != nil && !e.winSustain {
		e.winArea.SetTargets(float64((e.screenW-retreatW)/2), retreatY, retreatW, retreatH)
	}
}

func (e *Engine) setCursorTarget() {
	p := e.page
	n := p.ItemCount()
	if n == 0 {
		return
	}
	it := &p.Items[p.active]
	fh := p.FontHeight
	strW := e.disp.StringWidth(fh, it.Label)

	switch p.Kind {
	case PageList:
		e.cursor.X.Target = e.origin.X.Target - 1
		e.cursor.Y.Target = e.origin.Y.Target + float64(p.active*(p.LineSpace+fh)) - 1
		e.cursor.H.Target = float64(fh + 2)

		prefixW := 0
		if p.DrawPrefix {
			prefixW = e.disp.StringWidth(fh, ">") + prefixGap
		}
		comp := 0
		switch it.Bind.Kind() {
		case BindBool:
			comp = fh + 2
		case BindInt, BindFloat:
			comp = e.disp.StringWidth(fh, it.readout()) + 2
		}
		limit := e.frame.W.Current + e.frame.X.Current - e.origin.X.Current -
			float64(scrollBarW+1) - float64(comp)
		want := float64(strW + 2 + prefixW)
		if want > limit {
			want = limit
		}
		e.cursor.W.Target = want

	case PageTiles:
		e.cursor.X.Target = float64(e.screenW/2 - strW/2 - 1)
		e.cursor.Y.Target = float64(e.screenH - fh - tilesBottomDist - 1)
		e.cursor.W.Target = float64(strW + 2)
		e.cursor.H.Target = float64(fh + 2)
	}
}

func (e *Engine) setBarTarget() {
	p := e.page
	n := p.ItemCount()
	if n == 0 {
		return
	}
	switch p.Kind {
	case PageList:
		e.bar.Target = float64(p.Frame.H*(p.active+1)) / float64(n)
	case PageTiles:
		e.bar.Target = float64(e.screenW * (p.active + 1) / n)
	}
}

func (e *Engine) setProbTarget() {
	if e.win == nil {
		return
	}
	w := e.win
	if w.Bind.Kind() != BindInt && w.Bind.Kind() != BindFloat {
		return
	}
	span := w.Bind.Max - w.Bind.Min
	if span <= 0 {
		return
	}
	frac := (w.Bind.value() - w.Bind.Min) / span
	e.prob.Target = frac * (e.winArea.W.Current - float64(2*w.BarSide+4))
}

func (e *Engine) advance() {
	style, speed := e.page.Style, e.page.Speed
	e.origin.Advance(style, speed)
	e.lineStep.Advance(style, speed)
	e.bar.Advance(style, speed)
	e.cursor.Advance(style, speed)
	e.frame.Advance(style, speed)
	e.winArea.Advance(style, speed)
	e.prob.Advance(style, speed)
}
