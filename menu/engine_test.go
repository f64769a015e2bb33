package menu

import (
	"testing"

	"github.com/haoyibits/Motor-Monitor/hal"
)

// Test doubles for the HAL boundary. The display fake measures text at four
// pixels per character so cursor math stays deterministic.

type fakeKeys struct {
	up, down, enter, back bool
}

func (k *fakeKeys) UpLevel() bool    { return k.up }
func (k *fakeKeys) DownLevel() bool  { return k.down }
func (k *fakeKeys) EnterLevel() bool { return k.enter }
func (k *fakeKeys) BackLevel() bool  { return k.back }

type fakeEncoder struct {
	pending int
	enabled bool
}

func (e *fakeEncoder) Delta() int {
	if !e.enabled {
		return 0
	}
	d := e.pending
	e.pending = 0
	return d
}

func (e *fakeEncoder) SetEnabled(on bool) {
	e.enabled = on
	if !on {
		e.pending = 0
	}
}

type fakeInput struct {
	k *fakeKeys
	e *fakeEncoder
}

func (in fakeInput) Keys() hal.Keys       { return in.k }
func (in fakeInput) Encoder() hal.Encoder { return in.e }

type fakeDisplay struct {
	w, h int
}

func (d *fakeDisplay) Size() (int, int)                    { return d.w, d.h }
func (d *fakeDisplay) Clear()                              {}
func (d *fakeDisplay) FillRect(x, y, w, h int)             {}
func (d *fakeDisplay) ClearRect(x, y, w, h int)            {}
func (d *fakeDisplay) DrawRect(x, y, w, h int)             {}
func (d *fakeDisplay) DrawRoundedRect(x, y, w, h int)      {}
func (d *fakeDisplay) DrawHLine(x, y, w int)               {}
func (d *fakeDisplay) DrawVLine(x, y, h int)               {}
func (d *fakeDisplay) ReverseRect(x, y, w, h int)          {}
func (d *fakeDisplay) ClearPixel(x, y int)                 {}
func (d *fakeDisplay) DrawBitmap(x, y, w, h int, b []byte) {}
func (d *fakeDisplay) StringWidth(fh int, s string) int    { return 4 * len(s) }
func (d *fakeDisplay) DrawString(x, y, fh int, s string)   {}
func (d *fakeDisplay) DrawStringClipped(cx, cy, cw, ch, x, y, fh int, s string) {
}

type rig struct {
	eng  *Engine
	keys *fakeKeys
	enc  *fakeEncoder
}

func newRig(t *testing.T, root *Page) *rig {
	t.Helper()
	keys := &fakeKeys{}
	enc := &fakeEncoder{enabled: true}
	eng := New(&fakeDisplay{w: 128, h: 64}, fakeInput{k: keys, e: enc}, nil, root, Config{})
	return &rig{eng: eng, keys: keys, enc: enc}
}

func listPage(labels ...string) *Page {
	items := make([]Item, 0, len(labels)+1)
	for _, l := range labels {
		items = append(items, Item{Label: l})
	}
	items = append(items, Item{})
	return &Page{
		Kind:       PageList,
		Items:      items,
		FontHeight: 8,
		LineSpace:  4,
		Style:      MoveLinear,
		Speed:      50,
		Frame:      Rect{X: 2, Y: 2, W: 124, H: 60},
		StartY:     1,
	}
}

// pressDown taps the Down button once: buttons act on the release edge.
func (r *rig) pressDown() {
	r.keys.down = true
	r.eng.Tick()
	r.keys.down = false
	r.eng.Tick()
}

func (r *rig) pressUp() {
	r.keys.up = true
	r.eng.Tick()
	r.keys.up = false
	r.eng.Tick()
}

func (r *rig) pressEnter() {
	r.keys.enter = true
	r.eng.Tick()
	r.keys.enter = false
	r.eng.Tick()
}

func (r *rig) pressBack() {
	r.keys.back = true
	r.eng.Tick()
	r.keys.back = false
	r.eng.Tick()
}

// settle runs enough tick/frame pairs for any transition and animation to
// land.
func (r *rig) settle() {
	for i := 0; i < 60; i++ {
		for t := 0; t < 25; t++ {
			r.eng.Tick()
		}
		r.eng.Frame()
	}
}

func TestDownWrapsToTopInOneJump(t *testing.T) {
	r := newRig(t, listPage("a", "b", "c", "d", "e"))

	// Seven taps on a five item page: four to the bottom, the fifth wraps
	// to the top, two more land on the third item.
	for i := 0; i < 7; i++ {
		r.pressDown()
	}
	if got := r.eng.CurrentPage().ActiveIndex(); got != 2 {
		t.Fatalf("after 7 downs on 5 items: activeIndex = %d, want 2", got)
	}
}

func TestUpFromTopWrapsToBottom(t *testing.T) {
	r := newRig(t, listPage("a", "b", "c", "d", "e"))
	r.pressUp()
	if got := r.eng.CurrentPage().ActiveIndex(); got != 4 {
		t.Fatalf("up from index 0: activeIndex = %d, want 4", got)
	}
}

func TestEncoderMovesSelection(t *testing.T) {
	r := newRig(t, listPage("a", "b", "c", "d", "e"))
	r.enc.pending = 3
	r.eng.Tick()
	if got := r.eng.CurrentPage().ActiveIndex(); got != 3 {
		t.Fatalf("encoder +3: activeIndex = %d, want 3", got)
	}
	r.enc.pending = -4
	r.eng.Tick()
	if got := r.eng.CurrentPage().ActiveIndex(); got != 4 {
		t.Fatalf("encoder -4 from 3: activeIndex = %d, want 4 (wrap)", got)
	}
}

func TestEnterDescendsAndBackRestores(t *testing.T) {
	child := listPage("x", "y")
	root := listPage("first", "second", "third")
	root.Items[1].Submenu = child
	child.Parent = root

	r := newRig(t, root)
	r.pressDown()
	r.pressEnter()

	if !r.eng.fade.active() {
		t.Fatal("enter on a submenu item should start a transition")
	}
	if r.enc.enabled {
		t.Fatal("encoder should be disabled during the transition")
	}

	// Input is frozen mid-transition.
	r.pressDown()
	if got := root.ActiveIndex(); got != 1 {
		t.Fatalf("selection moved during transition: %d", got)
	}

	r.settle()
	if r.eng.CurrentPage() != child {
		t.Fatal("engine did not land on the child page")
	}
	if got := child.ActiveIndex(); got != 0 {
		t.Fatalf("child page should start at index 0, got %d", got)
	}
	if !r.enc.enabled {
		t.Fatal("encoder should be re-enabled after the transition")
	}

	r.pressBack()
	r.settle()
	if r.eng.CurrentPage() != root {
		t.Fatal("back did not return to the parent")
	}
	if got := root.ActiveIndex(); got != 1 {
		t.Fatalf("parent selection not preserved: got %d, want 1", got)
	}
}

func TestBackOnRootIsNoOp(t *testing.T) {
	r := newRig(t, listPage("a", "b"))
	r.pressBack()
	if r.eng.fade.active() {
		t.Fatal("back on the root page must not start a transition")
	}
}

func TestItemWithCallbackAndSubmenuDoesNothing(t *testing.T) {
	child := listPage("x")
	fired := false
	root := listPage("odd")
	root.Items[0].Invoke = func() { fired = true }
	root.Items[0].Submenu = child
	child.Parent = root

	r := newRig(t, root)
	r.pressEnter()
	r.settle()

	if fired {
		t.Fatal("callback ran on an ambiguous item")
	}
	if r.eng.CurrentPage() != root {
		t.Fatal("ambiguous item must not navigate")
	}
}

func TestEnterTogglesBoolBind(t *testing.T) {
	flag := false
	root := listPage("dark mode")
	root.Items[0].Bind = Bind{Bool: &flag}

	r := newRig(t, root)
	r.pressEnter()
	if !flag {
		t.Fatal("bool bind not toggled on")
	}
	r.pressEnter()
	if flag {
		t.Fatal("bool bind not toggled back off")
	}
}

func TestCallbackRunsOnFrame(t *testing.T) {
	fired := 0
	root := listPage("do it")
	root.Items[0].Invoke = func() { fired++ }

	r := newRig(t, root)
	r.pressEnter()
	if fired != 0 {
		t.Fatal("callback must not run from Tick")
	}
	r.eng.Frame()
	if fired != 1 {
		t.Fatalf("callback fired %d times after one frame, want 1", fired)
	}
	r.eng.Frame()
	if fired != 1 {
		t.Fatal("callback re-fired without a new Enter")
	}
}

func TestPendingCallbackFreezesInput(t *testing.T) {
	fired := 0
	root := listPage("run", "b", "c")
	root.Items[0].Invoke = func() { fired++ }

	r := newRig(t, root)
	r.pressEnter()
	if !r.eng.enterBusy {
		t.Fatal("enter on a callback item should mark the callback pending")
	}

	// Between the Enter release and the next Frame, every input path is
	// dead: buttons, encoder, Back.
	r.pressDown()
	r.pressUp()
	r.enc.pending = 3
	r.eng.Tick()
	if got := root.ActiveIndex(); got != 0 {
		t.Fatalf("selection moved while a callback was pending: %d", got)
	}
	r.pressBack()
	if r.eng.fade.active() {
		t.Fatal("back started a transition while a callback was pending")
	}
	if fired != 0 {
		t.Fatal("callback ran from Tick")
	}

	r.enc.pending = 0
	r.eng.Frame()
	if fired != 1 {
		t.Fatalf("callback fired %d times after Frame, want 1", fired)
	}

	// Input thaws once the callback has run.
	r.pressDown()
	if got := root.ActiveIndex(); got != 1 {
		t.Fatalf("selection frozen after the callback finished: %d", got)
	}
}

func TestWindowAutoDismiss(t *testing.T) {
	r := newRig(t, listPage("a"))
	w := &Window{W: 60, H: 30, Text: "hello", FontHeight: 8, DurationMs: 50}
	r.eng.CreateWindow(w)

	for i := 0; i < 49; i++ {
		r.eng.Tick()
	}
	if r.eng.ActiveWindow() != w {
		t.Fatal("window dismissed before its duration elapsed")
	}
	r.eng.Tick()
	if r.eng.ActiveWindow() != nil {
		t.Fatal("window still live after its duration elapsed")
	}
}

func TestWindowAdjustClampsAndRestartsTimer(t *testing.T) {
	val := 10
	r := newRig(t, listPage("a"))
	w := &Window{
		W: 60, H: 30, FontHeight: 8, DurationMs: 100,
		Bind: Bind{Int: &val, Min: 0, Max: 20, Step: 5},
	}
	r.eng.CreateWindow(w)

	for i := 0; i < 90; i++ {
		r.eng.Tick()
	}
	r.enc.pending = 1
	r.eng.Tick()
	if val != 15 {
		t.Fatalf("adjust: val = %d, want 15", val)
	}

	// The adjustment restarted the countdown.
	for i := 0; i < 90; i++ {
		r.eng.Tick()
	}
	if r.eng.ActiveWindow() == nil {
		t.Fatal("window dismissed despite recent adjustment")
	}

	r.enc.pending = 10
	r.eng.Tick()
	if val != 20 {
		t.Fatalf("adjust past max: val = %d, want 20", val)
	}
	r.enc.pending = -100
	r.eng.Tick()
	if val != 0 {
		t.Fatalf("adjust past min: val = %d, want 0", val)
	}
}

func TestWindowCapturesNavigation(t *testing.T) {
	r := newRig(t, listPage("a", "b", "c"))
	w := &Window{W: 60, H: 30, FontHeight: 8, DurationMs: 1000}
	r.eng.CreateWindow(w)

	r.pressDown()
	if got := r.eng.CurrentPage().ActiveIndex(); got != 0 {
		t.Fatalf("selection moved while a window was live: %d", got)
	}
}

func TestBackRestartsWindowTimer(t *testing.T) {
	child := listPage("x")
	root := listPage("sub")
	root.Items[0].Submenu = child
	child.Parent = root

	r := newRig(t, root)
	r.pressEnter()
	r.settle()

	w := &Window{W: 60, H: 30, FontHeight: 8, DurationMs: 100}
	r.eng.CreateWindow(w)
	for i := 0; i < 90; i++ {
		r.eng.Tick()
	}
	r.pressBack()
	if r.eng.CurrentPage() != child {
		t.Fatal("back must not navigate while a window is live")
	}
	for i := 0; i < 90; i++ {
		r.eng.Tick()
	}
	if r.eng.ActiveWindow() == nil {
		t.Fatal("back should restart the window timer, not expire it")
	}
}

func TestScrollKeepsCursorInSlots(t *testing.T) {
	p := listPage("1", "2", "3", "4", "5", "6", "7", "8")
	r := newRig(t, p)

	max := p.MaxVisibleSlots()
	if max != 5 {
		t.Fatalf("MaxVisibleSlots = %d, want 5 for this layout", max)
	}

	baseY := r.eng.origin.Y.Target
	for i := 0; i < 6; i++ {
		r.pressDown()
	}
	if p.ActiveIndex() != 6 {
		t.Fatalf("activeIndex = %d, want 6", p.ActiveIndex())
	}
	if p.slot != max-1 {
		t.Fatalf("slot = %d, want pinned at %d", p.slot, max-1)
	}
	scrolled := baseY - r.eng.origin.Y.Target
	wantScroll := float64(2 * (p.LineSpace + p.FontHeight))
	if scrolled != wantScroll {
		t.Fatalf("origin scrolled by %v, want %v", scrolled, wantScroll)
	}

	// Wrapping back to the top resets both slot and scroll.
	r.pressDown()
	r.pressDown()
	if p.ActiveIndex() != 0 {
		t.Fatalf("wrap: activeIndex = %d, want 0", p.ActiveIndex())
	}
	if p.slot != 0 {
		t.Fatalf("wrap: slot = %d, want 0", p.slot)
	}
	if r.eng.origin.Y.Target != baseY {
		t.Fatalf("wrap: origin target %v, want %v", r.eng.origin.Y.Target, baseY)
	}
}

func TestWindowGeometryOutlivesDismissal(t *testing.T) {
	p := listPage("a")
	p.Speed = 5 // slow enough that the retreat takes several frames
	r := newRig(t, p)
	w := &Window{W: 60, H: 30, Text: "bye", FontHeight: 8, DurationMs: 20}
	r.eng.CreateWindow(w)

	for i := 0; i < 30; i++ {
		r.eng.Tick()
	}
	r.eng.Frame()

	if r.eng.ActiveWindow() != nil {
		t.Fatal("window should be logically gone")
	}
	if r.eng.win == nil {
		t.Fatal("retreat animation should still hold the window slot")
	}
	r.settle()
	if r.eng.win != nil {
		t.Fatal("window slot not freed after the retreat animation settled")
	}
}
