// Package menu implements a smoothly animated, hierarchical menu engine for
// small monochrome displays driven by four buttons and a rotary encoder.
//
// The engine is split across two call sites: Tick handles input and logical
// state at a fixed short interval (it is cheap and may run at interrupt
// priority), Frame advances animations and renders once per display refresh.
package menu

// Display is the drawing surface the engine renders into. gfx.Canvas
// satisfies it.
type Display interface {
	Size() (w, h int)
	Clear()
	FillRect(x, y, w, h int)
	ClearRect(x, y, w, h int)
	DrawRect(x, y, w, h int)
	DrawRoundedRect(x, y, w, h int)
	DrawHLine(x, y, w int)
	DrawVLine(x, y, h int)
	ReverseRect(x, y, w, h int)
	ClearPixel(x, y int)
	DrawBitmap(x, y, w, h int, data []byte)
	StringWidth(fontHeight int, s string) int
	DrawString(x, y, fontHeight int, s string)
	DrawStringClipped(cx, cy, cw, ch, x, y, fontHeight int, s string)
}

// Rect is a static screen rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// PageKind selects the page layout.
type PageKind uint8

const (
	// PageList shows items as rows inside a frame with a scrollbar.
	PageList PageKind = iota
	// PageTiles shows items as a horizontal strip of icons.
	PageTiles
)

// CursorStyle selects how the selection cursor is drawn over the active
// item.
type CursorStyle uint8

const (
	CursorReverse CursorStyle = iota
	CursorReverseRounded
	CursorHollow
	CursorHollowRounded
	CursorNone
)

// BindKind identifies which value a Bind carries.
type BindKind uint8

const (
	BindNone BindKind = iota
	BindBool
	BindInt
	BindFloat
)

// Bind attaches application-owned storage to an item or window. The engine
// reads and writes through the pointer directly; ownership stays with the
// application. At most one pointer should be set; when several are, Bool
// wins over Int over Float.
type Bind struct {
	Bool  *bool
	Int   *int
	Float *float64

	// Min, Max and Step bound encoder adjustment of Int/Float binds inside
	// a window.
	Min  float64
	Max  float64
	Step float64
}

// Kind reports which value the bind carries.
func (b Bind) Kind() BindKind {
	switch {
	case b.Bool != nil:
		return BindBool
	case b.Int != nil:
		return BindInt
	case b.Float != nil:
		return BindFloat
	default:
		return BindNone
	}
}

func (b Bind) value() float64 {
	switch {
	case b.Int != nil:
		return float64(*b.Int)
	case b.Float != nil:
		return *b.Float
	default:
		return 0
	}
}

func (b Bind) adjust(steps int) {
	delta := float64(steps) * b.Step
	switch {
	case b.Int != nil:
		v := float64(*b.Int) + delta
		*b.Int = int(clamp(v, b.Min, b.Max))
	case b.Float != nil:
		*b.Float = clamp(*b.Float+delta, b.Min, b.Max)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ActionKind is what pressing Enter on an item does.
type ActionKind uint8

const (
	// ActionNone covers both an item with neither callback nor submenu and
	// the ambiguous case of an item carrying both; Enter is a no-op either
	// way.
	ActionNone ActionKind = iota
	ActionInvoke
	ActionSubmenu
)

// Item is one selectable row or tile in a page.
type Item struct {
	// Label is the display text. The zero-value Item (empty label) is the
	// sentinel terminating a page's item slice.
	Label string

	// Invoke is a leaf callback, run to completion from Frame.
	Invoke func()
	// Submenu descends into a child page.
	Submenu *Page

	// Bind optionally attaches a value: bool renders as a checkbox and is
	// toggled by Enter, int/float render right-aligned.
	Bind Bind

	// Icon is a 1bpp bitmap for tiles pages. Frames, when set, is played
	// on the active tile instead, one frame every few rendered frames.
	Icon   []byte
	Frames [][]byte

	slip  float64 // marquee offset for overflowing labels
	frame int     // current animation frame
}

// Action reports what Enter does on this item. An item carrying both a
// callback and a submenu is ambiguous and deliberately acts as none.
func (it *Item) Action() ActionKind {
	switch {
	case it.Invoke != nil && it.Submenu == nil:
		return ActionInvoke
	case it.Submenu != nil && it.Invoke == nil:
		return ActionSubmenu
	default:
		return ActionNone
	}
}

// Page is one navigable screen of items. Pages form a static tree built at
// startup; only selection, scroll and marquee state mutate afterwards.
type Page struct {
	Kind   PageKind
	Cursor CursorStyle

	// Items must end with a sentinel zero Item. Construction-time contract;
	// a missing sentinel makes the scan length undefined.
	Items []Item

	FontHeight int
	LineSpace  int
	Style      MoveStyle
	Speed      float64

	// Parent is the page to return to on Back; nil for the root. Used for
	// navigation only, never ownership.
	Parent *Page

	// AuxDraw, when set, runs at the end of every frame for page-specific
	// decoration.
	AuxDraw func(d Display)

	// List layout.
	Frame      Rect
	StartX     int
	StartY     int
	DrawFrame  bool
	DrawPrefix bool

	// Tiles layout.
	TileW int
	TileH int

	active      int
	slot        int
	savedOrigin Point2
}

// Point2 is a plain (non-animated) coordinate pair.
type Point2 struct {
	X, Y float64
}

// ItemCount returns the number of items before the sentinel.
func (p *Page) ItemCount() int {
	n := 0
	for n < len(p.Items) && p.Items[n].Label != "" {
		n++
	}
	return n
}

// ActiveIndex returns the selected item's index.
func (p *Page) ActiveIndex() int { return p.active }

// MaxVisibleSlots returns how many rows fit in a list page's frame. Beyond
// this many the page scrolls by shifting its origin instead of moving the
// cursor slot.
func (p *Page) MaxVisibleSlots() int {
	step := p.LineSpace + p.FontHeight
	if step <= 0 {
		return 1
	}
	n := (p.Frame.H - p.StartY + p.LineSpace - 1) / step
	if n < 1 {
		n = 1
	}
	return n
}

func (p *Page) resetSlips() {
	for i := range p.Items {
		p.Items[i].slip = 0
	}
}

// WindowKind selects the modal window outline.
type WindowKind uint8

const (
	WindowRect WindowKind = iota
	WindowRounded
)

// Window is a transient modal overlay: a toast, or a slider when a numeric
// Bind is attached. At most one window is live at a time; creating another
// displaces it without transition.
type Window struct {
	Kind WindowKind
	W    int
	H    int

	Text       string
	FontHeight int
	TextSide   int // text distance from the left edge
	TextTop    int // text distance from the top edge

	// Bind renders as an adjustable progress bar when Int or Float is set.
	Bind Bind

	// DurationMs is the auto-dismiss timeout, restarted by value adjustment
	// or a Back press while shown.
	DurationMs int

	BarHeight int
	BarBottom int
	BarSide   int

	slip float64
}
