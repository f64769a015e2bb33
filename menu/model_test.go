package menu

import "testing"

func TestItemCountStopsAtSentinel(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  int
	}{
		{"empty", nil, 0},
		{"only sentinel", []Item{{}}, 0},
		{"three", []Item{{Label: "a"}, {Label: "b"}, {Label: "c"}, {}}, 3},
		{"stops early", []Item{{Label: "a"}, {}, {Label: "ghost"}}, 1},
		{"missing sentinel capped", []Item{{Label: "a"}, {Label: "b"}}, 2},
	}
	for _, tt := range tests {
		p := &Page{Items: tt.items}
		if got := p.ItemCount(); got != tt.want {
			t.Errorf("%s: ItemCount = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestMaxVisibleSlots(t *testing.T) {
	tests := []struct {
		name                  string
		frameH, startY        int
		fontHeight, lineSpace int
		want                  int
	}{
		{"five rows", 60, 1, 8, 4, 5},
		{"tight frame", 20, 0, 8, 2, 2},
		{"degenerate", 10, 0, 0, 0, 1},
		{"one row minimum", 5, 0, 16, 4, 1},
	}
	for _, tt := range tests {
		p := &Page{
			Frame:      Rect{H: tt.frameH},
			StartY:     tt.startY,
			FontHeight: tt.fontHeight,
			LineSpace:  tt.lineSpace,
		}
		if got := p.MaxVisibleSlots(); got != tt.want {
			t.Errorf("%s: MaxVisibleSlots = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestBindKindPriority(t *testing.T) {
	b := true
	i := 3
	f := 1.5
	tests := []struct {
		name string
		bind Bind
		want BindKind
	}{
		{"none", Bind{}, BindNone},
		{"bool", Bind{Bool: &b}, BindBool},
		{"int", Bind{Int: &i}, BindInt},
		{"float", Bind{Float: &f}, BindFloat},
		{"bool wins", Bind{Bool: &b, Int: &i, Float: &f}, BindBool},
		{"int beats float", Bind{Int: &i, Float: &f}, BindInt},
	}
	for _, tt := range tests {
		if got := tt.bind.Kind(); got != tt.want {
			t.Errorf("%s: Kind = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestItemAction(t *testing.T) {
	sub := &Page{}
	fn := func() {}
	tests := []struct {
		name string
		item Item
		want ActionKind
	}{
		{"plain", Item{Label: "x"}, ActionNone},
		{"callback", Item{Label: "x", Invoke: fn}, ActionInvoke},
		{"submenu", Item{Label: "x", Submenu: sub}, ActionSubmenu},
		{"both is none", Item{Label: "x", Invoke: fn, Submenu: sub}, ActionNone},
	}
	for _, tt := range tests {
		if got := tt.item.Action(); got != tt.want {
			t.Errorf("%s: Action = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestBindAdjustInt(t *testing.T) {
	v := 10
	b := Bind{Int: &v, Min: 0, Max: 20, Step: 3}
	b.adjust(2)
	if v != 16 {
		t.Fatalf("adjust +2 steps: %d, want 16", v)
	}
	b.adjust(5)
	if v != 20 {
		t.Fatalf("clamped high: %d, want 20", v)
	}
	b.adjust(-100)
	if v != 0 {
		t.Fatalf("clamped low: %d, want 0", v)
	}
}

func TestItemReadout(t *testing.T) {
	i := 7
	f := 2.5
	if got := (&Item{Bind: Bind{Int: &i}}).readout(); got != "7" {
		t.Fatalf("int readout %q", got)
	}
	if got := (&Item{Bind: Bind{Float: &f}}).readout(); got != "2.50" {
		t.Fatalf("float readout %q", got)
	}
	if got := (&Item{}).readout(); got != "" {
		t.Fatalf("no bind readout %q", got)
	}
}
