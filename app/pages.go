package app

import (
	"fmt"

	"github.com/haoyibits/Motor-Monitor/internal/buildinfo"
	"github.com/haoyibits/Motor-Monitor/menu"
)

// Shared list layout: a framed area covering most of the 128x64 panel,
// five rows visible.
var listFrame = menu.Rect{X: 2, Y: 2, W: 124, H: 60}

func (u *ui) listPage(parent *menu.Page) *menu.Page {
	return &menu.Page{
		Kind:       menu.PageList,
		Cursor:     menu.CursorReverseRounded,
		FontHeight: 8,
		LineSpace:  4,
		Style:      menu.MoveLinear,
		Speed:      35,
		Parent:     parent,
		Frame:      listFrame,
		StartX:     2,
		StartY:     1,
		DrawFrame:  true,
		DrawPrefix: true,
	}
}

func (u *ui) buildPages() *menu.Page {
	root := &menu.Page{
		Kind:       menu.PageTiles,
		Cursor:     menu.CursorHollowRounded,
		FontHeight: 8,
		LineSpace:  8,
		Style:      menu.MovePID,
		Speed:      30,
		TileW:      30,
		TileH:      30,
		AuxDraw:    u.drawFPS,
	}

	motor := u.motorPage(root)
	settings := u.settingsPage(root)
	about := u.aboutPage(root)

	root.Items = []menu.Item{
		{Label: "Motor", Submenu: motor, Icon: iconMotor, Frames: iconMotorSpin},
		{Label: "Settings", Submenu: settings, Icon: iconGear},
		{Label: "About", Submenu: about, Icon: iconInfo},
		{},
	}
	return root
}

func (u *ui) motorPage(parent *menu.Page) *menu.Page {
	p := u.listPage(parent)
	telemetry := u.telemetryPage(p)
	p.Items = []menu.Item{
		{Label: "[Back]", Invoke: func() { u.eng.Back() }},
		{Label: "Yaw", Invoke: u.axisWindow("Yaw", &u.st.yawSet), Bind: menu.Bind{Float: &u.st.yawSet}},
		{Label: "Pitch", Invoke: u.axisWindow("Pitch", &u.st.pitchSet), Bind: menu.Bind{Float: &u.st.pitchSet}},
		{Label: "Roll", Invoke: u.axisWindow("Roll", &u.st.rollSet), Bind: menu.Bind{Float: &u.st.rollSet}},
		{Label: "Telemetry", Submenu: telemetry},
		{Label: "Stop all axes", Invoke: func() {
			u.st.yawSet, u.st.pitchSet, u.st.rollSet = 0, 0, 0
		}},
		{},
	}
	return p
}

// axisWindow returns a callback opening a slider window bound to one axis
// setpoint.
func (u *ui) axisWindow(name string, set *float64) func() {
	w := &menu.Window{
		Kind:       menu.WindowRounded,
		W:          90,
		H:          32,
		Text:       name + " setpoint",
		FontHeight: 8,
		TextSide:   4,
		TextTop:    3,
		Bind:       menu.Bind{Float: set, Min: -180, Max: 180, Step: 0.5},
		DurationMs: 3000,
		BarHeight:  9,
		BarBottom:  3,
		BarSide:    4,
	}
	return func() { u.eng.CreateWindow(w) }
}

func (u *ui) telemetryPage(parent *menu.Page) *menu.Page {
	p := u.listPage(parent)
	p.DrawPrefix = false
	p.AuxDraw = u.drawAxisBars
	p.Items = []menu.Item{
		{Label: "[Back]", Invoke: func() { u.eng.Back() }},
		{Label: "Yaw", Bind: menu.Bind{Float: &u.st.yaw}},
		{Label: "Pitch", Bind: menu.Bind{Float: &u.st.pitch}},
		{Label: "Roll", Bind: menu.Bind{Float: &u.st.roll}},
		{},
	}
	return p
}

func (u *ui) settingsPage(parent *menu.Page) *menu.Page {
	p := u.listPage(parent)
	brightness := &menu.Window{
		Kind:       menu.WindowRect,
		W:          90,
		H:          32,
		Text:       "Brightness",
		FontHeight: 8,
		TextSide:   4,
		TextTop:    3,
		Bind:       menu.Bind{Int: &u.st.brightness, Min: 0, Max: 255, Step: 5},
		DurationMs: 3000,
		BarHeight:  9,
		BarBottom:  3,
		BarSide:    4,
	}
	p.Items = []menu.Item{
		{Label: "[Back]", Invoke: func() { u.eng.Back() }},
		{Label: "Brightness", Invoke: func() { u.eng.CreateWindow(brightness) }},
		{Label: "Dark mode", Bind: menu.Bind{Bool: &u.st.darkMode}},
		{Label: "Show FPS", Bind: menu.Bind{Bool: &u.st.showFPS}},
		{},
	}
	return p
}

func (u *ui) aboutPage(parent *menu.Page) *menu.Page {
	p := u.listPage(parent)
	p.DrawPrefix = false
	p.Cursor = menu.CursorHollow
	p.Items = []menu.Item{
		{Label: "[Back]", Invoke: func() { u.eng.Back() }},
		{Label: "Motor-Monitor"},
		{Label: "build " + buildinfo.Short()},
		{Label: "128x64 SSD1306, 4 keys + encoder"},
		{},
	}
	return p
}

func (u *ui) drawFPS(d menu.Display) {
	if !u.st.showFPS {
		return
	}
	d.DrawString(108, 0, 8, fmt.Sprintf("%3d", u.st.fpsValue))
}

// drawAxisBars puts a live horizontal bar per axis at the right side of the
// telemetry page, scaled to +/-180 degrees.
func (u *ui) drawAxisBars(d menu.Display) {
	vals := [3]float64{u.st.yaw, u.st.pitch, u.st.roll}
	for i, v := range vals {
		y := 16 + i*12
		mid := 70
		d.DrawVLine(mid, y, 6)
		span := int(v / 180.0 * 14)
		if span > 14 {
			span = 14
		}
		if span < -14 {
			span = -14
		}
		if span >= 0 {
			d.FillRect(mid, y+2, span+1, 3)
		} else {
			d.FillRect(mid+span, y+2, -span+1, 3)
		}
	}
}
