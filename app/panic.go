package app

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// panicToScreen turns a panic inside the frame step into a frozen
// diagnostic screen instead of a dead panel. The UI stops stepping
// afterwards; the log gets the full stack.
func (u *ui) panicToScreen() {
	r := recover()
	if r == nil {
		return
	}

	stack := string(debug.Stack())
	if l := u.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("motor-monitor: panic: %v", r))
		for _, line := range strings.Split(stack, "\n") {
			if line != "" {
				l.WriteLineString(line)
			}
		}
	}

	u.fb.Clear()
	const fh = 6
	w, h := u.canvas.Size()
	y := 0
	lines := append([]string{"panic:", fmt.Sprint(r)}, strings.Split(stack, "\n")...)
	for _, line := range lines {
		if y+fh > h {
			break
		}
		for line != "" && y+fh <= h {
			cut := len(line)
			for cut > 1 && u.canvas.StringWidth(fh, line[:cut]) > w {
				cut--
			}
			u.canvas.DrawString(0, y, fh, line[:cut])
			y += fh + 1
			line = line[cut:]
		}
	}
	_ = u.fb.Present()
	u.halted = true
}
