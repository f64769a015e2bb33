//go:build !tinygo

package hal

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// hostKeys maps keyboard levels to the four navigation buttons:
// arrows for Up/Down, Enter and Escape (or Z/X) for Enter/Back.
type hostKeys struct {
	mu    sync.Mutex
	up    bool
	down  bool
	enter bool
	back  bool
}

func (k *hostKeys) poll() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.up = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	k.down = ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	k.enter = ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeyZ)
	k.back = ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyX)
}

func (k *hostKeys) UpLevel() bool    { k.mu.Lock(); defer k.mu.Unlock(); return k.up }
func (k *hostKeys) DownLevel() bool  { k.mu.Lock(); defer k.mu.Unlock(); return k.down }
func (k *hostKeys) EnterLevel() bool { k.mu.Lock(); defer k.mu.Unlock(); return k.enter }
func (k *hostKeys) BackLevel() bool  { k.mu.Lock(); defer k.mu.Unlock(); return k.back }

// hostEncoder accumulates mouse wheel movement as detent steps.
type hostEncoder struct {
	mu      sync.Mutex
	pending int
	acc     float64
	enabled bool
}

func (e *hostEncoder) poll() {
	_, wy := ebiten.Wheel()
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.enabled {
		return
	}
	e.acc += wy
	for e.acc >= 1 {
		e.acc--
		e.pending++
	}
	for e.acc <= -1 {
		e.acc++
		e.pending--
	}
}

func (e *hostEncoder) Delta() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	d := e.pending
	e.pending = 0
	return d
}

func (e *hostEncoder) SetEnabled(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = on
	if !on {
		e.pending = 0
		e.acc = 0
	}
}
