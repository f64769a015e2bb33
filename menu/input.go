package menu

// keyLevels is one poll of the four buttons. True means held down.
type keyLevels struct {
	up, down, enter, back bool
}

// keyEvents is what one tick of scanning produced. Delta folds Up/Down into
// a signed step count; Enter and Back fire on the release edge.
type keyEvents struct {
	delta int
	enter bool
	back  bool
}

// keyScanner turns raw button levels into events. Buttons act on release so
// a held key does nothing until long-press repeat kicks in; Up and Down
// repeat while held, first slowly, then fast.
type keyScanner struct {
	last keyLevels

	upHeldMs   int
	upRepMs    int
	downHeldMs int
	downRepMs  int
}

func (s *keyScanner) scan(cur keyLevels, cfg *Config) keyEvents {
	var ev keyEvents

	upHold := s.hold(&s.upHeldMs, &s.upRepMs, s.last.up, cur.up, cfg)
	downHold := s.hold(&s.downHeldMs, &s.downRepMs, s.last.down, cur.down, cfg)
	// Both pressed (or both released) cancels repeat; holding the pair is
	// not a navigation gesture.
	if cur.up == cur.down {
		upHold, downHold = false, false
	}

	if (s.last.up && !cur.up) || upHold {
		ev.delta--
	}
	if (s.last.down && !cur.down) || downHold {
		ev.delta++
	}
	ev.enter = s.last.enter && !cur.enter
	ev.back = s.last.back && !cur.back

	s.last = cur
	return ev
}

func (s *keyScanner) hold(heldMs, repMs *int, was, is bool, cfg *Config) bool {
	if !(was && is) {
		*heldMs = 0
		*repMs = 0
		return false
	}
	*heldMs++
	if cfg.LongPressMs <= 0 || *heldMs < cfg.LongPressMs {
		return false
	}
	*repMs++
	interval := cfg.RepeatMs
	if *heldMs >= cfg.LongPressMs+cfg.FastRepeatAfterMs {
		interval = cfg.FastRepeatMs
	}
	if interval <= 0 {
		interval = 1
	}
	if *repMs >= interval {
		*repMs = 0
		return true
	}
	return false
}
