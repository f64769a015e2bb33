package menu

import "testing"

func testConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func TestKeysFireOnRelease(t *testing.T) {
	var s keyScanner
	cfg := testConfig()

	if ev := s.scan(keyLevels{down: true}, cfg); ev.delta != 0 {
		t.Fatalf("press alone fired: delta %d", ev.delta)
	}
	if ev := s.scan(keyLevels{}, cfg); ev.delta != 1 {
		t.Fatalf("release: delta %d, want 1", ev.delta)
	}

	s.scan(keyLevels{enter: true, back: true}, cfg)
	ev := s.scan(keyLevels{}, cfg)
	if !ev.enter || !ev.back {
		t.Fatalf("release edges lost: enter %v back %v", ev.enter, ev.back)
	}
}

func TestHoldRepeats(t *testing.T) {
	var s keyScanner
	cfg := testConfig()

	s.scan(keyLevels{up: true}, cfg)
	total := 0
	// Hold through the long-press threshold plus two repeat intervals.
	for i := 0; i < cfg.LongPressMs+2*cfg.RepeatMs; i++ {
		ev := s.scan(keyLevels{up: true}, cfg)
		total -= ev.delta
	}
	if total != 2 {
		t.Fatalf("repeats while held: %d, want 2", total)
	}

	// The eventual release still fires once more.
	ev := s.scan(keyLevels{}, cfg)
	if ev.delta != -1 {
		t.Fatalf("release after hold: delta %d, want -1", ev.delta)
	}
}

func TestFastRepeatKicksIn(t *testing.T) {
	var s keyScanner
	cfg := testConfig()

	s.scan(keyLevels{down: true}, cfg)
	slow := 0
	for i := 0; i < cfg.LongPressMs+cfg.FastRepeatAfterMs; i++ {
		slow += s.scan(keyLevels{down: true}, cfg).delta
	}
	fast := 0
	for i := 0; i < 1000; i++ {
		fast += s.scan(keyLevels{down: true}, cfg).delta
	}
	if fast <= slow {
		t.Fatalf("fast phase (%d/s) not faster than slow phase (%d)", fast, slow)
	}
	if want := 1000 / cfg.FastRepeatMs; fast != want {
		t.Fatalf("fast repeats in 1s: %d, want %d", fast, want)
	}
}

func TestBothKeysCancelRepeat(t *testing.T) {
	var s keyScanner
	cfg := testConfig()

	s.scan(keyLevels{up: true, down: true}, cfg)
	for i := 0; i < cfg.LongPressMs*3; i++ {
		if ev := s.scan(keyLevels{up: true, down: true}, cfg); ev.delta != 0 {
			t.Fatalf("tick %d: chord produced delta %d", i, ev.delta)
		}
	}
}
