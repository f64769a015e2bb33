package app

import "math"

// state holds everything the menu binds to: panel settings, motor axis
// setpoints, and the simulated telemetry that chases them. The engine reads
// and writes these through pointers, so nothing here needs accessors.
type state struct {
	brightness int
	darkMode   bool
	showFPS    bool

	// Axis setpoints in degrees, adjusted through slider windows.
	yawSet   float64
	pitchSet float64
	rollSet  float64

	// Measured angles, eased toward the setpoints by update.
	yaw   float64
	pitch float64
	roll  float64

	frames    int
	fpsValue  int
	fpsOrigin int64
}

func (s *state) init(cfg Config) {
	s.brightness = 200
	s.showFPS = cfg.ShowFPS
}

// update advances the simulated plant one frame: each measured angle chases
// its setpoint with a first-order lag plus a little wobble so the telemetry
// page has something to show.
func (s *state) update(nowMs int64) {
	const gain = 0.05
	wobble := 0.3 * math.Sin(float64(nowMs)/300.0)
	s.yaw += gain*(s.yawSet-s.yaw) + wobble*0.1
	s.pitch += gain * (s.pitchSet - s.pitch)
	s.roll += gain*(s.rollSet-s.roll) - wobble*0.05

	s.frames++
	if nowMs-s.fpsOrigin >= 1000 {
		s.fpsValue = s.frames
		s.frames = 0
		s.fpsOrigin = nowMs
	}
}
