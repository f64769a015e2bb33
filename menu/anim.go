package menu

import "math"

// MoveStyle selects the easing law used to move animated geometry toward
// its target.
type MoveStyle uint8

const (
	// MoveLinear converges proportionally to the remaining error.
	MoveLinear MoveStyle = iota
	// MovePID converges with proportional, integral and derivative terms.
	// Overshoots and springs back, which reads as a bounce on screen.
	MovePID
)

// Distance is a single animated scalar. Current converges toward Target one
// Advance call at a time.
type Distance struct {
	Current float64
	Target  float64

	err        float64
	lastErr    float64
	integral   float64
	derivative float64
}

// Advance moves Current one frame-step toward Target.
//
// With speed <= 0 the value snaps to the target immediately. The linear law
// snaps when the remaining error falls below speed/20; the PID law snaps
// below 0.5, resetting everything except the integral term. Carrying the
// integral over reduces overshoot on repeated moves.
func (d *Distance) Advance(style MoveStyle, speed float64) {
	switch style {
	case MoveLinear:
		if d.Current == d.Target {
			return
		}
		if speed <= 0 {
			d.snap()
			return
		}
		d.lastErr = d.err
		d.err = d.Target - d.Current
		d.Current += 0.02 * speed * d.err
		if math.Abs(d.Current-d.Target) < speed/20 {
			d.snap()
		}

	case MovePID:
		if speed <= 0 {
			d.snap()
			d.integral = 0
			return
		}
		kp := 0.02 * speed
		ki := 0.005 * speed
		const kd = 0.002

		d.lastErr = d.err
		d.err = d.Target - d.Current
		d.integral += d.err
		// Derivative over a nominal 0.1s step.
		d.derivative = (d.err - d.lastErr) / 0.1
		d.Current += kp*d.err + ki*d.integral + kd*d.derivative
		if math.Abs(d.Target-d.Current) < 0.5 {
			d.snap()
		}
	}
}

// snap lands exactly on the target and clears the P/D history. The integral
// term is left alone on purpose; MovePID relies on it between moves.
func (d *Distance) snap() {
	d.err = 0
	d.lastErr = 0
	d.derivative = 0
	d.Current = d.Target
}

// Settled reports whether Current has reached Target exactly.
func (d *Distance) Settled() bool { return d.Current == d.Target }

// Set forces both Current and Target, discarding easing history.
func (d *Distance) Set(v float64) {
	d.Current = v
	d.Target = v
	d.err = 0
	d.lastErr = 0
	d.integral = 0
	d.derivative = 0
}

// Point is an animated 2D point. Each axis eases independently.
type Point struct {
	X Distance
	Y Distance
}

// Advance moves both axes one frame-step toward their targets.
func (p *Point) Advance(style MoveStyle, speed float64) {
	p.X.Advance(style, speed)
	p.Y.Advance(style, speed)
}

// Settled reports whether both axes have reached their targets.
func (p *Point) Settled() bool { return p.X.Settled() && p.Y.Settled() }

// Area is an animated rectangle. Each field eases independently.
type Area struct {
	X Distance
	Y Distance
	W Distance
	H Distance
}

// Advance moves all four fields one frame-step toward their targets.
func (a *Area) Advance(style MoveStyle, speed float64) {
	a.X.Advance(style, speed)
	a.Y.Advance(style, speed)
	a.W.Advance(style, speed)
	a.H.Advance(style, speed)
}

// Settled reports whether all four fields have reached their targets.
func (a *Area) Settled() bool {
	return a.X.Settled() && a.Y.Settled() && a.W.Settled() && a.H.Settled()
}

// SetTargets retargets the rectangle without touching easing state.
func (a *Area) SetTargets(x, y, w, h float64) {
	a.X.Target = x
	a.Y.Target = y
	a.W.Target = w
	a.H.Target = h
}

// Zero forces the rectangle to 0,0,0,0 and clears easing state.
func (a *Area) Zero() {
	a.X.Set(0)
	a.Y.Set(0)
	a.W.Set(0)
	a.H.Set(0)
}
