package visualizer

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Revealer is implemented by renderers that can draw a partial path.
type Revealer interface {
	SetReveal(fraction float64)
}

// Reveal eases a drawn fraction of the path from 0 to 1 with a critically
// damped spring, settling in roughly two seconds.
type Reveal struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	done   bool
}

// NewReveal creates a reveal stepped fps times per second.
func NewReveal(fps int) *Reveal {
	if fps < 1 {
		fps = 60
	}
	return &Reveal{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.5, 1.0)}
}

// Restart hides the path and starts drawing it again.
func (r *Reveal) Restart() {
	r.pos, r.vel, r.done = 0, 0, false
}

// Step advances one frame and returns the visible fraction.
func (r *Reveal) Step() float64 {
	if r.done {
		return 1
	}
	r.pos, r.vel = r.spring.Update(r.pos, r.vel, 1)
	if math.Abs(1-r.pos) < 1e-3 && math.Abs(r.vel) < 1e-3 {
		r.pos, r.vel, r.done = 1, 0, true
	}
	return clamp01(r.pos)
}

// Fraction returns the current visible fraction without advancing.
func (r *Reveal) Fraction() float64 { return clamp01(r.pos) }

// Done reports whether the path is fully drawn.
func (r *Reveal) Done() bool { return r.done }

// Apply passes the current fraction to rend if it supports partial drawing.
func (r *Reveal) Apply(rend Renderer) {
	if rv, ok := rend.(Revealer); ok {
		rv.SetReveal(r.Fraction())
	}
}
