package dynamics

import (
	"math"

	"github.com/san-kum/ternary/internal/simplex"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Sum() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum
}

// Point returns the first three components as a simplex point.
func (s State) Point() simplex.Point {
	var p simplex.Point
	copy(p[:], s)
	return p
}

// FromPoint builds a state from a simplex point.
func FromPoint(p simplex.Point) State {
	return State{p[0], p[1], p[2]}
}

type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Integrator interface {
	Step(dyn System, x State, t float64, dt float64) State
}

type Config struct {
	Dt    float64
	Steps int
	// Renormalize projects each state back onto the simplex to cancel
	// integration drift.
	Renormalize bool
}

func DefaultConfig() Config {
	return Config{
		Dt:          0.01,
		Steps:       2000,
		Renormalize: true,
	}
}
