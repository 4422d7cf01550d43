package dynamics

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/ternary/internal/simplex"
)

const negativeTolerance = 1e-9

// Simulate integrates sys from x0 and returns every visited point,
// starting with x0 normalized to sum 1.
func Simulate(ctx context.Context, sys System, integ Integrator, x0 simplex.Point, cfg Config) ([]simplex.Point, error) {
	if cfg.Steps < 0 {
		return nil, fmt.Errorf("%w: steps %d", ErrInvalidConfig, cfg.Steps)
	}
	if !(cfg.Dt > 0) || math.IsInf(cfg.Dt, 0) {
		return nil, fmt.Errorf("%w: dt %g", ErrInvalidConfig, cfg.Dt)
	}
	if err := checkPoint(x0); err != nil {
		return nil, err
	}
	x := normalize(FromPoint(x0))
	out := make([]simplex.Point, 0, cfg.Steps+1)
	out = append(out, x.Point())

	t := 0.0
	for step := 0; step < cfg.Steps; step++ {
		if step%256 == 0 {
			if err := ctx.Err(); err != nil {
				return out, err
			}
		}
		x = integ.Step(sys, x, t, cfg.Dt)
		t += cfg.Dt
		if !x.IsValid() {
			return out, fmt.Errorf("%w: step %d (t=%.4f)", ErrOffSimplex, step, t)
		}
		for i, v := range x {
			if v < -negativeTolerance {
				return out, fmt.Errorf("%w: step %d component %d = %g", ErrOffSimplex, step, i, v)
			}
			if v < 0 {
				x[i] = 0
			}
		}
		if cfg.Renormalize {
			x = normalize(x)
		}
		out = append(out, x.Point())
	}
	return out, nil
}

func checkPoint(p simplex.Point) error {
	s := FromPoint(p)
	if !s.IsValid() || s.Sum() <= 0 {
		return fmt.Errorf("%w: initial point %v", ErrOffSimplex, p)
	}
	for _, v := range s {
		if v < 0 {
			return fmt.Errorf("%w: initial point %v", ErrOffSimplex, p)
		}
	}
	return nil
}

func normalize(x State) State {
	s := x.Sum()
	if s == 0 {
		return x
	}
	out := make(State, len(x))
	for i, v := range x {
		out[i] = v / s
	}
	return out
}

// Components splits a trajectory into one series per coordinate.
func Components(traj []simplex.Point) [3][]float64 {
	var c [3][]float64
	for i := range c {
		c[i] = make([]float64, len(traj))
	}
	for n, p := range traj {
		for i := range c {
			c[i][n] = p[i]
		}
	}
	return c
}
