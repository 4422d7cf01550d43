package dynamics

import "errors"

var (
	// ErrUnknownGame indicates a payoff matrix name with no registration.
	ErrUnknownGame = errors.New("dynamics: unknown game")

	// ErrUnknownFunction indicates a scalar function name with no registration.
	ErrUnknownFunction = errors.New("dynamics: unknown function")

	// ErrUnknownIntegrator indicates an integrator name with no registration.
	ErrUnknownIntegrator = errors.New("dynamics: unknown integrator")

	// ErrInvalidConfig indicates a negative step count or a non-positive time step.
	ErrInvalidConfig = errors.New("dynamics: invalid config")

	// ErrOffSimplex indicates a state that left the simplex (negative share, NaN or Inf).
	ErrOffSimplex = errors.New("dynamics: state left the simplex")
)
