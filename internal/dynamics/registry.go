package dynamics

import (
	"fmt"
	"sort"

	"github.com/san-kum/ternary/internal/simplex"
)

// Registry resolves games, integrators and scalar functions by name.
type Registry struct {
	games       map[string]Payoff
	integrators map[string]func() Integrator
	functions   map[string]func() func(simplex.Point) float64
	fields      map[string]func(*Replicator) func(simplex.Point) float64
}

func NewRegistry() *Registry {
	r := &Registry{
		games:       make(map[string]Payoff),
		integrators: make(map[string]func() Integrator),
		functions:   make(map[string]func() func(simplex.Point) float64),
		fields:      make(map[string]func(*Replicator) func(simplex.Point) float64),
	}

	r.games["rock-paper-scissors"] = Payoff{{0, -1, 1}, {1, 0, -1}, {-1, 1, 0}}
	r.games["rps-stable"] = Payoff{{0, -1, 2}, {2, 0, -1}, {-1, 2, 0}}
	r.games["rps-unstable"] = Payoff{{0, -2, 1}, {1, 0, -2}, {-2, 1, 0}}
	r.games["coordination"] = Payoff{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}
	r.games["hawk-dove-bourgeois"] = Payoff{{-1, 2, 0.5}, {0, 1, 0.5}, {-0.5, 1.5, 1}}

	r.integrators["rk4"] = func() Integrator { return NewRK4() }
	r.integrators["euler"] = func() Integrator { return NewEuler() }

	r.functions["entropy"] = func() func(simplex.Point) float64 { return Entropy }
	r.functions["product"] = func() func(simplex.Point) float64 { return Product }
	r.functions["gini"] = func() func(simplex.Point) float64 { return GiniImpurity }
	r.functions["dirichlet"] = func() func(simplex.Point) float64 { return Dirichlet([3]float64{2, 3, 4}) }

	r.fields["fitness"] = MeanFitness
	r.fields["speed"] = Speed

	return r
}

func (r *Registry) Game(name string) (*Replicator, error) {
	a, ok := r.games[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGame, name)
	}
	return NewReplicator(a), nil
}

func (r *Registry) Integrator(name string) (Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIntegrator, name)
	}
	return fn(), nil
}

// IntegratorFactory returns a constructor for the named integrator, for
// callers that need one instance per goroutine.
func (r *Registry) IntegratorFactory(name string) (func() Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIntegrator, name)
	}
	return fn, nil
}

// Function resolves a scalar field. Plain names ("entropy") need no game;
// game fields ("fitness", "speed") are evaluated for the named game.
func (r *Registry) Function(name, game string) (func(simplex.Point) float64, error) {
	if fn, ok := r.functions[name]; ok {
		return fn(), nil
	}
	field, ok := r.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	if game == "" {
		game = "rock-paper-scissors"
	}
	g, err := r.Game(game)
	if err != nil {
		return nil, err
	}
	return field(g), nil
}

func (r *Registry) ListGames() []string {
	return sortedNames(r.games)
}

func (r *Registry) ListIntegrators() []string {
	return sortedNames(r.integrators)
}

func (r *Registry) ListFunctions() []string {
	names := append(sortedNames(r.functions), sortedNames(r.fields)...)
	sort.Strings(names)
	return names
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultStarts are initial points spread around the simplex interior.
func DefaultStarts() []simplex.Point {
	return []simplex.Point{
		{0.6, 0.2, 0.2},
		{0.2, 0.6, 0.2},
		{0.2, 0.2, 0.6},
		{0.45, 0.45, 0.1},
		{0.1, 0.45, 0.45},
	}
}
