package dynamics

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/ternary/internal/simplex"
)

func TestEnsemble_MatchesSerial(t *testing.T) {
	reg := NewRegistry()
	game, err := reg.Game("rock-paper-scissors")
	if err != nil {
		t.Fatal(err)
	}
	factory, err := reg.IntegratorFactory("rk4")
	if err != nil {
		t.Fatal(err)
	}
	cfg := Config{Dt: 0.01, Steps: 300, Renormalize: true}
	starts := DefaultStarts()

	got, err := NewEnsemble(game, factory).Run(context.Background(), starts, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(starts) {
		t.Fatalf("expected %d trajectories, got %d", len(starts), len(got))
	}
	for i, x0 := range starts {
		want, err := Simulate(context.Background(), game, NewRK4(), x0, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if len(got[i]) != len(want) {
			t.Fatalf("trajectory %d: expected %d points, got %d", i, len(want), len(got[i]))
		}
		if got[i][len(want)-1] != want[len(want)-1] {
			t.Errorf("trajectory %d: expected end %v, got %v", i, want[len(want)-1], got[i][len(want)-1])
		}
	}
}

func TestEnsemble_ReportsFailure(t *testing.T) {
	game, _ := NewRegistry().Game("coordination")
	starts := []simplex.Point{{0.3, 0.3, 0.4}, {-1, 1, 1}}
	_, err := NewEnsemble(game, func() Integrator { return NewRK4() }).Run(context.Background(), starts, DefaultConfig())
	if !errors.Is(err, ErrOffSimplex) {
		t.Errorf("expected ErrOffSimplex, got %v", err)
	}
}

func TestRegistry_IntegratorFactory(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.IntegratorFactory("leapfrog"); !errors.Is(err, ErrUnknownIntegrator) {
		t.Errorf("expected ErrUnknownIntegrator, got %v", err)
	}
	f, err := reg.IntegratorFactory("rk4")
	if err != nil {
		t.Fatal(err)
	}
	if f() == f() {
		t.Error("expected a fresh integrator per call")
	}
}
