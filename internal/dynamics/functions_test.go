package dynamics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/ternary/internal/simplex"
)

func TestEntropy(t *testing.T) {
	tests := []struct {
		p    simplex.Point
		want float64
	}{
		{simplex.Point{1, 0, 0}, 0},
		{simplex.Point{0.5, 0.5, 0}, math.Ln2},
		{simplex.Point{1.0 / 3, 1.0 / 3, 1.0 / 3}, math.Log(3)},
	}
	for _, tt := range tests {
		if got := Entropy(tt.p); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Entropy(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestGiniAndProduct(t *testing.T) {
	c := simplex.Point{1.0 / 3, 1.0 / 3, 1.0 / 3}
	if got := GiniImpurity(c); math.Abs(got-2.0/3) > 1e-12 {
		t.Errorf("expected 2/3, got %v", got)
	}
	if got := Product(c); math.Abs(got-1.0/27) > 1e-12 {
		t.Errorf("expected 1/27, got %v", got)
	}
}

func TestDirichlet_Uniform(t *testing.T) {
	// alpha = (1,1,1) is uniform with density Gamma(3) = 2
	f := Dirichlet([3]float64{1, 1, 1})
	for _, p := range []simplex.Point{{0.2, 0.3, 0.5}, {1, 0, 0}} {
		if got := f(p); math.Abs(got-2) > 1e-12 {
			t.Errorf("density at %v: expected 2, got %v", p, got)
		}
	}
	g := Dirichlet([3]float64{2, 3, 4})
	if g(simplex.Point{1, 0, 0}) != 0 {
		t.Error("expected zero density on the boundary")
	}
}

func TestRegistry_Function(t *testing.T) {
	reg := NewRegistry()
	for _, name := range reg.ListFunctions() {
		f, err := reg.Function(name, "")
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if v := f(simplex.Point{0.2, 0.3, 0.5}); math.IsNaN(v) {
			t.Errorf("%s: NaN at interior point", name)
		}
	}
	if _, err := reg.Function("nope", ""); !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("expected ErrUnknownFunction, got %v", err)
	}
	if _, err := reg.Function("fitness", "nope"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
	if _, err := reg.Integrator("nope"); !errors.Is(err, ErrUnknownIntegrator) {
		t.Errorf("expected ErrUnknownIntegrator, got %v", err)
	}
}

func TestSpeed_ZeroAtVertices(t *testing.T) {
	game, _ := NewRegistry().Game("rock-paper-scissors")
	f := Speed(game)
	if v := f(simplex.Point{1, 0, 0}); v != 0 {
		t.Errorf("expected rest point at vertex, got speed %v", v)
	}
	if v := f(simplex.Point{1.0 / 3, 1.0 / 3, 1.0 / 3}); v > 1e-12 {
		t.Errorf("expected rest point at barycenter, got speed %v", v)
	}
}
