package dynamics

import (
	"math"

	"github.com/san-kum/ternary/internal/simplex"
)

// Entropy is the Shannon entropy of p in nats, with 0 log 0 = 0.
func Entropy(p simplex.Point) float64 {
	h := 0.0
	for _, v := range p {
		if v > 0 {
			h -= v * math.Log(v)
		}
	}
	return h
}

// Product is p0 * p1 * p2, maximal at the barycenter.
func Product(p simplex.Point) float64 {
	return p[0] * p[1] * p[2]
}

// GiniImpurity is 1 - sum(p_i^2).
func GiniImpurity(p simplex.Point) float64 {
	return 1 - (p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
}

// Dirichlet returns the density of a Dirichlet distribution with the given
// concentration parameters.
func Dirichlet(alpha [3]float64) func(simplex.Point) float64 {
	sum := alpha[0] + alpha[1] + alpha[2]
	lnB, _ := math.Lgamma(sum)
	for _, a := range alpha {
		lg, _ := math.Lgamma(a)
		lnB -= lg
	}
	return func(p simplex.Point) float64 {
		ln := lnB
		for i, a := range alpha {
			if p[i] <= 0 {
				if a > 1 {
					return 0
				}
				if a < 1 {
					return math.Inf(1)
				}
				continue
			}
			ln += (a - 1) * math.Log(p[i])
		}
		return math.Exp(ln)
	}
}

// MeanFitness returns x.Ax for the game.
func MeanFitness(r *Replicator) func(simplex.Point) float64 {
	return func(p simplex.Point) float64 {
		return r.MeanFitness(FromPoint(p))
	}
}

// Speed returns the magnitude of the replicator vector field.
func Speed(r *Replicator) func(simplex.Point) float64 {
	return func(p simplex.Point) float64 {
		d := r.Derive(FromPoint(p), 0)
		return math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	}
}
