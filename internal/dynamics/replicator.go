package dynamics

// Payoff is a 3x3 game matrix; Payoff[i][j] is the payoff to strategy i
// against strategy j.
type Payoff [3][3]float64

// Replicator is the replicator equation
//
//	dx_i/dt = x_i ((Ax)_i - x.Ax)
//
// whose flow keeps the simplex invariant.
type Replicator struct {
	A Payoff
}

func NewReplicator(a Payoff) *Replicator {
	return &Replicator{A: a}
}

func (r *Replicator) StateDim() int { return 3 }

// Fitness returns the payoff of each strategy against population x.
func (r *Replicator) Fitness(x State) [3]float64 {
	var f [3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			f[i] += r.A[i][j] * x[j]
		}
	}
	return f
}

// MeanFitness is x.Ax.
func (r *Replicator) MeanFitness(x State) float64 {
	f := r.Fitness(x)
	return x[0]*f[0] + x[1]*f[1] + x[2]*f[2]
}

func (r *Replicator) Derive(x State, t float64) State {
	f := r.Fitness(x)
	avg := x[0]*f[0] + x[1]*f[1] + x[2]*f[2]
	return State{
		x[0] * (f[0] - avg),
		x[1] * (f[1] - avg),
		x[2] * (f[2] - avg),
	}
}
