// Package dynamics produces data that lives on the simplex: trajectories
// of three-strategy replicator dynamics and scalar fields for heatmaps.
//
//   - [System]: vector field dX/dt = f(X, t) on population shares
//   - [Integrator]: one-step numerical integrators ([RK4], [Euler])
//   - [Replicator]: replicator dynamics for a 3x3 payoff matrix
//   - [Registry]: named games, integrators and scalar functions
//
// # Example
//
//	reg := dynamics.NewRegistry()
//	game, _ := reg.Game("rock-paper-scissors")
//	traj, _ := dynamics.Simulate(ctx, game, dynamics.NewRK4(), x0, dynamics.DefaultConfig())
package dynamics
