// Package dynamics iterates node-update rules over a network to produce
// trajectories.
//
// Two modes, selected by the network's Origin handle:
//
//   - Linear (no functional matrix): x_t = A · x_{t-1}, a sparse
//     matrix-vector product over the stored nonzeros.
//   - Nonlinear: x_t[i] = F[o_i,o_i](x_{t-1}[i]) +
//     Σ_{j≠i} A[i,j] · F[o_i,o_j](x_{t-1}[j]),
//     where o_i is the node's original index. The self term applies
//     unconditionally (the adjacency diagonal is assumed zero and does
//     not gate it); cross terms run only over nonzero adjacency entries.
//
// Complexity per step: O(n + nnz) in both modes — never O(n²) on sparse
// networks.
package dynamics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/bravais/specnet/network"
)

// Sentinel errors returned by Step and Iterate.
var (
	// ErrNilNetwork indicates that a nil *network.Network was passed.
	ErrNilNetwork = errors.New("dynamics: network is nil")

	// ErrBadSteps indicates a non-positive step count.
	ErrBadSteps = errors.New("dynamics: steps must be >= 1")

	// ErrDimensionMismatch indicates that the state vector length does
	// not equal the network's node count.
	ErrDimensionMismatch = errors.New("dynamics: state length does not match node count")
)

// Step applies one update of the network's dynamics to state x and
// returns the next state. x is never mutated.
//
// Errors: ErrNilNetwork, ErrDimensionMismatch; origin resolution failures
// propagate as network.ErrOriginLookup.
func Step(net *network.Network, x []float64) ([]float64, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if len(x) != net.N() {
		return nil, fmt.Errorf("%w: got %d for %d nodes", ErrDimensionMismatch, len(x), net.N())
	}

	if net.Origin().Linear() {
		return linearStep(net, x), nil
	}

	return nonlinearStep(net, x)
}

// Iterate simulates the dynamics for steps timesteps from x0 and returns
// the (steps × n) trajectory. Row 0 is x0 itself; row t is the state
// after t updates.
//
// Errors: ErrNilNetwork, ErrBadSteps, ErrDimensionMismatch.
// Complexity: O(steps · (n + nnz)).
func Iterate(net *network.Network, steps int, x0 []float64) (*mat.Dense, error) {
	// 1) Validate inputs in a fixed order.
	if net == nil {
		return nil, ErrNilNetwork
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSteps, steps)
	}
	n := net.N()
	if len(x0) != n {
		return nil, fmt.Errorf("%w: got %d for %d nodes", ErrDimensionMismatch, len(x0), n)
	}

	// 2) Allocate the trajectory and seed the initial condition.
	traj := mat.NewDense(steps, n, nil)
	traj.SetRow(0, x0)

	// 3) Advance one step at a time, recording each state.
	cur := append([]float64(nil), x0...)
	for t := 1; t < steps; t++ {
		next, err := Step(net, cur)
		if err != nil {
			return nil, err
		}
		traj.SetRow(t, next)
		cur = next
	}

	return traj, nil
}

// linearStep computes A·x over the stored nonzeros only.
func linearStep(net *network.Network, x []float64) []float64 {
	out := make([]float64, net.N())
	net.Adjacency().DoNonZero(func(i, j int, v float64) {
		out[i] += v * x[j]
	})

	return out
}

// nonlinearStep evaluates the functional dynamics: the self term per
// node, then weighted cross terms over the nonzero adjacency entries,
// skipping the diagonal (self-coupling is carried by the self term, not
// by an adjacency weight).
func nonlinearStep(net *network.Network, x []float64) ([]float64, error) {
	n := net.N()
	origin := net.Origin()

	// Resolve every node to its original function index once per step.
	orig := make([]int, n)
	for i := 0; i < n; i++ {
		oi, err := net.OriginalIndex(i)
		if err != nil {
			return nil, err
		}
		orig[i] = oi
	}

	out := make([]float64, n)

	// Self terms: F[o_i, o_i](x[i]) for every node, unconditionally.
	for i := 0; i < n; i++ {
		f, err := origin.Func(orig[i], orig[i])
		if err != nil {
			return nil, err
		}
		out[i] = f(x[i])
	}

	// Cross terms: only where the adjacency stores a weight.
	var ferr error
	net.Adjacency().DoNonZero(func(i, j int, v float64) {
		if i == j || ferr != nil {
			return
		}
		f, err := origin.Func(orig[i], orig[j])
		if err != nil {
			ferr = err

			return
		}
		out[i] += v * f(x[j])
	})
	if ferr != nil {
		return nil, ferr
	}

	return out, nil
}
