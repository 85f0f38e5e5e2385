// Package dynamics_test provides runnable examples for trajectory
// simulation.
package dynamics_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/bravais/specnet/dynamics"
	"github.com/bravais/specnet/network"
)

// ExampleIterate demonstrates linear dynamics: with no functional matrix
// attached, each step is the sparse product x_t = A · x_{t-1}.
func ExampleIterate() {
	// Single edge 0→1: A[1,0] = 1.
	adj := mat.NewDense(2, 2, []float64{
		0, 0,
		1, 0,
	})
	g, err := network.New(adj)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	traj, err := dynamics.Iterate(g, 3, []float64{1, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for t := 0; t < 3; t++ {
		fmt.Println(traj.RawRowView(t))
	}
	// Output:
	// [1 0]
	// [0 1]
	// [0 0]
}

// ExampleStep demonstrates a single nonlinear update: the self term
// F[i,i] applies unconditionally, cross terms are adjacency-weighted.
func ExampleStep() {
	adj := mat.NewDense(2, 2, []float64{
		0, 1, // edge 1→0
		0, 0,
	})
	funcs := [][]network.Coupling{
		{func(x float64) float64 { return 0.5 * x }, func(x float64) float64 { return x }},
		{func(x float64) float64 { return x }, func(x float64) float64 { return 0.5 * x }},
	}
	g, err := network.New(adj, network.WithFunctions(funcs))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// out[0] = 0.5·2 + 1·4 = 5, out[1] = 0.5·4 = 2.
	out, _ := dynamics.Step(g, []float64{2, 4})
	fmt.Println(out)
	// Output: [5 2]
}
