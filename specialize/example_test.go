// Package specialize_test provides runnable examples for the
// specialization transformation, showing both code and expected output.
package specialize_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/bravais/specnet/network"
	"github.com/bravais/specnet/specialize"
)

// ExampleSpecialize demonstrates the single-pairing case: base {0,1},
// spec {2,3}, one inbound boundary edge (0→2) and one outbound (3→1).
// Exactly one copy of the specialized block is produced and both
// boundary edges are rewired into it.
func ExampleSpecialize() {
	// 1) Adjacency under the A[i,j] = weight of edge j→i convention.
	adj := mat.NewDense(4, 4, []float64{
		0, 0, 0, 0,
		1, 0, 0, 1, // edges 0→1 and 3→1
		1, 0, 0, 0, // edge 0→2 (into the spec set)
		0, 0, 1, 0, // edge 2→3 (inside the spec set)
	})
	g, err := network.New(adj)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Specialize around the base set {0, 1}.
	s, err := specialize.Specialize(g, specialize.ByIndices(0, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Copy 1 of the spec block appears as "2.1", "3.1".
	fmt.Printf("n=%d labels=%v\n", s.N(), s.Labels())
	// Output: n=4 labels=[0 1 2.1 3.1]
}

// ExampleSpecialize_byLabels selects the base set by node labels and
// shows the combinatorial expansion: two inbound × two outbound boundary
// edges produce four copies of the two-node specialized block.
func ExampleSpecialize_byLabels() {
	adj := mat.NewDense(3, 3, []float64{
		0, 1, 1, // u→hub, v→hub
		1, 0, 0, // hub→u
		1, 1, 0, // hub→v, u→v
	})
	g, err := network.New(adj, network.WithLabels("hub", "u", "v"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s, err := specialize.Specialize(g, specialize.ByLabels("hub"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("n=%d copies of {u,v}=%d\n", s.N(), (s.N()-1)/2)
	// Output: n=9 copies of {u,v}=4
}
