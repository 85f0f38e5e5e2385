// Package network_test provides runnable examples for the Network
// container and its canonical-label resolution.
package network_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/bravais/specnet/network"
)

// ExampleNew demonstrates constructing a labeled network and reading an
// edge weight under the A[i,j] = weight of edge j→i convention.
func ExampleNew() {
	adj := mat.NewDense(2, 2, []float64{
		0, 3, // edge b→a with weight 3
		0, 0,
	})
	g, err := network.New(adj, network.WithLabels("a", "b"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	w, _ := g.Weight(0, 1)
	fmt.Printf("n=%d labels=%v w(b→a)=%v\n", g.N(), g.Labels(), w)
	// Output: n=2 labels=[a b] w(b→a)=3
}

// ExampleCanonicalLabel demonstrates suffix stripping: however deep the
// specialization, the canonical label is the prefix before the first dot.
func ExampleCanonicalLabel() {
	fmt.Println(network.CanonicalLabel("7"))
	fmt.Println(network.CanonicalLabel("7.3"))
	fmt.Println(network.CanonicalLabel("7.3.2"))
	// Output:
	// 7
	// 7
	// 7
}
