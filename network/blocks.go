// SPDX-License-Identifier: MIT
// Package network: permutation and sub-block extraction.
//
// These are the two structural views the specializer is built on: Permute
// reorders the network so the base set forms the leading block, and
// SubBlock extracts the four boundary blocks of that layout.

package network

import (
	"fmt"

	"github.com/james-bowman/sparse"
)

// Permute returns a new Network whose node at position i is the node that
// held position order[i] before — rows and columns of the adjacency are
// reordered together and the registry is rebuilt to match. The origin
// handle is shared with the receiver, unchanged.
//
// Errors: ErrBadPermutation unless order is a bijection over 0..n-1.
// Complexity: O(n + nnz).
func (g *Network) Permute(order []int) (*Network, error) {
	// 1) Validate the bijection before touching any data.
	if err := checkPermutation(order, g.n); err != nil {
		return nil, err
	}

	// 2) Invert the order: inv[old] = new position of the old index.
	inv := make([]int, g.n)
	for newPos, old := range order {
		inv[old] = newPos
	}

	// 3) Re-place every stored entry; iteration order does not affect
	//    the result, so the CSR nonzero walk is safe here.
	dok := sparse.NewDOK(g.n, g.n)
	g.adj.DoNonZero(func(i, j int, v float64) {
		dok.Set(inv[i], inv[j], v)
	})

	// 4) Rebuild the registry in the permuted order.
	reg, err := g.reg.Permuted(order)
	if err != nil {
		return nil, err
	}

	return &Network{adj: dok.ToCSR(), n: g.n, reg: reg, origin: g.origin}, nil
}

// SubBlock extracts the half-open row range [r0, r1) × column range
// [c0, c1) of the adjacency as a fresh CSR matrix. Ranges must be
// non-empty and within 0..n.
//
// Errors: ErrOutOfRange.
// Complexity: O(nnz) over the stored entries.
func (g *Network) SubBlock(r0, r1, c0, c1 int) (*sparse.CSR, error) {
	if r0 < 0 || c0 < 0 || r1 > g.n || c1 > g.n || r0 >= r1 || c0 >= c1 {
		return nil, fmt.Errorf("%w: rows [%d,%d) cols [%d,%d) of %d×%d",
			ErrOutOfRange, r0, r1, c0, c1, g.n, g.n)
	}

	dok := sparse.NewDOK(r1-r0, c1-c0)
	g.adj.DoNonZero(func(i, j int, v float64) {
		if i >= r0 && i < r1 && j >= c0 && j < c1 {
			dok.Set(i-r0, j-c0, v)
		}
	})

	return dok.ToCSR(), nil
}
