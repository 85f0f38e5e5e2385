// SPDX-License-Identifier: MIT
// Package network: the Network container.
//
// A Network owns a sparse, weighted, directed adjacency structure under
// the convention A[i,j] = weight of the edge from node j to node i, plus
// the registry and the shared Origin handle. The diagonal is assumed zero:
// self-coupling is expressed through the functional matrix, never through
// an adjacency weight.
//
// A Network is immutable once constructed. Every transformation (Permute,
// specialize.Specialize) returns a brand-new instance; the Origin handle
// is the only state shared between instances, by design.

package network

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Network is an immutable weighted directed network with labeled nodes.
type Network struct {
	adj    *sparse.CSR // n×n adjacency, A[i,j] = weight of edge j → i
	n      int         // node count; n == adj.rows == adj.cols
	reg    *Registry   // label ↔ index bijection, index-aligned with adj
	origin *Origin     // shared handle onto the original system
}

// options collects the optional construction inputs.
type options struct {
	labels []string
	funcs  [][]Coupling
	origin *Origin
}

// Option is a functional option for New.
type Option func(*options)

// WithLabels assigns explicit node labels, index-aligned with the
// adjacency rows/columns. Must be exactly n unique non-empty strings.
func WithLabels(labels ...string) Option {
	return func(o *options) { o.labels = labels }
}

// WithFunctions attaches an n×n functional matrix describing nonlinear
// dynamics; the constructed network is treated as original, so the origin
// handle is built from its own labels. Mutually exclusive with WithOrigin.
func WithFunctions(funcs [][]Coupling) Option {
	return func(o *options) { o.funcs = funcs }
}

// WithOrigin attaches an existing origin handle, marking this network as
// derived from the original system the handle describes. Used by the
// specializer to carry the functional matrix and origin mapping forward
// unchanged. Mutually exclusive with WithFunctions.
func WithOrigin(origin *Origin) Option {
	return func(o *options) { o.origin = origin }
}

// New constructs a Network from a square weighted adjacency structure.
// adj may be any gonum mat.Matrix (dense or sparse); it is copied into
// CSR storage, so the caller keeps ownership of the input.
//
// Preconditions and validation (in order):
//  1. adj must be non-nil (ErrNilAdjacency).
//  2. adj must be square with n ≥ 1 (ErrNonSquare, ErrBadNodeCount).
//  3. labels, if given, must be n unique non-empty strings
//     (ErrBadLabels, ErrDuplicateLabel).
//  4. every weight must be finite (ErrBadWeight).
//  5. WithFunctions and WithOrigin are mutually exclusive
//     (ErrOriginConflict); a function grid must be n×n (ErrBadFuncMatrix).
//
// Absent both options the network is its own original: the origin handle
// defaults to this network's label → index mapping with no functions.
//
// Complexity: O(n²) ingestion scan + O(nnz) CSR construction.
func New(adj mat.Matrix, opts ...Option) (*Network, error) {
	// 1) Build the option set.
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the adjacency shape.
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	rows, cols := adj.Dims()
	if rows != cols {
		return nil, fmt.Errorf("%w: %d×%d", ErrNonSquare, rows, cols)
	}
	if rows < 1 {
		return nil, ErrBadNodeCount
	}

	// 3) Build the registry (defaults to "0".."n-1" when labels == nil).
	reg, err := NewRegistry(rows, cfg.labels)
	if err != nil {
		return nil, err
	}

	// 4) Ingest into CSR via a DOK staging structure, rejecting NaN/Inf.
	dok := sparse.NewDOK(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			w := adj.At(i, j)
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: at (%d,%d)", ErrBadWeight, i, j)
			}
			if w != 0 {
				dok.Set(i, j, w)
			}
		}
	}

	// 5) Resolve the origin handle.
	if cfg.funcs != nil && cfg.origin != nil {
		return nil, ErrOriginConflict
	}
	origin := cfg.origin
	if origin == nil {
		// This network is itself original; its own labels seed the
		// canonical mapping (and the optional function grid).
		if origin, err = NewOrigin(reg, cfg.funcs); err != nil {
			return nil, err
		}
	}

	return &Network{adj: dok.ToCSR(), n: rows, reg: reg, origin: origin}, nil
}

// N returns the node count.
func (g *Network) N() int { return g.n }

// Labels returns a copy of the ordered node labels.
func (g *Network) Labels() []string { return g.reg.Labels() }

// Registry returns the label ↔ index registry.
func (g *Network) Registry() *Registry { return g.reg }

// Origin returns the shared origin handle. All networks derived from one
// original return the same pointer.
func (g *Network) Origin() *Origin { return g.origin }

// Adjacency returns the CSR adjacency matrix. Treat it as read-only:
// mutating it would break the immutability contract shared by every
// consumer of this network.
func (g *Network) Adjacency() *sparse.CSR { return g.adj }

// Weight returns A[i,j], the weight of the edge from node j to node i.
// Errors: ErrOutOfRange.
func (g *Network) Weight(i, j int) (float64, error) {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return 0, fmt.Errorf("%w: (%d,%d) outside %d×%d", ErrOutOfRange, i, j, g.n, g.n)
	}

	return g.adj.At(i, j), nil
}

// OriginalIndex resolves a current node index to its index in the
// original, unexpanded functional matrix: the node's label is stripped of
// any ".copyNumber" suffix and the canonical label is looked up through
// the origin handle.
//
// Errors: ErrUnknownIndex for i outside 0..n-1; ErrOriginLookup when the
// canonical label does not resolve (an internal consistency violation —
// every node produced by specialization must trace back to the original).
func (g *Network) OriginalIndex(i int) (int, error) {
	label, err := g.reg.Label(i)
	if err != nil {
		return 0, err
	}

	return g.origin.Resolve(CanonicalLabel(label))
}
