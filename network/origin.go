// SPDX-License-Identifier: MIT
// Package network: the shared Origin handle.
//
// Origin describes the original, unexpanded system: the optional n₀×n₀
// functional matrix plus the canonical-label → original-index mapping.
// One Origin is shared by reference between every Network derived from the
// same original — specialization never copies or grows it, which is the
// mechanism by which all structural copies of a node keep resolving to
// the same dynamics function.

package network

import "fmt"

// Coupling is a unary node function. F[i][i] is node i's self-dynamics;
// F[i][j] (i ≠ j) is the coupling applied to node j's state to influence
// node i.
type Coupling func(x float64) float64

// Origin is the immutable handle onto the original system. It never
// changes size across specializations: every specialized copy resolves,
// via canonical-label lookup, into the same n₀×n₀ function grid.
type Origin struct {
	index map[string]int // canonical label → original index
	funcs [][]Coupling   // n₀×n₀; nil for purely linear systems
	n0    int            // original node count
}

// NewOrigin builds the origin handle for an original (unspecialized)
// network described by reg. funcs may be nil, in which case the system is
// linear and dynamics reduce to adjacency multiplication; otherwise funcs
// must be a square n₀×n₀ grid of non-nil functions with n₀ == reg.N().
//
// Errors: ErrBadFuncMatrix.
// Complexity: O(n₀²) validation, O(n₀) index construction.
func NewOrigin(reg *Registry, funcs [][]Coupling) (*Origin, error) {
	n0 := reg.N()

	// Validate the function grid shape up front; a malformed grid would
	// otherwise only surface deep inside a dynamics run.
	if funcs != nil {
		if len(funcs) != n0 {
			return nil, fmt.Errorf("%w: got %d rows for %d nodes", ErrBadFuncMatrix, len(funcs), n0)
		}
		for i, row := range funcs {
			if len(row) != n0 {
				return nil, fmt.Errorf("%w: row %d has %d entries", ErrBadFuncMatrix, i, len(row))
			}
			for j, f := range row {
				if f == nil {
					return nil, fmt.Errorf("%w: nil function at (%d,%d)", ErrBadFuncMatrix, i, j)
				}
			}
		}
	}

	// The origin mapping starts as the registry's own label → index
	// mapping: the network being described is itself original.
	index := make(map[string]int, n0)
	for i, label := range reg.labels {
		index[label] = i
	}

	return &Origin{index: index, funcs: funcs, n0: n0}, nil
}

// N0 returns the original node count — the fixed dimension of the
// functional matrix, regardless of how far the network has been expanded.
func (o *Origin) N0() int { return o.n0 }

// Linear reports whether the origin carries no functional matrix, i.e.
// dynamics are purely linear.
func (o *Origin) Linear() bool { return o.funcs == nil }

// Resolve maps a canonical (suffix-free) label to its original index.
//
// Errors: ErrOriginLookup — this lookup must succeed for every node
// produced by specialization, so a failure signals an internal
// consistency violation, not bad user input.
func (o *Origin) Resolve(canonical string) (int, error) {
	i, ok := o.index[canonical]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrOriginLookup, canonical)
	}

	return i, nil
}

// Func returns the coupling function at original position (i, j).
//
// Errors: ErrNoFunctions on a linear origin; ErrOutOfRange for indices
// outside 0..n₀-1.
func (o *Origin) Func(i, j int) (Coupling, error) {
	if o.funcs == nil {
		return nil, ErrNoFunctions
	}
	if i < 0 || i >= o.n0 || j < 0 || j >= o.n0 {
		return nil, fmt.Errorf("%w: (%d,%d) outside %d×%d", ErrOutOfRange, i, j, o.n0, o.n0)
	}

	return o.funcs[i][j], nil
}
