// Package network provides the immutable container every other specnet
// package operates on: a sparse, weighted, directed adjacency structure
// together with its label ↔ index registry and the shared Origin handle
// that maps any (possibly specialized) node back to the original system.
//
// Overview:
//
//   - Network wraps an n×n CSR adjacency under the convention
//     A[i,j] = weight of the edge from node j to node i. The diagonal is
//     assumed zero — self-coupling lives in the functional matrix.
//   - Registry maintains the label ↔ index bijection and is rebuilt (never
//     patched) after any reordering.
//   - Origin is an immutable handle describing the original, unexpanded
//     system: the optional n₀×n₀ functional matrix plus the canonical-label
//     → original-index mapping. It is shared by reference between all
//     Network instances derived from one original and never grows.
//
// Key invariants:
//
//   - Immutability: a Network is never mutated after construction. Permute
//     returns a new instance; the specializer returns a new instance.
//   - Registry round-trip: for all i, Index(Label(i)) == i.
//   - Origin resolution: for every node of every derived network,
//     OriginalIndex(i) resolves into 0..n₀-1 of the unchanged functional
//     matrix. A failure is an internal consistency violation
//     (ErrOriginLookup), not a user input error.
//
// Canonical labels:
//
//	A specialized label has the form base[.copyNumber]*; its canonical
//	label is the prefix before the first '.' separator. CanonicalLabel
//	implements exactly that stripping and OriginalIndex composes it with
//	Origin.Resolve.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrNilAdjacency, ErrNonSquare, ErrBadNodeCount — malformed adjacency.
//   - ErrBadLabels, ErrDuplicateLabel — malformed label list.
//   - ErrBadWeight — NaN/±Inf weight at ingestion.
//   - ErrBadFuncMatrix, ErrOriginConflict, ErrNoFunctions — functional
//     matrix misuse.
//   - ErrUnknownLabel, ErrUnknownIndex, ErrOutOfRange, ErrBadPermutation —
//     lookup and reordering failures.
//   - ErrOriginLookup — broken canonical-label resolution (internal).
//
// Storage:
//
//	Adjacency input is accepted as any gonum mat.Matrix and converted to
//	CSR (github.com/james-bowman/sparse) internally — the storage layout
//	is an implementation detail, not part of the contract.
//
// Thread safety:
//
//	All types here are immutable after construction and therefore safe
//	for concurrent readers; no locking is performed or required.
package network
