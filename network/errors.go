// SPDX-License-Identifier: MIT
// Package network: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// network package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered conditions.

package network

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "network: ..." for consistency and easy
// grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrNilAdjacency indicates that a nil adjacency matrix was passed to New.
	ErrNilAdjacency = errors.New("network: adjacency is nil")

	// ErrNonSquare signals that the adjacency matrix is not square.
	ErrNonSquare = errors.New("network: adjacency is not square")

	// ErrBadNodeCount indicates a non-positive node count.
	ErrBadNodeCount = errors.New("network: node count must be > 0")

	// ErrBadLabels indicates that the provided labels are not a string
	// sequence of exactly length n, or contain an empty label.
	ErrBadLabels = errors.New("network: labels must be n non-empty strings")

	// ErrDuplicateLabel indicates that two nodes share the same label,
	// which would break the label → index bijection.
	ErrDuplicateLabel = errors.New("network: duplicate label")

	// ErrBadWeight indicates a NaN or ±Inf edge weight at ingestion.
	ErrBadWeight = errors.New("network: edge weight is NaN or Inf")

	// ErrBadFuncMatrix indicates that the functional matrix is not a
	// square n₀×n₀ grid of non-nil unary functions.
	ErrBadFuncMatrix = errors.New("network: functional matrix must be square with no nil entries")

	// ErrOriginConflict indicates that both WithFunctions and WithOrigin
	// were supplied; the origin handle already carries the functions.
	ErrOriginConflict = errors.New("network: functions and origin are mutually exclusive")

	// ErrNoFunctions indicates a function lookup on a linear origin
	// (one constructed without a functional matrix).
	ErrNoFunctions = errors.New("network: origin has no functional matrix")

	// ErrUnknownLabel indicates that a referenced label is not present
	// in the registry.
	ErrUnknownLabel = errors.New("network: unknown label")

	// ErrUnknownIndex indicates that a referenced index is outside 0..n-1.
	ErrUnknownIndex = errors.New("network: unknown index")

	// ErrOutOfRange indicates that a row/column index or sub-block range
	// is outside valid bounds.
	ErrOutOfRange = errors.New("network: index out of range")

	// ErrBadPermutation indicates that a supplied index order is not a
	// bijection over 0..n-1 (wrong length, out-of-range entry, duplicate).
	ErrBadPermutation = errors.New("network: order is not a permutation of 0..n-1")

	// ErrOriginLookup indicates that a canonical label failed to resolve
	// through the origin mapping. Every node produced by specialization
	// must trace back to a valid original index, so this is an internal
	// consistency failure rather than a user input error.
	ErrOriginLookup = errors.New("network: canonical label not found in origin")
)
