// SPDX-License-Identifier: MIT
// Package network: label ↔ index registry.
//
// The registry maintains the bidirectional mapping between node labels and
// numeric indices. Invariant: for all i, Index(Label(i)) == i. After any
// reordering of the nodes the registry is rebuilt, never patched in place.

package network

import (
	"fmt"
	"strconv"
	"strings"
)

// Registry is the bidirectional label ↔ index mapping for one Network.
// It is immutable after construction; Permuted returns a fresh Registry.
type Registry struct {
	labels  []string       // index → label, length n
	indices map[string]int // label → index, |indices| == n
}

// NewRegistry builds a registry for n nodes.
//
// labels == nil defaults to the string forms of 0..n-1. Otherwise labels
// must contain exactly n unique, non-empty strings.
//
// Errors: ErrBadNodeCount, ErrBadLabels, ErrDuplicateLabel.
// Complexity: O(n).
func NewRegistry(n int, labels []string) (*Registry, error) {
	// 1) Validate the node count before any allocation.
	if n < 1 {
		return nil, ErrBadNodeCount
	}

	// 2) Default labeling: "0", "1", ..., "n-1".
	if labels == nil {
		labels = make([]string, n)
		for i := 0; i < n; i++ {
			labels[i] = strconv.Itoa(i)
		}
	}

	// 3) Explicit labels must be exactly n non-empty strings.
	if len(labels) != n {
		return nil, fmt.Errorf("%w: got %d labels for %d nodes", ErrBadLabels, len(labels), n)
	}

	// 4) Build the inverse mapping, rejecting empties and duplicates.
	indices := make(map[string]int, n)
	owned := make([]string, n)
	for i, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("%w: empty label at index %d", ErrBadLabels, i)
		}
		if _, seen := indices[label]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		indices[label] = i
		owned[i] = label
	}

	return &Registry{labels: owned, indices: indices}, nil
}

// N returns the number of registered nodes.
func (r *Registry) N() int { return len(r.labels) }

// Label returns the label assigned to index i.
// Errors: ErrUnknownIndex when i is outside 0..n-1.
func (r *Registry) Label(i int) (string, error) {
	if i < 0 || i >= len(r.labels) {
		return "", fmt.Errorf("%w: %d", ErrUnknownIndex, i)
	}

	return r.labels[i], nil
}

// Index returns the index assigned to label.
// Errors: ErrUnknownLabel when the label is not registered.
func (r *Registry) Index(label string) (int, error) {
	i, ok := r.indices[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}

	return i, nil
}

// Labels returns a copy of the ordered label sequence.
// The copy keeps the registry immutable under caller mutation.
func (r *Registry) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)

	return out
}

// Permuted returns a new registry where position i carries the label that
// order[i] carried before — the rebuild operation applied after any node
// reordering. Both mappings are regenerated from scratch.
//
// Errors: ErrBadPermutation unless order is a bijection over 0..n-1.
// Complexity: O(n).
func (r *Registry) Permuted(order []int) (*Registry, error) {
	if err := checkPermutation(order, len(r.labels)); err != nil {
		return nil, err
	}

	labels := make([]string, len(order))
	for i, src := range order {
		labels[i] = r.labels[src]
	}

	// Rebuild through the constructor so both mappings stay consistent.
	return NewRegistry(len(labels), labels)
}

// CanonicalLabel strips any specialization suffix from a label: the
// canonical label is the prefix before the first '.' separator, so
// "7.3.2" resolves to "7" and an unsuffixed label is returned unchanged.
func CanonicalLabel(label string) string {
	canonical, _, _ := strings.Cut(label, ".")

	return canonical
}

// checkPermutation verifies that order is a bijection over 0..n-1.
// Shared by Registry.Permuted and Network.Permute.
func checkPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: got %d entries for %d nodes", ErrBadPermutation, len(order), n)
	}
	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: entry %d out of range", ErrBadPermutation, idx)
		}
		if seen[idx] {
			return fmt.Errorf("%w: duplicate entry %d", ErrBadPermutation, idx)
		}
		seen[idx] = true
	}

	return nil
}
