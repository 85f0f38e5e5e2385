// Package specialize defines the base-set selector and configuration
// types for the network specialization algorithm.
//
// The base set B designates the nodes left unmodified; all remaining
// nodes form the specialized set S whose internal structure is replicated
// once per distinguishable (inbound, outbound) boundary-edge pairing.
//
// Errors (sentinel):
//
//   - ErrNilNetwork        if the provided network pointer is nil.
//   - ErrEmptyBase         if the base selector names no nodes.
//   - ErrBaseTooLong       if the base names more nodes than the network has.
//   - ErrUnknownBaseLabel  if a base label is not present in the registry.
//   - ErrBaseIndexRange    if a base index is outside 0..n-1.
//   - ErrCopyCountMismatch if the weight-sum replication count disagrees
//     with the boundary-edge occurrence product (non-unit multiplicities).
package specialize

import "errors"

// Sentinel errors returned by Specialize.
var (
	// ErrNilNetwork indicates that a nil *network.Network was passed.
	ErrNilNetwork = errors.New("specialize: network is nil")

	// ErrEmptyBase indicates that the base selector names no nodes.
	// An empty base would leave nothing to build the specialization around.
	ErrEmptyBase = errors.New("specialize: base set is empty")

	// ErrBaseTooLong indicates that the base names more nodes than exist.
	ErrBaseTooLong = errors.New("specialize: base set longer than node count")

	// ErrUnknownBaseLabel indicates a base label absent from the registry.
	ErrUnknownBaseLabel = errors.New("specialize: unknown base label")

	// ErrBaseIndexRange indicates a base index outside 0..n-1.
	ErrBaseIndexRange = errors.New("specialize: base index out of range")

	// ErrCopyCountMismatch indicates that the replication count derived
	// from summed boundary weights does not equal the number of
	// (in_edge, out_edge) pairings. The model assumes edge weights are
	// integer multiplicities equal to parallel-edge counts; when they are
	// not, the two counts diverge and the rewiring bijection would not be
	// exhaustive, so we fail fast instead of silently guessing.
	ErrCopyCountMismatch = errors.New("specialize: weight-sum copy count disagrees with boundary-edge count")
)

// Base selects the base set either by labels or by indices — never a mix.
// The zero value is invalid; construct via ByLabels or ByIndices. Making
// the two selector kinds distinct constructors removes any runtime type
// inspection: the caller states which identifier space it means.
type Base struct {
	labels  []string
	indices []int
	byLabel bool
}

// ByLabels selects the base set by node labels, in the given order.
// Duplicates are not filtered; they are caught later by the permutation
// bijection check.
func ByLabels(labels ...string) Base {
	return Base{labels: labels, byLabel: true}
}

// ByIndices selects the base set by node indices, in the given order.
// Duplicates are not filtered; they are caught later by the permutation
// bijection check.
func ByIndices(indices ...int) Base {
	return Base{indices: indices}
}

// size returns the number of identifiers the selector names.
func (b Base) size() int {
	if b.byLabel {
		return len(b.labels)
	}

	return len(b.indices)
}
