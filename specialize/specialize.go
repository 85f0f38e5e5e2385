// Package specialize implements the network specialization model of
// "Spectral and Dynamic Consequences of Network Specialization"
// (https://arxiv.org/abs/1908.04435).
//
// Specialization permutes the network so the base set forms the leading
// block, replicates the specialized block once per (inbound, outbound)
// boundary-edge pairing, and rewires each pairing into exactly one copy:
// every copy sees one inbound and one outbound boundary connection, never
// the others.
//
// Complexity:
//
//   - Time:  O(n + nnz) permutation and block extraction,
//     O(|in_edges| · |out_edges|) rewiring,
//     O(num_copies · nnz(spec block)) block replication.
//     The combinatorial blow-up is bounded by boundary-edge count,
//     not network size — in the graphs this model targets,
//     |in_edges| · |out_edges| ≪ |E|.
//   - Space: O(n' + nnz') of the output network.
package specialize

import (
	"fmt"
	"strconv"

	"github.com/james-bowman/sparse"

	"github.com/bravais/specnet/network"
)

// edge is one nonzero entry of a boundary block, recorded by its position
// within the block and its weight.
type edge struct {
	row int
	col int
	w   float64
}

// Specialize expands net around the given base set and returns a new,
// larger network. The input network is never mutated; the output shares
// the input's Origin handle, so every produced copy still resolves to the
// same original dynamics function.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilNetwork).
//  2. base must name at least one node (ErrEmptyBase) and at most n
//     (ErrBaseTooLong).
//  3. every base identifier must be known (ErrUnknownBaseLabel,
//     ErrBaseIndexRange). Duplicates are not filtered; they surface as
//     network.ErrBadPermutation when the block permutation is validated.
//  4. the replication count derived from summed boundary weights must
//     equal the boundary-edge occurrence product (ErrCopyCountMismatch).
//
// Labels: base labels are kept unchanged; the node at relative position j
// of the spec block appears in copy c (1-indexed) as "<label>.<c>".
func Specialize(net *network.Network, base Base) (*network.Network, error) {
	// 1) Validate the network and the selector size.
	if net == nil {
		return nil, ErrNilNetwork
	}
	n := net.N()
	if base.size() == 0 {
		return nil, ErrEmptyBase
	}
	if base.size() > n {
		return nil, fmt.Errorf("%w: %d > %d", ErrBaseTooLong, base.size(), n)
	}

	// 2) Resolve the selector to an index list, order preserved.
	baseIdx, err := resolveBase(net, base)
	if err != nil {
		return nil, err
	}

	// 3) Compute the specialized set: all indices not in the base, in
	//    original relative order.
	inBase := make(map[int]bool, len(baseIdx))
	for _, i := range baseIdx {
		inBase[i] = true
	}
	specSet := make([]int, 0, n-len(inBase))
	for i := 0; i < n; i++ {
		if !inBase[i] {
			specSet = append(specSet, i)
		}
	}

	// 4) Permute into block layout: base block first, spec block second.
	//    The bijection check inside Permute rejects duplicated base
	//    entries (the combined order would not cover 0..n-1 exactly).
	order := append(append(make([]int, 0, len(baseIdx)+len(specSet)), baseIdx...), specSet...)
	p, err := net.Permute(order)
	if err != nil {
		return nil, fmt.Errorf("specialize: %w", err)
	}
	baseLen := len(baseIdx)
	specLen := n - baseLen

	// 5) Base equals the full node set: nothing to replicate, the result
	//    is the (permuted) base-base block exactly.
	if specLen == 0 {
		return p, nil
	}

	// 6) Extract the two cross blocks: edges into the spec block from the
	//    base block (rows = spec range, cols = base range) and edges out
	//    of the spec block into the base block (rows = base, cols = spec).
	inBlock, err := p.SubBlock(baseLen, n, 0, baseLen)
	if err != nil {
		return nil, err
	}
	outBlock, err := p.SubBlock(0, baseLen, baseLen, n)
	if err != nil {
		return nil, err
	}

	// 7) One spec-block copy is created for every pairing of one inbound
	//    boundary edge with one outbound boundary edge. The count is
	//    derived from summed weights (the model reads weights as integer
	//    parallel-edge multiplicities) and must agree with the edge
	//    occurrence product for the rewiring bijection to be exhaustive.
	inEdges := blockEdges(inBlock)
	outEdges := blockEdges(outBlock)
	numIn := blockSum(inBlock)
	numOut := blockSum(outBlock)
	numCopies := int(numIn * numOut)
	if numCopies != len(inEdges)*len(outEdges) {
		return nil, fmt.Errorf("%w: weight sums give %d copies, edge counts give %d pairings",
			ErrCopyCountMismatch, numCopies, len(inEdges)*len(outEdges))
	}

	// 8) No boundary pairings in one direction or the other: the
	//    specialized block vanishes and only the base block remains.
	permLabels := p.Labels()
	if numCopies == 0 {
		baseBlock, berr := p.SubBlock(0, baseLen, 0, baseLen)
		if berr != nil {
			return nil, berr
		}

		return network.New(baseBlock,
			network.WithLabels(permLabels[:baseLen]...),
			network.WithOrigin(p.Origin()),
		)
	}

	// 9) Assemble the output adjacency block-diagonally: the unchanged
	//    base-base block followed by numCopies verbatim copies of the
	//    spec-spec block, laid out contiguously.
	total := baseLen + numCopies*specLen
	out := sparse.NewDOK(total, total)

	baseBlock, err := p.SubBlock(0, baseLen, 0, baseLen)
	if err != nil {
		return nil, err
	}
	baseBlock.DoNonZero(func(i, j int, v float64) {
		out.Set(i, j, v)
	})

	specBlock, err := p.SubBlock(baseLen, n, baseLen, n)
	if err != nil {
		return nil, err
	}
	specEntries := blockEdges(specBlock)
	for c := 0; c < numCopies; c++ {
		offset := baseLen + c*specLen
		for _, e := range specEntries {
			out.Set(offset+e.row, offset+e.col, e.w)
		}
	}

	// 10) Rewire the boundary: iterate in_edges (outer) × out_edges
	//     (inner); pairing c claims copy c. Copy c receives the inbound
	//     edge at its own row offset and sends the outbound edge from its
	//     own column offset — every other cross entry stays zero.
	c := 0
	for _, in := range inEdges {
		for _, o := range outEdges {
			offset := baseLen + c*specLen
			out.Set(offset+in.row, in.col, in.w)
			out.Set(o.row, offset+o.col, o.w)
			c++
		}
	}

	// 11) Label the copies: copy c (1-indexed) suffixes every spec-block
	//     label with ".c". Base labels pass through unchanged.
	labels := make([]string, 0, total)
	labels = append(labels, permLabels[:baseLen]...)
	for c = 1; c <= numCopies; c++ {
		for j := 0; j < specLen; j++ {
			labels = append(labels, permLabels[baseLen+j]+"."+strconv.Itoa(c))
		}
	}

	// 12) Wrap up as a fresh network sharing the input's Origin handle.
	return network.New(out.ToCSR(),
		network.WithLabels(labels...),
		network.WithOrigin(p.Origin()),
	)
}

// resolveBase maps the tagged selector onto an index list, preserving the
// caller's order and keeping duplicates (the permutation check downstream
// rejects them deterministically).
func resolveBase(net *network.Network, base Base) ([]int, error) {
	if base.byLabel {
		idx := make([]int, len(base.labels))
		for i, label := range base.labels {
			j, err := net.Registry().Index(label)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrUnknownBaseLabel, label)
			}
			idx[i] = j
		}

		return idx, nil
	}

	n := net.N()
	for _, i := range base.indices {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: %d outside 0..%d", ErrBaseIndexRange, i, n-1)
		}
	}
	idx := make([]int, len(base.indices))
	copy(idx, base.indices)

	return idx, nil
}

// blockSum totals every stored weight of a block.
func blockSum(block *sparse.CSR) float64 {
	var sum float64
	block.DoNonZero(func(_, _ int, v float64) {
		sum += v
	})

	return sum
}

// blockEdges enumerates the nonzero entries of a block in a fixed,
// deterministic order: row-major by position. The rewiring bijection
// depends on this order, so we scan positions explicitly rather than
// walking the storage layout.
func blockEdges(block *sparse.CSR) []edge {
	rows, cols := block.Dims()
	edges := make([]edge, 0)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if w := block.At(i, j); w != 0 {
				edges = append(edges, edge{row: i, col: j, w: w})
			}
		}
	}

	return edges
}
