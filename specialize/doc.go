// Package specialize provides the specialization transformation: the
// block-structured rewriting procedure that expands the complement of a
// chosen base set into one structural copy per distinguishable
// (inbound, outbound) boundary-edge pairing.
//
// Overview:
//
//   - The base set B is selected by labels (ByLabels) or indices
//     (ByIndices) — an explicit tagged selector, so there is no runtime
//     guessing about which identifier space a plain list means.
//   - The remaining nodes form the specialized set S. The network is
//     permuted so B occupies the leading block, the four boundary blocks
//     are extracted, and the S-internal block is replicated
//     num_copies = num_in · num_out times, where num_in and num_out are
//     the summed weights of the inbound (B→S) and outbound (S→B)
//     boundary blocks.
//   - Each (in_edge, out_edge) pairing is assigned exactly one copy, in
//     fixed row-major enumeration order: the copy receives that single
//     inbound connection and sends that single outbound connection, and
//     no other cross entries.
//   - Copy c relabels each spec node "<label>.<c>"; canonical-label
//     stripping plus the shared Origin handle map every copy back to the
//     original node whose dynamics function it shares.
//
// Guarantees:
//
//   - Specialize never mutates its input; it returns a brand-new
//     network.Network sharing only the Origin handle.
//   - result.N() == |B| + num_copies · |S|, and the base-base block of
//     the result equals the original base-base block unchanged.
//   - If B is the full node set, or either boundary direction carries no
//     weight, num_copies == 0 and the result is the base block exactly.
//
// Fail-fast invariant:
//
//	The model reads edge weights as integer parallel-edge multiplicities,
//	so the weight-sum product must equal the boundary-edge occurrence
//	product. When weights are fractional or non-unit, the two counts
//	diverge and the rewiring bijection cannot be exhaustive; Specialize
//	returns ErrCopyCountMismatch rather than silently choosing one
//	interpretation.
//
// See also:
//
//   - network.Network — container, permutation, sub-block extraction.
//   - dynamics.Iterate — simulating a specialized network.
//   - stability.SpectralRadius — stability of the specialized system.
package specialize
