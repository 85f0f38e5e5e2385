// Package dynamics simulates node dynamics over a (possibly specialized)
// network, producing a (steps × n) trajectory matrix.
//
// Overview:
//
//   - Iterate(net, steps, x0) runs the network's update rule for steps
//     timesteps starting from x0. Row 0 of the result is x0; row t is the
//     state after t updates. Step exposes a single update for callers
//     that manage their own time loop.
//   - The mode is selected by the network's Origin handle: linear
//     (adjacency multiplication) when no functional matrix is attached,
//     nonlinear (per-node self term + weighted coupling terms) otherwise.
//   - On a specialized network every copy shares its original node's
//     functions via OriginalIndex — the same mechanism for every
//     consumer, so a specialized system evolves exactly like the theorem
//     prescribes.
//
// Error handling (sentinel errors):
//
//   - ErrNilNetwork        — nil network pointer.
//   - ErrBadSteps          — steps < 1.
//   - ErrDimensionMismatch — len(x0) ≠ n.
//   - network.ErrOriginLookup propagates unwrapped if a node fails to
//     resolve to an original function index (internal consistency).
//
// Rendering a trajectory (one line per node, legend, optional save) is
// the viz package's job; this package only produces the numbers.
//
// Complexity: O(steps · (n + nnz)); cross terms are evaluated only on
// stored adjacency entries, never over all n² pairs.
package dynamics
