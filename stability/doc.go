// Package stability estimates local dynamical stability of a nonlinear
// network through a Jacobian-bound matrix and its spectral radius.
//
// Overview:
//
//   - Matrix(net) produces the n×n matrix Df with
//     Df[i,j] = sup over a sampled domain of |d/dx F[o_i,o_j](x)|,
//     where o_i is node i's original index. Sampling defaults to 50000
//     evenly spaced points on [-10, 10]; both are configurable via
//     WithDomain and WithSamples.
//   - SpectralRadius(net) returns the maximum eigenvalue modulus of Df.
//     Under the specialization model's spectral theory, a radius below 1
//     indicates local stability; this package reports the number and
//     leaves the threshold comparison to the caller.
//
// Collaborators:
//
//   - Differentiation: gonum.org/v1/gonum/diff/fd (central finite
//     differences), applied per sample point. The package owns the
//     sampling range, resolution, and max-abs reduction — not the
//     differentiation mechanism.
//   - Eigendecomposition: gonum.org/v1/gonum/mat.Eigen, values only.
//
// Error handling (sentinel errors):
//
//   - ErrNilNetwork, ErrLinearSystem — invalid analysis target.
//   - ErrBadDomain, ErrBadSamples   — invalid sampling configuration.
//   - ErrEigenFailed               — non-converged eigendecomposition.
//
// Performance note: specialized copies share their original node's
// functions, so sup-derivatives are computed once per original function
// pair (at most n₀²) and fanned out across all copies, keeping the cost
// independent of how far the network has been expanded.
package stability
