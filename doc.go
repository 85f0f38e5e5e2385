// Package specnet analyzes directed, weighted networks under the
// specialization model of Bunimovich, Smith & Webb — expanding a chosen
// subset of nodes into structural copies so that every copy receives
// exactly one distinguishable path of external influence, while the
// spectrum and dynamics of the original system are preserved.
//
// 🚀 What is specnet?
//
//	An in-memory analysis toolkit that brings together:
//		• network/    — immutable sparse network container, label↔index
//		                registry, and the shared Origin handle that maps
//		                every specialized copy back to its original node
//		• specialize/ — the block-decomposition + combinatorial edge
//		                rewiring algorithm at the heart of the model
//		• dynamics/   — linear and nonlinear trajectory simulation
//		• stability/  — Jacobian-bound stability matrix & spectral radius
//		• viz/        — trajectory rendering via gonum/plot
//
// ✨ Why specnet?
//
//   - Immutable by construction — every transformation returns a fresh
//     Network; nothing is mutated behind your back
//   - Deterministic — fixed row-major boundary-edge enumeration, fixed
//     copy ordering, reproducible results on every run
//   - Sparse all the way down — CSR adjacency storage, nonzero-only
//     dynamics evaluation, rewiring bounded by boundary edges, not |E|
//
// Quick sketch of specialization around base {B} with spec set {x, y}:
//
//	    B ──▶ x ──▶ y ──▶ B          (one inbound, one outbound pairing)
//
//	becomes
//
//	    B ──▶ x.1 ──▶ y.1 ──▶ B      (one copy per (in, out) pairing)
//
// Every copy label resolves, via suffix stripping and the Origin handle,
// to the original node whose dynamics function it shares.
//
//	go get github.com/bravais/specnet
package specnet
