// Package stability derives a Jacobian-bound matrix for a nonlinear
// network and reports its spectral radius as a local-stability indicator.
//
// The (i,j) entry of the stability matrix is the supremum, over a dense
// sample of a fixed finite domain, of |d/dx F[o_i,o_j](x)| — the
// worst-case sensitivity of the coupling from j to i. Differentiation is
// delegated to gonum's finite-difference engine; this package owns only
// the sampling range, the resolution, and the max-abs reduction.
package stability

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/bravais/specnet/network"
)

// Sampling defaults, matching the published analysis setup.
const (
	// DefaultDomainLo is the lower end of the derivative sampling domain.
	DefaultDomainLo = -10.0

	// DefaultDomainHi is the upper end of the derivative sampling domain.
	DefaultDomainHi = 10.0

	// DefaultSamples is the number of evenly spaced sample points.
	DefaultSamples = 50000
)

// Sentinel errors returned by Matrix and SpectralRadius.
var (
	// ErrNilNetwork indicates that a nil *network.Network was passed.
	ErrNilNetwork = errors.New("stability: network is nil")

	// ErrLinearSystem indicates that the network carries no functional
	// matrix; a linear system's stability is read off its adjacency
	// spectrum directly, not through this bound.
	ErrLinearSystem = errors.New("stability: network has no functional matrix")

	// ErrBadDomain indicates a sampling domain with lo >= hi or a
	// non-finite endpoint.
	ErrBadDomain = errors.New("stability: invalid sampling domain")

	// ErrBadSamples indicates fewer than two sample points.
	ErrBadSamples = errors.New("stability: need at least two sample points")

	// ErrEigenFailed indicates that the eigendecomposition of the
	// stability matrix did not converge.
	ErrEigenFailed = errors.New("stability: eigen decomposition failed")
)

// Options configures the derivative sampling.
//
// DomainLo, DomainHi – finite sampling interval, DomainLo < DomainHi.
// Samples            – number of evenly spaced points, ≥ 2.
type Options struct {
	DomainLo float64
	DomainHi float64
	Samples  int
}

// Option is a functional option for Matrix and SpectralRadius.
type Option func(*Options)

// WithDomain sets the sampling interval [lo, hi].
func WithDomain(lo, hi float64) Option {
	return func(o *Options) {
		o.DomainLo = lo
		o.DomainHi = hi
	}
}

// WithSamples sets the number of evenly spaced sample points.
func WithSamples(k int) Option {
	return func(o *Options) { o.Samples = k }
}

// DefaultOptions returns the sampling setup used when no options are
// given: domain [-10, 10] at 50000 points.
func DefaultOptions() Options {
	return Options{DomainLo: DefaultDomainLo, DomainHi: DefaultDomainHi, Samples: DefaultSamples}
}

// Matrix returns the n×n stability matrix Df of the network, where
// Df[i,j] is the sampled supremum of |d/dx F[o_i,o_j](x)| (the derivative
// is negated before the max-abs reduction, which leaves the magnitude
// unchanged).
//
// Copies produced by specialization share their original node's
// functions, so the sup-derivative is computed once per original
// (o_i, o_j) pair and fanned out to every copy position.
//
// Errors: ErrNilNetwork, ErrLinearSystem, ErrBadDomain, ErrBadSamples;
// network.ErrOriginLookup propagates on broken canonical resolution.
// Complexity: O(pairs · samples) differentiation + O(n²) fill, where
// pairs ≤ n₀².
func Matrix(net *network.Network, opts ...Option) (*mat.Dense, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if math.IsNaN(cfg.DomainLo) || math.IsInf(cfg.DomainLo, 0) ||
		math.IsNaN(cfg.DomainHi) || math.IsInf(cfg.DomainHi, 0) ||
		cfg.DomainLo >= cfg.DomainHi {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrBadDomain, cfg.DomainLo, cfg.DomainHi)
	}
	if cfg.Samples < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSamples, cfg.Samples)
	}

	// 2) Validate the network.
	if net == nil {
		return nil, ErrNilNetwork
	}
	origin := net.Origin()
	if origin.Linear() {
		return nil, ErrLinearSystem
	}

	// 3) Resolve every current node to its original function index.
	n := net.N()
	orig := make([]int, n)
	for i := 0; i < n; i++ {
		oi, err := net.OriginalIndex(i)
		if err != nil {
			return nil, err
		}
		orig[i] = oi
	}

	// 4) Compute the sup-derivative lazily per original pair; copies of
	//    the same pair reuse the cached bound.
	sup := make(map[[2]int]float64)
	settings := &fd.Settings{Formula: fd.Central}
	supFor := func(a, b int) (float64, error) {
		key := [2]int{a, b}
		if v, ok := sup[key]; ok {
			return v, nil
		}
		f, err := origin.Func(a, b)
		if err != nil {
			return 0, err
		}
		bound := 0.0
		step := (cfg.DomainHi - cfg.DomainLo) / float64(cfg.Samples-1)
		for k := 0; k < cfg.Samples; k++ {
			x := cfg.DomainLo + float64(k)*step
			d := -fd.Derivative(f, x, settings)
			if abs := math.Abs(d); abs > bound {
				bound = abs
			}
		}
		sup[key] = bound

		return bound, nil
	}

	// 5) Fill the n×n bound matrix.
	df := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			bound, err := supFor(orig[i], orig[j])
			if err != nil {
				return nil, err
			}
			df.Set(i, j, bound)
		}
	}

	return df, nil
}

// SpectralRadius returns the maximum eigenvalue modulus of the stability
// matrix — an upper-bound indicator of local dynamical stability. A
// radius below 1 typically implies local stability under the underlying
// spectral theory; the threshold comparison is the caller's call.
//
// Errors: everything Matrix returns, plus ErrEigenFailed when the
// eigendecomposition does not converge.
// Complexity: Matrix + O(n³) eigendecomposition.
func SpectralRadius(net *network.Network, opts ...Option) (float64, error) {
	df, err := Matrix(net, opts...)
	if err != nil {
		return 0, err
	}

	var eig mat.Eigen
	if ok := eig.Factorize(df, mat.EigenNone); !ok {
		return 0, ErrEigenFailed
	}

	radius := 0.0
	for _, v := range eig.Values(nil) {
		if m := cmplx.Abs(v); m > radius {
			radius = m
		}
	}

	return radius, nil
}
