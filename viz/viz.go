// Package viz renders simulated trajectories: one line per node over the
// time domain, with a legend keyed by node label. It is a thin adapter
// over gonum/plot — the dynamics package produces the numbers, this
// package only draws them.
package viz

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Default figure text, matching the analysis scripts this package grew
// out of.
const (
	// DefaultTitle is the default plot title.
	DefaultTitle = "Network Dynamics"

	// DefaultXLabel is the default time-axis label.
	DefaultXLabel = "Time"

	// DefaultYLabel is the default state-axis label.
	DefaultYLabel = "Node Value"
)

// Sentinel errors returned by TrajectoryPlot and SaveTrajectoryPNG.
var (
	// ErrNilTrajectory indicates that a nil trajectory matrix was passed.
	ErrNilTrajectory = errors.New("viz: trajectory is nil")

	// ErrLabelCountMismatch indicates that the label count does not equal
	// the trajectory's node (column) count.
	ErrLabelCountMismatch = errors.New("viz: label count does not match node count")
)

// Options configures the rendered figure.
type Options struct {
	Title  string // plot title
	XLabel string // time-axis label
	YLabel string // state-axis label
	Width  vg.Length
	Height vg.Length
}

// Option is a functional option for TrajectoryPlot and SaveTrajectoryPNG.
type Option func(*Options)

// WithTitle overrides the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithAxisLabels overrides the time- and state-axis labels.
func WithAxisLabels(x, y string) Option {
	return func(o *Options) {
		o.XLabel = x
		o.YLabel = y
	}
}

// WithSize sets the saved figure dimensions.
func WithSize(w, h vg.Length) Option {
	return func(o *Options) {
		o.Width = w
		o.Height = h
	}
}

// DefaultOptions returns the defaults: "Network Dynamics" over
// Time/Node Value axes at 8×6 inches.
func DefaultOptions() Options {
	return Options{
		Title:  DefaultTitle,
		XLabel: DefaultXLabel,
		YLabel: DefaultYLabel,
		Width:  8 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

// TrajectoryPlot builds a figure from a (steps × n) trajectory: node j
// becomes one line over timesteps 0..steps-1, legend entry labels[j].
// labels may be nil, in which case no legend entries are added.
//
// Errors: ErrNilTrajectory, ErrLabelCountMismatch; line construction
// failures propagate from gonum/plot.
func TrajectoryPlot(traj mat.Matrix, labels []string, opts ...Option) (*plot.Plot, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if traj == nil {
		return nil, ErrNilTrajectory
	}
	steps, n := traj.Dims()
	if labels != nil && len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d nodes", ErrLabelCountMismatch, len(labels), n)
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel

	for j := 0; j < n; j++ {
		pts := make(plotter.XYs, steps)
		for t := 0; t < steps; t++ {
			pts[t].X = float64(t)
			pts[t].Y = traj.At(t, j)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("viz: line for node %d: %w", j, err)
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = plotutil.Color(j)
		p.Add(line)
		if labels != nil {
			p.Legend.Add(labels[j], line)
		}
	}

	return p, nil
}

// SaveTrajectoryPNG renders the trajectory and writes it to path (the
// extension selects the encoder; use ".png" for the usual figure file).
func SaveTrajectoryPNG(traj mat.Matrix, labels []string, path string, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	p, err := TrajectoryPlot(traj, labels, opts...)
	if err != nil {
		return err
	}

	return p.Save(cfg.Width, cfg.Height, path)
}
