package gamut

import (
	"github.com/alexisbeaulieu97/chromaramp/internal/color"
	chromaerrors "github.com/alexisbeaulieu97/chromaramp/pkg/errors"
)

const (
	// DefaultMaxIterations caps the chroma bisection.
	DefaultMaxIterations = 32
	// DefaultTolerance stops the bisection once the chroma bracket is this narrow.
	DefaultTolerance = 1e-9
)

// Result describes one gamut mapping.
type Result struct {
	Color      color.OKLCH
	OutOfGamut bool
	Iterations int
}

// Mapper reduces chroma until an OKLCH colour is displayable in sRGB.
type Mapper struct {
	model         color.Model
	maxIterations int
	tolerance     float64
}

// Option customises a Mapper.
type Option func(*Mapper)

// WithMaxIterations sets the bisection cap. Values below 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(m *Mapper) {
		if n > 0 {
			m.maxIterations = n
		}
	}
}

// WithTolerance sets the convergence width. Values <= 0 disable early exit.
func WithTolerance(tol float64) Option {
	return func(m *Mapper) {
		m.tolerance = tol
	}
}

// New builds a Mapper over model. A nil model falls back to color.Default.
func New(model color.Model, opts ...Option) *Mapper {
	if model == nil {
		model = color.Default
	}
	m := &Mapper{
		model:         model,
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Model returns the colour model the mapper renders with.
func (m *Mapper) Model() color.Model {
	return m.model
}

// IsDisplayable reports whether oklch(l c h) renders to sRGB without clamping.
func (m *Mapper) IsDisplayable(l, c, h float64) bool {
	return m.model.InGamut(color.OKLCH{L: l, C: c, H: h})
}

// MapToGamut returns the colour unchanged when displayable, otherwise the same
// lightness and hue at the largest displayable chroma in [0, c].
func (m *Mapper) MapToGamut(l, c, h float64) (color.OKLCH, error) {
	res, err := m.Map(l, c, h)
	return res.Color, err
}

// Map is MapToGamut with diagnostics.
func (m *Mapper) Map(l, c, h float64) (Result, error) {
	requested := color.OKLCH{L: l, C: c, H: h}
	if m.IsDisplayable(l, c, h) {
		return Result{Color: requested}, nil
	}

	floor := requested.WithChroma(0)
	if c <= 0 || !m.IsDisplayable(l, 0, h) {
		return Result{Color: floor, OutOfGamut: true}, chromaerrors.NewGamutSearchError(l, c, h)
	}

	// lo is always displayable, hi never is.
	lo, hi := 0.0, c
	iterations := 0
	for iterations < m.maxIterations {
		if m.tolerance > 0 && hi-lo < m.tolerance {
			break
		}
		mid := (lo + hi) / 2
		if m.IsDisplayable(l, mid, h) {
			lo = mid
		} else {
			hi = mid
		}
		iterations++
	}

	return Result{
		Color:      requested.WithChroma(lo),
		OutOfGamut: true,
		Iterations: iterations,
	}, nil
}
