package scale

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/chromaramp/internal/color"
	"github.com/alexisbeaulieu97/chromaramp/internal/curve"
	"github.com/alexisbeaulieu97/chromaramp/internal/gamut"
)

// Generator turns definitions into scales. It holds no mutable state and is
// safe for concurrent use.
type Generator struct {
	model  color.Model
	mapper *gamut.Mapper
	curve  curve.Curve
}

// Option customises a Generator.
type Option func(*Generator)

// WithModel injects the colour model used for parsing and rendering.
func WithModel(m color.Model) Option {
	return func(g *Generator) {
		if m != nil {
			g.model = m
		}
	}
}

// WithMapper injects the gamut mapper.
func WithMapper(m *gamut.Mapper) Option {
	return func(g *Generator) {
		if m != nil {
			g.mapper = m
		}
	}
}

// WithCurve replaces the reference lightness curve.
func WithCurve(c curve.Curve) Option {
	return func(g *Generator) {
		g.curve = c
	}
}

// New returns a Generator using the canonical curve and the default colour
// model unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{
		model: color.Default,
		curve: curve.Canonical(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.mapper == nil {
		g.mapper = gamut.New(g.model)
	}
	return g
}

// Curve returns the reference curve the generator uses.
func (g *Generator) Curve() curve.Curve {
	return g.curve
}

// Generate dispatches on the definition form.
func (g *Generator) Generate(def Definition) (Scale, error) {
	if def.IsBrand() {
		return g.GenerateFromBrand(def.Brand, def.Pin)
	}
	return g.GenerateExplicit(def.Hue, def.Chroma)
}

// GenerateExplicit renders the reference curve at a fixed hue with the given
// per-step chroma.
func (g *Generator) GenerateExplicit(hue float64, chroma [curve.Steps]float64) (Scale, error) {
	if math.IsNaN(hue) || math.IsInf(hue, 0) {
		return Scale{}, fmt.Errorf("hue must be finite, got %v", hue)
	}

	out := Scale{Mode: ModeExplicit}
	for i := 0; i < curve.Steps; i++ {
		if chroma[i] < 0 || math.IsNaN(chroma[i]) {
			return Scale{}, fmt.Errorf("step %d: chroma must be a non-negative number, got %v", i, chroma[i])
		}
		requested := color.OKLCH{L: g.curve[i], C: chroma[i], H: hue}.Normalized()
		step, err := g.render(i, requested)
		if err != nil {
			return Scale{}, err
		}
		out.Steps[i] = step
	}
	return out, nil
}

// GenerateFromBrand derives a scale from one brand colour. The brand colour
// occupies pin when given, otherwise the reference step closest to its
// lightness, and is emitted exactly as supplied (uppercased).
func (g *Generator) GenerateFromBrand(hex string, pin *int) (Scale, error) {
	normalized, err := color.NormalizeHex(hex)
	if err != nil {
		return Scale{}, err
	}
	base, err := g.model.Parse(string(normalized))
	if err != nil {
		return Scale{}, err
	}

	lightness := g.curve
	pinned := curve.ClosestStep(g.curve, base.L)
	if pin != nil {
		pinned = *pin
		lightness, err = curve.Pinned(g.curve, base.L, pinned)
		if err != nil {
			return Scale{}, err
		}
	}

	out := Scale{Mode: ModeBrand}
	for i := 0; i < curve.Steps; i++ {
		if i == pinned {
			out.Steps[i] = Step{
				Index:     i,
				Hex:       normalized,
				Pinned:    true,
				Requested: base,
				Rendered:  base,
			}
			continue
		}
		requested := color.OKLCH{L: lightness[i], C: base.C, H: base.H}
		step, err := g.render(i, requested)
		if err != nil {
			return Scale{}, err
		}
		out.Steps[i] = step
	}
	return out, nil
}

func (g *Generator) render(index int, requested color.OKLCH) (Step, error) {
	res, err := g.mapper.Map(requested.L, requested.C, requested.H)
	if err != nil {
		return Step{}, fmt.Errorf("step %d: %w", index, err)
	}
	return Step{
		Index:      index,
		Hex:        g.model.ToHex(res.Color),
		Requested:  requested,
		Rendered:   res.Color,
		OutOfGamut: res.OutOfGamut,
	}, nil
}
