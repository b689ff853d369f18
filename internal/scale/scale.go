package scale

import (
	"github.com/alexisbeaulieu97/chromaramp/internal/color"
	"github.com/alexisbeaulieu97/chromaramp/internal/curve"
)

// Mode records which definition form produced a scale.
type Mode string

const (
	// ModeExplicit scales come from a hue and a per-step chroma table.
	ModeExplicit Mode = "explicit"
	// ModeBrand scales are derived from a single brand colour.
	ModeBrand Mode = "brand"
)

// Step is one generated swatch.
type Step struct {
	Index int
	Hex   color.Hex
	// Pinned marks the step that reproduces the brand input verbatim.
	Pinned bool
	// Requested is the colour asked for before gamut mapping.
	Requested color.OKLCH
	// Rendered is the colour the hex was derived from.
	Rendered   color.OKLCH
	OutOfGamut bool
}

// Scale is a 10-step ramp, lightest first.
type Scale struct {
	Mode  Mode
	Steps [curve.Steps]Step
}

// Hexes returns the swatches in step order.
func (s Scale) Hexes() []color.Hex {
	out := make([]color.Hex, 0, len(s.Steps))
	for _, step := range s.Steps {
		out = append(out, step.Hex)
	}
	return out
}

// PinnedStep returns the pinned step, if any.
func (s Scale) PinnedStep() (Step, bool) {
	for _, step := range s.Steps {
		if step.Pinned {
			return step, true
		}
	}
	return Step{}, false
}

// Definition describes a scale in either explicit or brand form.
type Definition struct {
	Hue    float64
	Chroma [curve.Steps]float64
	Brand  string
	Pin    *int
}

// IsBrand reports whether the definition is in brand form.
func (d Definition) IsBrand() bool {
	return d.Brand != ""
}

// Explicit builds an explicit-form definition.
func Explicit(hue float64, chroma [curve.Steps]float64) Definition {
	return Definition{Hue: hue, Chroma: chroma}
}

// Brand builds a brand-form definition. pin may be nil.
func Brand(hex string, pin *int) Definition {
	return Definition{Brand: hex, Pin: pin}
}
