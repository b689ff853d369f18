package color

import (
	"fmt"
	"math"
)

// AchromaticChroma is the chroma below which a colour is treated as grey and
// its hue reported as 0.
const AchromaticChroma = 1e-4

// OKLCH is a colour in the OKLCH space. L is in [0,1], C is unbounded above
// zero (sRGB tops out near 0.37) and H is in degrees [0,360).
type OKLCH struct {
	L float64
	C float64
	H float64
}

// Normalized wraps the hue into [0,360) and zeroes it for achromatic colours.
func (c OKLCH) Normalized() OKLCH {
	if c.C < 0 {
		c.C = 0
	}
	if c.C < AchromaticChroma || math.IsNaN(c.H) {
		c.H = 0
		return c
	}
	c.H = math.Mod(c.H, 360)
	if c.H < 0 {
		c.H += 360
	}
	return c
}

// WithChroma returns a copy of c with a different chroma.
func (c OKLCH) WithChroma(chroma float64) OKLCH {
	return OKLCH{L: c.L, C: chroma, H: c.H}
}

func (c OKLCH) String() string {
	return fmt.Sprintf("oklch(%s %.4f %.2f)", Percent(c.L), c.C, c.H)
}

// Percent formats a 0-1 lightness as the 0-100 percentage used in human output.
func Percent(l float64) string {
	return fmt.Sprintf("%.2f%%", l*100)
}

// Model converts between textual colours, OKLCH and sRGB. Implementations must
// be deterministic and safe for concurrent use.
type Model interface {
	// Parse decodes a colour string into OKLCH.
	Parse(input string) (OKLCH, error)
	// ToOKLCH converts gamma-encoded sRGB channels in [0,1].
	ToOKLCH(r, g, b float64) OKLCH
	// ToHex renders an OKLCH colour, clamping any channel outside [0,1].
	ToHex(c OKLCH) Hex
	// InGamut reports whether c renders to sRGB without clamping.
	InGamut(c OKLCH) bool
}

// Default is the colour model used when none is injected.
var Default Model = NewColorful()

// ParseColor decodes input with the default model.
func ParseColor(input string) (OKLCH, error) {
	return Default.Parse(input)
}

// ToHex renders c with the default model.
func ToHex(c OKLCH) Hex {
	return Default.ToHex(c)
}
