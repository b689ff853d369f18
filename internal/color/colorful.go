package color

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	chromaerrors "github.com/alexisbeaulieu97/chromaramp/pkg/errors"
)

// DefaultGamutEpsilon is the float noise tolerated on a linear sRGB channel
// at the edges of the cube.
const DefaultGamutEpsilon = 1e-7

// Colorful is the Model backed by github.com/lucasb-eyer/go-colorful for hex
// decoding and sRGB transfer curves. The OKLab step uses the linear sRGB
// matrices in oklab.go.
type Colorful struct {
	Epsilon float64
}

// NewColorful returns a Colorful model with the default gamut tolerance.
func NewColorful() Colorful {
	return Colorful{Epsilon: DefaultGamutEpsilon}
}

// Parse implements Model.
func (m Colorful) Parse(input string) (OKLCH, error) {
	return parseWith(input, func(h Hex) (OKLCH, error) {
		c, err := colorful.Hex(strings.ToLower(string(h)))
		if err != nil {
			return OKLCH{}, chromaerrors.NewColorParseError(input, err.Error())
		}
		return m.ToOKLCH(c.R, c.G, c.B), nil
	})
}

// ToOKLCH implements Model.
func (m Colorful) ToOKLCH(r, g, b float64) OKLCH {
	return linearToOKLCH(colorful.Color{R: r, G: g, B: b}.LinearRgb())
}

// ToHex implements Model.
func (m Colorful) ToHex(c OKLCH) Hex {
	rendered := colorful.LinearRgb(oklchToLinear(c)).Clamped()
	return Hex(strings.ToUpper(rendered.Hex()))
}

// InGamut implements Model.
func (m Colorful) InGamut(c OKLCH) bool {
	if math.IsNaN(c.L) || math.IsNaN(c.C) || math.IsNaN(c.H) {
		return false
	}
	r, g, b := oklchToLinear(c)
	return channelInRange(r, m.Epsilon) &&
		channelInRange(g, m.Epsilon) &&
		channelInRange(b, m.Epsilon)
}

func channelInRange(v, eps float64) bool {
	return v >= -eps && v <= 1+eps
}

var _ Model = Colorful{}
