package accessibility

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/chromaramp/internal/color"
)

// White is the background every scale is checked against.
const White color.Hex = "#FFFFFF"

// WCAG 2.x luminance coefficients.
const (
	rc = 0.2126
	gc = 0.7152
	bc = 0.0722

	lowThreshold = 0.03928
	lowc         = 1 / 12.92
)

func adjustGamma(v float64) float64 {
	if v <= lowThreshold {
		return v * lowc
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of hex, 0 for black
// and 1 for white.
func RelativeLuminance(hex color.Hex) (float64, error) {
	normalized, err := color.NormalizeHex(string(hex))
	if err != nil {
		return 0, err
	}
	c, err := colorful.Hex(string(normalized))
	if err != nil {
		return 0, err
	}
	return rc*adjustGamma(c.R) + gc*adjustGamma(c.G) + bc*adjustGamma(c.B), nil
}

// ContrastRatio returns the WCAG contrast ratio between a and b, from 1 to 21.
func ContrastRatio(a, b color.Hex) (float64, error) {
	al, err := RelativeLuminance(a)
	if err != nil {
		return 0, err
	}
	bl, err := RelativeLuminance(b)
	if err != nil {
		return 0, err
	}
	lighter := math.Max(al, bl)
	darker := math.Min(al, bl)
	return (lighter + 0.05) / (darker + 0.05), nil
}
