package color

import "math"

// matrix3 is a row-major 3x3 matrix.
type matrix3 [3][3]float64

func (m matrix3) apply(x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// inverse uses the adjugate; both OKLab matrices are well conditioned.
func (m matrix3) inverse() matrix3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	c00 := e*i - f*h
	c01 := -(d*i - f*g)
	c02 := d*h - e*g
	det := a*c00 + b*c01 + c*c02

	return matrix3{
		{c00 / det, -(b*i - c*h) / det, (b*f - c*e) / det},
		{c01 / det, (a*i - c*g) / det, -(a*f - c*d) / det},
		{c02 / det, -(a*h - b*g) / det, (a*e - b*d) / det},
	}
}

// Ottosson's linear sRGB -> LMS and LMS' -> OKLab matrices at double
// precision. Every row of linearToLMS sums to 1 and lmsToLab sends (1,1,1) to
// (1,0,0), so sRGB white is exactly L=1, C=0.
var (
	linearToLMS = matrix3{
		{0.4122214694707629, 0.5363325372617349, 0.0514459932675022},
		{0.2119034958178251, 0.6806995506452344, 0.1073969535369405},
		{0.0883024591900564, 0.2817188391361215, 0.6299787016738221},
	}
	lmsToLab = matrix3{
		{0.2104542683093140, 0.7936177747023054, -0.0040720430116193},
		{1.9779985324311684, -2.4285922420485799, 0.4505937096174110},
		{0.0259040424655478, 0.7827717124575296, -0.8086757549230774},
	}

	// Inverses are derived from the forward matrices, not transcribed.
	lmsToLinear = linearToLMS.inverse()
	labToLMS    = lmsToLab.inverse()
)

// linearToOKLCH converts linear-light sRGB channels to OKLCH.
func linearToOKLCH(r, g, b float64) OKLCH {
	l, m, s := linearToLMS.apply(r, g, b)
	lightness, a, bb := lmsToLab.apply(math.Cbrt(l), math.Cbrt(m), math.Cbrt(s))

	return OKLCH{
		L: lightness,
		C: math.Hypot(a, bb),
		H: math.Atan2(bb, a) * 180 / math.Pi,
	}.Normalized()
}

// oklchToLinear converts c to linear-light sRGB channels without clamping.
func oklchToLinear(c OKLCH) (float64, float64, float64) {
	rad := c.H * math.Pi / 180
	lp, mp, sp := labToLMS.apply(c.L, c.C*math.Cos(rad), c.C*math.Sin(rad))
	return lmsToLinear.apply(lp*lp*lp, mp*mp*mp, sp*sp*sp)
}
