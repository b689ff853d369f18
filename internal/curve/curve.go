package curve

import (
	"fmt"
	"math"
)

// Steps is the number of entries in every lightness curve and colour scale.
const Steps = 10

// Curve holds one OKLCH lightness per step, lightest first.
type Curve [Steps]float64

var canonical = Curve{0.97, 0.91, 0.82, 0.72, 0.61, 0.52, 0.45, 0.37, 0.29, 0.22}

// Canonical returns the fixed reference curve shared by every scale. The
// constants must not change between releases or every emitted token shifts.
func Canonical() Curve {
	return canonical
}

// Pinned builds a curve through baseL at index pin. Steps before the pin
// interpolate linearly from base[0], steps after it towards base[Steps-1].
func Pinned(base Curve, baseL float64, pin int) (Curve, error) {
	if pin < 0 || pin >= Steps {
		return Curve{}, fmt.Errorf("pin step %d out of range 0..%d", pin, Steps-1)
	}

	var out Curve
	first, last := base[0], base[Steps-1]
	for i := 0; i < pin; i++ {
		t := float64(i) / float64(pin)
		out[i] = first + (baseL-first)*t
	}
	for i := pin + 1; i < Steps; i++ {
		t := float64(i-pin) / float64(Steps-1-pin)
		out[i] = baseL + (last-baseL)*t
	}
	out[pin] = baseL

	return out, nil
}

// ClosestStep returns the index whose lightness is nearest l. Ties resolve to
// the lower index.
func ClosestStep(c Curve, l float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, v := range c {
		if d := math.Abs(v - l); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Validate checks that every lightness lies in [0,1] and the curve never gets
// lighter from one step to the next.
func Validate(c Curve) error {
	for i, v := range c {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("step %d lightness %v outside [0,1]", i, v)
		}
		if i > 0 && v > c[i-1] {
			return fmt.Errorf("step %d lightness %v is lighter than step %d (%v)", i, v, i-1, c[i-1])
		}
	}
	return nil
}

// FromSlice converts configuration data into a Curve.
func FromSlice(values []float64) (Curve, error) {
	var c Curve
	if len(values) != Steps {
		return c, fmt.Errorf("curve needs %d values, got %d", Steps, len(values))
	}
	copy(c[:], values)
	return c, Validate(c)
}
