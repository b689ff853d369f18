package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalIsStableAndMonotonic(t *testing.T) {
	t.Parallel()

	c := Canonical()
	require.Equal(t, Curve{0.97, 0.91, 0.82, 0.72, 0.61, 0.52, 0.45, 0.37, 0.29, 0.22}, c)
	require.NoError(t, Validate(c))

	// callers get a copy
	c[0] = 0
	require.Equal(t, 0.97, Canonical()[0])
}

func TestPinnedHitsBaseExactly(t *testing.T) {
	t.Parallel()

	base := Canonical()
	for pin := 0; pin < Steps; pin++ {
		got, err := Pinned(base, 0.6789, pin)
		require.NoError(t, err)
		require.Equal(t, 0.6789, got[pin], "pin %d", pin)
		if pin != 0 {
			require.Equal(t, base[0], got[0], "pin %d", pin)
		}
		if pin != Steps-1 {
			require.InDelta(t, base[Steps-1], got[Steps-1], 1e-12, "pin %d", pin)
		}
		require.NoError(t, Validate(got), "pin %d", pin)
	}
}

func TestPinnedBoundaries(t *testing.T) {
	t.Parallel()

	base := Canonical()

	first, err := Pinned(base, 0.5, 0)
	require.NoError(t, err)
	require.Equal(t, 0.5, first[0])
	require.InDelta(t, 0.5+(0.22-0.5)/9, first[1], 1e-12)
	require.InDelta(t, 0.22, first[9], 1e-12)

	last, err := Pinned(base, 0.5, 9)
	require.NoError(t, err)
	require.Equal(t, 0.5, last[9])
	require.Equal(t, 0.97, last[0])
	require.InDelta(t, 0.97+(0.5-0.97)*8/9, last[8], 1e-12)
}

func TestPinnedInterpolatesBothSegments(t *testing.T) {
	t.Parallel()

	got, err := Pinned(Canonical(), 0.94, 4)
	require.NoError(t, err)

	want := Curve{0.97, 0.9625, 0.955, 0.9475, 0.94, 0.796, 0.652, 0.508, 0.364, 0.22}
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-12, "step %d", i)
	}
}

func TestPinnedRejectsOutOfRangeStep(t *testing.T) {
	t.Parallel()

	_, err := Pinned(Canonical(), 0.5, -1)
	require.Error(t, err)
	_, err = Pinned(Canonical(), 0.5, Steps)
	require.Error(t, err)
}

func TestClosestStep(t *testing.T) {
	t.Parallel()

	c := Canonical()
	cases := []struct {
		name string
		l    float64
		want int
	}{
		{name: "lighter than everything", l: 1, want: 0},
		{name: "darker than everything", l: 0.05, want: 9},
		{name: "exact match", l: 0.61, want: 4},
		{name: "nearest wins", l: 0.728, want: 3},
		{name: "tie goes left", l: 0.865, want: 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ClosestStep(c, tc.l))
		})
	}
}

func TestClosestStepTieBreakUsesFirstMinimum(t *testing.T) {
	t.Parallel()

	c := Curve{0.9, 0.8, 0.8, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1, 0}
	require.Equal(t, 1, ClosestStep(c, 0.8))
	require.Equal(t, 3, ClosestStep(c, 0.55+1e-9))
}

func TestValidateAndFromSlice(t *testing.T) {
	t.Parallel()

	_, err := FromSlice([]float64{0.9, 0.8})
	require.Error(t, err)

	_, err = FromSlice([]float64{0.9, 0.95, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1})
	require.ErrorContains(t, err, "lighter")

	_, err = FromSlice([]float64{1.1, 0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1})
	require.ErrorContains(t, err, "outside")

	got, err := FromSlice([]float64{0.98, 0.93, 0.85, 0.75, 0.64, 0.55, 0.47, 0.39, 0.3, 0.2})
	require.NoError(t, err)
	require.Equal(t, 0.2, got[9])
}
