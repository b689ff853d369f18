package accessibility

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chromaramp/internal/color"
	"github.com/alexisbeaulieu97/chromaramp/internal/curve"
	"github.com/alexisbeaulieu97/chromaramp/internal/scale"
)

func TestContrastRatio(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b color.Hex
		want float64
	}{
		{name: "black on white", a: "#000000", b: "#FFFFFF", want: 21},
		{name: "order does not matter", a: "#FFFFFF", b: "#000000", want: 21},
		{name: "identical", a: "#777777", b: "#777777", want: 1},
		{name: "mid grey", a: "#767676", b: "#FFFFFF", want: 4.54},
		{name: "shorthand", a: "#fff", b: "#000", want: 21},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ContrastRatio(tc.a, tc.b)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 0.01)
		})
	}

	_, err := ContrastRatio("#nothex", White)
	require.Error(t, err)
}

func TestValidateExplicitBlueScale(t *testing.T) {
	t.Parallel()

	s, err := scale.New().GenerateExplicit(250, [curve.Steps]float64{0.03, 0.06, 0.10, 0.14, 0.17, 0.18, 0.17, 0.14, 0.11, 0.08})
	require.NoError(t, err)

	ratio, err := ContrastRatio(s.Steps[6].Hex, White)
	require.NoError(t, err)
	require.GreaterOrEqual(t, ratio, 4.5)

	issues := Validate(s)
	require.Zero(t, Count(issues, KindContrast))

	// the dark end of this ramp asks for more chroma than sRGB holds
	require.Equal(t, 5, Count(issues, KindGamut))
	for _, issue := range issues {
		require.GreaterOrEqual(t, issue.Step, 5)
		require.Contains(t, issue.String(), "gamut")
	}
}

func TestValidateFlagsLowContrast(t *testing.T) {
	t.Parallel()

	pin := 4
	s, err := scale.New().GenerateFromBrand("#F4EBD7", &pin)
	require.NoError(t, err)

	var contrast []Issue
	for _, issue := range Validate(s) {
		if issue.Kind == KindContrast {
			contrast = append(contrast, issue)
		}
	}
	require.Len(t, contrast, 2)
	require.Equal(t, 5, contrast[0].Step)
	require.Equal(t, 3.0, contrast[0].Threshold)
	require.Less(t, contrast[0].Ratio, 3.0)
	require.Equal(t, 6, contrast[1].Step)
	require.Equal(t, 4.5, contrast[1].Threshold)
	require.Contains(t, contrast[1].Message, "below 4.5:1")
}

func TestValidateHonoursThresholds(t *testing.T) {
	t.Parallel()

	var s scale.Scale
	for i := range s.Steps {
		s.Steps[i] = scale.Step{Index: i, Hex: "#767676"}
	}

	require.Empty(t, Validate(s))

	strict := New(WithThresholds(Thresholds{FirstStep: 8, FirstStepRatio: 7, DarkRatio: 7}))
	issues := strict.Validate(s)
	require.Len(t, issues, 2)
	require.Equal(t, 8, issues[0].Step)
	require.Equal(t, 9, issues[1].Step)
}

func TestValidateReportsGamutBeforeContrast(t *testing.T) {
	t.Parallel()

	var s scale.Scale
	for i := range s.Steps {
		s.Steps[i] = scale.Step{Index: i, Hex: "#000000"}
	}
	s.Steps[5] = scale.Step{
		Index:      5,
		Hex:        "#EEEEEE",
		OutOfGamut: true,
		Requested:  color.OKLCH{L: 0.95, C: 0.3, H: 95},
		Rendered:   color.OKLCH{L: 0.95, C: 0.1, H: 95},
	}

	issues := Validate(s)
	require.Len(t, issues, 2)
	require.Equal(t, KindGamut, issues[0].Kind)
	require.Contains(t, issues[0].Message, "chroma reduced to 0.1000")
	require.Equal(t, KindContrast, issues[1].Kind)
}
