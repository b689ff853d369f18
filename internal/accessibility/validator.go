package accessibility

import (
	"fmt"

	"github.com/alexisbeaulieu97/chromaramp/internal/color"
	"github.com/alexisbeaulieu97/chromaramp/internal/curve"
	"github.com/alexisbeaulieu97/chromaramp/internal/scale"
)

// Kind classifies an Issue.
type Kind string

const (
	// KindGamut flags a step whose requested colour needed chroma reduction.
	KindGamut Kind = "gamut"
	// KindContrast flags a step below its contrast threshold against white.
	KindContrast Kind = "contrast"
)

// Issue is an advisory finding about one step of a scale.
type Issue struct {
	Kind      Kind
	Step      int
	Hex       color.Hex
	Ratio     float64
	Threshold float64
	Message   string
}

func (i Issue) String() string {
	return fmt.Sprintf("step %d %s: %s", i.Step, i.Kind, i.Message)
}

// Thresholds configures which steps are checked and how strictly.
type Thresholds struct {
	// FirstStep is the lightest step that must carry contrast.
	FirstStep int
	// FirstStepRatio applies to FirstStep only (large text, UI components).
	FirstStepRatio float64
	// DarkRatio applies to every step after FirstStep (body text).
	DarkRatio float64
}

// DefaultThresholds checks steps 5-9 at WCAG AA: 3:1 for step 5, 4.5:1 after.
func DefaultThresholds() Thresholds {
	return Thresholds{FirstStep: 5, FirstStepRatio: 3.0, DarkRatio: 4.5}
}

// Validator inspects finished scales. It never alters them.
type Validator struct {
	thresholds Thresholds
	background color.Hex
}

// Option customises a Validator.
type Option func(*Validator)

// WithThresholds overrides the default contrast thresholds.
func WithThresholds(t Thresholds) Option {
	return func(v *Validator) {
		v.thresholds = t
	}
}

// New returns a Validator checking against white.
func New(opts ...Option) *Validator {
	v := &Validator{thresholds: DefaultThresholds(), background: White}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks s with the default thresholds.
func Validate(s scale.Scale) []Issue {
	return New().Validate(s)
}

// Validate reports gamut and contrast issues for the checked steps, in step
// order with the gamut issue first.
func (v *Validator) Validate(s scale.Scale) []Issue {
	var issues []Issue
	for i := v.thresholds.FirstStep; i < curve.Steps; i++ {
		if i < 0 {
			continue
		}
		step := s.Steps[i]
		if step.OutOfGamut {
			issues = append(issues, Issue{
				Kind:    KindGamut,
				Step:    i,
				Hex:     step.Hex,
				Message: fmt.Sprintf("%s is outside sRGB, chroma reduced to %.4f", step.Requested, step.Rendered.C),
			})
		}

		threshold := v.thresholds.DarkRatio
		if i == v.thresholds.FirstStep {
			threshold = v.thresholds.FirstStepRatio
		}
		ratio, err := ContrastRatio(step.Hex, v.background)
		if err != nil {
			issues = append(issues, Issue{
				Kind:      KindContrast,
				Step:      i,
				Hex:       step.Hex,
				Threshold: threshold,
				Message:   fmt.Sprintf("contrast not computable: %v", err),
			})
			continue
		}
		if ratio < threshold {
			issues = append(issues, Issue{
				Kind:      KindContrast,
				Step:      i,
				Hex:       step.Hex,
				Ratio:     ratio,
				Threshold: threshold,
				Message:   fmt.Sprintf("contrast %.2f:1 against %s is below %.1f:1", ratio, v.background, threshold),
			})
		}
	}
	return issues
}

// Count returns how many issues of kind are in issues.
func Count(issues []Issue, kind Kind) int {
	n := 0
	for _, issue := range issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}
