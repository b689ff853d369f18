package engine

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/chromaramp/internal/accessibility"
	"github.com/alexisbeaulieu97/chromaramp/internal/color"
	"github.com/alexisbeaulieu97/chromaramp/internal/config"
	"github.com/alexisbeaulieu97/chromaramp/internal/curve"
	"github.com/alexisbeaulieu97/chromaramp/internal/gamut"
	"github.com/alexisbeaulieu97/chromaramp/internal/logger"
	"github.com/alexisbeaulieu97/chromaramp/internal/model"
	"github.com/alexisbeaulieu97/chromaramp/internal/scale"
)

// BuildContext contains runtime state shared across palette workers.
type BuildContext struct {
	Config          *config.Config
	BuildID         string
	ContinueOnError bool
	WorkerPool      chan struct{}
	Generator       *scale.Generator
	Validator       *accessibility.Validator
	Logger          *logger.Logger
	Context         context.Context

	// OnStart and OnResult are invoked from worker goroutines.
	OnStart  func(paletteID string)
	OnResult func(result model.PaletteResult)
}

// NewBuildContext wires a generator and validator from the configuration
// settings.
func NewBuildContext(ctx context.Context, cfg *config.Config, log *logger.Logger) (*BuildContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	gen, err := GeneratorFor(cfg.Settings)
	if err != nil {
		return nil, err
	}

	return &BuildContext{
		Config:          cfg,
		ContinueOnError: cfg.Settings.ContinueOnError,
		WorkerPool:      make(chan struct{}, cfg.Settings.EffectiveParallel()),
		Generator:       gen,
		Validator:       ValidatorFor(cfg.Settings),
		Logger:          log,
		Context:         ctx,
	}, nil
}

// GeneratorFor builds a scale generator honouring the curve and search
// settings.
func GeneratorFor(settings config.Settings) (*scale.Generator, error) {
	var mapperOpts []gamut.Option
	if settings.MaxIterations > 0 {
		mapperOpts = append(mapperOpts, gamut.WithMaxIterations(settings.MaxIterations))
	}
	if settings.Tolerance > 0 {
		mapperOpts = append(mapperOpts, gamut.WithTolerance(settings.Tolerance))
	}

	opts := []scale.Option{scale.WithMapper(gamut.New(color.Default, mapperOpts...))}
	if len(settings.Curve) > 0 {
		c, err := curve.FromSlice(settings.Curve)
		if err != nil {
			return nil, fmt.Errorf("settings.curve: %w", err)
		}
		opts = append(opts, scale.WithCurve(c))
	}

	return scale.New(opts...), nil
}

// ValidatorFor builds an accessibility validator honouring contrast overrides.
func ValidatorFor(settings config.Settings) *accessibility.Validator {
	thresholds := accessibility.DefaultThresholds()
	if settings.Contrast.Step5 > 0 {
		thresholds.FirstStepRatio = settings.Contrast.Step5
	}
	if settings.Contrast.Dark > 0 {
		thresholds.DarkRatio = settings.Contrast.Dark
	}
	return accessibility.New(accessibility.WithThresholds(thresholds))
}

// Definition converts a configured palette into a scale definition.
func Definition(p config.Palette) (scale.Definition, error) {
	if p.IsBrand() {
		return scale.Brand(p.Brand, p.Pin), nil
	}
	if p.Hue == nil {
		return scale.Definition{}, fmt.Errorf("palette %s: hue is required", p.ID)
	}

	var chroma [curve.Steps]float64
	if len(p.Chroma) != curve.Steps {
		return scale.Definition{}, fmt.Errorf("palette %s: chroma needs %d values, got %d", p.ID, curve.Steps, len(p.Chroma))
	}
	copy(chroma[:], p.Chroma)
	return scale.Explicit(*p.Hue, chroma), nil
}
