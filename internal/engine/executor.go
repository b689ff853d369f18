package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/chromaramp/internal/accessibility"
	"github.com/alexisbeaulieu97/chromaramp/internal/config"
	"github.com/alexisbeaulieu97/chromaramp/internal/logger"
	"github.com/alexisbeaulieu97/chromaramp/internal/model"
	"github.com/alexisbeaulieu97/chromaramp/internal/scale"
	chromaerrors "github.com/alexisbeaulieu97/chromaramp/pkg/errors"
)

// Build generates every configured palette and returns results in
// configuration order. Every palette is attempted; a failed palette only
// fails the build when ContinueOnError is false, in which case the first
// failure (by configuration order) is returned.
func Build(bc *BuildContext) ([]model.PaletteResult, error) {
	if bc == nil {
		return nil, fmt.Errorf("build context is nil")
	}
	if bc.Config == nil {
		return nil, fmt.Errorf("build context config is nil")
	}

	ctx := bc.Context
	if ctx == nil {
		ctx = context.Background()
	}

	gen := bc.Generator
	if gen == nil {
		gen = scale.New()
	}
	validator := bc.Validator
	if validator == nil {
		validator = accessibility.New()
	}

	log := bc.Logger
	if log == nil {
		log = logger.Nop()
	}
	if bc.BuildID != "" {
		log = log.WithFields(map[string]any{"build_id": bc.BuildID})
	}

	palettes := bc.Config.Palettes
	results := make([]model.PaletteResult, len(palettes))
	var wg sync.WaitGroup

	for idx := range palettes {
		wg.Add(1)
		go func(idx int, palette config.Palette) {
			defer wg.Done()

			if bc.WorkerPool != nil {
				select {
				case bc.WorkerPool <- struct{}{}:
					defer func() { <-bc.WorkerPool }()
				case <-ctx.Done():
					results[idx] = cancelledResult(palette, ctx.Err())
					return
				}
			}
			if ctx.Err() != nil {
				results[idx] = cancelledResult(palette, ctx.Err())
				return
			}

			if bc.OnStart != nil {
				bc.OnStart(palette.ID)
			}

			res := buildPalette(gen, validator, palette)
			results[idx] = res

			plog := log.ForPalette(palette.ID)
			switch res.Status {
			case model.StatusFailed:
				plog.Error(res.Error, "palette generation failed")
			case model.StatusWarning:
				plog.Warn(res.Message)
			default:
				if plog.Enabled("debug") {
					plog.WithFields(map[string]any{
						"duration_ms": res.Duration.Milliseconds(),
						"hexes":       res.Scale.Hexes(),
					}).Debug(res.Message)
				}
			}

			if bc.OnResult != nil {
				bc.OnResult(res)
			}
		}(idx, palettes[idx])
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}

	if !bc.ContinueOnError {
		for _, res := range results {
			if res.Status == model.StatusFailed {
				return results, res.Error
			}
		}
	}

	return results, nil
}

func buildPalette(gen *scale.Generator, validator *accessibility.Validator, palette config.Palette) model.PaletteResult {
	start := time.Now()
	result := model.PaletteResult{
		PaletteID:   palette.ID,
		Description: palette.Description,
	}

	def, err := Definition(palette)
	if err == nil {
		result.Scale, err = gen.Generate(def)
	}
	if err == nil {
		result.Issues = validator.Validate(result.Scale)
	}

	if err != nil {
		err = chromaerrors.NewGenerationError(palette.ID, err)
		result.Error = err
		result.Message = err.Error()
	}

	result.Status = model.StatusFor(err, result.Issues)
	switch result.Status {
	case model.StatusWarning:
		result.Message = fmt.Sprintf("generated with %d issue(s)", len(result.Issues))
	case model.StatusSuccess:
		result.Message = "generated"
	}

	result.Duration = time.Since(start)
	result.Timestamp = time.Now()
	return result
}

func cancelledResult(palette config.Palette, err error) model.PaletteResult {
	return model.PaletteResult{
		PaletteID: palette.ID,
		Status:    model.StatusFailed,
		Message:   "cancelled",
		Error:     chromaerrors.NewGenerationError(palette.ID, err),
		Timestamp: time.Now(),
	}
}
