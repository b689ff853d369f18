package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/chromaramp/internal/color"
	"github.com/alexisbeaulieu97/chromaramp/internal/curve"
	chromaerrors "github.com/alexisbeaulieu97/chromaramp/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	tokenNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("token_name", func(fl validator.FieldLevel) bool {
			return tokenNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("brand_hex", func(fl validator.FieldLevel) bool {
			return color.IsHex(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return chromaerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if len(cfg.Settings.Curve) > 0 {
		if _, err := curve.FromSlice(cfg.Settings.Curve); err != nil {
			return chromaerrors.NewValidationError("settings.curve", err.Error(), err)
		}
	}

	seen := make(map[string]int, len(cfg.Palettes))
	for i, palette := range cfg.Palettes {
		if first, exists := seen[palette.ID]; exists {
			return chromaerrors.NewValidationError(fieldForPalette(i, "id"), fmt.Sprintf("duplicate palette id %q (first defined at palettes[%d])", palette.ID, first), nil)
		}
		if err := validatePaletteShape(palette, i); err != nil {
			return err
		}
		seen[palette.ID] = i
	}

	return nil
}

// ValidatePalette validates a single palette independent of the rest of the
// configuration.
func ValidatePalette(palette Palette) error {
	if err := validatorInstance().Struct(palette); err != nil {
		return convertValidationError(err)
	}
	return validatePaletteShape(palette, -1)
}

func validatePaletteShape(palette Palette, index int) error {
	explicit := palette.Hue != nil || len(palette.Chroma) > 0

	switch {
	case palette.IsBrand() && explicit:
		return chromaerrors.NewValidationError(fieldForPalette(index, "brand"), "brand cannot be combined with hue or chroma", nil)
	case palette.IsBrand():
		return nil
	case palette.Pin != nil:
		return chromaerrors.NewValidationError(fieldForPalette(index, "pin"), "pin is only valid with brand", nil)
	case palette.Hue == nil:
		return chromaerrors.NewValidationError(fieldForPalette(index, "hue"), "hue is required when brand is not set", nil)
	case len(palette.Chroma) != curve.Steps:
		return chromaerrors.NewValidationError(fieldForPalette(index, "chroma"), fmt.Sprintf("chroma needs %d values", curve.Steps), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return chromaerrors.NewValidationError(field, msg, err)
	}

	return chromaerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func fieldForPalette(index int, field string) string {
	if index < 0 {
		return field
	}
	return fmt.Sprintf("palettes[%d].%s", index, field)
}
