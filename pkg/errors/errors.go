package errors

import (
	"fmt"
)

// ParseError represents a failure to interpret input, either a YAML document
// (Path is the file, Line the offending line) or a colour string (Path holds
// the rejected input).
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

// NewColorParseError constructs a ParseError for a colour string that is not a
// recognised format.
func NewColorParseError(input, message string) error {
	return &ParseError{Path: fmt.Sprintf("%q", input), Message: message}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// GamutSearchError reports a chroma search that could not reach a displayable
// colour even at zero chroma. Valid lightness values never produce it.
type GamutSearchError struct {
	L float64
	C float64
	H float64
}

// NewGamutSearchError constructs a GamutSearchError for the requested triple.
func NewGamutSearchError(l, c, h float64) error {
	return &GamutSearchError{L: l, C: c, H: h}
}

func (e *GamutSearchError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("gamut search degenerate: oklch(%g %g %g) is not displayable at zero chroma", e.L, e.C, e.H)
}

// GenerationError represents a failure while generating a single palette.
type GenerationError struct {
	Palette string
	Err     error
}

// NewGenerationError constructs a GenerationError.
func NewGenerationError(palette string, err error) error {
	return &GenerationError{Palette: palette, Err: err}
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Palette != "" {
		return fmt.Sprintf("generation error on palette %s: %v", e.Palette, e.Err)
	}
	return fmt.Sprintf("generation error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *GenerationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
