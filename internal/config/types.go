package config

const (
	// DefaultParallel is the palette worker count when settings.parallel is unset.
	DefaultParallel = 4
	// DefaultOutputDir is where build writes artifacts when output.dir is unset.
	DefaultOutputDir = "build/tokens"
	// DefaultPrefix is the top-level token group when output.prefix is unset.
	DefaultPrefix = "color"
)

// DefaultFormats are emitted when output.formats is unset.
var DefaultFormats = []string{"css", "json"}

// Config represents the full chromaramp configuration document.
type Config struct {
	Version     string    `yaml:"version" validate:"required,semver"`
	Name        string    `yaml:"name" validate:"required,min=1,max=100"`
	Description string    `yaml:"description,omitempty"`
	Settings    Settings  `yaml:"settings,omitempty"`
	Output      Output    `yaml:"output,omitempty"`
	Palettes    []Palette `yaml:"palettes" validate:"required,min=1,dive"`
}

// Settings holds global generation parameters.
type Settings struct {
	Parallel        int       `yaml:"parallel,omitempty" validate:"omitempty,min=1,max=32"`
	ContinueOnError bool      `yaml:"continue_on_error,omitempty"`
	Strict          bool      `yaml:"strict,omitempty"`
	Verbose         bool      `yaml:"verbose,omitempty"`
	MaxIterations   int       `yaml:"max_iterations,omitempty" validate:"omitempty,min=1,max=64"`
	Tolerance       float64   `yaml:"tolerance,omitempty" validate:"omitempty,gt=0,lt=0.01"`
	Curve           []float64 `yaml:"curve,omitempty" validate:"omitempty,len=10,dive,gte=0,lte=1"`
	Contrast        Contrast  `yaml:"contrast,omitempty"`
}

// Contrast overrides the accessibility thresholds against white.
type Contrast struct {
	Step5 float64 `yaml:"step5,omitempty" validate:"omitempty,gte=1,lte=21"`
	Dark  float64 `yaml:"dark,omitempty" validate:"omitempty,gte=1,lte=21"`
}

// Output controls artifact emission.
type Output struct {
	Dir     string   `yaml:"dir,omitempty"`
	Prefix  string   `yaml:"prefix,omitempty" validate:"omitempty,token_name"`
	Formats []string `yaml:"formats,omitempty" validate:"omitempty,dive,oneof=css json yaml markdown"`
}

// Palette is one colour scale definition, either explicit (hue + chroma) or
// brand (brand + optional pin).
type Palette struct {
	ID          string    `yaml:"id" validate:"required,token_name"`
	Description string    `yaml:"description,omitempty"`
	Hue         *float64  `yaml:"hue,omitempty" validate:"omitempty,gte=0,lt=360"`
	Chroma      []float64 `yaml:"chroma,omitempty" validate:"omitempty,len=10,dive,gte=0,lte=0.5"`
	Brand       string    `yaml:"brand,omitempty" validate:"omitempty,brand_hex"`
	Pin         *int      `yaml:"pin,omitempty" validate:"omitempty,min=0,max=9"`
}

// IsBrand reports whether the palette is brand-derived.
func (p Palette) IsBrand() bool {
	return p.Brand != ""
}

// EffectiveParallel returns the worker count to use.
func (s Settings) EffectiveParallel() int {
	if s.Parallel <= 0 {
		return DefaultParallel
	}
	return s.Parallel
}

// EffectiveDir returns the output directory to use.
func (o Output) EffectiveDir() string {
	if o.Dir == "" {
		return DefaultOutputDir
	}
	return o.Dir
}

// EffectivePrefix returns the token group name to use.
func (o Output) EffectivePrefix() string {
	if o.Prefix == "" {
		return DefaultPrefix
	}
	return o.Prefix
}

// EffectiveFormats returns the artifact formats to emit.
func (o Output) EffectiveFormats() []string {
	if len(o.Formats) == 0 {
		return append([]string(nil), DefaultFormats...)
	}
	return append([]string(nil), o.Formats...)
}
