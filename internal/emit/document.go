package emit

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/alexisbeaulieu97/chromaramp/internal/curve"
	"github.com/alexisbeaulieu97/chromaramp/internal/model"
	"github.com/alexisbeaulieu97/chromaramp/internal/scale"
)

// Supported output formats.
const (
	FormatCSS      = "css"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

var fileNames = map[string]string{
	FormatCSS:      "tokens.css",
	FormatJSON:     "tokens.json",
	FormatYAML:     "tokens.yaml",
	FormatMarkdown: "colors.md",
}

// Formats lists every supported format.
func Formats() []string {
	out := make([]string, 0, len(fileNames))
	for f := range fileNames {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// FileName returns the artifact file name for format.
func FileName(format string) (string, error) {
	name, ok := fileNames[format]
	if !ok {
		return "", fmt.Errorf("unknown format %q", format)
	}
	return name, nil
}

// Palette is one named scale ready for emission.
type Palette struct {
	ID          string
	Description string
	Scale       scale.Scale
}

// Document is everything an emitter needs, in output order.
type Document struct {
	Name     string
	Prefix   string
	Palettes []Palette
}

// FromResults collects the generated palettes of a build. Failed palettes
// are left out.
func FromResults(name, prefix string, results []model.PaletteResult) Document {
	doc := Document{Name: name, Prefix: prefix}
	for _, r := range results {
		if !r.Generated() {
			continue
		}
		doc.Palettes = append(doc.Palettes, Palette{ID: r.PaletteID, Description: r.Description, Scale: r.Scale})
	}
	return doc
}

// ShadeName maps a step index to its token name: 50 for step 0, then
// 100..900.
func ShadeName(step int) string {
	if step <= 0 {
		return "50"
	}
	return strconv.Itoa(step * 100)
}

// ShadeNames returns the token names for every step.
func ShadeNames() []string {
	out := make([]string, curve.Steps)
	for i := range out {
		out[i] = ShadeName(i)
	}
	return out
}

func describe(step scale.Step) string {
	desc := step.Rendered.String()
	if step.Pinned {
		desc += " (pinned)"
	}
	return desc
}
