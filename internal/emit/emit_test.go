package emit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/chromaramp/internal/curve"
	"github.com/alexisbeaulieu97/chromaramp/internal/model"
	"github.com/alexisbeaulieu97/chromaramp/internal/scale"
)

var blueChroma = [curve.Steps]float64{0.03, 0.06, 0.10, 0.14, 0.17, 0.18, 0.17, 0.14, 0.11, 0.08}

func testDocument(t *testing.T) Document {
	t.Helper()

	gen := scale.New()
	blue, err := gen.GenerateExplicit(250, blueChroma)
	require.NoError(t, err)
	coral, err := gen.GenerateFromBrand("#FF7A52", nil)
	require.NoError(t, err)

	return Document{
		Name:   "Acme",
		Prefix: "color",
		Palettes: []Palette{
			{ID: "blue", Scale: blue},
			{ID: "coral", Description: "Primary brand orange", Scale: coral},
		},
	}
}

func TestShadeNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}, ShadeNames())
}

func TestRenderCSS(t *testing.T) {
	t.Parallel()

	out, err := Render(FormatCSS, testDocument(t))
	require.NoError(t, err)

	css := string(out)
	require.True(t, strings.HasPrefix(css, "/* Acme: generated by chromaramp"))
	require.Contains(t, css, ":root {\n")
	require.Contains(t, css, "  --color-blue-50: #EEF6FF;\n")
	require.Contains(t, css, "  --color-blue-900: #001B36;\n")
	require.Contains(t, css, "  --color-coral-300: #FF7A52;\n")
	require.True(t, strings.HasSuffix(css, "}\n"))

	// blue before coral, config order
	require.Less(t, strings.Index(css, "--color-blue-900"), strings.Index(css, "--color-coral-50"))
	require.Equal(t, 20, strings.Count(css, "--color-"))
}

func TestRenderJSONKeepsOrder(t *testing.T) {
	t.Parallel()

	out, err := Render(FormatJSON, testDocument(t))
	require.NoError(t, err)

	var tree map[string]map[string]map[string]any
	require.NoError(t, json.Unmarshal(out, &tree))

	token, ok := tree["color"]["coral"]["300"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "#FF7A52", token["$value"])
	require.Equal(t, "color", token["$type"])
	require.Contains(t, token["$description"], "(pinned)")
	require.Equal(t, "Primary brand orange", tree["color"]["coral"]["$description"])

	blue50, ok := tree["color"]["blue"]["50"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "#EEF6FF", blue50["$value"])
	require.True(t, strings.HasPrefix(blue50["$description"].(string), "oklch(97.00% "))
	require.NotContains(t, blue50["$description"], "pinned")

	text := string(out)
	require.Less(t, strings.Index(text, `"50"`), strings.Index(text, `"100"`))
	require.Less(t, strings.Index(text, `"blue"`), strings.Index(text, `"coral"`))
}

func TestRenderYAMLMatchesJSONTree(t *testing.T) {
	t.Parallel()

	doc := testDocument(t)
	jsonOut, err := Render(FormatJSON, doc)
	require.NoError(t, err)
	yamlOut, err := Render(FormatYAML, doc)
	require.NoError(t, err)

	var fromJSON, fromYAML map[string]any
	require.NoError(t, json.Unmarshal(jsonOut, &fromJSON))
	require.NoError(t, yaml.Unmarshal(yamlOut, &fromYAML))
	require.Equal(t, fromJSON, fromYAML)
	require.Contains(t, string(yamlOut), `"50":`)
}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	out, err := Render(FormatMarkdown, testDocument(t))
	require.NoError(t, err)

	md := string(out)
	require.True(t, strings.HasPrefix(md, "# Acme\n"))
	require.Contains(t, md, "\n## blue\n")
	require.Contains(t, md, "\n## coral\n\nPrimary brand orange\n")
	require.Contains(t, md, "| 50 | `#EEF6FF` | oklch(97.00% ")
	require.Contains(t, md, "| 300 | `#FF7A52` |")
	require.Contains(t, md, "| yes |")
	require.Equal(t, 2, strings.Count(md, "| Shade | Hex |"))
	require.True(t, strings.HasSuffix(md, "|\n"))
}

func TestRenderUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Render("scss", Document{})
	require.ErrorContains(t, err, "unknown format")

	_, err = FileName("scss")
	require.Error(t, err)
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	doc := testDocument(t)
	for _, format := range Formats() {
		first, err := Render(format, doc)
		require.NoError(t, err)
		second, err := Render(format, doc)
		require.NoError(t, err)
		require.Equal(t, first, second, format)
	}
}

func TestWriteAll(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "tokens")
	paths, err := WriteAll(dir, []string{FormatCSS, FormatJSON, FormatYAML, FormatMarkdown}, testDocument(t))
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "tokens.css"),
		filepath.Join(dir, "tokens.json"),
		filepath.Join(dir, "tokens.yaml"),
		filepath.Join(dir, "colors.md"),
	}, paths)

	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}

	_, err = WriteAll(dir, []string{"scss"}, testDocument(t))
	require.Error(t, err)
}

func TestFromResultsSkipsFailures(t *testing.T) {
	t.Parallel()

	doc := FromResults("Acme", "brand", []model.PaletteResult{
		{PaletteID: "ok", Status: model.StatusSuccess},
		{PaletteID: "bad", Status: model.StatusFailed},
		{PaletteID: "warn", Status: model.StatusWarning, Description: "low contrast"},
	})

	require.Equal(t, "brand", doc.Prefix)
	require.Len(t, doc.Palettes, 2)
	require.Equal(t, "ok", doc.Palettes[0].ID)
	require.Equal(t, "low contrast", doc.Palettes[1].Description)
}
