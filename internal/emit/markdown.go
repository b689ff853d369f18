package emit

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/alexisbeaulieu97/chromaramp/internal/accessibility"
	"github.com/alexisbeaulieu97/chromaramp/internal/scale"
)

var markdownTemplate = template.Must(template.New("catalog").Funcs(template.FuncMap{
	"shade":    ShadeName,
	"contrast": contrastCell,
}).Parse(`# {{ if .Name }}{{ .Name }}{{ else }}Colour catalog{{ end }}
{{ range .Palettes }}
## {{ .ID }}
{{ if .Description }}
{{ .Description }}
{{ end }}
| Shade | Hex | OKLCH | Contrast vs white | Pinned |
| --- | --- | --- | --- | --- |
{{- range $i, $step := .Scale.Steps }}
| {{ shade $i }} | ` + "`{{ $step.Hex }}`" + ` | {{ $step.Rendered }} | {{ contrast $step }} | {{ if $step.Pinned }}yes{{ end }} |
{{- end }}
{{ end -}}
`))

func contrastCell(step scale.Step) string {
	ratio, err := accessibility.ContrastRatio(step.Hex, accessibility.White)
	if err != nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f:1", ratio)
}

func renderMarkdown(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}
