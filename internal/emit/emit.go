package emit

import (
	"fmt"
	"os"
	"path/filepath"
)

// Render produces the artifact for one format.
func Render(format string, doc Document) ([]byte, error) {
	switch format {
	case FormatCSS:
		return renderCSS(doc), nil
	case FormatJSON:
		return renderJSON(doc)
	case FormatYAML:
		return renderYAML(doc)
	case FormatMarkdown:
		return renderMarkdown(doc)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// RenderAll renders every requested format keyed by file name.
func RenderAll(formats []string, doc Document) (map[string][]byte, error) {
	out := make(map[string][]byte, len(formats))
	for _, format := range formats {
		name, err := FileName(format)
		if err != nil {
			return nil, err
		}
		data, err := Render(format, doc)
		if err != nil {
			return nil, err
		}
		out[name] = data
	}
	return out, nil
}

// WriteAll renders every requested format into dir and returns the written
// paths in format order.
func WriteAll(dir string, formats []string, doc Document) ([]string, error) {
	rendered, err := RenderAll(formats, doc)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		name, _ := FileName(format)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, rendered[name], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
