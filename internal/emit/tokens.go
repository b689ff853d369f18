package emit

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// tokenTree builds the design-token document as an ordered YAML node so that
// palettes and shades keep their natural order in both YAML and JSON output.
func tokenTree(doc Document) *yaml.Node {
	palettes := mapping()
	for _, p := range doc.Palettes {
		shades := mapping()
		for i, step := range p.Scale.Steps {
			token := mapping()
			appendPair(token, "$value", scalar(step.Hex.String()))
			appendPair(token, "$type", scalar("color"))
			appendPair(token, "$description", scalar(describe(step)))
			appendPair(shades, ShadeName(i), token)
		}
		if p.Description != "" {
			appendPair(shades, "$description", scalar(p.Description))
		}
		appendPair(palettes, p.ID, shades)
	}

	root := mapping()
	appendPair(root, doc.Prefix, palettes)
	return root
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}

func renderYAML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tokenTree(doc)); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func renderJSON(doc Document) ([]byte, error) {
	var compact bytes.Buffer
	if err := writeJSONNode(&compact, tokenTree(doc)); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSONNode(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		encoded, err := json.Marshal(n.Value)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSONNode(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unsupported token node kind %d", n.Kind)
	}
	return nil
}
