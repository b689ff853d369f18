package emit

import (
	"bytes"
	"fmt"
)

func renderCSS(doc Document) []byte {
	var buf bytes.Buffer
	if doc.Name != "" {
		fmt.Fprintf(&buf, "/* %s: generated by chromaramp, do not edit */\n", doc.Name)
	}
	buf.WriteString(":root {\n")
	for _, p := range doc.Palettes {
		for i, step := range p.Scale.Steps {
			fmt.Fprintf(&buf, "  --%s-%s-%s: %s;\n", doc.Prefix, p.ID, ShadeName(i), step.Hex)
		}
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}
