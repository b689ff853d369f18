package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chromaramp/internal/accessibility"
	"github.com/alexisbeaulieu97/chromaramp/internal/color"
	"github.com/alexisbeaulieu97/chromaramp/internal/emit"
	"github.com/alexisbeaulieu97/chromaramp/internal/scale"
)

// RenderScale draws a palette as a row of coloured swatches, each labelled
// with its shade name and hex. The pinned shade is marked with '*'.
func RenderScale(id string, s scale.Scale) string {
	cells := make([]string, 0, len(s.Steps))
	for i, step := range s.Steps {
		label := emit.ShadeName(i)
		if step.Pinned {
			label += "*"
		}
		style := swatchStyle.
			Background(lipgloss.Color(step.Hex.String())).
			Foreground(lipgloss.Color(readableOn(step.Hex).String()))
		cells = append(cells, style.Render(label+"\n"+step.Hex.String()))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if id == "" {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, paletteTitleStyle.Render(id), row)
}

// RenderIssues lists accessibility issues one per line.
func RenderIssues(issues []accessibility.Issue) string {
	if len(issues) == 0 {
		return ""
	}
	lines := make([]string, 0, len(issues))
	for _, issue := range issues {
		lines = append(lines, warningStyle.Render(fmt.Sprintf("  ! %s", issue)))
	}
	return strings.Join(lines, "\n")
}

// readableOn picks black or white text for the given background.
func readableOn(bg color.Hex) color.Hex {
	ratio, err := accessibility.ContrastRatio(bg, accessibility.White)
	if err == nil && ratio >= 4.5 {
		return accessibility.White
	}
	return "#000000"
}
