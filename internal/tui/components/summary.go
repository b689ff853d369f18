package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates counts for rendering summaries.
type SummaryData struct {
	Total     int
	Completed int
	Warnings  int
	Failed    int
	Issues    int
	Finished  bool
	Cancelled bool
}

// Summary renders a textual build summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string
	if s.data.Total > 0 {
		lines = append(lines, fmt.Sprintf("Palettes: %d/%d generated", s.data.Completed-s.data.Failed, s.data.Total))
	}
	if s.data.Issues > 0 {
		lines = append(lines, fmt.Sprintf("Advisories: %d issue(s) across %d palette(s)", s.data.Issues, s.data.Warnings))
	}

	switch {
	case s.data.Cancelled:
		lines = append(lines, "Build cancelled")
	case s.data.Finished && s.data.Total > 0 && s.data.Failed > 0:
		lines = append(lines, fmt.Sprintf("Build finished with %d failed palette(s)", s.data.Failed))
	case s.data.Finished && s.data.Total > 0 && s.data.Completed == s.data.Total:
		lines = append(lines, "Build finished successfully")
	case s.data.Finished && s.data.Total > 0:
		lines = append(lines, "Build finished with pending palettes")
	}

	return strings.Join(lines, "\n")
}
