package model

import (
	"time"

	"github.com/alexisbeaulieu97/chromaramp/internal/accessibility"
	"github.com/alexisbeaulieu97/chromaramp/internal/scale"
)

const (
	// StatusPending indicates a palette has not started yet.
	StatusPending = "pending"
	// StatusRunning indicates a palette is being generated.
	StatusRunning = "running"
	// StatusSuccess marks a palette generated with no advisory issues.
	StatusSuccess = "success"
	// StatusWarning marks a palette generated with gamut or contrast issues.
	StatusWarning = "warning"
	// StatusFailed marks a palette that could not be generated.
	StatusFailed = "failed"
)

// PaletteResult captures the outcome of generating a single palette.
type PaletteResult struct {
	PaletteID   string
	Description string
	Status      string
	Message     string
	Scale       scale.Scale
	Issues      []accessibility.Issue
	Error       error
	Duration    time.Duration
	Timestamp   time.Time
}

// Generated reports whether the result carries a usable scale.
func (r PaletteResult) Generated() bool {
	return r.Status == StatusSuccess || r.Status == StatusWarning
}

// StatusFor derives the terminal status from an error and issue list.
func StatusFor(err error, issues []accessibility.Issue) string {
	switch {
	case err != nil:
		return StatusFailed
	case len(issues) > 0:
		return StatusWarning
	default:
		return StatusSuccess
	}
}

// BuildSummary aggregates palette results for reporting.
type BuildSummary struct {
	Total     int
	Succeeded int
	Warnings  int
	Failed    int
	Issues    int
}

// Summarize counts results by status.
func Summarize(results []PaletteResult) BuildSummary {
	summary := BuildSummary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusSuccess:
			summary.Succeeded++
		case StatusWarning:
			summary.Warnings++
		case StatusFailed:
			summary.Failed++
		}
		summary.Issues += len(r.Issues)
	}
	return summary
}
