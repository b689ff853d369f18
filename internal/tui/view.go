package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chromaramp/internal/model"
	"github.com/alexisbeaulieu97/chromaramp/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	title := titleStyle.Render(fmt.Sprintf("chromaramp • %s", m.title()))
	sections = append(sections, title)

	progress := components.NewProgress(m.total).View(m.completed)
	sections = append(sections, sectionStyle.Render("Progress"), progress)

	entries := components.NewPaletteList(m.order, m.palettes).Entries()
	if len(entries) > 0 {
		sections = append(sections, sectionStyle.Render("Palettes"))
		sections = append(sections, renderPaletteEntries(entries))
	}

	warnings, failed, issues := m.counts()
	summary := components.NewSummary(components.SummaryData{
		Total:     m.total,
		Completed: m.completed,
		Warnings:  warnings,
		Failed:    failed,
		Issues:    issues,
		Finished:  m.finished,
		Cancelled: m.cancelled,
	}).View()
	if m.err != nil {
		summary = strings.TrimSpace(summary + "\n" + failureStyle.Render(m.err.Error()))
	}
	if strings.TrimSpace(summary) != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderPaletteEntries(entries []components.PaletteEntry) string {
	var blocks []string
	for _, entry := range entries {
		res := entry.Result
		line := fmt.Sprintf(" %s %s", StatusIcon(res.Status), entry.ID)
		if strings.TrimSpace(res.Message) != "" {
			line = fmt.Sprintf("%s: %s", line, res.Message)
		}
		if res.Duration > 0 {
			line = fmt.Sprintf("%s (%s)", line, res.Duration.Truncate(time.Microsecond))
		}

		block := []string{line}
		if res.Generated() {
			block = append(block, RenderScale("", res.Scale))
			if issues := RenderIssues(res.Issues); issues != "" {
				block = append(block, issues)
			}
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, block...))
	}
	return strings.Join(blocks, "\n")
}

func (m Model) title() string {
	if m.cfg != nil && strings.TrimSpace(m.cfg.Name) != "" {
		return m.cfg.Name
	}
	return "Build"
}

// StatusIcon returns the glyph representing a palette status.
func StatusIcon(status string) string {
	switch status {
	case model.StatusSuccess:
		return successStyle.Render("✓")
	case model.StatusRunning:
		return runningStyle.Render("⏳")
	case model.StatusWarning:
		return warningStyle.Render("⚠")
	case model.StatusFailed:
		return failureStyle.Render("✗")
	default:
		return pendingStyle.Render("…")
	}
}
