package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/chromaramp/internal/model"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, nil
	case PaletteStartMsg:
		m.ensurePalette(msg.ID)
		res := m.palettes[msg.ID]
		res.Status = model.StatusRunning
		m.palettes[msg.ID] = res
		return m, nil
	case PaletteCompleteMsg:
		id := msg.Result.PaletteID
		if id == "" {
			return m, nil
		}
		m.ensurePalette(id)
		existing := m.palettes[id]
		previouslyCompleted := existing.Status == model.StatusSuccess || existing.Status == model.StatusWarning || existing.Status == model.StatusFailed
		m.palettes[id] = msg.Result
		if !previouslyCompleted {
			m.completed++
		}
		m.markFinishedIfComplete()
		return m, nil
	case BuildDoneMsg:
		m.err = msg.Err
		m.finished = true
		if m.nonInteractive {
			return m, nil
		}
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			m.finished = true
			return m, tea.Quit
		}
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	return m, nil
}
