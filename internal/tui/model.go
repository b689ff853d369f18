package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/chromaramp/internal/config"
	"github.com/alexisbeaulieu97/chromaramp/internal/model"
)

// PaletteStartMsg indicates a palette has started generating.
type PaletteStartMsg struct {
	ID string
}

// PaletteCompleteMsg reports that a palette has finished.
type PaletteCompleteMsg struct {
	Result model.PaletteResult
}

// BuildDoneMsg is sent once every palette has been attempted.
type BuildDoneMsg struct {
	Err error
}

type tickMsg struct{}

// Model contains the Bubbletea state for the build TUI.
type Model struct {
	cfg            *config.Config
	palettes       map[string]model.PaletteResult
	order          []string
	total          int
	completed      int
	finished       bool
	cancelled      bool
	nonInteractive bool
	err            error
}

// NewModel constructs a TUI model tracking every configured palette.
func NewModel(cfg *config.Config, nonInteractive bool) Model {
	m := Model{
		cfg:            cfg,
		palettes:       make(map[string]model.PaletteResult),
		order:          make([]string, 0),
		nonInteractive: nonInteractive,
	}

	if cfg != nil {
		for _, p := range cfg.Palettes {
			m.ensurePalette(p.ID)
		}
	}

	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}

// TotalPalettes returns the number of palettes tracked by the model.
func (m Model) TotalPalettes() int {
	return m.total
}

// CompletedPalettes returns the number of palettes that have finished.
func (m Model) CompletedPalettes() int {
	return m.completed
}

// IsFinished reports whether the build has completed.
func (m Model) IsFinished() bool {
	return m.finished
}

// Cancelled reports whether the user interrupted the build.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Result returns the latest known state of a palette.
func (m Model) Result(id string) (model.PaletteResult, bool) {
	res, ok := m.palettes[id]
	return res, ok
}

func (m *Model) ensurePalette(id string) {
	if id == "" {
		return
	}
	if _, exists := m.palettes[id]; !exists {
		m.palettes[id] = model.PaletteResult{PaletteID: id, Status: model.StatusPending}
		m.order = append(m.order, id)
		m.total++
	}
}

func (m *Model) markFinishedIfComplete() {
	if m.total > 0 && m.completed >= m.total {
		m.finished = true
	}
}

func (m Model) counts() (warnings, failed, issues int) {
	for _, id := range m.order {
		res := m.palettes[id]
		switch res.Status {
		case model.StatusWarning:
			warnings++
		case model.StatusFailed:
			failed++
		}
		issues += len(res.Issues)
	}
	return warnings, failed, issues
}
