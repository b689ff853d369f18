package components

import (
	"github.com/alexisbeaulieu97/chromaramp/internal/model"
)

// PaletteEntry is a single palette row.
type PaletteEntry struct {
	ID     string
	Result model.PaletteResult
}

// PaletteList holds palettes in configuration order.
type PaletteList struct {
	entries []PaletteEntry
}

// NewPaletteList constructs a palette list component.
func NewPaletteList(order []string, results map[string]model.PaletteResult) PaletteList {
	entries := make([]PaletteEntry, 0, len(order))
	for _, id := range order {
		entries = append(entries, PaletteEntry{ID: id, Result: results[id]})
	}
	return PaletteList{entries: entries}
}

// Entries returns the ordered entries.
func (l PaletteList) Entries() []PaletteEntry {
	clone := make([]PaletteEntry, len(l.entries))
	copy(clone, l.entries)
	return clone
}
