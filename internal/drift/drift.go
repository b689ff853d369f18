package drift

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/alexisbeaulieu97/chromaramp/internal/model"
	"github.com/alexisbeaulieu97/chromaramp/pkg/diff"
)

// Check compares freshly rendered artifacts, keyed by file name, with the
// files in dir. Results are ordered by file name.
func Check(dir string, rendered map[string][]byte) *model.VerificationSummary {
	names := make([]string, 0, len(rendered))
	for name := range rendered {
		names = append(names, name)
	}
	sort.Strings(names)

	summary := &model.VerificationSummary{Results: make([]model.VerificationResult, 0, len(names))}
	for _, name := range names {
		summary.Add(checkFile(filepath.Join(dir, name), rendered[name]))
	}
	return summary
}

func checkFile(path string, want []byte) model.VerificationResult {
	result := model.VerificationResult{
		Path:   path,
		Format: formatOf(path),
	}

	got, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.Status = model.StatusMissing
		result.Message = "artifact does not exist"
		return result
	case err != nil:
		result.Status = model.StatusUnknown
		result.Message = fmt.Sprintf("read failed: %v", err)
		return result
	}

	unified := diff.GenerateUnifiedDiff(want, got, path+" (generated)", path+" (on disk)")
	if unified == "" {
		result.Status = model.StatusSatisfied
		result.Message = "up to date"
		return result
	}

	added, removed := diff.Stats(unified)
	result.Status = model.StatusDrifted
	result.Message = fmt.Sprintf("differs from generated output (+%d -%d lines)", added, removed)
	result.Diff = unified
	return result
}

func formatOf(path string) string {
	switch filepath.Ext(path) {
	case ".css":
		return "css"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".md":
		return "markdown"
	default:
		return ""
	}
}
