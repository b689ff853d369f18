package model

// VerificationStatus describes how an artifact on disk compares to a fresh
// rendering of the configuration.
type VerificationStatus string

const (
	// StatusSatisfied means the artifact matches byte for byte.
	StatusSatisfied VerificationStatus = "satisfied"
	// StatusMissing means the artifact does not exist.
	StatusMissing VerificationStatus = "missing"
	// StatusDrifted means the artifact exists with different content.
	StatusDrifted VerificationStatus = "drifted"
	// StatusUnknown means the artifact could not be read.
	StatusUnknown VerificationStatus = "unknown"
)

// IsValid reports whether s is a known status.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case StatusSatisfied, StatusMissing, StatusDrifted, StatusUnknown:
		return true
	default:
		return false
	}
}

// VerificationResult is the outcome for one artifact.
type VerificationResult struct {
	Path    string             `json:"path"`
	Format  string             `json:"format"`
	Status  VerificationStatus `json:"status"`
	Message string             `json:"message"`
	Diff    string             `json:"diff,omitempty"`
}

// VerificationSummary aggregates artifact results and counts.
type VerificationSummary struct {
	Total     int                  `json:"total"`
	Satisfied int                  `json:"satisfied"`
	Missing   int                  `json:"missing"`
	Drifted   int                  `json:"drifted"`
	Unknown   int                  `json:"unknown"`
	Results   []VerificationResult `json:"results"`
}

// Add appends a result and updates counters.
func (s *VerificationSummary) Add(result VerificationResult) {
	s.Results = append(s.Results, result)
	s.Total++
	switch result.Status {
	case StatusSatisfied:
		s.Satisfied++
	case StatusMissing:
		s.Missing++
	case StatusDrifted:
		s.Drifted++
	default:
		s.Unknown++
	}
}

// AllSatisfied reports whether every artifact matched.
func (s *VerificationSummary) AllSatisfied() bool {
	return s.Total > 0 && s.Satisfied == s.Total
}
