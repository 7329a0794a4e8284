package types

// AnalysisStatus is the verdict the external review process assigns to a section
type AnalysisStatus string

const (
	StatusGood    AnalysisStatus = "good"
	StatusWarning AnalysisStatus = "warning"
	StatusError   AnalysisStatus = "error"
)

// Valid reports whether s is one of the known statuses.
func (s AnalysisStatus) Valid() bool {
	switch s {
	case StatusGood, StatusWarning, StatusError:
		return true
	default:
		return false
	}
}

// Analysis is the feedback attached to a single document section.
type Analysis struct {
	Feedback               *string         `json:"feedback"`
	ImprovementSuggestions *string         `json:"improvement_suggestions"`
	Tags                   []string        `json:"tags"`
	Status                 *AnalysisStatus `json:"status"`
	Score                  *float64        `json:"score"`
}

// AnalysisAt returns the analysis aligned with list entry i. Lists of different
// lengths are tolerated: indexes past the end of the analysis list yield nil.
func AnalysisAt(list []*Analysis, i int) *Analysis {
	if i < 0 || i >= len(list) {
		return nil
	}
	return list[i]
}
