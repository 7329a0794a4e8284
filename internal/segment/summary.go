package segment

import "strings"

const (
	summaryEntrySeparator = ";"
	summaryJoiner         = "; "
)

// SummaryEntry is one item of a summary list. Label keeps its trailing colon.
type SummaryEntry struct {
	Label string `json:"label,omitempty"`
	Rest  string `json:"rest"`
}

// String returns the entry as displayed.
func (e SummaryEntry) String() string {
	return e.Label + e.Rest
}

// SummaryEntries splits a summary on ";", trims each entry, drops empty ones
// and separates the label at the first ":".
func SummaryEntries(text string) []SummaryEntry {
	entries := []SummaryEntry{}
	for _, raw := range strings.Split(text, summaryEntrySeparator) {
		item := strings.TrimSpace(raw)
		if item == "" {
			continue
		}
		label, rest, found := strings.Cut(item, ":")
		if !found {
			entries = append(entries, SummaryEntry{Rest: item})
			continue
		}
		entries = append(entries, SummaryEntry{Label: label + ":", Rest: rest})
	}
	return entries
}

// JoinSummary joins entries for display with "; " between them.
func JoinSummary(entries []SummaryEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, summaryJoiner)
}
