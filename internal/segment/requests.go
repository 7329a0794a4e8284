package segment

import (
	"regexp"
	"strings"
)

// labelPattern captures everything before the first colon and the remainder,
// newlines included, as one group.
var labelPattern = regexp.MustCompile(`(?s)^([^:]*):(.*)$`)

// RequestUnit is one paragraph of a request list.
type RequestUnit struct {
	Label    string      `json:"label,omitempty"`
	HasLabel bool        `json:"has_label,omitempty"`
	Lines    [][]BoldRun `json:"lines"`
}

// RequestUnits splits a request list into paragraph units. Blank paragraphs
// are skipped, so empty text yields no units. Units containing a colon are
// split into a label and the remaining body, with the spaces that follow the
// colon dropped; the body (or the whole unit when there is no colon) is
// segmented line by line.
func (m *Matcher) RequestUnits(text string) []RequestUnit {
	paragraphs := Paragraphs(text)
	units := make([]RequestUnit, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if strings.TrimSpace(paragraph) == "" {
			continue
		}
		unit := RequestUnit{}
		body := paragraph
		if groups := labelPattern.FindStringSubmatch(paragraph); groups != nil {
			unit.Label = groups[1]
			unit.HasLabel = true
			body = strings.TrimLeft(groups[2], " ")
		}
		for _, line := range Lines(body) {
			unit.Lines = append(unit.Lines, m.CollectRuns(line))
		}
		units = append(units, unit)
	}
	return units
}
