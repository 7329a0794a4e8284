package segment

import "strings"

// AlignedSeparator divides label from value in aligned sections.
const AlignedSeparator = " : "

// AlignedLine is one label/value row of an aligned section.
// Value is nil when the line has no separator.
type AlignedLine struct {
	Label string  `json:"label"`
	Value *string `json:"value,omitempty"`
}

// String rebuilds the source line.
func (l AlignedLine) String() string {
	if l.Value == nil {
		return l.Label
	}
	return l.Label + AlignedSeparator + *l.Value
}

// ParseAlignedLine splits line on the first " : ". A line without the
// separator becomes a label with no value.
func ParseAlignedLine(line string) AlignedLine {
	label, value, found := strings.Cut(line, AlignedSeparator)
	if !found {
		return AlignedLine{Label: line}
	}
	return AlignedLine{Label: label, Value: &value}
}

// ParseAligned parses every line of an aligned section.
func ParseAligned(text string) []AlignedLine {
	lines := Lines(text)
	parsed := make([]AlignedLine, len(lines))
	for i, line := range lines {
		parsed[i] = ParseAlignedLine(line)
	}
	return parsed
}

// JoinAligned rebuilds the full section text from its rows.
func JoinAligned(lines []AlignedLine) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = line.String()
	}
	return strings.Join(parts, lineSeparator)
}
