package rendering

import (
	"github.com/jonathan/legaldoc/internal/segment"
	"github.com/jonathan/legaldoc/internal/types"
)

// Rendered is the target-independent render tree of one document.
type Rendered struct {
	DocumentType types.DocumentType `json:"document_type"`
	Blocks       []Block            `json:"blocks"`
	Overall      *Decoration        `json:"overall,omitempty"`
	Editable     bool               `json:"editable,omitempty"`
}

// Block is one rendered section. Only the fields of its Kind are populated.
type Block struct {
	Section    string                 `json:"section"`
	Index      *int                   `json:"index,omitempty"`
	Kind       SectionKind            `json:"kind"`
	Rows       []segment.AlignedLine  `json:"rows,omitempty"`
	Text       string                 `json:"text,omitempty"`
	Entries    []segment.SummaryEntry `json:"entries,omitempty"`
	Paragraphs []Paragraph            `json:"paragraphs,omitempty"`
	Requests   []RequestItem          `json:"requests,omitempty"`
	Decoration *Decoration            `json:"decoration,omitempty"`
	Editable   bool                   `json:"editable,omitempty"`
}

// Paragraph is a group of lines separated from its neighbours by a blank line.
type Paragraph struct {
	Lines []Line `json:"lines"`
}

// Line is one explicit line break worth of runs.
type Line struct {
	Runs []segment.BoldRun `json:"runs"`
}

// Text returns the line without styling.
func (l Line) Text() string {
	return segment.JoinRuns(l.Runs)
}

// RequestItem is one numbered additional request.
type RequestItem struct {
	Ordinal  string `json:"ordinal"`
	Label    string `json:"label,omitempty"`
	HasLabel bool   `json:"has_label,omitempty"`
	Lines    []Line `json:"lines"`
}

// Heading returns the request's first line: the ordinal and, when present, its label.
func (r RequestItem) Heading() string {
	if !r.HasLabel {
		return r.Ordinal
	}
	return r.Ordinal + " " + r.Label + ":"
}
