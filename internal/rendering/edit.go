package rendering

import (
	"github.com/jonathan/legaldoc/internal/segment"
)

// EditAligned replaces the value on one line of an aligned section and
// returns the whole rebuilt section text.
func EditAligned(text string, line int, value string) (string, error) {
	rows := segment.ParseAligned(text)
	if line < 0 || line >= len(rows) {
		return "", &EditError{Line: line, Message: "line out of range"}
	}
	if rows[line].Value == nil {
		return "", &EditError{Line: line, Message: "line has no value field"}
	}
	rows[line].Value = &value
	return segment.JoinAligned(rows), nil
}

// AlignedEditor holds the current text of an editable aligned section.
// OnChange receives the full section text after every accepted edit.
type AlignedEditor struct {
	Text     string
	OnChange func(text string)
}

// SetValue applies one edit. OnChange fires synchronously, once, only when
// the edit is accepted.
func (e *AlignedEditor) SetValue(line int, value string) error {
	updated, err := EditAligned(e.Text, line, value)
	if err != nil {
		return err
	}
	e.Text = updated
	if e.OnChange != nil {
		e.OnChange(updated)
	}
	return nil
}

// Editable reports which lines of an aligned section accept edits.
func Editable(text string) []bool {
	rows := segment.ParseAligned(text)
	out := make([]bool, len(rows))
	for i, row := range rows {
		out[i] = row.Value != nil
	}
	return out
}
