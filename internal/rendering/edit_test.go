package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditAligned(t *testing.T) {
	got, err := EditAligned("CAUSA : 123\nRIT : 456", 1, "789")
	require.NoError(t, err)
	assert.Equal(t, "CAUSA : 123\nRIT : 789", got)
}

func TestEditAligned_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{name: "negative line", text: "A : b", line: -1},
		{name: "past end", text: "A : b", line: 1},
		{name: "line without value", text: "A : b\nTITULO", line: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EditAligned(tt.text, tt.line, "x")
			var editErr *EditError
			assert.ErrorAs(t, err, &editErr)
		})
	}
}

func TestAlignedEditor_FiresOncePerEditWithFullText(t *testing.T) {
	var calls []string
	editor := &AlignedEditor{
		Text:     "CAUSA : 123\nRIT : 456",
		OnChange: func(text string) { calls = append(calls, text) },
	}

	require.NoError(t, editor.SetValue(0, "1"))
	require.NoError(t, editor.SetValue(0, "12"))
	assert.Error(t, editor.SetValue(5, "x"))

	assert.Equal(t, []string{
		"CAUSA : 1\nRIT : 456",
		"CAUSA : 12\nRIT : 456",
	}, calls)
	assert.Equal(t, "CAUSA : 12\nRIT : 456", editor.Text)
}

func TestEditable(t *testing.T) {
	assert.Equal(t, []bool{true, false}, Editable("A : b\nC"))
}
