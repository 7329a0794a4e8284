package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlignedLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantLabel string
		wantValue *string
	}{
		{name: "simple", line: "CAUSA : 123", wantLabel: "CAUSA", wantValue: strPtr("123")},
		{name: "first separator wins", line: "A : b : c", wantLabel: "A", wantValue: strPtr("b : c")},
		{name: "no separator", line: "DEMANDANTE", wantLabel: "DEMANDANTE"},
		{name: "colon without spaces", line: "RIT:456", wantLabel: "RIT:456"},
		{name: "empty value", line: "ROL : ", wantLabel: "ROL", wantValue: strPtr("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAlignedLine(tt.line)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantValue, got.Value)
		})
	}
}

func TestJoinAligned_RoundTrip(t *testing.T) {
	texts := []string{
		"CAUSA : 123\nRIT : 456",
		"A : b : c\nD : ",
		"SOLO UNA : línea",
	}

	for _, text := range texts {
		assert.Equal(t, text, JoinAligned(ParseAligned(text)))
	}
}

func TestParseAligned_MixedLines(t *testing.T) {
	lines := ParseAligned("PROCEDIMIENTO : Ejecutivo\nMATERIA")

	require.Len(t, lines, 2)
	assert.Equal(t, "Ejecutivo", *lines[0].Value)
	assert.Nil(t, lines[1].Value)
	assert.Equal(t, "PROCEDIMIENTO : Ejecutivo\nMATERIA", JoinAligned(lines))
}

func TestSummaryEntries(t *testing.T) {
	entries := SummaryEntries("A: uno; B: dos")

	require.Len(t, entries, 2)
	assert.Equal(t, "A:", entries[0].Label)
	assert.Equal(t, " uno", entries[0].Rest)
	assert.Equal(t, "B:", entries[1].Label)
	assert.Equal(t, "A: uno; B: dos", JoinSummary(entries))
}

func TestSummaryEntries_DropsEmptyAndUnlabelled(t *testing.T) {
	entries := SummaryEntries(" ; EN LO PRINCIPAL: demanda ejecutiva;; sin etiqueta ;")

	require.Len(t, entries, 2)
	assert.Equal(t, "EN LO PRINCIPAL:", entries[0].Label)
	assert.Equal(t, "", entries[1].Label)
	assert.Equal(t, "sin etiqueta", entries[1].Rest)
	assert.Empty(t, SummaryEntries(""))
}

func TestSummaryEntries_SplitsOnFirstColon(t *testing.T) {
	entries := SummaryEntries("HORA: 10:30")

	require.Len(t, entries, 1)
	assert.Equal(t, "HORA:", entries[0].Label)
	assert.Equal(t, " 10:30", entries[0].Rest)
}

func TestRequestUnits(t *testing.T) {
	m := NewMatcher([]string{"SOLICITO A US."})

	units := m.RequestUnits("Acompaña documentos: SOLICITO A US. tenerlos\npor acompañados\n\nSin etiqueta")

	require.Len(t, units, 2)
	assert.True(t, units[0].HasLabel)
	assert.Equal(t, "Acompaña documentos", units[0].Label)
	require.Len(t, units[0].Lines, 2)
	assert.True(t, units[0].Lines[0][0].Bold)
	assert.Equal(t, "SOLICITO A US. tenerlos", JoinRuns(units[0].Lines[0]))
	assert.Equal(t, "por acompañados", JoinRuns(units[0].Lines[1]))

	assert.False(t, units[1].HasLabel)
	assert.Equal(t, "Sin etiqueta", JoinRuns(units[1].Lines[0]))
}

func TestRequestUnits_LabelKeepsMultilineRemainder(t *testing.T) {
	m := NewMatcher(nil)

	units := m.RequestUnits("Patrocinio:\nabogado: Juan\nmandatario")

	require.Len(t, units, 1)
	assert.Equal(t, "Patrocinio", units[0].Label)
	require.Len(t, units[0].Lines, 3)
	assert.Equal(t, "", JoinRuns(units[0].Lines[0]))
	assert.Equal(t, "abogado: Juan", JoinRuns(units[0].Lines[1]))
}

func TestRequestUnits_SkipsBlankUnits(t *testing.T) {
	m := NewMatcher(nil)

	assert.Empty(t, m.RequestUnits(""))
	assert.Empty(t, m.RequestUnits("  \n\n \n"))

	units := m.RequestUnits("Acompaña documentos: tenerlos\n\n")
	require.Len(t, units, 1)
	assert.Equal(t, "Acompaña documentos", units[0].Label)
	assert.Equal(t, "tenerlos", JoinRuns(units[0].Lines[0]))

	units = m.RequestUnits("a\n\n\n\nb")
	require.Len(t, units, 2)
	assert.Equal(t, "b", JoinRuns(units[1].Lines[0]))
}

func strPtr(s string) *string { return &s }
