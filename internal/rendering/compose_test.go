package rendering

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/legaldoc/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := NewComposer(DefaultOptions())
	require.NoError(t, err)
	return c
}

func sectionNames(r *Rendered) []string {
	names := make([]string, len(r.Blocks))
	for i, b := range r.Blocks {
		names[i] = b.Section
	}
	return names
}

func TestCompose_EndToEnd(t *testing.T) {
	c := newTestComposer(t)
	doc := &types.DemandText{
		Header:  types.Ptr("CAUSA : 123\nRIT : 456"),
		Court:   types.Ptr("1° JUZGADO"),
		Opening: types.Ptr("Por medio del presente, SOLICITO A US. tener por presentada la demanda."),
	}

	out, err := c.Compose(doc, nil)
	require.NoError(t, err)

	require.Len(t, out.Blocks, 3)
	assert.Equal(t, []string{types.SectionHeader, types.SectionCourt, types.SectionOpening}, sectionNames(out))

	header := out.Blocks[0]
	assert.Equal(t, KindAligned, header.Kind)
	require.Len(t, header.Rows, 2)
	assert.Equal(t, "CAUSA", header.Rows[0].Label)
	assert.Equal(t, "123", *header.Rows[0].Value)
	assert.Equal(t, "RIT", header.Rows[1].Label)
	assert.Equal(t, "456", *header.Rows[1].Value)

	court := out.Blocks[1]
	assert.Equal(t, KindCentered, court.Kind)
	assert.Equal(t, "1° JUZGADO", court.Text)

	opening := out.Blocks[2]
	require.Len(t, opening.Paragraphs, 1)
	runs := opening.Paragraphs[0].Lines[0].Runs
	require.Len(t, runs, 3)
	assert.False(t, runs[0].Bold)
	assert.True(t, runs[1].Bold)
	assert.Equal(t, "SOLICITO A US.", runs[1].Text)
	assert.False(t, runs[2].Bold)

	assert.Nil(t, out.Overall)
	for _, b := range out.Blocks {
		assert.Nil(t, b.Decoration)
	}
}

func TestCompose_NullCourtOmitted(t *testing.T) {
	c := newTestComposer(t)
	doc := &types.Withdrawal{
		Header:      types.Ptr("ROL : C-1"),
		Summary:     types.Ptr("EN LO PRINCIPAL: desistimiento"),
		Content:     types.Ptr("Vengo en desistirme."),
		MainRequest: types.Ptr("RUEGO A US. acceder."),
	}

	out, err := c.Compose(doc, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		types.SectionHeader,
		types.SectionSummary,
		types.SectionContent,
		types.SectionMainRequest,
	}, sectionNames(out))
}

func TestCompose_ListAnalysisZippedPositionally(t *testing.T) {
	c := newTestComposer(t)
	doc := &types.DemandText{MissingPaymentArguments: []string{"uno", "dos", "tres"}}
	analysis := &types.DemandTextAnalysis{
		MissingPaymentArguments: []*types.Analysis{
			{Status: types.Ptr(types.StatusGood), Feedback: types.Ptr("bien")},
			{Status: types.Ptr(types.StatusError), ImprovementSuggestions: types.Ptr("corregir")},
		},
		Overall: &types.Analysis{Status: types.Ptr(types.StatusWarning), ImprovementSuggestions: types.Ptr("revisar")},
	}

	out, err := c.Compose(doc, analysis)
	require.NoError(t, err)

	require.Len(t, out.Blocks, 3)
	for i, b := range out.Blocks {
		require.NotNil(t, b.Index)
		assert.Equal(t, i, *b.Index)
	}
	assert.Equal(t, ToneGreen, out.Blocks[0].Decoration.Tone)
	assert.Equal(t, "corregir", *out.Blocks[1].Decoration.Message)
	assert.Nil(t, out.Blocks[2].Decoration)
	assert.Equal(t, "tres", out.Blocks[2].Paragraphs[0].Lines[0].Text())

	require.NotNil(t, out.Overall)
	assert.Equal(t, ToneYellow, out.Overall.Tone)
	assert.Equal(t, "revisar", *out.Overall.Message)
}

func TestCompose_ExcessAnalysisIgnored(t *testing.T) {
	c := newTestComposer(t)
	doc := &types.ExceptionsResponse{ExceptionResponses: []string{"uno"}}
	analysis := &types.ExceptionsResponseAnalysis{
		ExceptionResponses: []*types.Analysis{
			{Status: types.Ptr(types.StatusGood)},
			{Status: types.Ptr(types.StatusGood)},
		},
	}

	out, err := c.Compose(doc, analysis)
	require.NoError(t, err)
	assert.Len(t, out.Blocks, 1)
}

func TestCompose_Errors(t *testing.T) {
	c := newTestComposer(t)

	_, err := c.Compose(nil, nil)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)

	_, err = c.Compose(&types.Withdrawal{}, &types.DemandTextAnalysis{})
	assert.ErrorAs(t, err, &renderErr)
}

func TestCompose_EditableMarksAlignedOnly(t *testing.T) {
	c := newTestComposer(t)
	doc := &types.DispatchResolution{
		Header:  types.Ptr("ROL : C-1"),
		Content: types.Ptr("Téngase presente."),
	}

	out, err := c.Compose(doc, nil, WithEditable(true))
	require.NoError(t, err)

	assert.True(t, out.Editable)
	assert.True(t, out.Blocks[0].Editable)
	assert.False(t, out.Blocks[1].Editable)
}

func TestComposeEnvelope(t *testing.T) {
	c := newTestComposer(t)
	env := types.Envelope{
		DocumentType: types.DocumentTypeDispatchResolution,
		Structure:    json.RawMessage(`{"header": "ROL : C-1", "court": null, "content": "Téngase presente."}`),
		Analysis:     json.RawMessage(`{"content": {"status": "good", "feedback": "correcto"}}`),
	}

	out, err := c.ComposeEnvelope(env)
	require.NoError(t, err)

	require.Len(t, out.Blocks, 2)
	assert.Equal(t, "correcto", *out.Blocks[1].Decoration.Message)
}

func TestComposer_Edit(t *testing.T) {
	c := newTestComposer(t)
	doc := &types.DemandText{Header: types.Ptr("CAUSA : 123\nRIT : 456")}

	var received []types.Document
	updated, err := c.Edit(doc, types.SectionHeader, 0, "999", func(d types.Document) {
		received = append(received, d)
	})
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Same(t, updated, received[0])
	text, _ := updated.Section(types.SectionHeader)
	assert.Equal(t, "CAUSA : 999\nRIT : 456", *text)
	assert.Equal(t, "CAUSA : 123\nRIT : 456", *doc.Header)
}

func TestComposer_Edit_Rejected(t *testing.T) {
	c := newTestComposer(t)
	doc := &types.DemandText{
		Header:  types.Ptr("TITULO"),
		Opening: types.Ptr("texto"),
	}
	called := false
	onEdit := func(types.Document) { called = true }

	tests := []struct {
		name    string
		section string
		line    int
	}{
		{name: "paragraph section", section: types.SectionOpening},
		{name: "summary section", section: types.SectionSummary},
		{name: "line without value", section: types.SectionHeader},
		{name: "unknown section", section: "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Edit(doc, tt.section, tt.line, "x", onEdit)
			var editErr *EditError
			require.ErrorAs(t, err, &editErr)
			assert.Equal(t, tt.section, editErr.Section)
		})
	}
	assert.False(t, called)

	_, err := c.Edit(nil, types.SectionHeader, 0, "x", onEdit)
	assert.Error(t, err)
}

func TestSectionLayout(t *testing.T) {
	for _, dt := range types.DocumentTypes() {
		layout, err := SectionLayout(dt)
		require.NoError(t, err)
		assert.NotEmpty(t, layout)
	}

	_, err := SectionLayout("appeal")
	assert.Error(t, err)
}
