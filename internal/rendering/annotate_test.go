package rendering

import (
	"testing"

	"github.com/jonathan/legaldoc/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotate(t *testing.T) {
	feedback := types.Ptr("X")
	suggestions := types.Ptr("Y")

	tests := []struct {
		name        string
		status      *types.AnalysisStatus
		feedback    *string
		suggestions *string
		wantNil     bool
		wantTone    Tone
		wantMessage *string
	}{
		{name: "nil status ignores messages", feedback: feedback, suggestions: suggestions, wantNil: true},
		{name: "good shows feedback", status: types.Ptr(types.StatusGood), feedback: feedback, suggestions: suggestions, wantTone: ToneGreen, wantMessage: feedback},
		{name: "warning shows suggestions", status: types.Ptr(types.StatusWarning), feedback: feedback, suggestions: suggestions, wantTone: ToneYellow, wantMessage: suggestions},
		{name: "error shows suggestions", status: types.Ptr(types.StatusError), feedback: feedback, suggestions: suggestions, wantTone: ToneRed, wantMessage: suggestions},
		{name: "warning without suggestions", status: types.Ptr(types.StatusWarning), feedback: feedback, wantTone: ToneYellow},
		{name: "good with blank feedback", status: types.Ptr(types.StatusGood), feedback: types.Ptr("  "), wantTone: ToneGreen},
		{name: "unknown status", status: types.Ptr(types.AnalysisStatus("meh")), feedback: feedback, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Annotate(tt.status, tt.feedback, tt.suggestions)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantTone, got.Tone)
			assert.Equal(t, *tt.status, got.Status)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestAnnotate_StripsMarkup(t *testing.T) {
	got := Annotate(types.Ptr(types.StatusError), nil, types.Ptr("<b>Revise</b> el monto & la fecha"))

	require.NotNil(t, got)
	require.NotNil(t, got.Message)
	assert.Equal(t, "Revise el monto & la fecha", *got.Message)
}

func TestAnnotate_KeepsLiteralText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "entity-like text", in: "use &lt; for menor", want: "use &lt; for menor"},
		{name: "comparison", in: "monto < 1.000 & plazo > 30", want: "monto < 1.000 & plazo > 30"},
		{name: "quotes", in: `cite "art. 434"`, want: `cite "art. 434"`},
		{name: "tag removed", in: "<script>x</script>Revise", want: "Revise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Annotate(types.Ptr(types.StatusWarning), nil, types.Ptr(tt.in))
			require.NotNil(t, got)
			require.NotNil(t, got.Message)
			assert.Equal(t, tt.want, *got.Message)
		})
	}
}

func TestAnnotateAnalysis_Nil(t *testing.T) {
	assert.Nil(t, AnnotateAnalysis(nil))
	assert.Nil(t, AnnotateAnalysis(&types.Analysis{Feedback: types.Ptr("ignored")}))
}
