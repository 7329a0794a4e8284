package emit

import (
	"testing"

	"github.com/jonathan/legaldoc/internal/rendering"
	"github.com/jonathan/legaldoc/internal/types"
	"github.com/stretchr/testify/require"
)

func sampleDemand() *types.DemandText {
	return &types.DemandText{
		Header:                  types.Ptr("CAUSA : 123\nRIT : 456\nDEMANDANTE"),
		Summary:                 types.Ptr("EN LO PRINCIPAL: demanda ejecutiva; OTROSÍ: acompaña documentos"),
		Court:                   types.Ptr("1° JUZGADO CIVIL DE SANTIAGO"),
		Opening:                 types.Ptr("Por medio del presente, SOLICITO A US. tener por presentada la demanda.\nSegunda línea & <marcas>\n\nOtro párrafo"),
		MissingPaymentArguments: []string{"El deudor no pagó $1.000.000.", "Intereses al 3%."},
		MainRequest:             types.Ptr("POR LO TANTO, RUEGO A US. acoger la demanda."),
		AdditionalRequests:      types.Ptr("Acompaña documentos: SOLICITO A US. tenerlos por acompañados\n\nPatrocinio y poder"),
	}
}

func sampleAnalysis() *types.DemandTextAnalysis {
	return &types.DemandTextAnalysis{
		Header:                  &types.Analysis{Status: types.Ptr(types.StatusGood), Feedback: types.Ptr("Encabezado completo")},
		Opening:                 &types.Analysis{Status: types.Ptr(types.StatusWarning), ImprovementSuggestions: types.Ptr("Precisar la fecha")},
		MissingPaymentArguments: []*types.Analysis{{Status: types.Ptr(types.StatusError), ImprovementSuggestions: types.Ptr("Falta el monto")}},
		Overall:                 &types.Analysis{Status: types.Ptr(types.StatusWarning), ImprovementSuggestions: types.Ptr("Revisión general")},
	}
}

func composeSample(t *testing.T, editable bool) *rendering.Rendered {
	t.Helper()
	c, err := rendering.NewComposer(rendering.DefaultOptions())
	require.NoError(t, err)
	r, err := c.Compose(sampleDemand(), sampleAnalysis(), rendering.WithEditable(editable))
	require.NoError(t, err)
	return r
}
