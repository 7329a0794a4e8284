package schemas_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/jonathan/legaldoc/internal/schemas"
	embedded "github.com/jonathan/legaldoc/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range embedded.Files {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasSchema := schemaObj["$schema"]
			_, hasType := schemaObj["type"]
			assert.True(t, hasSchema && hasType, "schema should declare $schema and type")
		})
	}
}

func TestEmbeddedMatchesFiles(t *testing.T) {
	data, err := os.ReadFile("document.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), embedded.Document)

	data, err = os.ReadFile("analysis.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), embedded.Analysis)
}

func TestDocumentSchema_CoversEveryDocumentType(t *testing.T) {
	var schemaObj struct {
		Properties struct {
			DocumentType struct {
				Enum []string `json:"enum"`
			} `json:"document_type"`
		} `json:"properties"`
		AllOf []json.RawMessage `json:"allOf"`
	}
	require.NoError(t, json.Unmarshal([]byte(embedded.Document), &schemaObj))

	assert.ElementsMatch(t,
		[]string{"demand_text", "exceptions_response", "dispatch_resolution", "withdrawal"},
		schemaObj.Properties.DocumentType.Enum)
	assert.Len(t, schemaObj.AllOf, 4)
}

func TestDocumentSchema_ValidatesMinimalEnvelope(t *testing.T) {
	err := schemas.ValidateEnvelope([]byte(`{"document_type": "withdrawal", "structure": {"content": "Desisto."}}`))
	assert.NoError(t, err)
}
