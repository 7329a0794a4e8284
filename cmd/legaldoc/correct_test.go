package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/legaldoc/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrectCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "corrected.json")

	_, err := execute(t, "correct", sampleEnvelopePath,
		"--section", "header", "--line", "0", "--value", "Ordinario", "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var env types.Envelope
	require.NoError(t, json.Unmarshal(data, &env))

	doc, analysis, err := env.Decode()
	require.NoError(t, err)
	header, _ := doc.Section(types.SectionHeader)
	require.NotNil(t, header)
	assert.Equal(t, "PROCEDIMIENTO : Ordinario\nMATERIA : Cobro de pagaré\nDEMANDANTE : Banco del Pacífico S.A.", *header)
	require.NotNil(t, analysis)
}

func TestCorrectCommand_Stdout(t *testing.T) {
	out, err := execute(t, "correct", sampleEnvelopePath, "--section", "header", "--line", "2", "--value", "Banco Estado")
	require.NoError(t, err)
	assert.Contains(t, out, "DEMANDANTE : Banco Estado")
}

func TestCorrectCommand_Errors(t *testing.T) {
	t.Setenv("LEGALDOC_DATABASE_URL", "")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing section flag", args: []string{"correct", sampleEnvelopePath}, wantErr: `required flag(s) "section" not set`},
		{name: "not aligned", args: []string{"correct", sampleEnvelopePath, "--section", "opening", "--value", "x"}, wantErr: "section is not editable"},
		{name: "line out of range", args: []string{"correct", sampleEnvelopePath, "--section", "header", "--line", "9", "--value", "x"}, wantErr: "header"},
		{name: "negative line", args: []string{"correct", sampleEnvelopePath, "--section", "header", "--line=-1"}, wantErr: "Line"},
		{name: "bad user id", args: []string{"correct", sampleEnvelopePath, "--section", "header", "--user-id", "nope"}, wantErr: "invalid --user-id"},
		{name: "save without database", args: []string{"correct", sampleEnvelopePath, "--section", "header", "--save"}, wantErr: "--save requires database.url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
