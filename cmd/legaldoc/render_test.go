package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/legaldoc/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand_ScreenToStdout(t *testing.T) {
	out, err := execute(t, "render", sampleEnvelopePath, "--editable")
	require.NoError(t, err)

	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "<input")
	assert.Contains(t, out, "S.J.L. EN LO CIVIL DE SANTIAGO")
}

func TestRenderCommand_Tree(t *testing.T) {
	out, err := execute(t, "render", sampleEnvelopePath, "--target", "tree")
	require.NoError(t, err)

	var rendered rendering.Rendered
	require.NoError(t, json.Unmarshal([]byte(out), &rendered))
	assert.Equal(t, "demand_text", string(rendered.DocumentType))
	assert.NotEmpty(t, rendered.Blocks)
}

func TestRenderCommand_TextWithVerify(t *testing.T) {
	out, err := execute(t, "render", sampleEnvelopePath, "--target", "text", "--verify")
	require.NoError(t, err)

	assert.Contains(t, out, "S.J.L. EN LO CIVIL DE SANTIAGO")
	assert.NotContains(t, out, "<")
}

func TestRenderCommand_PrintWithAnalysis(t *testing.T) {
	out, err := execute(t, "render", sampleEnvelopePath, "--target", "print", "--size", "legal")
	require.NoError(t, err)
	assert.Contains(t, out, "size: 8.5in 14in")
	assert.NotContains(t, out, "Indicar la fecha de vencimiento")

	out, err = execute(t, "render", sampleEnvelopePath, "--target", "print", "--with-analysis")
	require.NoError(t, err)
	assert.Contains(t, out, "Indicar la fecha de vencimiento")
}

func TestRenderCommand_OutDir(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "second.json")
	data, err := os.ReadFile(sampleEnvelopePath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(second, data, 0o644))

	outDir := filepath.Join(dir, "out")
	_, err = execute(t, "render", sampleEnvelopePath, second, "--target", "latex", "--out-dir", outDir, "--jobs", "2")
	require.NoError(t, err)

	for _, name := range []string{"demand_text.tex", "second.tex"} {
		content, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(content), `\documentclass`)
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"document_type": "demand_text"}`), 0o644))

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown target", args: []string{"render", sampleEnvelopePath, "--target", "docx"}, wantErr: "unknown target"},
		{name: "several inputs without out-dir", args: []string{"render", sampleEnvelopePath, sampleEnvelopePath}, wantErr: "--out-dir is required"},
		{name: "bad jobs", args: []string{"render", sampleEnvelopePath, "--jobs", "0"}, wantErr: "--jobs"},
		{name: "bad size", args: []string{"render", sampleEnvelopePath, "--size", "a4"}, wantErr: "a4"},
		{name: "missing file", args: []string{"render", filepath.Join(dir, "missing.json")}, wantErr: "failed to read envelope"},
		{name: "schema violation", args: []string{"render", invalid}, wantErr: "invalid.json"},
		{name: "no inputs", args: []string{"render"}, wantErr: "requires at least 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
