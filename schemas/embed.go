// Package schemas embeds the JSON Schemas for document envelopes and analyses.
package schemas

import _ "embed"

// Document is the JSON Schema of a document envelope.
//
//go:embed document.schema.json
var Document string

// Analysis is the JSON Schema of a single section analysis.
//
//go:embed analysis.schema.json
var Analysis string

// Files lists the schema files shipped in this directory.
var Files = []string{"document.schema.json", "analysis.schema.json"}
