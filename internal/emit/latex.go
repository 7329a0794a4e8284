package emit

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jonathan/legaldoc/internal/rendering"
)

var latexTemplate = template.Must(template.ParseFS(templateFS, "templates/document.tex.tmpl"))

// latexData represents the data structure passed to the LaTeX template
type latexData struct {
	FontSize string
	Width    string
	Height   string
	Margin   string
	Blocks   []string
}

// LaTeX writes the print target of r as a standalone LaTeX document.
// Analysis notes are not emitted.
func LaTeX(w io.Writer, r *rendering.Rendered, page PageSetup) error {
	if r == nil {
		return &TemplateError{Message: "render tree is nil"}
	}
	if err := page.Validate(); err != nil {
		return &TemplateError{Message: "invalid page setup", Cause: err}
	}

	data := latexData{
		// the article class only accepts 10, 11 and 12pt
		FontSize: fmt.Sprintf("%d", min(12, max(10, int(page.FontSizePt)))),
		Width:    inches(page.WidthIn),
		Height:   inches(page.HeightIn),
		Margin:   inches(page.MarginIn),
		Blocks:   make([]string, 0, len(r.Blocks)),
	}
	for _, block := range r.Blocks {
		data.Blocks = append(data.Blocks, latexBlock(block))
	}

	if err := latexTemplate.Execute(w, data); err != nil {
		return &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return nil
}

func latexBlock(block rendering.Block) string {
	switch block.Kind {
	case rendering.KindAligned:
		rows := make([]string, len(block.Rows))
		for i, row := range block.Rows {
			if row.Value == nil {
				rows[i] = `\multicolumn{2}{@{}l@{}}{` + protectLineStart(EscapeLaTeX(row.Label)) + `} \\`
				continue
			}
			rows[i] = protectLineStart(EscapeLaTeX(row.Label)) + ` & ` + EscapeLaTeX(*row.Value) + ` \\`
		}
		return "\\begin{tabular}{@{}l@{ : }l@{}}\n" + strings.Join(rows, "\n") + "\n\\end{tabular}"
	case rendering.KindCentered:
		return `\begin{center}\textbf{` + EscapeLaTeX(block.Text) + `}\end{center}`
	case rendering.KindSummaryList:
		parts := make([]string, len(block.Entries))
		for i, entry := range block.Entries {
			parts[i] = `\textbf{` + EscapeLaTeX(entry.Label) + `}` + EscapeLaTeX(entry.Rest)
		}
		return strings.Join(parts, "; ")
	case rendering.KindParagraph:
		paragraphs := make([]string, len(block.Paragraphs))
		for i, p := range block.Paragraphs {
			paragraphs[i] = latexLines(p.Lines)
		}
		return strings.Join(paragraphs, "\n\n\\medskip\n")
	case rendering.KindRequestList:
		items := make([]string, len(block.Requests))
		for i, req := range block.Requests {
			heading := `\textbf{` + EscapeLaTeX(req.Ordinal) + `}`
			if req.HasLabel {
				heading += " " + EscapeLaTeX(req.Label) + ":"
			}
			items[i] = heading + " \\\\\n" + latexLines(req.Lines)
		}
		return strings.Join(items, "\n\n\\medskip\n")
	}
	return ""
}

// latexLines joins lines with explicit breaks. Empty lines keep their height.
func latexLines(lines []rendering.Line) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := latexRuns(line.Runs)
		if text == "" {
			text = `\mbox{}`
		}
		out[i] = protectLineStart(text)
	}
	return strings.Join(out, " \\\\\n")
}

// protectLineStart keeps a preceding \\ from reading a leading [ or * as
// its optional argument or star.
func protectLineStart(text string) string {
	if strings.HasPrefix(text, "[") || strings.HasPrefix(text, "*") {
		return "{}" + text
	}
	return text
}
