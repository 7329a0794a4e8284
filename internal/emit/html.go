package emit

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/jonathan/legaldoc/internal/rendering"
)

//go:embed templates
var templateFS embed.FS

var htmlTemplates = template.Must(template.New("html").Funcs(template.FuncMap{
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}).ParseFS(templateFS, "templates/*.html.tmpl"))

// htmlView is the data both HTML templates execute against.
type htmlView struct {
	DocumentType string
	Editable     bool
	Paper        PaperSize
	PageCSS      template.CSS
	ShowNotes    bool
	Overall      *rendering.Decoration
	Blocks       []blockView
}

type blockView struct {
	rendering.Block
	Inputs   bool
	ShowNote bool
}

// Is reports whether the block is of the named kind.
func (b blockView) Is(kind string) bool {
	return string(b.Kind) == kind
}

func newHTMLView(r *rendering.Rendered, inputs, notes bool) htmlView {
	view := htmlView{
		DocumentType: string(r.DocumentType),
		Editable:     inputs && r.Editable,
		ShowNotes:    notes,
		Overall:      r.Overall,
		Blocks:       make([]blockView, len(r.Blocks)),
	}
	for i, block := range r.Blocks {
		view.Blocks[i] = blockView{
			Block:    block,
			Inputs:   view.Editable && block.Editable,
			ShowNote: notes,
		}
	}
	return view
}

// Screen writes the interactive, scrollable HTML of r. Editable aligned
// values become input fields and every analysis note is shown.
func Screen(w io.Writer, r *rendering.Rendered) error {
	if r == nil {
		return &TemplateError{Message: "render tree is nil"}
	}
	return executeHTML(w, "screen.html.tmpl", newHTMLView(r, true, true))
}

// Print writes the static fixed-page HTML of r. It carries no inputs or hover
// rules; analysis notes appear only when includeAnalysis is set.
func Print(w io.Writer, r *rendering.Rendered, page PageSetup, includeAnalysis bool) error {
	if r == nil {
		return &TemplateError{Message: "render tree is nil"}
	}
	if err := page.Validate(); err != nil {
		return &TemplateError{Message: "invalid page setup", Cause: err}
	}
	view := newHTMLView(r, false, includeAnalysis)
	view.Paper = page.Size
	view.PageCSS = pageCSS(page)
	return executeHTML(w, "print.html.tmpl", view)
}

func executeHTML(w io.Writer, name string, view htmlView) error {
	if err := htmlTemplates.ExecuteTemplate(w, name, view); err != nil {
		return &TemplateError{Message: fmt.Sprintf("failed to execute %s", name), Cause: err}
	}
	return nil
}

// pageCSS renders the @page rule and base font for a page setup.
func pageCSS(page PageSetup) template.CSS {
	font := strings.Map(func(r rune) rune {
		if strings.ContainsRune("\"'\\<>;{}", r) {
			return -1
		}
		return r
	}, page.FontFamily)
	return template.CSS(fmt.Sprintf(
		"@page { size: %s %s; margin: %s; }\nbody { font-family: \"%s\", serif; font-size: %gpt; }",
		inches(page.WidthIn), inches(page.HeightIn), inches(page.MarginIn), font, page.FontSizePt,
	))
}
