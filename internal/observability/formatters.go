// Package observability provides formatted output utilities for verbose CLI
// mode and the Prometheus metrics shared by the CLI and the server.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/legaldoc/internal/rendering"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintDocumentSummary outputs the section layout of a rendered document.
func (p *Printer) PrintDocumentSummary(r *rendering.Rendered) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Type:     %s\n", r.DocumentType))
	sb.WriteString(fmt.Sprintf("Blocks:   %d\n", len(r.Blocks)))
	if r.Editable {
		sb.WriteString("Mode:     editable\n")
	}
	sb.WriteString("\n")

	for _, block := range r.Blocks {
		name := block.Section
		if block.Index != nil {
			name = fmt.Sprintf("%s[%d]", name, *block.Index)
		}
		sb.WriteString(fmt.Sprintf("• %-28s %s", name, block.Kind))
		if block.Decoration != nil {
			sb.WriteString(fmt.Sprintf(" [%s]", block.Decoration.Status))
		}
		sb.WriteString("\n")
	}

	p.printBox("RENDERED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysisSummary outputs the annotated sections and their messages.
func (p *Printer) PrintAnalysisSummary(r *rendering.Rendered) {
	if r == nil {
		return
	}

	counts := map[string]int{}
	var notes []string
	for _, block := range r.Blocks {
		if block.Decoration == nil {
			continue
		}
		counts[string(block.Decoration.Status)]++
		if block.Decoration.Message != nil {
			notes = append(notes, fmt.Sprintf("%s: %s", block.Section, *block.Decoration.Message))
		}
	}
	if len(counts) == 0 && r.Overall == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("good: %d  warning: %d  error: %d\n",
		counts["good"], counts["warning"], counts["error"]))

	if len(notes) > 0 {
		sb.WriteString("\n")
		count := min(len(notes), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("• %s\n", notes[i]))
		}
		if len(notes) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(notes)-maxItemsToShow))
		}
	}

	if r.Overall != nil {
		sb.WriteString(fmt.Sprintf("\nOverall: %s", r.Overall.Status))
		if r.Overall.Message != nil {
			sb.WriteString(fmt.Sprintf(" (%s)", *r.Overall.Message))
		}
		sb.WriteString("\n")
	}

	p.printBox("ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExport outputs the result of a PDF export.
func (p *Printer) PrintExport(path string, pages int, size int, cached bool) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", path))
	sb.WriteString(fmt.Sprintf("Pages:    %d\n", pages))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes", size))
	if cached {
		sb.WriteString("\nSource:   cache")
	}
	p.printBox("PDF EXPORT", sb.String())
}
