package rendering

import (
	"fmt"

	"github.com/jonathan/legaldoc/internal/segment"
	"github.com/jonathan/legaldoc/internal/types"
)

// Renderer renders single sections. It compiles the bold-trigger patterns
// once and is safe for concurrent use.
type Renderer struct {
	opts     Options
	matchers map[SectionKind]*segment.Matcher
}

// NewRenderer builds a Renderer for the given options.
func NewRenderer(opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	matchers := make(map[SectionKind]*segment.Matcher, len(SectionKinds()))
	for _, kind := range SectionKinds() {
		matchers[kind] = segment.NewMatcher(opts.TriggersFor(kind))
	}
	return &Renderer{opts: opts, matchers: matchers}, nil
}

// Options returns the options the renderer was built with.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render dispatches to the renderer for kind.
func (r *Renderer) Render(kind SectionKind, text string, analysis *types.Analysis) (Block, error) {
	switch kind {
	case KindAligned:
		return r.RenderAligned(text, analysis), nil
	case KindCentered:
		return r.RenderCentered(text, analysis), nil
	case KindSummaryList:
		return r.RenderSummary(text, analysis), nil
	case KindParagraph:
		return r.RenderParagraphs(text, analysis), nil
	case KindRequestList:
		return r.RenderRequests(text, analysis), nil
	}
	return Block{}, &RenderError{Message: fmt.Sprintf("unknown section kind %q", kind)}
}

// RenderAligned renders label/value rows.
func (r *Renderer) RenderAligned(text string, analysis *types.Analysis) Block {
	return Block{
		Kind:       KindAligned,
		Rows:       segment.ParseAligned(text),
		Decoration: AnnotateAnalysis(analysis),
	}
}

// RenderCentered renders the text as one centered line without bold runs.
func (r *Renderer) RenderCentered(text string, analysis *types.Analysis) Block {
	return Block{
		Kind:       KindCentered,
		Text:       text,
		Decoration: AnnotateAnalysis(analysis),
	}
}

// RenderSummary renders a semicolon separated summary list.
func (r *Renderer) RenderSummary(text string, analysis *types.Analysis) Block {
	entries := segment.SummaryEntries(text)
	return Block{
		Kind:       KindSummaryList,
		Entries:    entries,
		Text:       segment.JoinSummary(entries),
		Decoration: AnnotateAnalysis(analysis),
	}
}

// RenderParagraphs renders blank-line separated paragraphs with bold runs.
func (r *Renderer) RenderParagraphs(text string, analysis *types.Analysis) Block {
	m := r.matchers[KindParagraph]
	raw := segment.Paragraphs(text)
	paragraphs := make([]Paragraph, 0, len(raw))
	for _, p := range raw {
		paragraphs = append(paragraphs, Paragraph{Lines: r.lines(m, segment.Lines(p))})
	}
	return Block{
		Kind:       KindParagraph,
		Paragraphs: paragraphs,
		Decoration: AnnotateAnalysis(analysis),
	}
}

// RenderRequests renders numbered additional requests.
func (r *Renderer) RenderRequests(text string, analysis *types.Analysis) Block {
	units := r.matchers[KindRequestList].RequestUnits(text)
	items := make([]RequestItem, 0, len(units))
	for i, unit := range units {
		item := RequestItem{
			Ordinal:  r.opts.Ordinal(i),
			Label:    unit.Label,
			HasLabel: unit.HasLabel,
			Lines:    make([]Line, 0, len(unit.Lines)),
		}
		for _, runs := range unit.Lines {
			item.Lines = append(item.Lines, Line{Runs: runs})
		}
		items = append(items, item)
	}
	return Block{
		Kind:       KindRequestList,
		Requests:   items,
		Decoration: AnnotateAnalysis(analysis),
	}
}

func (r *Renderer) lines(m *segment.Matcher, raw []string) []Line {
	lines := make([]Line, 0, len(raw))
	for _, text := range raw {
		lines = append(lines, Line{Runs: m.CollectRuns(text)})
	}
	return lines
}
