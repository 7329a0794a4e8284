package rendering

import (
	"errors"
	"fmt"

	"github.com/jonathan/legaldoc/internal/types"
)

// SectionSpec places one section in a document layout.
type SectionSpec struct {
	Name string
	Kind SectionKind
	// List marks sections whose value is a list of entries, each rendered
	// as its own block.
	List bool
}

var layouts = map[types.DocumentType][]SectionSpec{
	types.DocumentTypeDemandText: {
		{Name: types.SectionHeader, Kind: KindAligned},
		{Name: types.SectionSummary, Kind: KindSummaryList},
		{Name: types.SectionCourt, Kind: KindCentered},
		{Name: types.SectionOpening, Kind: KindParagraph},
		{Name: types.SectionMissingPaymentArguments, Kind: KindParagraph, List: true},
		{Name: types.SectionMainRequest, Kind: KindParagraph},
		{Name: types.SectionAdditionalRequests, Kind: KindRequestList},
	},
	types.DocumentTypeExceptionsResponse: {
		{Name: types.SectionSummary, Kind: KindSummaryList},
		{Name: types.SectionCourt, Kind: KindCentered},
		{Name: types.SectionOpening, Kind: KindParagraph},
		{Name: types.SectionExceptionResponses, Kind: KindParagraph, List: true},
		{Name: types.SectionMainRequest, Kind: KindParagraph},
		{Name: types.SectionAdditionalRequests, Kind: KindRequestList},
	},
	types.DocumentTypeDispatchResolution: {
		{Name: types.SectionHeader, Kind: KindAligned},
		{Name: types.SectionCourt, Kind: KindCentered},
		{Name: types.SectionContent, Kind: KindParagraph},
	},
	types.DocumentTypeWithdrawal: {
		{Name: types.SectionHeader, Kind: KindAligned},
		{Name: types.SectionSummary, Kind: KindSummaryList},
		{Name: types.SectionCourt, Kind: KindCentered},
		{Name: types.SectionContent, Kind: KindParagraph},
		{Name: types.SectionMainRequest, Kind: KindParagraph},
	},
}

// SectionLayout returns the fixed section order of a document type.
func SectionLayout(dt types.DocumentType) ([]SectionSpec, error) {
	layout, ok := layouts[dt]
	if !ok {
		return nil, &types.UnknownDocumentTypeError{Value: string(dt)}
	}
	out := make([]SectionSpec, len(layout))
	copy(out, layout)
	return out, nil
}

// ComposeOption adjusts a single Compose call.
type ComposeOption func(*composeSettings)

type composeSettings struct {
	editable bool
}

// WithEditable marks aligned sections as editable in the result.
func WithEditable(editable bool) ComposeOption {
	return func(s *composeSettings) {
		s.editable = editable
	}
}

// Composer assembles whole documents out of section blocks.
type Composer struct {
	renderer *Renderer
}

// NewComposer creates a Composer for the given options.
func NewComposer(opts Options) (*Composer, error) {
	renderer, err := NewRenderer(opts)
	if err != nil {
		return nil, err
	}
	return &Composer{renderer: renderer}, nil
}

// Renderer exposes the section renderer used by the composer.
func (c *Composer) Renderer() *Renderer {
	return c.renderer
}

// Compose renders doc in its document type's section order. analysis may be nil.
// Absent sections are skipped entirely.
func (c *Composer) Compose(doc types.Document, analysis types.DocumentAnalysis, opts ...ComposeOption) (*Rendered, error) {
	if doc == nil {
		return nil, &RenderError{Message: "document is nil"}
	}
	if analysis != nil && analysis.DocumentType() != doc.DocumentType() {
		return nil, &RenderError{Message: fmt.Sprintf(
			"analysis is for %s, document is %s", analysis.DocumentType(), doc.DocumentType())}
	}

	var settings composeSettings
	for _, opt := range opts {
		opt(&settings)
	}

	layout, err := SectionLayout(doc.DocumentType())
	if err != nil {
		return nil, err
	}

	out := &Rendered{
		DocumentType: doc.DocumentType(),
		Blocks:       make([]Block, 0, len(layout)),
		Editable:     settings.editable,
	}

	for _, spec := range layout {
		if spec.List {
			entries, _ := doc.ListSection(spec.Name)
			var notes []*types.Analysis
			if analysis != nil {
				notes = analysis.ListSection(spec.Name)
			}
			for i, entry := range entries {
				block, err := c.renderer.Render(spec.Kind, entry, types.AnalysisAt(notes, i))
				if err != nil {
					return nil, err
				}
				block.Section = spec.Name
				block.Index = types.Ptr(i)
				out.Blocks = append(out.Blocks, block)
			}
			continue
		}

		text, _ := doc.Section(spec.Name)
		if text == nil {
			continue
		}
		var note *types.Analysis
		if analysis != nil {
			note = analysis.Section(spec.Name)
		}
		block, err := c.renderer.Render(spec.Kind, *text, note)
		if err != nil {
			return nil, err
		}
		block.Section = spec.Name
		block.Editable = settings.editable && spec.Kind == KindAligned
		out.Blocks = append(out.Blocks, block)
	}

	if analysis != nil {
		out.Overall = AnnotateAnalysis(analysis.OverallAnalysis())
	}
	return out, nil
}

// ComposeEnvelope decodes env and composes the result.
func (c *Composer) ComposeEnvelope(env types.Envelope, opts ...ComposeOption) (*Rendered, error) {
	doc, analysis, err := env.Decode()
	if err != nil {
		return nil, err
	}
	return c.Compose(doc, analysis, opts...)
}

// Edit replaces the value on one line of an aligned section. The updated
// structure is handed to onEdit, when set, and returned. doc is not modified.
func (c *Composer) Edit(doc types.Document, section string, line int, value string, onEdit func(types.Document)) (types.Document, error) {
	if doc == nil {
		return nil, &RenderError{Message: "document is nil"}
	}
	if !c.isAligned(doc.DocumentType(), section) {
		return nil, &EditError{Section: section, Line: line, Message: "section is not editable"}
	}
	text, _ := doc.Section(section)
	if text == nil {
		return nil, &EditError{Section: section, Line: line, Message: "section is absent"}
	}

	var updated types.Document
	var applyErr error
	editor := &AlignedEditor{
		Text: *text,
		OnChange: func(full string) {
			updated, applyErr = types.WithSection(doc, section, full)
		},
	}
	if err := editor.SetValue(line, value); err != nil {
		var editErr *EditError
		if errors.As(err, &editErr) {
			editErr.Section = section
		}
		return nil, err
	}
	if applyErr != nil {
		return nil, applyErr
	}

	if onEdit != nil {
		onEdit(updated)
	}
	return updated, nil
}

func (c *Composer) isAligned(dt types.DocumentType, section string) bool {
	for _, spec := range layouts[dt] {
		if spec.Name == section {
			return spec.Kind == KindAligned && !spec.List
		}
	}
	return false
}
