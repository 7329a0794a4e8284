package rendering

import (
	"fmt"
	"strings"
)

// SectionKind selects the renderer used for a section.
type SectionKind string

const (
	KindAligned     SectionKind = "aligned"
	KindCentered    SectionKind = "centered"
	KindSummaryList SectionKind = "summary_list"
	KindParagraph   SectionKind = "paragraph"
	KindRequestList SectionKind = "request_list"
)

// SectionKinds returns every section kind.
func SectionKinds() []SectionKind {
	return []SectionKind{KindAligned, KindCentered, KindSummaryList, KindParagraph, KindRequestList}
}

// Options carries the locale-specific tables the renderers need.
type Options struct {
	// DefaultBoldTriggers apply to every kind without an override.
	DefaultBoldTriggers []string
	// BoldTriggers overrides the default set per section kind.
	BoldTriggers map[SectionKind][]string
	// OrdinalTable names additional requests by position.
	OrdinalTable []string
	// OrdinalSuffix follows the ordinal, e.g. "PRIMER OTROSÍ".
	OrdinalSuffix string
}

// DefaultOptions returns the Chilean civil-procedure defaults.
func DefaultOptions() Options {
	return Options{
		DefaultBoldTriggers: []string{
			"POR LO TANTO",
			"POR TANTO",
			"RUEGO A US.",
			"SOLICITO A US.",
			"EN LO PRINCIPAL",
		},
		OrdinalTable: []string{
			"PRIMER", "SEGUNDO", "TERCER", "CUARTO", "QUINTO",
			"SEXTO", "SÉPTIMO", "OCTAVO", "NOVENO", "DÉCIMO",
		},
		OrdinalSuffix: "OTROSÍ",
	}
}

// Validate checks that the options can drive the renderers.
func (o Options) Validate() error {
	if len(o.OrdinalTable) == 0 {
		return fmt.Errorf("options error: ordinal table is empty")
	}
	for i, ordinal := range o.OrdinalTable {
		if strings.TrimSpace(ordinal) == "" {
			return fmt.Errorf("options error: ordinal %d is blank", i)
		}
	}
	for i, phrase := range o.DefaultBoldTriggers {
		if strings.TrimSpace(phrase) == "" {
			return fmt.Errorf("options error: default bold trigger %d is blank", i)
		}
	}
	for kind, phrases := range o.BoldTriggers {
		for i, phrase := range phrases {
			if strings.TrimSpace(phrase) == "" {
				return fmt.Errorf("options error: bold trigger %d for %s is blank", i, kind)
			}
		}
	}
	return nil
}

// TriggersFor returns the bold phrases for kind.
func (o Options) TriggersFor(kind SectionKind) []string {
	if phrases, ok := o.BoldTriggers[kind]; ok {
		return phrases
	}
	return o.DefaultBoldTriggers
}

// Ordinal returns the prefix for the request at zero-based index i.
// Indexes past the end of the table reuse its last entry.
func (o Options) Ordinal(i int) string {
	if len(o.OrdinalTable) == 0 {
		return ""
	}
	i = max(0, min(i, len(o.OrdinalTable)-1))
	if o.OrdinalSuffix == "" {
		return o.OrdinalTable[i] + ":"
	}
	return o.OrdinalTable[i] + " " + o.OrdinalSuffix + ":"
}
