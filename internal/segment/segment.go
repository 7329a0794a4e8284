// Package segment splits raw section text into the structural units the
// renderers consume: paragraphs, lines, label/value pairs and bold runs.
package segment

import (
	"iter"
	"regexp"
	"strings"
)

const (
	paragraphSeparator = "\n\n"
	lineSeparator      = "\n"
)

// BoldRun is a contiguous piece of text rendered either bold or plain.
type BoldRun struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Matcher holds the compiled trigger patterns for one set of bold phrases.
// It is immutable and safe for concurrent use.
type Matcher struct {
	split *regexp.Regexp // nil when there are no triggers
	exact *regexp.Regexp
}

// NewMatcher compiles triggers into a single alternation. Each phrase is
// escaped so it matches literally. Blank phrases are ignored.
func NewMatcher(triggers []string) *Matcher {
	quoted := make([]string, 0, len(triggers))
	for _, phrase := range triggers {
		if phrase == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(phrase))
	}
	if len(quoted) == 0 {
		return &Matcher{}
	}

	alternation := strings.Join(quoted, "|")
	return &Matcher{
		split: regexp.MustCompile("(" + alternation + ")"),
		exact: regexp.MustCompile("^(?:" + alternation + ")$"),
	}
}

// Runs yields the bold/plain runs of text in their original order.
// Concatenating the yielded Text fields reproduces text exactly.
func (m *Matcher) Runs(text string) iter.Seq[BoldRun] {
	return func(yield func(BoldRun) bool) {
		if m.split == nil {
			if text != "" {
				yield(BoldRun{Text: text})
			}
			return
		}

		last := 0
		for _, loc := range m.split.FindAllStringIndex(text, -1) {
			if loc[0] > last {
				if !yield(m.classify(text[last:loc[0]])) {
					return
				}
			}
			if loc[1] > loc[0] {
				if !yield(m.classify(text[loc[0]:loc[1]])) {
					return
				}
			}
			last = loc[1]
		}
		if last < len(text) {
			yield(m.classify(text[last:]))
		}
	}
}

func (m *Matcher) classify(piece string) BoldRun {
	return BoldRun{Text: piece, Bold: m.exact.MatchString(piece)}
}

// IsTrigger reports whether s is exactly one of the trigger phrases.
func (m *Matcher) IsTrigger(s string) bool {
	return m.exact != nil && m.exact.MatchString(s)
}

// Runs is a convenience wrapper that compiles triggers on every call.
// Callers rendering many lines should build a Matcher once.
func Runs(text string, triggers []string) iter.Seq[BoldRun] {
	return NewMatcher(triggers).Runs(text)
}

// CollectRuns materializes the runs of a single line.
func (m *Matcher) CollectRuns(line string) []BoldRun {
	runs := []BoldRun{}
	for run := range m.Runs(line) {
		runs = append(runs, run)
	}
	return runs
}

// JoinRuns concatenates run texts, dropping style.
func JoinRuns(runs []BoldRun) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Paragraphs splits text on blank-line boundaries. Empty text yields one
// empty paragraph.
func Paragraphs(text string) []string {
	return strings.Split(text, paragraphSeparator)
}

// Lines splits a paragraph on single newlines, keeping empty lines as
// explicit breaks.
func Lines(paragraph string) []string {
	return strings.Split(paragraph, lineSeparator)
}
