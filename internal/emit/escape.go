package emit

import (
	"strings"

	"github.com/jonathan/legaldoc/internal/segment"
)

// latexReplacer escapes in a single pass, so replacements are never re-escaped.
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX escapes special LaTeX characters in text
// Special characters: \ { } $ & % # ^ _ ~
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	return latexReplacer.Replace(text)
}

// latexRuns writes bold runs as escaped LaTeX, wrapping bold runs in \textbf.
func latexRuns(runs []segment.BoldRun) string {
	var sb strings.Builder
	for _, run := range runs {
		if run.Bold {
			sb.WriteString(`\textbf{`)
			sb.WriteString(EscapeLaTeX(run.Text))
			sb.WriteString(`}`)
			continue
		}
		sb.WriteString(EscapeLaTeX(run.Text))
	}
	return sb.String()
}
