package rendering

import (
	"html"
	"strings"

	"github.com/jonathan/legaldoc/internal/types"
	"github.com/microcosm-cc/bluemonday"
)

// Tone is the background colour family of an annotated section.
type Tone string

const (
	ToneGreen  Tone = "green"
	ToneYellow Tone = "yellow"
	ToneRed    Tone = "red"
)

// Decoration is the status container and optional note wrapped around a block.
// Message is nil when there is nothing to show in the note.
type Decoration struct {
	Status  types.AnalysisStatus `json:"status"`
	Tone    Tone                 `json:"tone"`
	Message *string              `json:"message,omitempty"`
}

// messagePolicy strips any markup the review service puts in its messages.
var messagePolicy = bluemonday.StrictPolicy()

// Annotate picks the decoration for a status. "good" surfaces feedback,
// "warning" and "error" surface suggestions, and a nil or unknown status
// produces no decoration at all.
func Annotate(status *types.AnalysisStatus, feedback, suggestions *string) *Decoration {
	if status == nil {
		return nil
	}

	var tone Tone
	var message *string
	switch *status {
	case types.StatusGood:
		tone, message = ToneGreen, feedback
	case types.StatusWarning:
		tone, message = ToneYellow, suggestions
	case types.StatusError:
		tone, message = ToneRed, suggestions
	default:
		return nil
	}

	return &Decoration{
		Status:  *status,
		Tone:    tone,
		Message: cleanMessage(message),
	}
}

// AnnotateAnalysis is Annotate applied to an Analysis, which may be nil.
func AnnotateAnalysis(a *types.Analysis) *Decoration {
	if a == nil {
		return nil
	}
	return Annotate(a.Status, a.Feedback, a.ImprovementSuggestions)
}

// cleanMessage strips markup from a message. Ampersands are escaped first so
// entity-like text ("&lt;") survives the sanitizer's decode/encode round trip.
func cleanMessage(message *string) *string {
	if message == nil {
		return nil
	}
	escaped := strings.ReplaceAll(*message, "&", "&amp;")
	cleaned := strings.TrimSpace(html.UnescapeString(messagePolicy.Sanitize(escaped)))
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
