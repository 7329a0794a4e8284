package emit

import (
	"bytes"
	"strings"

	"github.com/jonathan/legaldoc/internal/rendering"
)

// VerifyParity emits both HTML targets for r and checks that they carry the
// same document text. Analysis notes are excluded from the comparison.
func VerifyParity(r *rendering.Rendered, page PageSetup) error {
	var screen, printed bytes.Buffer
	if err := Screen(&screen, r); err != nil {
		return err
	}
	if err := Print(&printed, r, page, false); err != nil {
		return err
	}

	screenText, err := ExtractText(screen.String())
	if err != nil {
		return err
	}
	printText, err := ExtractText(printed.String())
	if err != nil {
		return err
	}
	return compareText(screenText, printText)
}

func compareText(screen, printed string) error {
	if screen == printed {
		return nil
	}
	a := strings.Split(screen, lineBreak)
	b := strings.Split(printed, lineBreak)
	for i := range max(len(a), len(b)) {
		var left, right string
		if i < len(a) {
			left = a[i]
		}
		if i < len(b) {
			right = b[i]
		}
		if left != right || i >= len(a) || i >= len(b) {
			return &ParityError{Line: i + 1, Screen: left, Print: right}
		}
	}
	return &ParityError{Line: 1, Screen: screen, Print: printed}
}
