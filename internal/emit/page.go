package emit

import (
	"fmt"
	"strconv"
	"strings"
)

// PaperSize names a supported fixed page size.
type PaperSize string

const (
	PaperLetter PaperSize = "letter"
	PaperLegal  PaperSize = "legal"
)

// PageSetup describes the fixed page used by the print target.
type PageSetup struct {
	Size       PaperSize `json:"size" mapstructure:"size"`
	WidthIn    float64   `json:"width_in" mapstructure:"width_in"`
	HeightIn   float64   `json:"height_in" mapstructure:"height_in"`
	MarginIn   float64   `json:"margin_in" mapstructure:"margin_in"`
	FontFamily string    `json:"font_family" mapstructure:"font_family"`
	FontSizePt float64   `json:"font_size_pt" mapstructure:"font_size_pt"`
}

// DefaultPageSetup returns US letter with one inch margins in 12pt Times New Roman.
func DefaultPageSetup() PageSetup {
	return PageSetup{
		Size:       PaperLetter,
		WidthIn:    8.5,
		HeightIn:   11,
		MarginIn:   1,
		FontFamily: "Times New Roman",
		FontSizePt: 12,
	}
}

// PageSetupFor returns the default setup resized to the named paper.
func PageSetupFor(size string) (PageSetup, error) {
	page := DefaultPageSetup()
	switch PaperSize(strings.ToLower(strings.TrimSpace(size))) {
	case PaperLetter, "":
	case PaperLegal:
		page.Size = PaperLegal
		page.HeightIn = 14
	default:
		return PageSetup{}, fmt.Errorf("unknown paper size %q (expected letter or legal)", size)
	}
	return page, nil
}

// Validate checks that the page leaves room for content.
func (p PageSetup) Validate() error {
	if p.WidthIn <= 0 || p.HeightIn <= 0 {
		return fmt.Errorf("page size must be positive, got %gx%g", p.WidthIn, p.HeightIn)
	}
	if p.MarginIn < 0 || 2*p.MarginIn >= p.WidthIn || 2*p.MarginIn >= p.HeightIn {
		return fmt.Errorf("margin %gin does not fit a %gx%g page", p.MarginIn, p.WidthIn, p.HeightIn)
	}
	if strings.TrimSpace(p.FontFamily) == "" {
		return fmt.Errorf("font family is required")
	}
	if p.FontSizePt <= 0 {
		return fmt.Errorf("font size must be positive, got %g", p.FontSizePt)
	}
	return nil
}

func inches(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "in"
}
