package emit

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/legaldoc/internal/rendering"
	"golang.org/x/net/html"
)

const (
	lineBreak  = "\n"
	unitBreak  = "\n\n"
	blockBreak = "\n\n"
)

// PlainText projects a render tree onto its canonical text: one line per
// rendered line, a blank line between paragraphs, requests and blocks.
// Analysis notes are not part of the document text.
func PlainText(r *rendering.Rendered) string {
	if r == nil {
		return ""
	}
	blocks := make([]string, 0, len(r.Blocks))
	for _, block := range r.Blocks {
		units := blockUnits(block)
		joined := make([]string, len(units))
		for i, unit := range units {
			joined[i] = strings.Join(unit, lineBreak)
		}
		blocks = append(blocks, strings.Join(joined, unitBreak))
	}
	return strings.Join(blocks, blockBreak)
}

// blockUnits lists the text lines of a block grouped into units (paragraphs
// or requests). Every target emits exactly these lines.
func blockUnits(block rendering.Block) [][]string {
	switch block.Kind {
	case rendering.KindAligned:
		lines := make([]string, len(block.Rows))
		for i, row := range block.Rows {
			lines[i] = row.String()
		}
		return [][]string{lines}
	case rendering.KindCentered, rendering.KindSummaryList:
		return [][]string{{block.Text}}
	case rendering.KindParagraph:
		units := make([][]string, len(block.Paragraphs))
		for i, p := range block.Paragraphs {
			units[i] = lineTexts(p.Lines)
		}
		return units
	case rendering.KindRequestList:
		units := make([][]string, len(block.Requests))
		for i, req := range block.Requests {
			units[i] = append([]string{req.Heading()}, lineTexts(req.Lines)...)
		}
		return units
	}
	return nil
}

func lineTexts(lines []rendering.Line) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.Text()
	}
	return out
}

// ExtractText reads the canonical text back out of screen or print HTML.
// Input fields contribute their value attribute.
func ExtractText(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var blocks []string
	doc.Find(".block").Each(func(_ int, block *goquery.Selection) {
		var units []string
		block.Find(".unit").Each(func(_ int, unit *goquery.Selection) {
			var lines []string
			unit.Find(".line").Each(func(_ int, line *goquery.Selection) {
				lines = append(lines, nodeText(line))
			})
			units = append(units, strings.Join(lines, lineBreak))
		})
		blocks = append(blocks, strings.Join(units, unitBreak))
	})
	return strings.Join(blocks, blockBreak), nil
}

func nodeText(s *goquery.Selection) string {
	var sb strings.Builder
	s.Contents().Each(func(_ int, child *goquery.Selection) {
		node := child.Get(0)
		switch {
		case node.Type == html.TextNode:
			sb.WriteString(node.Data)
		case node.Type == html.ElementNode && node.Data == "input":
			sb.WriteString(child.AttrOr("value", ""))
		case node.Type == html.ElementNode:
			sb.WriteString(nodeText(child))
		}
	})
	return sb.String()
}
