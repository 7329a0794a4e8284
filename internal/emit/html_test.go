package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/legaldoc/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestScreen_EditableInputs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Screen(&buf, composeSample(t, true)))

	doc := parseHTML(t, buf.String())
	inputs := doc.Find("input.value")
	require.Equal(t, 2, inputs.Length())
	assert.Equal(t, "header.0", inputs.First().AttrOr("name", ""))
	assert.Equal(t, "123", inputs.First().AttrOr("value", ""))
	assert.Contains(t, buf.String(), ":hover")
	assert.Equal(t, 1, doc.Find("main.editable").Length())
}

func TestScreen_ReadOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Screen(&buf, composeSample(t, false)))

	doc := parseHTML(t, buf.String())
	assert.Equal(t, 0, doc.Find("input").Length())
	assert.Equal(t, "123", doc.Find(".aligned span.value").First().Text())
}

func TestScreen_AnnotationsAndOverall(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Screen(&buf, composeSample(t, false)))

	doc := parseHTML(t, buf.String())
	header := doc.Find(`section[data-section="header"]`)
	assert.True(t, header.HasClass("tone-green"))
	assert.Equal(t, "Encabezado completo", header.Find("aside.note").Text())

	args := doc.Find(`section[data-section="missing_payment_arguments"]`)
	require.Equal(t, 2, args.Length())
	assert.True(t, args.First().HasClass("tone-red"))
	assert.Equal(t, "0", args.First().AttrOr("data-index", ""))
	assert.Equal(t, 0, args.Last().Find("aside.note").Length())

	overall := doc.Find("aside.overall")
	assert.True(t, overall.HasClass("tone-yellow"))
	assert.Equal(t, "Revisión general", overall.Text())
}

func TestScreen_BoldRuns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Screen(&buf, composeSample(t, false)))

	doc := parseHTML(t, buf.String())
	opening := doc.Find(`section[data-section="opening"]`)
	assert.Equal(t, "SOLICITO A US.", opening.Find("strong").First().Text())
	assert.Equal(t, 2, opening.Find(".unit").Length())
	assert.Contains(t, buf.String(), "&lt;marcas&gt;")
}

func TestPrint_StaticPage(t *testing.T) {
	page, err := PageSetupFor("legal")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, composeSample(t, true), page, false))

	out := buf.String()
	doc := parseHTML(t, out)
	assert.Equal(t, 0, doc.Find("input").Length())
	assert.NotContains(t, out, ":hover")
	assert.Contains(t, out, "size: 8.5in 14in")
	assert.Contains(t, out, "margin: 1in")
	assert.Contains(t, out, `font-family: "Times New Roman", serif`)
	assert.Equal(t, 0, doc.Find("aside").Length())
	assert.Equal(t, 0, doc.Find("section.tone-green, section.tone-yellow, section.tone-red").Length())
	assert.Equal(t, "legal", doc.Find("main").AttrOr("data-paper", ""))
}

func TestPrint_WithAnalysis(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, composeSample(t, false), DefaultPageSetup(), true))

	doc := parseHTML(t, buf.String())
	assert.Equal(t, 3, doc.Find("aside.note").Length())
	assert.Equal(t, 1, doc.Find("aside.overall").Length())
	assert.Positive(t, doc.Find("section.tone-green, section.tone-yellow, section.tone-red").Length())
}

func TestPrint_InvalidPage(t *testing.T) {
	page := DefaultPageSetup()
	page.MarginIn = 5

	err := Print(&bytes.Buffer{}, composeSample(t, false), page, false)
	var tmplErr *TemplateError
	assert.ErrorAs(t, err, &tmplErr)
}

func TestTargets_NilTree(t *testing.T) {
	assert.Error(t, Screen(&bytes.Buffer{}, nil))
	assert.Error(t, Print(&bytes.Buffer{}, nil, DefaultPageSetup(), false))
	assert.Error(t, LaTeX(&bytes.Buffer{}, nil, DefaultPageSetup()))
}

func TestPageCSS_StripsUnsafeFontCharacters(t *testing.T) {
	page := DefaultPageSetup()
	page.FontFamily = `Times"; } body { color: red`

	css := string(pageCSS(page))
	assert.NotContains(t, css, "color: red;")
	assert.Contains(t, css, `font-family: "Times  body  color: red", serif`)
}

func TestScreen_EmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Screen(&buf, &rendering.Rendered{DocumentType: "withdrawal"}))
	assert.Equal(t, 0, parseHTML(t, buf.String()).Find(".block").Length())
}
