package pdf

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/legaldoc/internal/emit"
	"github.com/jonathan/legaldoc/internal/logging"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single print job.
const DefaultTimeout = 30 * time.Second

// Printer prints HTML to PDF in headless Chrome.
// Requires Chrome/Chromium to be installed on the system.
type Printer struct {
	timeout  time.Duration
	execPath string
	logger   *zap.Logger
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) PrinterOption {
	return func(p *Printer) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithExecPath points the printer at a specific Chrome binary.
func WithExecPath(path string) PrinterOption {
	return func(p *Printer) {
		p.execPath = path
	}
}

// WithLogger sets the printer's logger.
func WithLogger(l *zap.Logger) PrinterOption {
	return func(p *Printer) {
		p.logger = logging.OrNop(l)
	}
}

// NewPrinter creates a Printer.
func NewPrinter(opts ...PrinterOption) *Printer {
	p := &Printer{timeout: DefaultTimeout, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PrintHTML loads markup into a blank tab and prints it at the page setup's
// paper size and margins. CSS @page rules take precedence when present.
func (p *Printer) PrintHTML(ctx context.Context, markup string, setup emit.PageSetup) ([]byte, error) {
	if err := setup.Validate(); err != nil {
		return nil, &Error{Message: "invalid page setup", Cause: err}
	}

	started := time.Now()
	p.logger.Debug("starting headless browser", zap.Int("html_bytes", len(markup)))

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(p.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, p.timeout)
	defer cancel()

	var out []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, markup).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPaperWidth(setup.WidthIn).
				WithPaperHeight(setup.HeightIn).
				WithMarginTop(setup.MarginIn).
				WithMarginBottom(setup.MarginIn).
				WithMarginLeft(setup.MarginIn).
				WithMarginRight(setup.MarginIn).
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			out = data
			return nil
		}),
	)
	if err != nil {
		return nil, &Error{Message: "browser printing failed", Cause: err}
	}

	p.logger.Debug("printed PDF",
		zap.Int("pdf_bytes", len(out)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return out, nil
}
