package pdf

import (
	"bytes"
	"context"
	"time"

	"github.com/jonathan/legaldoc/internal/cache"
	"github.com/jonathan/legaldoc/internal/emit"
	"github.com/jonathan/legaldoc/internal/logging"
	"github.com/jonathan/legaldoc/internal/observability"
	"github.com/jonathan/legaldoc/internal/rendering"
	"go.uber.org/zap"
)

// HTMLPrinter turns print-target HTML into PDF bytes.
type HTMLPrinter interface {
	PrintHTML(ctx context.Context, markup string, setup emit.PageSetup) ([]byte, error)
}

// Export is one exported document.
type Export struct {
	PDF    []byte
	Pages  int
	Cached bool
}

// Exporter renders the print target, prints it and caches the result.
type Exporter struct {
	printer HTMLPrinter
	cache   cache.PDFCache
	logger  *zap.Logger
}

// NewExporter creates an Exporter. A nil pdfCache disables caching.
func NewExporter(printer HTMLPrinter, pdfCache cache.PDFCache, logger *zap.Logger) *Exporter {
	return &Exporter{printer: printer, cache: pdfCache, logger: logging.OrNop(logger)}
}

// Export produces the PDF of r. Cache failures are logged and never fail the export.
func (e *Exporter) Export(ctx context.Context, r *rendering.Rendered, setup emit.PageSetup, includeAnalysis bool) (*Export, error) {
	started := time.Now()

	var markup bytes.Buffer
	if err := emit.Print(&markup, r, setup, includeAnalysis); err != nil {
		return nil, &Error{Message: "failed to render print HTML", Cause: err}
	}
	key := cache.Key(markup.String())

	if data, ok := e.lookup(ctx, key); ok {
		pages, err := CountPages(data)
		if err == nil {
			return &Export{PDF: data, Pages: pages, Cached: true}, nil
		}
		e.logger.Warn("discarding unreadable cached PDF", zap.String("key", key), zap.Error(err))
	}

	data, err := e.printer.PrintHTML(ctx, markup.String(), setup)
	if err != nil {
		return nil, err
	}
	pages, err := CountPages(data)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, data); err != nil {
			e.logger.Warn("failed to cache PDF", zap.String("key", key), zap.Error(err))
		}
	}

	observability.ObserveRender(string(r.DocumentType), "pdf", started)
	e.logger.Info("exported PDF",
		zap.String("document_type", string(r.DocumentType)),
		zap.Int("pages", pages),
		zap.Int("bytes", len(data)),
	)
	return &Export{PDF: data, Pages: pages}, nil
}

func (e *Exporter) lookup(ctx context.Context, key string) ([]byte, bool) {
	if e.cache == nil {
		return nil, false
	}
	data, ok, err := e.cache.Get(ctx, key)
	switch {
	case err != nil:
		observability.PDFCacheTotal.WithLabelValues(observability.CacheError).Inc()
		e.logger.Warn("PDF cache lookup failed", zap.String("key", key), zap.Error(err))
		return nil, false
	case !ok:
		observability.PDFCacheTotal.WithLabelValues(observability.CacheMiss).Inc()
		return nil, false
	}
	observability.PDFCacheTotal.WithLabelValues(observability.CacheHit).Inc()
	return data, true
}
