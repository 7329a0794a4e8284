package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache results recorded by PDFCacheTotal.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	DocumentsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "legaldoc_documents_rendered_total",
			Help: "Total number of documents rendered per document type and target",
		},
		[]string{"document_type", "target"},
	)

	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "legaldoc_render_duration_seconds",
			Help:    "Duration of document rendering in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"target"},
	)

	CorrectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "legaldoc_corrections_total",
			Help: "Total number of corrections applied per document type",
		},
		[]string{"document_type"},
	)

	PDFCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "legaldoc_pdf_cache_total",
			Help: "PDF cache lookups by result",
		},
		[]string{"result"},
	)
)

// ObserveRender records one finished render.
func ObserveRender(documentType, target string, started time.Time) {
	DocumentsRendered.WithLabelValues(documentType, target).Inc()
	RenderDuration.WithLabelValues(target).Observe(time.Since(started).Seconds())
}
