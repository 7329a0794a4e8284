package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/legaldoc/internal/cache"
	"github.com/jonathan/legaldoc/internal/emit"
	"github.com/jonathan/legaldoc/internal/observability"
	"github.com/jonathan/legaldoc/internal/pdf"
	"github.com/jonathan/legaldoc/internal/rendering"
	"github.com/jonathan/legaldoc/internal/schemas"
	"github.com/jonathan/legaldoc/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Render targets and the file extension each one writes.
var targetExtensions = map[string]string{
	"tree":   ".tree.json",
	"screen": ".html",
	"print":  ".print.html",
	"latex":  ".tex",
	"pdf":    ".pdf",
	"text":   ".txt",
}

var renderCmd = &cobra.Command{
	Use:   "render <envelope.json>...",
	Short: "Render document envelopes",
	Long: "Renders one or more document envelope files to the selected target. " +
		"Several inputs are rendered concurrently and require --out-dir; a single input without --out-dir is written to stdout.",
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

var (
	renderTarget       string
	renderOutDir       string
	renderSize         string
	renderEditable     bool
	renderWithAnalysis bool
	renderVerify       bool
	renderJobs         int
)

func init() {
	renderCmd.Flags().StringVarP(&renderTarget, "target", "t", "screen", "Render target: tree, screen, print, latex, pdf or text")
	renderCmd.Flags().StringVarP(&renderOutDir, "out-dir", "o", "", "Directory for rendered files (stdout when empty and one input)")
	renderCmd.Flags().StringVar(&renderSize, "size", "", "Paper size for print targets: letter or legal (default from config)")
	renderCmd.Flags().BoolVar(&renderEditable, "editable", false, "Render aligned sections as editable inputs (screen and tree)")
	renderCmd.Flags().BoolVar(&renderWithAnalysis, "with-analysis", false, "Include analysis notes in print and PDF output")
	renderCmd.Flags().BoolVar(&renderVerify, "verify", false, "Check that screen and print targets carry the same text")
	renderCmd.Flags().IntVarP(&renderJobs, "jobs", "j", 4, "Maximum number of documents rendered at once")

	rootCmd.AddCommand(renderCmd)
}

// renderJob carries everything one input needs.
type renderJob struct {
	composer *rendering.Composer
	exporter *pdf.Exporter
	page     emit.PageSetup
	printer  *observability.Printer
	mu       *sync.Mutex
}

func runRender(cmd *cobra.Command, args []string) error {
	if _, ok := targetExtensions[renderTarget]; !ok {
		return fmt.Errorf("unknown target %q (expected tree, screen, print, latex, pdf or text)", renderTarget)
	}
	if len(args) > 1 && renderOutDir == "" {
		return fmt.Errorf("--out-dir is required when rendering more than one file")
	}
	if renderJobs < 1 {
		return fmt.Errorf("--jobs must be at least 1")
	}

	page, err := cfg.PageFor(renderSize)
	if err != nil {
		return err
	}
	composer, err := rendering.NewComposer(cfg.RenderOptions())
	if err != nil {
		return err
	}

	job := &renderJob{
		composer: composer,
		page:     page,
		printer:  observability.NewPrinter(cmd.ErrOrStderr()),
		mu:       &sync.Mutex{},
	}
	if renderTarget == "pdf" {
		pdfCache, closeCache := openCache(cmd.Context())
		defer closeCache()
		printer := pdf.NewPrinter(
			pdf.WithTimeout(cfg.PDF.Timeout),
			pdf.WithExecPath(cfg.PDF.ChromePath),
			pdf.WithLogger(logger),
		)
		job.exporter = pdf.NewExporter(printer, pdfCache, logger)
	}

	if renderOutDir != "" {
		if err := os.MkdirAll(renderOutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(renderJobs)
	for _, input := range args {
		g.Go(func() error {
			if err := job.renderFile(ctx, input, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// openCache connects to the configured Redis cache. A missing or unreachable
// cache disables caching rather than failing the render.
func openCache(ctx context.Context) (cache.PDFCache, func()) {
	if cfg.Redis.Address == "" {
		return nil, func() {}
	}
	redisCache := cache.NewRedis(cfg.CacheOptions())
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("PDF cache unavailable, continuing without it", zap.Error(err))
		_ = redisCache.Close()
		return nil, func() {}
	}
	return redisCache, func() { _ = redisCache.Close() }
}

func (j *renderJob) renderFile(ctx context.Context, input string, stdout io.Writer) error {
	started := time.Now()

	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read envelope: %w", err)
	}
	if err := schemas.ValidateEnvelope(raw); err != nil {
		return err
	}
	var env types.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to parse envelope: %w", err)
	}

	rendered, err := j.composer.ComposeEnvelope(env, rendering.WithEditable(renderEditable))
	if err != nil {
		return err
	}

	if renderVerify {
		if err := emit.VerifyParity(rendered, j.page); err != nil {
			return err
		}
	}

	var out bytes.Buffer
	var export *pdf.Export
	switch renderTarget {
	case "tree":
		enc := json.NewEncoder(&out)
		enc.SetIndent("", "  ")
		err = enc.Encode(rendered)
	case "screen":
		err = emit.Screen(&out, rendered)
	case "print":
		err = emit.Print(&out, rendered, j.page, renderWithAnalysis)
	case "latex":
		err = emit.LaTeX(&out, rendered, j.page)
	case "text":
		_, err = out.WriteString(emit.PlainText(rendered) + "\n")
	case "pdf":
		export, err = j.exporter.Export(ctx, rendered, j.page, renderWithAnalysis)
		if err == nil {
			out.Write(export.PDF)
		}
	}
	if err != nil {
		return err
	}
	if renderTarget != "pdf" {
		observability.ObserveRender(string(rendered.DocumentType), renderTarget, started)
	}

	path, err := j.write(input, out.Bytes(), stdout)
	if err != nil {
		return err
	}

	logger.Info("rendered document",
		zap.String("input", input),
		zap.String("document_type", string(rendered.DocumentType)),
		zap.String("target", renderTarget),
		zap.Duration("elapsed", time.Since(started)),
	)

	if verbose {
		j.mu.Lock()
		defer j.mu.Unlock()
		j.printer.PrintDocumentSummary(rendered)
		j.printer.PrintAnalysisSummary(rendered)
		if export != nil {
			j.printer.PrintExport(path, export.Pages, len(export.PDF), export.Cached)
		}
	}
	return nil
}

// write stores data next to the other outputs, or on stdout when no output
// directory was given. It returns the path written, or "-" for stdout.
func (j *renderJob) write(input string, data []byte, stdout io.Writer) (string, error) {
	if renderOutDir == "" {
		j.mu.Lock()
		defer j.mu.Unlock()
		if _, err := stdout.Write(data); err != nil {
			return "", fmt.Errorf("failed to write output: %w", err)
		}
		return "-", nil
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	path := filepath.Join(renderOutDir, base+targetExtensions[renderTarget])
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
