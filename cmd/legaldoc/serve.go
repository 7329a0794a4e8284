package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/legaldoc/internal/config"
	"github.com/jonathan/legaldoc/internal/db"
	"github.com/jonathan/legaldoc/internal/pdf"
	"github.com/jonathan/legaldoc/internal/server"
	"github.com/jonathan/legaldoc/internal/server/ratelimit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveAddress string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Start an HTTP server that renders documents and accepts corrections. " +
		"Corrections are stored when database.url is set; PDF exports are cached when redis.address is set.",
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "addr", "", "Listen address (overrides server.address)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serveAddress != "" {
		cfg.Server.Address = serveAddress
	}

	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := server.Deps{
		Config:  cfg,
		JWT:     jwtCfg,
		Limiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		Logger:  logger,
	}

	if cfg.Database.URL != "" {
		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer database.Close()
		if cfg.Database.EnsureSchema {
			if err := database.EnsureSchema(ctx); err != nil {
				return err
			}
		}
		deps.Store = database
	} else {
		logger.Warn("database.url not set, corrections will not be stored")
	}

	pdfCache, closeCache := openCache(ctx)
	defer closeCache()
	printer := pdf.NewPrinter(
		pdf.WithTimeout(cfg.PDF.Timeout),
		pdf.WithExecPath(cfg.PDF.ChromePath),
		pdf.WithLogger(logger),
	)
	deps.Exporter = pdf.NewExporter(printer, pdfCache, logger)

	srv, err := server.New(deps)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("legaldoc server configured",
		zap.String("addr", cfg.Server.Address),
		zap.Bool("persistence", deps.Store != nil),
		zap.Bool("pdf_cache", pdfCache != nil),
	)
	return srv.Start(ctx)
}
