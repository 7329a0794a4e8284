package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/legaldoc/internal/db"
	"github.com/jonathan/legaldoc/internal/observability"
	"github.com/jonathan/legaldoc/internal/rendering"
	"github.com/jonathan/legaldoc/internal/schemas"
	"github.com/jonathan/legaldoc/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var correctCmd = &cobra.Command{
	Use:   "correct <envelope.json>",
	Short: "Apply one aligned-section correction to a document envelope",
	Long: "Replaces the value of one line of an aligned section (header, court, parties) and writes the full updated envelope. " +
		"With --save the correction is also stored in the database.",
	Args: cobra.ExactArgs(1),
	RunE: runCorrect,
}

var (
	correctSection string
	correctLine    int
	correctValue   string
	correctOut     string
	correctSave    bool
	correctUserID  string
)

func init() {
	correctCmd.Flags().StringVar(&correctSection, "section", "", "Aligned section to edit (required)")
	correctCmd.Flags().IntVar(&correctLine, "line", 0, "Zero-based line index within the section")
	correctCmd.Flags().StringVar(&correctValue, "value", "", "Replacement value")
	correctCmd.Flags().StringVarP(&correctOut, "out", "o", "", "Output path for the updated envelope (stdout when empty)")
	correctCmd.Flags().BoolVar(&correctSave, "save", false, "Store the correction in the configured database")
	correctCmd.Flags().StringVar(&correctUserID, "user-id", "", "Author UUID recorded with a saved correction")

	_ = correctCmd.MarkFlagRequired("section")

	rootCmd.AddCommand(correctCmd)
}

func runCorrect(cmd *cobra.Command, args []string) error {
	var author uuid.UUID
	if correctUserID != "" {
		id, err := uuid.Parse(correctUserID)
		if err != nil {
			return fmt.Errorf("invalid --user-id: %w", err)
		}
		author = id
	}
	if correctSave && cfg.Database.URL == "" {
		return fmt.Errorf("--save requires database.url (or LEGALDOC_DATABASE_URL)")
	}

	raw, err := os.ReadFile(args[0])
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

	req := types.CorrectionRequest{Document: env, Section: correctSection, Line: correctLine, Value: correctValue}
	if err := req.Validate(); err != nil {
		return err
	}

	doc, analysis, err := env.Decode()
	if err != nil {
		return err
	}
	composer, err := rendering.NewComposer(cfg.RenderOptions())
	if err != nil {
		return err
	}
	updated, err := composer.Edit(doc, req.Section, req.Line, req.Value, func(types.Document) {
		observability.CorrectionsTotal.WithLabelValues(string(env.DocumentType)).Inc()
	})
	if err != nil {
		return err
	}
	result, err := types.NewEnvelope(updated, analysis)
	if err != nil {
		return err
	}

	if correctSave {
		database, err := db.Connect(cmd.Context(), cfg.Database.URL)
		if err != nil {
			return err
		}
		defer database.Close()
		if cfg.Database.EnsureSchema {
			if err := database.EnsureSchema(cmd.Context()); err != nil {
				return err
			}
		}

		correction := &types.Correction{
			DocumentType: result.DocumentType,
			Section:      req.Section,
			Line:         req.Line,
			Value:        req.Value,
			Document:     *result,
			CreatedBy:    author,
			CreatedAt:    time.Now().UTC(),
		}
		if err := database.SaveCorrection(cmd.Context(), correction); err != nil {
			return fmt.Errorf("failed to save correction: %w", err)
		}
		logger.Info("correction saved", zap.String("id", correction.ID.String()))
		if verbose {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Saved correction %s\n", correction.ID)
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}
	data = append(data, '\n')

	if correctOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(correctOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", correctOut, err)
	}
	logger.Info("wrote corrected envelope",
		zap.String("section", req.Section),
		zap.Int("line", req.Line),
		zap.String("out", correctOut),
	)
	return nil
}
