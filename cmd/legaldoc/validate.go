package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/legaldoc/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <envelope.json>...",
	Short: "Validate document envelopes against the envelope schema",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		err := schemas.ValidateEnvelopeFile(path)
		if err == nil {
			_, _ = fmt.Fprintf(out, "✅ %s\n", path)
			continue
		}
		failed++

		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(out, "❌ %s\n", path)
			for _, fe := range validationErr.Errors {
				_, _ = fmt.Fprintf(out, "   - %s: %s\n", fe.Field, fe.Message)
			}
			continue
		}
		_, _ = fmt.Fprintf(out, "❌ %s: %v\n", path, err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
