package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/legaldoc/internal/config"
	"github.com/jonathan/legaldoc/internal/server"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a session token for the HTTP API",
	Long: "Signs a session token with JWT_SECRET. The external login backend normally issues these; " +
		"this command exists for operators and local testing.",
	Args: cobra.NoArgs,
	RunE: runToken,
}

var (
	tokenUserID string
	tokenGroups string
)

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "User UUID (random when empty)")
	tokenCmd.Flags().StringVar(&tokenGroups, "groups", server.GroupLawyer, "Comma-separated groups")

	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	userID := uuid.New()
	if tokenUserID != "" {
		id, err := uuid.Parse(tokenUserID)
		if err != nil {
			return fmt.Errorf("invalid --user-id: %w", err)
		}
		userID = id
	}

	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return err
	}
	token, err := server.NewJWTService(jwtCfg).GenerateToken(userID, splitGroups(tokenGroups))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}

func splitGroups(value string) []string {
	var groups []string
	for _, g := range strings.Split(value, ",") {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}
