package auth

import (
	"errors"
	"fmt"

	"cddns/internal/output"
	"cddns/internal/services/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a token is stored",
		Long: `Show whether a Cloudflare API token is stored in the keychain.

Example:
  cddns auth status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := auth.DefaultStore().GetToken(providerName)
			switch {
			case err == nil:
				output.Field(cmd.OutOrStdout(), providerName, "logged in (token "+maskToken(token)+")")
			case errors.Is(err, auth.ErrTokenNotFound):
				output.Field(cmd.OutOrStdout(), providerName, "not logged in")
				output.Hint(cmd.OutOrStdout(), "Run 'cddns auth login' or set CF_TOKEN.")
			default:
				return fmt.Errorf("failed to read keychain: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}

// maskToken keeps only the last four characters visible.
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
