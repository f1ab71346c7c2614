package auth

import (
	"github.com/spf13/cobra"
)

// providerName is the keychain account the Cloudflare token is filed under.
const providerName = "cloudflare"

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored Cloudflare API token",
		Long: `Manage the stored Cloudflare API token.

The token is kept in the OS keychain and used whenever neither --token
nor CF_TOKEN is set.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(LogoutCommand())
	cmd.AddCommand(StatusCommand())

	return cmd
}
