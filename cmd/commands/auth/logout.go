package auth

import (
	"errors"
	"fmt"

	"cddns/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored Cloudflare API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := auth.DefaultStore().DeleteToken(providerName)
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "Removed Cloudflare API token.")
			case errors.Is(err, auth.ErrTokenNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "No token stored.")
			default:
				return err
			}
			return nil
		},
		SilenceUsage: true,
	}
}
