package auth

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"cddns/internal/dns/providers"
	"cddns/internal/services/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// tokenVerifier checks a token against the provider before it is stored.
type tokenVerifier interface {
	VerifyToken(ctx context.Context) error
}

// newVerifier is swapped out in tests.
var newVerifier = func(token string) tokenVerifier {
	return providers.NewCloudflareProvider(token)
}

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a Cloudflare API token",
		Long: `Store a Cloudflare API token in the local keychain.

The token needs Zone:Read and DNS:Edit permissions. When --token is not
given the token is read from a masked prompt (or from stdin when it is
not a terminal).

Examples:
  cddns auth login
  cddns auth login --token "$CF_TOKEN" --verify`,
		Args:         cobra.NoArgs,
		RunE:         runLogin,
		SilenceUsage: true,
	}

	cmd.Flags().String("token", "", "API token (optional, overrides prompt)")
	cmd.Flags().Bool("verify", false, "Check the token with Cloudflare before saving it")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	token, _ := cmd.Flags().GetString("token")
	token = strings.TrimSpace(token)

	if token == "" {
		var err error
		token, err = readToken(cmd)
		if err != nil {
			return err
		}
	}
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if verify, _ := cmd.Flags().GetBool("verify"); verify {
		if err := newVerifier(token).VerifyToken(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Token verified.")
	}

	if err := auth.DefaultStore().SetToken(providerName, token); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Saved Cloudflare API token.")
	return nil
}

// readToken prompts without echo on a terminal, else reads one line of input.
func readToken(cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), "Enter API token: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}
