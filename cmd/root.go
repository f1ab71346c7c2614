package cmd

import (
	"os"

	"cddns/cmd/commands/auth"
	cfgcmd "cddns/cmd/commands/config"
	"cddns/internal/dns/providers"
	"cddns/internal/output"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command. Run without a subcommand it
// synchronises the record once and exits.
func rootCmd() *cobra.Command {
	opts := &syncOptions{}

	var cmd = &cobra.Command{
		Use:   "cddns",
		Short: "Cloudflare dynamic DNS updater",
		Long: `cddns points a Cloudflare A or AAAA record at this machine's public IP
address, creating the record when it does not exist yet.

Every flag can also be set through an environment variable (a .env file in
the working directory is read too). Record defaults can be stored with
'cddns config set', and the API token with 'cddns auth login'.

Quick start:
  cddns auth login                          # Store your API token
  cddns -d home.example.com                 # Update (or create) the A record
  CF_DOMAIN=home.example.com cddns --ipv6   # Same for the AAAA record`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, opts)
		},
	}

	bindSyncFlags(cmd, opts)

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(versionCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	providers.RegisterCloudflare()

	var root = rootCmd()
	if err := root.Execute(); err != nil {
		output.Error(root.ErrOrStderr(), err)
		os.Exit(1)
	}
}
