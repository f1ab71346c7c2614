package config

import (
	"cddns/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cddns defaults",
		Long: "View and modify persistent cddns defaults.\n\n" +
			"Defaults are stored at ~/.config/cddns/config.json and apply only\n" +
			"when neither a flag nor an environment variable sets the value.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())
	cmd.AddCommand(UnsetCommand())

	return cmd
}
