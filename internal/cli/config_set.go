package cli

import (
	"fmt"
	"os"

	"github.com/Flyrell/habitplant/internal/config"
	"github.com/spf13/cobra"
)

var configSetCmd = LeafCommand{
	Use:   "set <key> <value>",
	Short: "Change a setting in config.yaml",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, homeDir, args[0], args[1])
	},
}.Build()

func runConfigSet(cmd *cobra.Command, homeDir, key, value string) error {
	cfg, err := config.ReadFile(homeDir)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := config.Write(homeDir, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", Primary(key), value)
	return nil
}
