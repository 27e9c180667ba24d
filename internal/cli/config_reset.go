package cli

import (
	"fmt"
	"os"

	"github.com/Flyrell/habitplant/internal/config"
	"github.com/spf13/cobra"
)

var configResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")

		return runConfigReset(cmd, homeDir, withYes(promptKit(), yes).Confirm)
	},
}.Build()

func runConfigReset(cmd *cobra.Command, homeDir string, confirm ConfirmFunc) error {
	ok, err := confirm("Restore default settings?")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
		return nil
	}

	if err := config.Write(homeDir, config.Default(homeDir)); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "settings restored to defaults")
	return nil
}
