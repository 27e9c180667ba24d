package cli

import (
	"fmt"
	"os"

	"github.com/Flyrell/habitplant/internal/config"
	"github.com/spf13/cobra"
)

var configReadCmd = LeafCommand{
	Use:     "read",
	Short:   "Print every effective setting",
	Aliases: []string{"list"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigRead(cmd, homeDir)
	},
}.Build()

func runConfigRead(cmd *cobra.Command, homeDir string) error {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Silent(config.Path(homeDir)))
	for _, key := range config.Keys() {
		value, _ := cfg.Get(key)
		_, _ = fmt.Fprintf(w, "  %s %s\n", pad(Primary(key), 16), value)
	}
	return nil
}
