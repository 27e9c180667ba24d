package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var resetCmd = LeafCommand{
	Use:   "reset",
	Short: "Delete every habit",
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

		return runReset(cmd, homeDir, withYes(promptKit(), yes), time.Now)
	},
}.Build()

func runReset(cmd *cobra.Command, homeDir string, pk PromptKit, now func() time.Time) error {
	a, err := openApp(cmd, homeDir, now)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	ok, err := pk.Confirm("Reset everything? This clears all habits.")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	n := len(a.store.Habits())
	if err := a.store.Reset(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "cleared %d habits\n", n)
	return nil
}
