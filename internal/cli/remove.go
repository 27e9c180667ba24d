package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var removeCmd = LeafCommand{
	Use:     "remove [habit]",
	Short:   "Delete a habit and its history",
	Aliases: []string{"rm"},
	Args:    cobra.MaximumNArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		identifier := ""
		if len(args) > 0 {
			identifier = args[0]
		}
		yes, _ := cmd.Flags().GetBool("yes")

		return runRemove(cmd, homeDir, identifier, withYes(promptKit(), yes), time.Now)
	},
}.Build()

func runRemove(cmd *cobra.Command, homeDir, identifier string, pk PromptKit, now func() time.Time) error {
	a, err := openApp(cmd, homeDir, now)
	if err != nil {
		return err
	}

	h, err := resolveHabit(a.store, identifier, pk)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "  name:   %s\n", Primary(h.Name))
	_, _ = fmt.Fprintf(w, "  streak: %s\n", Primary(fmt.Sprintf("%d", h.Streak())))

	ok, err := pk.Confirm("Delete this habit?")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	if err := a.store.Delete(h.ID); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "removed %s %s\n", h.Name, Silent(shortID(h.ID)))
	return nil
}
