package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = LeafCommand{
	Use:     "list",
	Short:   "List habits",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "search", Shorthand: "s", Usage: "only show habits whose name or note contains this text"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		search, _ := cmd.Flags().GetString("search")

		return runList(cmd, homeDir, search, time.Now)
	},
}.Build()

func runList(cmd *cobra.Command, homeDir, search string, now func() time.Time) error {
	a, err := openApp(cmd, homeDir, now)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(w, summaryLine(a.store.Summary()))

	habits := a.store.Search(search)
	if len(habits) == 0 {
		if search != "" {
			_, _ = fmt.Fprintf(w, "no habits match '%s'\n", search)
		} else {
			_, _ = fmt.Fprintln(w, Silent(errNoHabits.Error()))
		}
		return nil
	}

	today := a.store.Today()
	for _, h := range habits {
		row, err := habitRow(h, today)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, row)
	}
	return nil
}
