package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/Flyrell/habitplant/internal/plant"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var statsCmd = LeafCommand{
	Use:   "stats",
	Short: "Show the garden overview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runStats(cmd, homeDir, time.Now)
	},
}.Build()

func runStats(cmd *cobra.Command, homeDir string, now func() time.Time) error {
	a, err := openApp(cmd, homeDir, now)
	if err != nil {
		return err
	}

	habits := a.store.Habits()
	summary := a.store.Summary()
	today := a.store.Today()

	var doneToday, withered, best int
	bestName := "-"
	for _, h := range habits {
		if h.Has(today) {
			doneToday++
		}
		if h.Withered {
			withered++
		}
		if s := h.Streak(); s > best {
			best = s
			bestName = h.Name
		}
	}

	details := fmt.Sprintf("%s\n\nhabits:        %d\ncombined days: %d\ndone today:    %d/%d\nwithered:      %d\nbest streak:   %d (%s)",
		summaryLine(summary),
		summary.Total,
		summary.TotalStreak,
		doneToday, summary.Total,
		withered,
		best, bestName,
	)

	art := plant.Render(summary.Stage, false, a.cfg.Theme)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), lipgloss.JoinHorizontal(lipgloss.Top, art, "   ", details))
	return nil
}
