package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/Flyrell/habitplant/internal/habit"
	"github.com/spf13/cobra"
)

var doneCmd = LeafCommand{
	Use:     "done [habit...]",
	Short:   "Mark habits done for today",
	Aliases: []string{"water"},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runDone(cmd, homeDir, args, promptKit(), time.Now)
	},
}.Build()

func runDone(cmd *cobra.Command, homeDir string, identifiers []string, pk PromptKit, now func() time.Time) error {
	a, err := openApp(cmd, homeDir, now)
	if err != nil {
		return err
	}

	today := a.store.Today()
	targets, err := resolveHabits(a.store, identifiers, "Which habits did you finish today?",
		func(h habit.Habit) bool { return !h.Has(today) }, pk)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(targets) == 0 {
		_, _ = fmt.Fprintln(w, "nothing left to do today")
		return nil
	}

	for _, h := range targets {
		if h.Has(today) {
			_, _ = fmt.Fprintf(w, "%s already done today\n", h.Name)
			continue
		}

		updated, err := a.store.Mark(h.ID)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(w, "watered %s, streak %s\n", Primary(updated.Name), Primary(fmt.Sprintf("%d", updated.Streak())))
		switch {
		case updated.Withered && !h.Withered:
			_, _ = fmt.Fprintf(w, "  %s\n", Warning(fmt.Sprintf("withered after missed days, keep a %d-day run to revive it", habit.ReviveThreshold)))
		case updated.Withered:
			_, _ = fmt.Fprintf(w, "  %s\n", Warning(fmt.Sprintf("still withered, %d-day run needed", habit.ReviveThreshold)))
		case h.Withered:
			_, _ = fmt.Fprintf(w, "  %s\n", Primary("revived"))
		}
	}
	return nil
}
