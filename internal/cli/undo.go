package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/Flyrell/habitplant/internal/habit"
	"github.com/spf13/cobra"
)

var undoCmd = LeafCommand{
	Use:   "undo [habit...]",
	Short: "Take back today's completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runUndo(cmd, homeDir, args, promptKit(), time.Now)
	},
}.Build()

func runUndo(cmd *cobra.Command, homeDir string, identifiers []string, pk PromptKit, now func() time.Time) error {
	a, err := openApp(cmd, homeDir, now)
	if err != nil {
		return err
	}

	today := a.store.Today()
	targets, err := resolveHabits(a.store, identifiers, "Which completions should be undone?",
		func(h habit.Habit) bool { return h.Has(today) }, pk)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(targets) == 0 {
		_, _ = fmt.Fprintln(w, "nothing marked done today")
		return nil
	}

	for _, h := range targets {
		if !h.Has(today) {
			return fmt.Errorf("'%s' is not marked done today", h.Name)
		}
	}

	for _, h := range targets {
		updated, err := a.store.Undo(h.ID)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "undid today for %s, streak %d\n", Primary(updated.Name), updated.Streak())
		if updated.Withered && !h.Withered {
			_, _ = fmt.Fprintf(w, "  %s\n", Warning("withered"))
		}
	}
	return nil
}
