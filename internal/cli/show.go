package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Flyrell/habitplant/internal/calendar"
	"github.com/Flyrell/habitplant/internal/habit"
	"github.com/Flyrell/habitplant/internal/plant"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var showCmd = LeafCommand{
	Use:   "show [habit]",
	Short: "Show a habit's plant, streak and recent days",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		identifier := ""
		if len(args) > 0 {
			identifier = args[0]
		}

		return runShow(cmd, homeDir, identifier, promptKit(), time.Now)
	},
}.Build()

func runShow(cmd *cobra.Command, homeDir, identifier string, pk PromptKit, now func() time.Time) error {
	a, err := openApp(cmd, homeDir, now)
	if err != nil {
		return err
	}

	h, err := resolveHabit(a.store, identifier, pk)
	if err != nil {
		return err
	}

	card, err := habitCard(h, a.store.Today(), a.cfg.RecentDays, a.cfg.Theme)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), card)
	return nil
}

// habitCard renders the plant next to the habit's details.
func habitCard(h habit.Habit, today habit.Day, recentDays int, theme string) (string, error) {
	cells, err := calendar.Recent(h, today, recentDays)
	if err != nil {
		return "", err
	}

	streak := h.Streak()
	percent := habit.Progress(streak)

	lastDone := "never"
	if last, ok := h.Latest(); ok {
		lastDone = last.String()
	}
	status := Primary("healthy")
	if h.Withered {
		status = Error("withered")
	}
	doneToday := Silent("not yet")
	if h.Has(today) {
		doneToday = Primary("done")
	}

	var details []string
	details = append(details, Primary(h.Name)+"  "+Silent(shortID(h.ID)))
	if h.Note != "" {
		details = append(details, Silent(h.Note))
	}
	details = append(details,
		"",
		fmt.Sprintf("streak:    %d", streak),
		fmt.Sprintf("stage:     %s", stageLabel(h)),
		fmt.Sprintf("status:    %s", status),
		fmt.Sprintf("today:     %s", doneToday),
		fmt.Sprintf("last done: %s", lastDone),
		fmt.Sprintf("progress:  %s %d%%", progressBar(percent, progressWidth), percent),
		fmt.Sprintf("recent:    %s", calendar.Strip(cells)),
	)

	art := plant.Render(h.Stage(), h.Withered, theme)
	return lipgloss.JoinHorizontal(lipgloss.Top, art, "   ", strings.Join(details, "\n")), nil
}
