package cli

import (
	"fmt"
	"strings"

	"github.com/Flyrell/habitplant/internal/calendar"
	"github.com/Flyrell/habitplant/internal/habit"
	"github.com/Flyrell/habitplant/internal/report"
	"github.com/charmbracelet/lipgloss"
)

const (
	nameColWidth  = 24
	listRecentLen = 7
	progressWidth = 14
)

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "~"
}

func stageLabel(h habit.Habit) string {
	label := report.StageName(h.Stage(), h.Withered)
	if h.Withered {
		return Error(label)
	}
	return Primary(label)
}

func progressBar(percent, width int) string {
	filled := percent * width / 100
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}

func summaryLine(s habit.Summary) string {
	return fmt.Sprintf("%s habits, %s combined streak days, garden: %s",
		Primary(fmt.Sprintf("%d", s.Total)),
		Primary(fmt.Sprintf("%d", s.TotalStreak)),
		Primary(report.StageName(s.Stage, false)))
}

// habitRow renders a one-line listing: id, name, streak, stage and the
// strip of the last week.
func habitRow(h habit.Habit, today habit.Day) (string, error) {
	cells, err := calendar.Recent(h, today, listRecentLen)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s  %s  %s  %s  %s",
		Silent(shortID(h.ID)),
		pad(truncate(h.Name, nameColWidth), nameColWidth),
		pad(fmt.Sprintf("streak %d", h.Streak()), 10),
		pad(stageLabel(h), 9),
		Silent(calendar.Strip(cells)),
	), nil
}
