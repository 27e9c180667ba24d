package cli

import (
	"strings"

	"github.com/Flyrell/habitplant/internal/habit"
	"github.com/charmbracelet/lipgloss"
)

const boardKeyHelp = "j/k move  space mark/undo  d delete  r reload  q quit"

func (m boardModel) View() string {
	today := m.store.Today()

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render("habitplant"))
	b.WriteString("  ")
	b.WriteString(summaryLine(m.store.Summary()))
	b.WriteString("\n\n")

	if len(m.habits) == 0 {
		b.WriteString(Silent(errNoHabits.Error()))
		b.WriteString("\n")
	} else {
		list := renderHabitList(m.habits, today, m.cursor)
		if h, ok := m.selected(); ok {
			if card, err := habitCard(h, today, m.recentDays, m.theme); err == nil {
				list = lipgloss.JoinHorizontal(lipgloss.Top, list, "    ", card)
			}
		}
		b.WriteString(list)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.footerMsg != "" {
		b.WriteString(m.footerMsg)
		b.WriteString("\n")
	}
	b.WriteString(boardFooterStyle.Render(boardKeyHelp))
	return b.String()
}

// renderHabitList renders one row per habit with a done-today checkbox.
// cursor < 0 highlights nothing.
func renderHabitList(habits []habit.Habit, today habit.Day, cursor int) string {
	lines := make([]string, 0, len(habits))
	for i, h := range habits {
		box := "[ ]"
		if h.Has(today) {
			box = "[x]"
		}
		row, err := habitRow(h, today)
		if err != nil {
			row = h.Name
		}
		line := box + " " + row
		if i == cursor {
			line = boardSelectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderStaticBoard(habits []habit.Habit, summary habit.Summary, today habit.Day) string {
	var b strings.Builder
	b.WriteString(summaryLine(summary))
	b.WriteString("\n")
	if len(habits) == 0 {
		b.WriteString(errNoHabits.Error())
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(renderHabitList(habits, today, -1))
	b.WriteString("\n")
	return b.String()
}
