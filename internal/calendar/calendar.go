// Package calendar lays out the recent-days strip shown on habit cards.
package calendar

import (
	"fmt"

	"github.com/Flyrell/habitplant/internal/habit"
	"github.com/teambition/rrule-go"
)

// Cell is one day in a habit's recent history.
type Cell struct {
	Day   habit.Day
	Done  bool
	Today bool
}

// Range returns every day from from to to inclusive.
func Range(from, to habit.Day) ([]habit.Day, error) {
	if to < from {
		return nil, fmt.Errorf("invalid range: %s is before %s", to, from)
	}
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: from.Time(),
		Until:   to.Time(),
	})
	if err != nil {
		return nil, err
	}

	occurrences := r.All()
	days := make([]habit.Day, len(occurrences))
	for i, t := range occurrences {
		days[i] = habit.DayOf(t)
	}
	return days, nil
}

// Recent returns the n days ending at today, oldest first.
func Recent(h habit.Habit, today habit.Day, n int) ([]Cell, error) {
	if n < 1 {
		return nil, fmt.Errorf("day count must be positive, got %d", n)
	}
	days, err := Range(today.AddDays(-(n - 1)), today)
	if err != nil {
		return nil, err
	}

	cells := make([]Cell, len(days))
	for i, d := range days {
		cells[i] = Cell{Day: d, Done: h.Has(d), Today: d == today}
	}
	return cells, nil
}

// Strip renders cells as a compact row: '#' for done, '.' for missed, with
// today wrapped in brackets.
func Strip(cells []Cell) string {
	b := make([]byte, 0, len(cells)+2)
	for _, c := range cells {
		mark := byte('.')
		if c.Done {
			mark = '#'
		}
		if c.Today {
			b = append(b, '[', mark, ']')
			continue
		}
		b = append(b, mark)
	}
	return string(b)
}
