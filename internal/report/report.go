// Package report builds the printable habit summary.
package report

import (
	"time"

	"github.com/Flyrell/habitplant/internal/calendar"
	"github.com/Flyrell/habitplant/internal/habit"
)

// Row is one habit in the report.
type Row struct {
	Name     string
	Note     string
	Streak   int
	Stage    int
	Progress int
	Withered bool
	LastDone string
	Recent   string
}

// Data is everything the PDF renderer needs.
type Data struct {
	GeneratedAt time.Time
	Today       habit.Day
	Summary     habit.Summary
	Rows        []Row
}

// Build collects report rows for habits as of today. recentDays sets the
// width of each row's recent-days strip.
func Build(habits []habit.Habit, today habit.Day, recentDays int, generatedAt time.Time) (Data, error) {
	data := Data{
		GeneratedAt: generatedAt,
		Today:       today,
		Summary:     habit.Summarize(habits),
		Rows:        make([]Row, 0, len(habits)),
	}

	for _, h := range habits {
		cells, err := calendar.Recent(h, today, recentDays)
		if err != nil {
			return Data{}, err
		}
		streak := h.Streak()
		row := Row{
			Name:     h.Name,
			Note:     h.Note,
			Streak:   streak,
			Stage:    habit.Stage(streak, h.Withered),
			Progress: habit.Progress(streak),
			Withered: h.Withered,
			LastDone: "never",
			Recent:   calendar.Strip(cells),
		}
		if last, ok := h.Latest(); ok {
			row.LastDone = last.String()
		}
		data.Rows = append(data.Rows, row)
	}
	return data, nil
}
