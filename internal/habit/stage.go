package habit

import "math"

// progressWindow is the streak length that fills the progress bar.
const progressWindow = 14

// Stage maps a streak and withered flag to a plant stage 0..3.
func Stage(streak int, withered bool) int {
	switch {
	case withered, streak <= 0:
		return 0
	case streak <= 2:
		return 1
	case streak <= 6:
		return 2
	default:
		return 3
	}
}

// Progress returns how far a streak is through the two-week window, 0..100.
func Progress(streak int) int {
	if streak <= 0 {
		return 0
	}
	if streak > progressWindow {
		streak = progressWindow
	}
	return int(math.Round(float64(streak) / progressWindow * 100))
}

// Summary aggregates a collection of habits.
type Summary struct {
	Total       int
	TotalStreak int
	Stage       int
}

// Summarize computes the overview numbers shown above the habit list.
// The overview plant grows one stage per five combined streak days.
func Summarize(habits []Habit) Summary {
	s := Summary{Total: len(habits)}
	for _, h := range habits {
		s.TotalStreak += h.Streak()
	}
	s.Stage = s.TotalStreak / 5
	if s.Stage > 3 {
		s.Stage = 3
	}
	return s
}
