package habit

import (
	"sort"
	"strings"
	"time"
)

const (
	// MissThreshold is the number of fully skipped days that withers a habit.
	MissThreshold = 2
	// ReviveThreshold is the streak length that clears a withered habit.
	ReviveThreshold = 3
)

// Habit is a tracked daily habit.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Note      string    `json:"note"`
	History   []Day     `json:"history"`
	Withered  bool      `json:"withered"`
	CreatedAt time.Time `json:"createdAt"`
}

// New creates a healthy habit with an empty history.
func New(id, name, note string, createdAt time.Time) Habit {
	return Habit{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Note:      strings.TrimSpace(note),
		History:   []Day{},
		CreatedAt: createdAt,
	}
}

// Normalize sorts the history and drops duplicate days.
func (h Habit) Normalize() Habit {
	h.History = normalizeDays(h.History)
	return h
}

// Has reports whether d is in the habit's history.
func (h Habit) Has(d Day) bool {
	i := sort.Search(len(h.History), func(i int) bool { return h.History[i] >= d })
	return i < len(h.History) && h.History[i] == d
}

// Latest returns the most recent recorded day.
func (h Habit) Latest() (Day, bool) {
	return latest(h.History)
}

// Streak returns the streak ending at the latest recorded day.
func (h Habit) Streak() int {
	return ComputeStreak(h.History)
}

// Stage returns the plant stage for the habit's current state.
func (h Habit) Stage() int {
	return Stage(h.Streak(), h.Withered)
}

// Matches reports whether the habit's name or note contains query,
// ignoring case. An empty query matches everything.
func (h Habit) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(h.Name), q) ||
		strings.Contains(strings.ToLower(h.Note), q)
}

func normalizeDays(days []Day) []Day {
	out := make([]Day, 0, len(days))
	seen := make(map[Day]struct{}, len(days))
	for _, d := range days {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func latest(days []Day) (Day, bool) {
	if len(days) == 0 {
		return 0, false
	}
	max := days[0]
	for _, d := range days[1:] {
		if d > max {
			max = d
		}
	}
	return max, true
}
