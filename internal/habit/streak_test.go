package habit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func days(keys ...string) []Day {
	out := make([]Day, len(keys))
	for i, k := range keys {
		out[i] = d(k)
	}
	return out
}

func TestComputeStreak(t *testing.T) {
	tests := []struct {
		name    string
		history []Day
		want    int
	}{
		{"empty", nil, 0},
		{"single day", days("2024-01-06"), 1},
		{"three consecutive", days("2024-01-04", "2024-01-05", "2024-01-06"), 3},
		{"gap before latest", days("2024-01-04", "2024-01-06"), 1},
		{"unordered", days("2024-01-06", "2024-01-04", "2024-01-05"), 3},
		{"duplicates", days("2024-01-05", "2024-01-06", "2024-01-06"), 2},
		{"run ends at latest only", days("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-10"), 1},
		{"across month end", days("2024-02-28", "2024-02-29", "2024-03-01"), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStreak(tt.history)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestComputeStreakIgnoresToday(t *testing.T) {
	// The streak ends at the latest recorded day, not at today.
	h := days("2020-05-01", "2020-05-02")
	assert.Equal(t, 2, ComputeStreak(h))
}
