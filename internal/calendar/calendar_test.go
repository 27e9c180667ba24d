package calendar

import (
	"testing"
	"time"

	"github.com/Flyrell/habitplant/internal/habit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, key string) habit.Day {
	t.Helper()
	d, err := habit.ParseDay(key)
	require.NoError(t, err)
	return d
}

func TestRange(t *testing.T) {
	days, err := Range(day(t, "2024-02-27"), day(t, "2024-03-02"))

	require.NoError(t, err)
	keys := make([]string, len(days))
	for i, d := range days {
		keys[i] = d.String()
	}
	assert.Equal(t, []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}, keys)
}

func TestRangeSingleDay(t *testing.T) {
	days, err := Range(day(t, "2024-01-06"), day(t, "2024-01-06"))

	require.NoError(t, err)
	assert.Equal(t, []habit.Day{day(t, "2024-01-06")}, days)
}

func TestRangeReversed(t *testing.T) {
	_, err := Range(day(t, "2024-01-06"), day(t, "2024-01-01"))
	assert.Error(t, err)
}

func TestRecent(t *testing.T) {
	h := habit.New("id", "Read", "", time.Time{})
	h.History = []habit.Day{day(t, "2024-01-03"), day(t, "2024-01-05"), day(t, "2024-01-06")}

	cells, err := Recent(h, day(t, "2024-01-06"), 4)

	require.NoError(t, err)
	require.Len(t, cells, 4)
	assert.Equal(t, day(t, "2024-01-03"), cells[0].Day)
	assert.True(t, cells[0].Done)
	assert.False(t, cells[1].Done)
	assert.True(t, cells[3].Today)
	assert.Equal(t, "#.#[#]", Strip(cells))
}

func TestRecentRejectsNonPositive(t *testing.T) {
	_, err := Recent(habit.Habit{}, day(t, "2024-01-06"), 0)
	assert.Error(t, err)
}

func TestStripTodayMissed(t *testing.T) {
	cells := []Cell{{Done: true}, {Today: true}}
	assert.Equal(t, "#[.]", Strip(cells))
}
