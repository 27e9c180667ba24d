package habit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage(t *testing.T) {
	tests := []struct {
		streak   int
		withered bool
		want     int
	}{
		{-1, false, 0},
		{0, false, 0},
		{1, false, 1},
		{2, false, 1},
		{3, false, 2},
		{6, false, 2},
		{7, false, 3},
		{30, false, 3},
		{7, true, 0},
		{3, true, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Stage(tt.streak, tt.withered), "streak=%d withered=%v", tt.streak, tt.withered)
	}
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0, Progress(0))
	assert.Equal(t, 7, Progress(1))
	assert.Equal(t, 50, Progress(7))
	assert.Equal(t, 100, Progress(14))
	assert.Equal(t, 100, Progress(40))
}

func TestSummarize(t *testing.T) {
	a := habitWith(false, "2024-01-01", "2024-01-02", "2024-01-03")
	b := habitWith(false, "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04")

	s := Summarize([]Habit{a, b})

	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 7, s.TotalStreak)
	assert.Equal(t, 1, s.Stage)
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarizeStageCapped(t *testing.T) {
	var history []string
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 40; i++ {
		history = append(history, start.AddDate(0, 0, i).Format(DateLayout))
	}

	s := Summarize([]Habit{habitWith(false, history...)})

	assert.Equal(t, 40, s.TotalStreak)
	assert.Equal(t, 3, s.Stage)
}

func TestMatches(t *testing.T) {
	h := habitWith(false)
	h.Name = "Read 20 pages"
	h.Note = "Before Bed"

	assert.True(t, h.Matches(""))
	assert.True(t, h.Matches("  read "))
	assert.True(t, h.Matches("bed"))
	assert.False(t, h.Matches("run"))
}

func TestValidateName(t *testing.T) {
	require.NoError(t, ValidateName("Read"))

	err := ValidateName("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "name required")
}

func TestNewTrimsAndStartsHealthy(t *testing.T) {
	h := New("id", "  Walk  ", " outside ", time.Time{})

	assert.Equal(t, "Walk", h.Name)
	assert.Equal(t, "outside", h.Note)
	assert.NotNil(t, h.History)
	assert.Empty(t, h.History)
	assert.False(t, h.Withered)
}

func TestNormalizeAndHas(t *testing.T) {
	h := habitWith(false, "2024-01-03", "2024-01-01", "2024-01-03")
	h = h.Normalize()

	assert.Equal(t, days("2024-01-01", "2024-01-03"), h.History)
	assert.True(t, h.Has(d("2024-01-03")))
	assert.False(t, h.Has(d("2024-01-02")))

	last, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, d("2024-01-03"), last)
}
