package reminder

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Flyrell/habitplant/internal/habit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var today = habit.NewDay(2025, time.June, 10)

func withHistory(name string, withered bool, offsets ...int) habit.Habit {
	h := habit.New(name, name, "", time.Time{})
	for _, o := range offsets {
		h.History = append(h.History, today.AddDays(o))
	}
	h.Withered = withered
	return h.Normalize()
}

func TestPending(t *testing.T) {
	habits := []habit.Habit{
		withHistory("read", false, 0),
		withHistory("run", false, -1),
		withHistory("water", false),
	}

	pending := Pending(habits, today)

	require.Len(t, pending, 2)
	assert.Equal(t, "run", pending[0].Name)
	assert.Equal(t, "water", pending[1].Name)
}

func TestAtRisk(t *testing.T) {
	assert.False(t, AtRisk(withHistory("a", false, 0), today), "done today")
	assert.False(t, AtRisk(withHistory("a", false, -1), today), "done yesterday")
	assert.True(t, AtRisk(withHistory("a", false, -2), today), "one day missed")
	assert.False(t, AtRisk(withHistory("a", true, -2), today), "already withered")
	assert.False(t, AtRisk(withHistory("a", false), today), "never done")
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil, today))

	one := []habit.Habit{withHistory("read", false, -1)}
	assert.Equal(t, "1 habit left today: read", Message(one, today))

	two := []habit.Habit{withHistory("read", false, -2), withHistory("run", false)}
	assert.Equal(t, "2 habits left today: read (wilting), run", Message(two, today))
}

func TestNewSchedulerRejectsBadSchedule(t *testing.T) {
	_, err := NewScheduler("not a schedule", zap.NewNop(), func() {})
	assert.Error(t, err)
}

func TestSchedulerRunsUntilCancelled(t *testing.T) {
	var calls atomic.Int32
	s, err := NewScheduler("@every 1s", zap.NewNop(), func() { calls.Add(1) })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
