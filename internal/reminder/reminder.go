// Package reminder finds habits still open today and runs the reminder
// schedule.
package reminder

import (
	"context"
	"fmt"
	"strings"

	"github.com/Flyrell/habitplant/internal/habit"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Pending returns the habits not yet marked done on today, in collection order.
func Pending(habits []habit.Habit, today habit.Day) []habit.Habit {
	var out []habit.Habit
	for _, h := range habits {
		if !h.Has(today) {
			out = append(out, h)
		}
	}
	return out
}

// AtRisk reports whether missing today would wither h on its next
// completion: the habit is healthy and has already skipped one day.
func AtRisk(h habit.Habit, today habit.Day) bool {
	if h.Withered || h.Has(today) {
		return false
	}
	last, ok := h.Latest()
	if !ok {
		return false
	}
	return int(today-last) == habit.MissThreshold
}

// Message formats a reminder line for the pending habits, or "" when
// nothing is pending.
func Message(pending []habit.Habit, today habit.Day) string {
	if len(pending) == 0 {
		return ""
	}
	names := make([]string, len(pending))
	for i, h := range pending {
		names[i] = h.Name
		if AtRisk(h, today) {
			names[i] += " (wilting)"
		}
	}
	noun := "habits"
	if len(pending) == 1 {
		noun = "habit"
	}
	return fmt.Sprintf("%d %s left today: %s", len(pending), noun, strings.Join(names, ", "))
}

// Scheduler calls a function on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewScheduler parses schedule (standard five-field cron or a descriptor
// such as "@every 1h") and registers fn to run on it.
func NewScheduler(schedule string, logger *zap.Logger, fn func()) (*Scheduler, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, fn); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}
	return &Scheduler{cron: c, logger: logger}, nil
}

// Run starts the schedule and blocks until ctx is cancelled, then waits for
// any running job to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	s.logger.Debug("reminder schedule started")

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.logger.Debug("reminder schedule stopped")
	return nil
}
