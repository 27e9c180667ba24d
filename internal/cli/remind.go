package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/Flyrell/habitplant/internal/reminder"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var remindCmd = LeafCommand{
	Use:   "remind",
	Short: "Print habits still open today, once or on the configured schedule",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "once", Usage: "print pending habits and exit"},
	},
	StrFlags: []StringFlag{
		{Name: "schedule", Usage: "cron schedule overriding remind_schedule"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		once, _ := cmd.Flags().GetBool("once")
		schedule, _ := cmd.Flags().GetString("schedule")

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		return runRemind(ctx, cmd, homeDir, once, schedule, time.Now)
	},
}.Build()

func runRemind(ctx context.Context, cmd *cobra.Command, homeDir string, once bool, schedule string, now func() time.Time) error {
	a, err := openApp(cmd, homeDir, now)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if once {
		printReminder(w, a)
		return nil
	}

	if schedule == "" {
		schedule = a.cfg.RemindSchedule
	}

	var mu sync.Mutex
	s, err := reminder.NewScheduler(schedule, a.logger, func() {
		mu.Lock()
		defer mu.Unlock()
		if err := a.store.Reload(); err != nil {
			a.logger.Warn("reloading habits failed", zap.Error(err))
			return
		}
		printReminder(w, a)
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "reminders scheduled (%s), press Ctrl+C to stop\n", Primary(schedule))
	return s.Run(ctx)
}

func printReminder(w io.Writer, a *app) {
	today := a.store.Today()
	habits := a.store.Habits()
	msg := reminder.Message(reminder.Pending(habits, today), today)
	switch {
	case len(habits) == 0:
		msg = errNoHabits.Error()
	case msg == "":
		msg = "all habits done today"
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent(a.now().Format("15:04")), msg)
}
