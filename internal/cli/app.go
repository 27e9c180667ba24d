package cli

import (
	"time"

	"github.com/Flyrell/habitplant/internal/config"
	"github.com/Flyrell/habitplant/internal/logging"
	"github.com/Flyrell/habitplant/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the per-invocation state shared by habit commands.
type app struct {
	cfg    *config.Config
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

// openApp loads the effective configuration, builds a logger writing to the
// command's stderr and opens the habit store.
func openApp(cmd *cobra.Command, homeDir string, now func() time.Time) (*app, error) {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if verboseFlag(cmd) {
		level = "debug"
	}
	logger, err := logging.New(level, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	s, err := store.Open(cfg.DataFile, store.WithLogger(logger), store.WithClock(now))
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, store: s, logger: logger, now: now}, nil
}

func verboseFlag(cmd *cobra.Command) bool {
	f := cmd.Flag("verbose")
	return f != nil && f.Value.String() == "true"
}
