package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRemindOnce(homeDir string) (string, error) {
	return execWith(remindCmd, func(cmd *cobra.Command) error {
		return runRemind(context.Background(), cmd, homeDir, true, "", fixedClock())
	})
}

func TestRemindOncePending(t *testing.T) {
	homeDir := t.TempDir()
	seedStore(t, homeDir,
		seedHabit("aaa1111", "Read", false, 0),
		seedHabit("bbb2222", "Run", false, -2),
		seedHabit("ccc3333", "Stretch", false),
	)

	stdout, err := execRemindOnce(homeDir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "09:00")
	assert.Contains(t, stdout, "2 habits left today: Run (wilting), Stretch")
}

func TestRemindOnceAllDone(t *testing.T) {
	homeDir := t.TempDir()
	seedStore(t, homeDir, seedHabit("aaa1111", "Read", false, 0))

	stdout, err := execRemindOnce(homeDir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "all habits done today")
}

func TestRemindOnceNoHabits(t *testing.T) {
	homeDir := t.TempDir()

	stdout, err := execRemindOnce(homeDir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "no habits yet")
}

func TestRemindRejectsBadSchedule(t *testing.T) {
	homeDir := t.TempDir()

	_, err := execWith(remindCmd, func(cmd *cobra.Command) error {
		return runRemind(context.Background(), cmd, homeDir, false, "whenever", fixedClock())
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid reminder schedule")
}

func TestRemindStopsOnCancel(t *testing.T) {
	homeDir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stdout, err := execWith(remindCmd, func(cmd *cobra.Command) error {
		return runRemind(ctx, cmd, homeDir, false, "0 20 * * *", fixedClock())
	})

	require.NoError(t, err)
	assert.Contains(t, stdout, "reminders scheduled (0 20 * * *)")
}
