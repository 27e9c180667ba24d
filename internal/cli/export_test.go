package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Flyrell/habitplant/internal/habit"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execExport(homeDir, target, format string) (string, error) {
	return execWith(exportCmd, func(cmd *cobra.Command) error {
		return runExport(cmd, homeDir, target, format, fixedClock())
	})
}

func TestExportJSONToStdout(t *testing.T) {
	homeDir := t.TempDir()
	seeded := []habit.Habit{
		seedHabit("aaa1111", "Read", false, -1, 0),
		seedHabit("bbb2222", "Run", true, -5),
	}
	seedStore(t, homeDir, seeded...)

	stdout, err := execExport(homeDir, "-", formatJSON)

	require.NoError(t, err)
	var got []habit.Habit
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	if diff := cmp.Diff(seeded, got); diff != "" {
		t.Errorf("exported habits mismatch (-want +got):\n%s", diff)
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	homeDir := t.TempDir()
	seedStore(t, homeDir, seedHabit("aaa1111", "Read", true, -9, -1, 0))
	target := filepath.Join(t.TempDir(), "out.json")

	stdout, err := execExport(homeDir, target, formatJSON)
	require.NoError(t, err)
	assert.Contains(t, stdout, "exported 1 habits to")

	other := t.TempDir()
	_, err = execImport(other, target, "", NonInteractivePromptKit())
	require.NoError(t, err)

	if diff := cmp.Diff(loadStore(t, homeDir).Habits(), loadStore(t, other).Habits()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExportEmptyIsArray(t *testing.T) {
	homeDir := t.TempDir()

	stdout, err := execExport(homeDir, "-", formatJSON)

	require.NoError(t, err)
	assert.Equal(t, "[]", stdout)
}

func TestExportPDF(t *testing.T) {
	homeDir := t.TempDir()
	seedStore(t, homeDir, seedHabit("aaa1111", "Read", false, -1, 0))
	target := filepath.Join(t.TempDir(), "report.pdf")

	_, err := execExport(homeDir, target, formatPDF)

	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportDefaultFileName(t *testing.T) {
	homeDir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	stdout, err := execExport(homeDir, "", formatJSON)

	require.NoError(t, err)
	assert.Contains(t, stdout, defaultJSONExport)
	_, err = os.Stat(defaultJSONExport)
	assert.NoError(t, err)
}

func TestExportUnknownFormat(t *testing.T) {
	homeDir := t.TempDir()

	_, err := execExport(homeDir, "-", "csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}
