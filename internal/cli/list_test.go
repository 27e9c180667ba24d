package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execList(homeDir, search string) (string, error) {
	return execWith(listCmd, func(cmd *cobra.Command) error {
		return runList(cmd, homeDir, search, fixedClock())
	})
}

func TestListEmpty(t *testing.T) {
	homeDir := t.TempDir()

	stdout, err := execList(homeDir, "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "0 habits")
	assert.Contains(t, stdout, "no habits yet")
}

func TestListRows(t *testing.T) {
	homeDir := t.TempDir()
	seedStore(t, homeDir,
		seedHabit("aaa1111", "Read", false, -2, -1, 0),
		seedHabit("bbb2222", "Run", true, -5),
	)

	stdout, err := execList(homeDir, "")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "2 habits, 4 combined streak days, garden: seed")

	assert.Contains(t, lines[1], "aaa1111")
	assert.Contains(t, lines[1], "streak 3")
	assert.Contains(t, lines[1], "growing")
	assert.Contains(t, lines[1], "....##[#]")

	assert.Contains(t, lines[2], "bbb2222")
	assert.Contains(t, lines[2], "streak 1")
	assert.Contains(t, lines[2], "withered")
	assert.Contains(t, lines[2], ".#....[.]")
}

func TestListSearchMatchesNameOrNote(t *testing.T) {
	homeDir := t.TempDir()
	withNote := seedHabit("bbb2222", "Run", false)
	withNote.Note = "morning loop by the river"
	seedStore(t, homeDir, seedHabit("aaa1111", "Read", false), withNote)

	stdout, err := execList(homeDir, "RIVER")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Run")
	assert.NotContains(t, stdout, "Read")
}

func TestListSearchNoMatch(t *testing.T) {
	homeDir := t.TempDir()
	seedStore(t, homeDir, seedHabit("aaa1111", "Read", false))

	stdout, err := execList(homeDir, "swim")

	require.NoError(t, err)
	assert.Contains(t, stdout, "no habits match 'swim'")
}
