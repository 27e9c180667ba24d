package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execAdd(homeDir, name, note string, pk PromptKit) (string, error) {
	return execWith(addCmd, func(cmd *cobra.Command) error {
		return runAdd(cmd, homeDir, name, note, pk, fixedClock())
	})
}

func TestAddWithName(t *testing.T) {
	homeDir := t.TempDir()

	stdout, err := execAdd(homeDir, "  Read 10 pages ", "before bed", NonInteractivePromptKit())

	require.NoError(t, err)
	assert.Contains(t, stdout, "planted Read 10 pages")

	habits := loadStore(t, homeDir).Habits()
	require.Len(t, habits, 1)
	assert.Equal(t, "Read 10 pages", habits[0].Name)
	assert.Equal(t, "before bed", habits[0].Note)
	assert.Empty(t, habits[0].History)
	assert.False(t, habits[0].Withered)
}

func TestAddPrependsNewest(t *testing.T) {
	homeDir := t.TempDir()
	seedStore(t, homeDir, seedHabit("old1234", "Stretch", false))

	_, err := execAdd(homeDir, "Journal", "", NonInteractivePromptKit())
	require.NoError(t, err)

	habits := loadStore(t, homeDir).Habits()
	require.Len(t, habits, 2)
	assert.Equal(t, "Journal", habits[0].Name)
	assert.Equal(t, "Stretch", habits[1].Name)
}

func TestAddPromptsWhenNameMissing(t *testing.T) {
	homeDir := t.TempDir()
	pk := NonInteractivePromptKit()
	pk.Prompt = answering("Meditate", "ten minutes")

	stdout, err := execAdd(homeDir, "", "", pk)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Meditate")
	habits := loadStore(t, homeDir).Habits()
	require.Len(t, habits, 1)
	assert.Equal(t, "ten minutes", habits[0].Note)
}

func TestAddBlankNameRejected(t *testing.T) {
	homeDir := t.TempDir()
	pk := NonInteractivePromptKit()
	pk.Prompt = answering("   ", "")

	_, err := execAdd(homeDir, "", "", pk)

	assert.Error(t, err)
	assert.Empty(t, loadStore(t, homeDir).Habits())
}

func TestAddWithoutTerminalNeedsName(t *testing.T) {
	homeDir := t.TempDir()

	_, err := execAdd(homeDir, "", "", NonInteractivePromptKit())

	assert.ErrorIs(t, err, errNoTerminal)
}

func TestAddRegistered(t *testing.T) {
	commands := rootCmd.Commands()
	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.Name()
	}
	assert.Contains(t, names, "add")
	assert.Contains(t, addCmd.Aliases, "plant")
}
