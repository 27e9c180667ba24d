package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlwaysYes(t *testing.T) {
	confirm := AlwaysYes()

	result, err := confirm("Delete this habit?")

	require.NoError(t, err)
	assert.True(t, result)
}

func TestNonInteractivePromptKit(t *testing.T) {
	pk := NonInteractivePromptKit()

	_, err := pk.Prompt("Habit name", "")
	assert.ErrorIs(t, err, errNoTerminal)

	ok, err := pk.Confirm("Reset everything?")
	assert.ErrorIs(t, err, errNoTerminal)
	assert.False(t, ok)

	_, err = pk.Select("Which habit?", []string{"a"})
	assert.ErrorIs(t, err, errNoTerminal)

	picked, err := pk.MultiSelect("Which habits?", []string{"a", "b"})
	assert.ErrorIs(t, err, errNoTerminal)
	assert.Nil(t, picked)
}

func TestWithYesReplacesConfirm(t *testing.T) {
	pk := withYes(NonInteractivePromptKit(), true)

	ok, err := pk.Confirm("Delete this habit?")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = pk.Prompt("Habit name", "")
	assert.ErrorIs(t, err, errNoTerminal)
}

func TestWithYesFalseKeepsConfirm(t *testing.T) {
	pk := withYes(NonInteractivePromptKit(), false)

	_, err := pk.Confirm("Delete this habit?")
	assert.ErrorIs(t, err, errNoTerminal)
}

func TestNewPromptKitFillsEveryPrompt(t *testing.T) {
	pk := NewPromptKit()

	assert.NotNil(t, pk.Prompt)
	assert.NotNil(t, pk.Confirm)
	assert.NotNil(t, pk.Select)
	assert.NotNil(t, pk.MultiSelect)
}
