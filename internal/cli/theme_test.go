package cli

import (
	"testing"

	"github.com/Flyrell/habitplant/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execTheme(homeDir, theme string) (string, error) {
	return execWith(themeCmd, func(cmd *cobra.Command) error {
		return runTheme(cmd, homeDir, theme)
	})
}

func TestThemeToggles(t *testing.T) {
	homeDir := t.TempDir()

	stdout, err := execTheme(homeDir, "")
	require.NoError(t, err)
	assert.Contains(t, stdout, "theme set to dark")

	cfg, err := config.ReadFile(homeDir)
	require.NoError(t, err)
	assert.Equal(t, config.ThemeDark, cfg.Theme)

	stdout, err = execTheme(homeDir, "")
	require.NoError(t, err)
	assert.Contains(t, stdout, "theme set to light")
}

func TestThemeExplicit(t *testing.T) {
	homeDir := t.TempDir()

	_, err := execTheme(homeDir, "dark")
	require.NoError(t, err)

	cfg, err := config.ReadFile(homeDir)
	require.NoError(t, err)
	assert.Equal(t, config.ThemeDark, cfg.Theme)
}

func TestThemeInvalid(t *testing.T) {
	homeDir := t.TempDir()

	_, err := execTheme(homeDir, "sepia")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme")
}

func TestThemeKeepsOtherSettings(t *testing.T) {
	homeDir := t.TempDir()
	cfg := config.Default(homeDir)
	cfg.RecentDays = 21
	require.NoError(t, config.Write(homeDir, cfg))

	_, err := execTheme(homeDir, "dark")
	require.NoError(t, err)

	got, err := config.ReadFile(homeDir)
	require.NoError(t, err)
	assert.Equal(t, 21, got.RecentDays)
}
