package cli

import (
	"fmt"
	"os"

	"github.com/Flyrell/habitplant/internal/config"
	"github.com/spf13/cobra"
)

var themeCmd = LeafCommand{
	Use:   "theme [light|dark]",
	Short: "Switch between the light and dark palette",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		theme := ""
		if len(args) > 0 {
			theme = args[0]
		}
		return runTheme(cmd, homeDir, theme)
	},
}.Build()

// runTheme stores theme in config.yaml. An empty theme toggles the current one.
func runTheme(cmd *cobra.Command, homeDir, theme string) error {
	cfg, err := config.ReadFile(homeDir)
	if err != nil {
		return err
	}

	if theme == "" {
		theme = config.ThemeDark
		if cfg.Theme == config.ThemeDark {
			theme = config.ThemeLight
		}
	}
	cfg.Theme = theme

	if err := config.Write(homeDir, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", Primary(theme))
	if env := os.Getenv("HABITPLANT_THEME"); env != "" && env != theme {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Warning(fmt.Sprintf("HABITPLANT_THEME=%s overrides this setting", env)))
	}
	return nil
}
