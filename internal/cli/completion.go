package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Flyrell/habitplant/internal/config"
	"github.com/Flyrell/habitplant/internal/store"
	"github.com/spf13/cobra"
)

const completionMarker = "habitplant completion"

var validShells = []string{"bash", "zsh", "fish", "powershell"}

// shellConfigs maps shell names to their config file, relative to the home directory.
var shellConfigs = map[string]string{
	"bash":       ".bashrc",
	"zsh":        ".zshrc",
	"fish":       ".config/fish/config.fish",
	"powershell": ".config/powershell/Microsoft.PowerShell_profile.ps1",
}

var shellEvalLines = map[string]string{
	"bash":       `eval "$(habitplant completion generate bash)"`,
	"zsh":        `eval "$(habitplant completion generate zsh)"`,
	"fish":       `habitplant completion generate fish | source`,
	"powershell": `habitplant completion generate powershell | Out-String | Invoke-Expression`,
}

var completionCmd = GroupCommand{
	Use:   "completion",
	Short: "Manage shell completions",
	Subcommands: []*cobra.Command{
		completionGenerateCmd,
		completionInstallCmd,
	},
}.Build()

var completionGenerateCmd = newCompletionGenerateCmd()

func newCompletionGenerateCmd() *cobra.Command {
	cmd := LeafCommand{
		Use:   "generate [SHELL]",
		Short: "Generate shell completion script",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := shellArg(args)
			if err != nil {
				return err
			}
			return runCompletion(cmd, shell)
		},
	}.Build()
	cmd.ValidArgs = validShells
	return cmd
}

var completionInstallCmd = LeafCommand{
	Use:   "install [SHELL]",
	Short: "Install shell completions into your shell config",
	Args:  cobra.RangeArgs(0, 1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		shell, err := shellArg(args)
		if err != nil {
			return err
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")

		return runCompletionInstall(cmd, shell, homeDir, withYes(promptKit(), yes).Confirm)
	},
}.Build()

func shellArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if shell := detectShell(); shell != "" {
		return shell, nil
	}
	return "", fmt.Errorf("could not detect shell from $SHELL; please specify one explicitly (%s)", strings.Join(validShells, ", "))
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (valid: %s)", shell, strings.Join(validShells, ", "))
	}
}

func runCompletionInstall(cmd *cobra.Command, shell, homeDir string, confirm ConfirmFunc) error {
	configFile, ok := shellConfigs[shell]
	if !ok {
		return fmt.Errorf("unsupported shell for completion install: %s", shell)
	}
	display := filepath.Join("~", configFile)

	if isCompletionInstalled(shell, homeDir) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "shell completions already installed for %s in %s\n", Primary(shell), Primary(display))
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Install shell completions for %s into %s?", shell, display))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
		return nil
	}

	if err := installCompletion(shell, homeDir); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "shell completions installed for %s in %s\n", Primary(shell), Primary(display))
	return nil
}

// detectShell returns the shell named by $SHELL, or "" if it is not supported.
func detectShell() string {
	switch base := filepath.Base(os.Getenv("SHELL")); base {
	case "bash", "zsh", "fish":
		return base
	default:
		return ""
	}
}

func isCompletionInstalled(shell, homeDir string) bool {
	configPath, ok := shellConfigs[shell]
	if !ok {
		return false
	}
	data, err := os.ReadFile(filepath.Join(homeDir, configPath))
	if err != nil {
		return false
	}
	return strings.Contains(string(data), completionMarker)
}

// installCompletion appends the eval line to the shell config. Installing
// twice is a no-op.
func installCompletion(shell, homeDir string) error {
	if isCompletionInstalled(shell, homeDir) {
		return nil
	}
	configRelPath, ok := shellConfigs[shell]
	if !ok {
		return fmt.Errorf("unsupported shell for completion install: %s", shell)
	}
	configPath := filepath.Join(homeDir, configRelPath)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(configPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	_, writeErr := fmt.Fprintf(f, "\n# habitplant shell completion\n%s\n", shellEvalLines[shell])
	if closeErr := f.Close(); closeErr != nil {
		return closeErr
	}
	return writeErr
}

// completeHabitNames offers habit names for commands taking habit
// identifiers. Names already on the command line are skipped.
func completeHabitNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return habitNameCompletions(homeDir, args, toComplete, time.Now), cobra.ShellCompDirectiveNoFileComp
}

func habitNameCompletions(homeDir string, args []string, toComplete string, now func() time.Time) []string {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil
	}
	s, err := store.Open(cfg.DataFile, store.WithClock(now))
	if err != nil {
		return nil
	}

	used := make(map[string]bool, len(args))
	for _, a := range args {
		used[strings.ToLower(a)] = true
	}

	var out []string
	prefix := strings.ToLower(toComplete)
	for _, h := range s.Habits() {
		if used[strings.ToLower(h.Name)] || used[strings.ToLower(h.ID)] {
			continue
		}
		if strings.HasPrefix(strings.ToLower(h.Name), prefix) {
			out = append(out, h.Name+"\t"+shortID(h.ID))
		}
	}
	return out
}

func init() {
	for _, cmd := range []*cobra.Command{editCmd, removeCmd, showCmd, doneCmd, undoCmd} {
		cmd.ValidArgsFunction = completeHabitNames
	}
}
