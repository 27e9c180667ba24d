package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var importCmd = LeafCommand{
	Use:   "import <file>",
	Short: "Replace all habits with a JSON export ('-' reads stdin)",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")

		return runImport(cmd, homeDir, args[0], withYes(promptKit(), yes), time.Now)
	},
}.Build()

func runImport(cmd *cobra.Command, homeDir, source string, pk PromptKit, now func() time.Time) error {
	var r io.Reader
	if source == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(source)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	a, err := openApp(cmd, homeDir, now)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if existing := len(a.store.Habits()); existing > 0 {
		ok, err := pk.Confirm(fmt.Sprintf("Replace %d existing habits?", existing))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(w, "cancelled")
			return nil
		}
	}

	n, err := a.store.Import(r)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "imported %s habits\n", Primary(fmt.Sprintf("%d", n)))
	return nil
}
