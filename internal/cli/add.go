package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var addCmd = LeafCommand{
	Use:     "add [name]",
	Short:   "Plant a new habit",
	Aliases: []string{"plant"},
	Args:    cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "note", Shorthand: "n", Usage: "optional note shown under the name"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		note, _ := cmd.Flags().GetString("note")

		return runAdd(cmd, homeDir, name, note, promptKit(), time.Now)
	},
}.Build()

func runAdd(cmd *cobra.Command, homeDir, name, note string, pk PromptKit, now func() time.Time) error {
	if strings.TrimSpace(name) == "" {
		var err error
		if name, err = pk.Prompt("Habit name", ""); err != nil {
			return err
		}
		if note == "" {
			if note, err = pk.Prompt("Note (optional)", ""); err != nil {
				return err
			}
		}
	}

	a, err := openApp(cmd, homeDir, now)
	if err != nil {
		return err
	}

	h, err := a.store.Add(name, note)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "planted %s %s\n", Primary(h.Name), Silent(shortID(h.ID)))
	return nil
}
