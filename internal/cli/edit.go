package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var editCmd = LeafCommand{
	Use:   "edit [habit]",
	Short: "Rename a habit or change its note",
	Args:  cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "name", Usage: "new name"},
		{Name: "note", Usage: "new note (empty clears it)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		identifier := ""
		if len(args) > 0 {
			identifier = args[0]
		}

		var name, note *string
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			name = &v
		}
		if cmd.Flags().Changed("note") {
			v, _ := cmd.Flags().GetString("note")
			note = &v
		}

		return runEdit(cmd, homeDir, identifier, name, note, promptKit(), time.Now)
	},
}.Build()

// runEdit updates a habit's name and note. A nil name or note keeps the
// current value; when both are nil the user is prompted for each, pre-filled
// with what is stored.
func runEdit(cmd *cobra.Command, homeDir, identifier string, name, note *string, pk PromptKit, now func() time.Time) error {
	a, err := openApp(cmd, homeDir, now)
	if err != nil {
		return err
	}

	h, err := resolveHabit(a.store, identifier, pk)
	if err != nil {
		return err
	}

	newName, newNote := h.Name, h.Note
	if name == nil && note == nil {
		if newName, err = pk.Prompt("Habit name", h.Name); err != nil {
			return err
		}
		if newNote, err = pk.Prompt("Note", h.Note); err != nil {
			return err
		}
	}
	if name != nil {
		newName = *name
	}
	if note != nil {
		newNote = *note
	}

	updated, err := a.store.Edit(h.ID, newName, newNote)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s %s\n", Primary(updated.Name), Silent(shortID(updated.ID)))
	return nil
}
