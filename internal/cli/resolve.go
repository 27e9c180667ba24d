package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/Flyrell/habitplant/internal/habit"
	"github.com/Flyrell/habitplant/internal/store"
	"github.com/mattn/go-isatty"
)

var errNoHabits = errors.New("no habits yet, plant one with 'habitplant add'")

// isInteractive reports whether both stdin and stdout are terminals.
func isInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// promptKit returns interactive prompts on a terminal and failing prompts
// otherwise, so scripted use gets an error instead of a hang.
func promptKit() PromptKit {
	if isInteractive() {
		return NewPromptKit()
	}
	return NonInteractivePromptKit()
}

// withYes swaps the confirm prompt for AlwaysYes when --yes was given.
func withYes(pk PromptKit, yes bool) PromptKit {
	if yes {
		pk.Confirm = AlwaysYes()
	}
	return pk
}

func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}

func habitLabel(h habit.Habit) string {
	return fmt.Sprintf("%s (%s)", h.Name, shortID(h.ID))
}

// resolveHabit finds the habit named by identifier, or asks the user to
// pick one when identifier is empty.
func resolveHabit(s *store.Store, identifier string, pk PromptKit) (habit.Habit, error) {
	if identifier != "" {
		return s.Resolve(identifier)
	}

	habits := s.Habits()
	if len(habits) == 0 {
		return habit.Habit{}, errNoHabits
	}
	options := make([]string, len(habits))
	for i, h := range habits {
		options[i] = habitLabel(h)
	}
	idx, err := pk.Select("Which habit?", options)
	if err != nil {
		return habit.Habit{}, err
	}
	if idx < 0 || idx >= len(habits) {
		return habit.Habit{}, fmt.Errorf("invalid selection %d", idx)
	}
	return habits[idx], nil
}

// resolveHabits resolves every identifier, or offers a multi-select over
// the habits accepted by filter when none were given.
func resolveHabits(s *store.Store, identifiers []string, title string, filter func(habit.Habit) bool, pk PromptKit) ([]habit.Habit, error) {
	if len(identifiers) > 0 {
		out := make([]habit.Habit, 0, len(identifiers))
		for _, id := range identifiers {
			h, err := s.Resolve(id)
			if err != nil {
				return nil, err
			}
			out = append(out, h)
		}
		return out, nil
	}

	all := s.Habits()
	if len(all) == 0 {
		return nil, errNoHabits
	}
	var candidates []habit.Habit
	for _, h := range all {
		if filter(h) {
			candidates = append(candidates, h)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	options := make([]string, len(candidates))
	for i, h := range candidates {
		options[i] = habitLabel(h)
	}
	picked, err := pk.MultiSelect(title, options)
	if err != nil {
		return nil, err
	}
	out := make([]habit.Habit, 0, len(picked))
	for _, i := range picked {
		if i < 0 || i >= len(candidates) {
			return nil, fmt.Errorf("invalid selection %d", i)
		}
		out = append(out, candidates[i])
	}
	return out, nil
}
