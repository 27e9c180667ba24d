package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Flyrell/habitplant/internal/habit"
	"github.com/Flyrell/habitplant/internal/store"
	"github.com/Flyrell/habitplant/internal/watch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	boardTitleStyle    = lipgloss.NewStyle().Bold(true)
	boardFooterStyle   = lipgloss.NewStyle().Faint(true)
	boardSelectedStyle = lipgloss.NewStyle().Reverse(true)
)

type boardMode int

const (
	boardNormal boardMode = iota
	boardConfirmDelete
)

// reloadMsg is sent when the data file changed on disk.
type reloadMsg struct{}

type boardModel struct {
	store      *store.Store
	theme      string
	recentDays int
	habits     []habit.Habit
	cursor     int
	mode       boardMode
	footerMsg  string
	termWidth  int
	termHeight int
}

var boardCmd = LeafCommand{
	Use:   "board",
	Short: "Open the interactive garden",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runBoard(cmd, homeDir, time.Now)
	},
}.Build()

func newBoardModel(s *store.Store, theme string, recentDays int) boardModel {
	return boardModel{
		store:      s,
		theme:      theme,
		recentDays: recentDays,
		habits:     s.Habits(),
		termWidth:  100,
		termHeight: 30,
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

// selected returns the habit under the cursor.
func (m boardModel) selected() (habit.Habit, bool) {
	if m.cursor < 0 || m.cursor >= len(m.habits) {
		return habit.Habit{}, false
	}
	return m.habits[m.cursor], true
}

// refresh re-reads the collection from the store, keeping the cursor on the
// same habit when it still exists.
func (m boardModel) refresh() boardModel {
	current, hadSelection := m.selected()
	m.habits = m.store.Habits()

	if hadSelection {
		for i, h := range m.habits {
			if h.ID == current.ID {
				m.cursor = i
				return m
			}
		}
	}
	if m.cursor >= len(m.habits) {
		m.cursor = len(m.habits) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

func runBoard(cmd *cobra.Command, homeDir string, now func() time.Time) error {
	a, err := openApp(cmd, homeDir, now)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// Non-TTY fallback: print the garden once
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		_, err := fmt.Fprint(out, renderStaticBoard(a.store.Habits(), a.store.Summary(), a.store.Today()))
		return err
	}

	if err := os.MkdirAll(filepath.Dir(a.store.Path()), 0755); err != nil {
		return err
	}

	m := newBoardModel(a.store, a.cfg.Theme, a.cfg.RecentDays)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		err := watch.File(ctx, a.store.Path(), watch.DefaultDebounce, a.logger, func() {
			p.Send(reloadMsg{})
		})
		if err != nil {
			a.logger.Warn("live reload disabled", zap.Error(err))
		}
	}()

	_, err = p.Run()
	return err
}
