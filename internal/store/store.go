package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Flyrell/habitplant/internal/habit"
	"github.com/Flyrell/habitplant/internal/hashutil"
	"github.com/Flyrell/habitplant/internal/stringutil"
	"go.uber.org/zap"
)

// Store holds the habit collection in memory and persists it to a JSON file
// after every mutation. Mutations are applied to a copy and only become
// visible once the file has been written, so a failed save leaves both the
// file and the in-memory collection untouched.
type Store struct {
	path   string
	habits []habit.Habit
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load, save and import events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithClock sets the clock used for "today" and creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Open loads the collection stored at path. A missing file is an empty
// collection. A file that cannot be parsed is discarded: the store starts
// empty and the problem is only logged.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:   path,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the data file, replacing the in-memory collection.
func (s *Store) Reload() error {
	habits, err := readHabits(s.path)
	if errors.Is(err, habit.ErrStorageParse) {
		s.logger.Warn("discarding unreadable habit data", zap.String("path", s.path), zap.Error(err))
		s.habits = []habit.Habit{}
		return nil
	}
	if err != nil {
		return err
	}
	s.habits = habits
	s.logger.Debug("loaded habits", zap.String("path", s.path), zap.Int("count", len(habits)))
	return nil
}

// Path returns the data file location.
func (s *Store) Path() string {
	return s.path
}

// Today returns the current calendar day according to the store's clock.
func (s *Store) Today() habit.Day {
	return habit.DayOf(s.now())
}

// Habits returns a copy of the collection, newest first.
func (s *Store) Habits() []habit.Habit {
	return cloneAll(s.habits)
}

// Search returns the habits whose name or note contains query.
func (s *Store) Search(query string) []habit.Habit {
	var out []habit.Habit
	for _, h := range s.habits {
		if h.Matches(query) {
			out = append(out, clone(h))
		}
	}
	return out
}

// Summary aggregates the whole collection.
func (s *Store) Summary() habit.Summary {
	return habit.Summarize(s.habits)
}

// Get returns the habit with the given id.
func (s *Store) Get(id string) (habit.Habit, error) {
	i := s.index(id)
	if i < 0 {
		return habit.Habit{}, fmt.Errorf("%w: '%s'", habit.ErrNotFound, id)
	}
	return clone(s.habits[i]), nil
}

// Resolve finds a habit by exact id, case-insensitive name, name slug, or
// unique id prefix, in that order.
func (s *Store) Resolve(identifier string) (habit.Habit, error) {
	if i := s.index(identifier); i >= 0 {
		return clone(s.habits[i]), nil
	}
	for _, h := range s.habits {
		if strings.EqualFold(h.Name, identifier) {
			return clone(h), nil
		}
	}
	slug := stringutil.Slugify(identifier)
	if slug != "" {
		for _, h := range s.habits {
			if stringutil.Slugify(h.Name) == slug {
				return clone(h), nil
			}
		}
	}

	var matches []habit.Habit
	for _, h := range s.habits {
		if strings.HasPrefix(h.ID, identifier) {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 0:
		return habit.Habit{}, fmt.Errorf("%w: '%s'", habit.ErrNotFound, identifier)
	case 1:
		return clone(matches[0]), nil
	default:
		return habit.Habit{}, fmt.Errorf("'%s' matches %d habits, use a longer id", identifier, len(matches))
	}
}

// Add creates a habit and places it at the front of the collection.
func (s *Store) Add(name, note string) (habit.Habit, error) {
	if err := habit.ValidateName(name); err != nil {
		return habit.Habit{}, err
	}

	now := s.now()
	id := hashutil.UniqueID(name, now, func(id string) bool { return s.index(id) >= 0 })
	h := habit.New(id, name, note, now)

	next := append([]habit.Habit{h}, cloneAll(s.habits)...)
	if err := s.commit(next); err != nil {
		return habit.Habit{}, err
	}
	s.logger.Debug("added habit", zap.String("id", id), zap.String("name", h.Name))
	return clone(h), nil
}

// Edit replaces the name and note of a habit. History and the withered
// flag are left alone.
func (s *Store) Edit(id, name, note string) (habit.Habit, error) {
	if err := habit.ValidateName(name); err != nil {
		return habit.Habit{}, err
	}
	return s.update(id, func(h habit.Habit) habit.Habit {
		h.Name = strings.TrimSpace(name)
		h.Note = strings.TrimSpace(note)
		return h
	})
}

// Mark records today as done for the habit.
func (s *Store) Mark(id string) (habit.Habit, error) {
	today := s.Today()
	return s.update(id, func(h habit.Habit) habit.Habit {
		return habit.MarkDone(h, today)
	})
}

// Undo removes today's completion from the habit.
func (s *Store) Undo(id string) (habit.Habit, error) {
	today := s.Today()
	return s.update(id, func(h habit.Habit) habit.Habit {
		return habit.Undo(h, today)
	})
}

// Delete removes a habit.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: '%s'", habit.ErrNotFound, id)
	}
	next := cloneAll(s.habits)
	next = append(next[:i], next[i+1:]...)
	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Debug("deleted habit", zap.String("id", id))
	return nil
}

// Reset removes every habit.
func (s *Store) Reset() error {
	if err := s.commit([]habit.Habit{}); err != nil {
		return err
	}
	s.logger.Info("reset habit collection", zap.String("path", s.path))
	return nil
}

// Import replaces the whole collection with the habits read from r.
// Nothing changes unless the payload is a valid JSON array of habits.
func (s *Store) Import(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	habits, err := decodeImport(data)
	if err != nil {
		return 0, err
	}
	if err := s.commit(habits); err != nil {
		return 0, err
	}
	s.logger.Info("imported habits", zap.Int("count", len(habits)))
	return len(habits), nil
}

// Export writes the collection as an indented JSON array.
func (s *Store) Export(w io.Writer) error {
	data, err := encode(s.habits)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (s *Store) update(id string, fn func(habit.Habit) habit.Habit) (habit.Habit, error) {
	i := s.index(id)
	if i < 0 {
		return habit.Habit{}, fmt.Errorf("%w: '%s'", habit.ErrNotFound, id)
	}
	next := cloneAll(s.habits)
	next[i] = fn(next[i])
	if err := s.commit(next); err != nil {
		return habit.Habit{}, err
	}
	return clone(next[i]), nil
}

func (s *Store) commit(next []habit.Habit) error {
	if err := writeHabits(s.path, next); err != nil {
		return fmt.Errorf("saving habits: %w", err)
	}
	s.habits = next
	s.logger.Debug("saved habits", zap.String("path", s.path), zap.Int("count", len(next)))
	return nil
}

func (s *Store) index(id string) int {
	for i := range s.habits {
		if s.habits[i].ID == id {
			return i
		}
	}
	return -1
}

func readHabits(path string) ([]habit.Habit, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return []habit.Habit{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []habit.Habit{}, nil
	}

	var habits []habit.Habit
	if err := json.Unmarshal(data, &habits); err != nil {
		return nil, fmt.Errorf("%w: %v", habit.ErrStorageParse, err)
	}
	return normalizeAll(habits), nil
}

// writeHabits replaces the data file through a temp file and rename so a
// crash mid-write never leaves a truncated collection behind.
func writeHabits(path string, habits []habit.Habit) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := encode(habits)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".habits-*.json")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func encode(habits []habit.Habit) ([]byte, error) {
	if habits == nil {
		habits = []habit.Habit{}
	}
	return json.MarshalIndent(habits, "", "  ")
}

func decodeImport(data []byte) ([]habit.Habit, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: failed to parse JSON", habit.ErrImportFormat)
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array of habits", habit.ErrImportFormat)
	}

	var habits []habit.Habit
	if err := json.Unmarshal(data, &habits); err != nil {
		return nil, fmt.Errorf("%w: %v", habit.ErrImportFormat, err)
	}

	seen := make(map[string]struct{}, len(habits))
	for i, h := range habits {
		if h.ID == "" {
			return nil, fmt.Errorf("%w: habit #%d has no id", habit.ErrImportFormat, i+1)
		}
		if _, dup := seen[h.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate habit id '%s'", habit.ErrImportFormat, h.ID)
		}
		seen[h.ID] = struct{}{}
	}
	return normalizeAll(habits), nil
}

func normalizeAll(habits []habit.Habit) []habit.Habit {
	out := make([]habit.Habit, len(habits))
	for i, h := range habits {
		out[i] = h.Normalize()
	}
	return out
}

func clone(h habit.Habit) habit.Habit {
	h.History = append([]habit.Day{}, h.History...)
	return h
}

func cloneAll(habits []habit.Habit) []habit.Habit {
	out := make([]habit.Habit, len(habits))
	for i, h := range habits {
		out[i] = clone(h)
	}
	return out
}
