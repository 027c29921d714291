// Package regia wires the record stores and their persistence into the
// unit of work the command line operates on: load the database (or start
// fresh), mutate it in memory, save it back as a whole.
package regia

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/tlasser/regia/pkg/core"
	"github.com/tlasser/regia/pkg/db"
)

// Service holds one loaded database for the duration of a command
// invocation. It is not safe for concurrent use; the design assumes a single
// process has the database file open at a time.
type Service struct {
	path   string
	db     *db.Database
	logger *slog.Logger
}

// Open loads the database at path. A missing file yields a fresh empty
// database unless WithMustExist was given; an unreadable or undecodable file
// is an error.
func Open(path string, opts ...Option) (*Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	database, err := db.Load(path)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) && !o.mustExist {
			logger.Debug("database missing, starting fresh", "path", path)
			database = db.New()
		} else {
			return nil, err
		}
	}

	return &Service{
		path:   path,
		db:     database,
		logger: logger,
	}, nil
}

// Path returns the database file location.
func (s *Service) Path() string {
	return s.path
}

// Database exposes the loaded aggregate.
func (s *Service) Database() *db.Database {
	return s.db
}

// Save persists the whole database back to disk.
func (s *Service) Save() error {
	s.logger.Debug("saving database", "path", s.path,
		"tasks", s.db.Tasks.Len(), "notes", s.db.Notes.Len())
	return s.db.Save(s.path)
}

// --- Tasks ---

// AddTask inserts a task into the task store.
func (s *Service) AddTask(t core.Task) {
	s.logger.Debug("adding task", "id", t.ID, "priority", t.Priority)
	s.db.Tasks.Add(t)
}

// Task returns the task with the given identity.
func (s *Service) Task(id uuid.UUID) (core.Task, error) {
	t, ok := s.db.Tasks.Get(id)
	if !ok {
		return core.Task{}, fmt.Errorf("task %s: %w", id, core.ErrNotFound)
	}
	return t, nil
}

// Tasks returns all tasks in ascending identity order.
func (s *Service) Tasks() []core.Task {
	return s.db.Tasks.All()
}

// TasksByCreation returns a display copy of the tasks, newest first. The
// store's own identity order is untouched.
func (s *Service) TasksByCreation() []core.Task {
	tasks := s.db.Tasks.All()
	slices.SortFunc(tasks, func(a, b core.Task) int {
		return b.Created.Compare(a.Created)
	})
	return tasks
}

// SearchTasks returns the tasks whose content contains the substring.
func (s *Service) SearchTasks(substr string) []core.Task {
	var matches []core.Task
	for _, t := range s.db.Tasks.All() {
		if strings.Contains(t.Content, substr) {
			matches = append(matches, t)
		}
	}
	return matches
}

// RemoveTask deletes the task with the given identity; absent identities are
// a no-op.
func (s *Service) RemoveTask(id uuid.UUID) bool {
	removed := s.db.Tasks.Remove(id)
	s.logger.Debug("removing task", "id", id, "removed", removed)
	return removed
}

// AddDependency records that the stored task depends on the task named by
// dep. The target task must exist in the store; the dependency itself is
// purely referential and is not validated.
func (s *Service) AddDependency(taskID, dep uuid.UUID) error {
	t, err := s.Task(taskID)
	if err != nil {
		return err
	}
	t.AddDependency(dep)
	s.db.Tasks.Add(t)
	return nil
}

// --- Notes ---

// AddNote inserts a note into the note store.
func (s *Service) AddNote(n core.Note) {
	s.logger.Debug("adding note", "id", n.ID)
	s.db.Notes.Add(n)
}

// Note returns the note with the given identity.
func (s *Service) Note(id uuid.UUID) (core.Note, error) {
	n, ok := s.db.Notes.Get(id)
	if !ok {
		return core.Note{}, fmt.Errorf("note %s: %w", id, core.ErrNotFound)
	}
	return n, nil
}

// Notes returns all notes in ascending identity order.
func (s *Service) Notes() []core.Note {
	return s.db.Notes.All()
}

// NotesByCreation returns a display copy of the notes, newest first.
func (s *Service) NotesByCreation() []core.Note {
	notes := s.db.Notes.All()
	slices.SortFunc(notes, func(a, b core.Note) int {
		return b.Created.Compare(a.Created)
	})
	return notes
}

// SearchNotes returns the notes whose content contains the substring.
func (s *Service) SearchNotes(substr string) []core.Note {
	var matches []core.Note
	for _, n := range s.db.Notes.All() {
		if strings.Contains(n.Content, substr) {
			matches = append(matches, n)
		}
	}
	return matches
}

// RemoveNote deletes the note with the given identity; absent identities are
// a no-op.
func (s *Service) RemoveNote(id uuid.UUID) bool {
	removed := s.db.Notes.Remove(id)
	s.logger.Debug("removing note", "id", id, "removed", removed)
	return removed
}
