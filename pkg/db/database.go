// Package db composes the task store and note store into the single unit
// that is persisted to disk, and implements its binary codec.
package db

import (
	"fmt"
	"os"

	"github.com/tlasser/regia/pkg/core"
	"github.com/tlasser/regia/pkg/store"
)

// Database is the aggregate of exactly one task store and one note store.
// It is the unit of load and save; neither store is persisted alone.
type Database struct {
	Tasks *store.Store[core.Task]
	Notes *store.Store[core.Note]
}

// New creates an empty database.
func New() *Database {
	return &Database{
		Tasks: store.New[core.Task](),
		Notes: store.New[core.Note](),
	}
}

// Load reads the file at path and decodes it. A missing file is reported as
// core.ErrNotFound so the caller can substitute a fresh database; an
// unreadable file surfaces the underlying I/O error; undecodable bytes are
// reported as core.ErrDecode.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading database: %w", err)
	}
	return Decode(data)
}

// Save encodes the whole database and writes it to path, replacing any
// existing content. The write goes to a temporary file in the same directory
// followed by an atomic rename, so a crash mid-write never leaves a
// truncated database behind.
func (d *Database) Save(path string) error {
	data, err := Encode(d)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("writing database: %w", err)
	}
	return nil
}
