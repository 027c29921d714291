package core

import (
	"time"

	"github.com/google/uuid"
)

// Note is a plain annotated text record. Simpler than Task: no priority,
// no dependencies, no classification.
type Note struct {
	ID      uuid.UUID
	Created time.Time
	Content string
}

// NewNote creates a note with the given content.
func NewNote(content string) Note {
	return Note{
		ID:      uuid.New(),
		Created: time.Now().UTC(),
		Content: content,
	}
}

// Key returns the note's identity.
func (n Note) Key() uuid.UUID {
	return n.ID
}
