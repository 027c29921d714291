package core

import (
	"time"

	"github.com/google/uuid"
)

// TaskKind classifies a scheduled task. The zero value means the task has
// no due date and no repetition.
type TaskKind uint8

const (
	KindNone TaskKind = iota
	KindDeadline
	KindRepeated
)

// Repeat is the period of a repeated task. The zero value means no repetition.
type Repeat uint8

const (
	RepeatNone Repeat = iota
	RepeatDaily
	RepeatWeekly
	RepeatMonthly
)

// String returns the lowercase period name.
func (r Repeat) String() string {
	switch r {
	case RepeatDaily:
		return "daily"
	case RepeatWeekly:
		return "weekly"
	case RepeatMonthly:
		return "monthly"
	default:
		return "none"
	}
}

// Task is a user-authored to-do item. Identity and creation timestamp are
// fixed at construction; only the dependency set grows afterwards.
type Task struct {
	ID       uuid.UUID
	Priority uint32 // lower value = more urgent
	Created  time.Time
	Due      *time.Time
	Content  string
	Kind     TaskKind
	Repeat   Repeat
	Depends  map[uuid.UUID]struct{}
}

// NewTask creates an unscheduled task with the given content and priority.
func NewTask(content string, priority uint32) Task {
	return Task{
		ID:       uuid.New(),
		Priority: priority,
		Created:  time.Now().UTC(),
		Content:  content,
		Depends:  make(map[uuid.UUID]struct{}),
	}
}

// NewScheduledTask creates a task carrying a classification: a deadline task
// with a due date, or a repeated task with an optional due date and period.
func NewScheduledTask(content string, priority uint32, due *time.Time, kind TaskKind, repeat Repeat) Task {
	t := NewTask(content, priority)
	t.Due = due
	t.Kind = kind
	t.Repeat = repeat
	return t
}

// Key returns the task's identity.
func (t Task) Key() uuid.UUID {
	return t.ID
}

// AddDependency records that this task depends on the task named by id.
// Adding the same identity twice has no additional effect. The reference is
// not validated against any store and may dangle.
func (t *Task) AddDependency(id uuid.UUID) {
	if t.Depends == nil {
		t.Depends = make(map[uuid.UUID]struct{})
	}
	t.Depends[id] = struct{}{}
}

// DependsOn reports whether this task declares a dependency on id.
func (t Task) DependsOn(id uuid.UUID) bool {
	_, ok := t.Depends[id]
	return ok
}
