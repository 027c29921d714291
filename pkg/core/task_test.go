package core

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	task := NewTask("write report", 2)

	if task.ID == uuid.Nil {
		t.Error("Expected a non-nil identity")
	}
	if task.Priority != 2 {
		t.Errorf("Expected priority 2, got %d", task.Priority)
	}
	if task.Content != "write report" {
		t.Errorf("Unexpected content: %q", task.Content)
	}
	if task.Created.IsZero() {
		t.Error("Creation timestamp not set")
	}
	if task.Created.Location() != time.UTC {
		t.Error("Creation timestamp not in UTC")
	}
	if task.Due != nil || task.Kind != KindNone || task.Repeat != RepeatNone {
		t.Error("Unscheduled task should carry no due date, kind or repeat")
	}
	if len(task.Depends) != 0 {
		t.Error("New task should have no dependencies")
	}
}

func TestNewScheduledTask(t *testing.T) {
	t.Run("Deadline", func(t *testing.T) {
		due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		task := NewScheduledTask("file taxes", 1, &due, KindDeadline, RepeatNone)

		if task.Kind != KindDeadline {
			t.Errorf("Expected deadline kind, got %v", task.Kind)
		}
		if task.Due == nil || !task.Due.Equal(due) {
			t.Errorf("Due date not preserved: %v", task.Due)
		}
	})

	t.Run("Repeated", func(t *testing.T) {
		task := NewScheduledTask("water plants", 0, nil, KindRepeated, RepeatWeekly)

		if task.Kind != KindRepeated {
			t.Errorf("Expected repeated kind, got %v", task.Kind)
		}
		if task.Repeat != RepeatWeekly {
			t.Errorf("Expected weekly repeat, got %v", task.Repeat)
		}
		if task.Due != nil {
			t.Error("Expected no due date")
		}
	})
}

func TestAddDependency(t *testing.T) {
	t.Run("Records Reference", func(t *testing.T) {
		task := NewTask("parent", 0)
		dep := uuid.New()

		task.AddDependency(dep)

		if !task.DependsOn(dep) {
			t.Error("Dependency not recorded")
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		task := NewTask("parent", 0)
		dep := uuid.New()

		task.AddDependency(dep)
		task.AddDependency(dep)

		if len(task.Depends) != 1 {
			t.Errorf("Expected 1 dependency after duplicate add, got %d", len(task.Depends))
		}
	})

	t.Run("Nil Set", func(t *testing.T) {
		var task Task
		dep := uuid.New()

		task.AddDependency(dep)

		if !task.DependsOn(dep) {
			t.Error("Dependency not recorded on zero-value task")
		}
	})
}

func TestCompareID(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	if CompareID(a, b) >= 0 {
		t.Error("Expected a < b")
	}
	if CompareID(b, a) <= 0 {
		t.Error("Expected b > a")
	}
	if CompareID(a, a) != 0 {
		t.Error("Expected a == a")
	}
}

func TestParseID(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		id := uuid.New()
		got, err := ParseID(id.String())
		if err != nil {
			t.Fatalf("ParseID failed: %v", err)
		}
		if got != id {
			t.Errorf("Expected %s, got %s", id, got)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseID("not-an-identity")
		if !errors.Is(err, ErrBadReference) {
			t.Errorf("Expected ErrBadReference, got %v", err)
		}
	})
}
