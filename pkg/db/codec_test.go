package db

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tlasser/regia/pkg/core"
)

// sampleDatabase builds an aggregate exercising every field: scheduled and
// unscheduled tasks, dependencies, and notes.
func sampleDatabase(t *testing.T) *Database {
	t.Helper()

	d := New()

	due := time.Date(2026, 9, 14, 18, 30, 0, 123456789, time.UTC)
	deadline := core.NewScheduledTask("file quarterly report", 1, &due, core.KindDeadline, core.RepeatNone)
	repeated := core.NewScheduledTask("water plants", 3, nil, core.KindRepeated, core.RepeatWeekly)
	plain := core.NewTask("sharpen pencils", 0)
	plain.AddDependency(deadline.ID)
	plain.AddDependency(repeated.ID)

	d.Tasks.Add(deadline)
	d.Tasks.Add(repeated)
	d.Tasks.Add(plain)

	d.Notes.Add(core.NewNote("remember the milk"))
	d.Notes.Add(core.NewNote("call back tuesday"))

	return d
}

func taskEqual(t *testing.T, want, got core.Task) {
	t.Helper()

	if got.ID != want.ID {
		t.Errorf("identity mismatch: %s != %s", got.ID, want.ID)
	}
	if got.Priority != want.Priority {
		t.Errorf("priority mismatch: %d != %d", got.Priority, want.Priority)
	}
	if !got.Created.Equal(want.Created) {
		t.Errorf("created mismatch: %v != %v", got.Created, want.Created)
	}
	switch {
	case (got.Due == nil) != (want.Due == nil):
		t.Errorf("due presence mismatch: %v != %v", got.Due, want.Due)
	case got.Due != nil && !got.Due.Equal(*want.Due):
		t.Errorf("due mismatch: %v != %v", got.Due, want.Due)
	}
	if got.Content != want.Content {
		t.Errorf("content mismatch: %q != %q", got.Content, want.Content)
	}
	if got.Kind != want.Kind {
		t.Errorf("kind mismatch: %v != %v", got.Kind, want.Kind)
	}
	if got.Repeat != want.Repeat {
		t.Errorf("repeat mismatch: %v != %v", got.Repeat, want.Repeat)
	}
	if len(got.Depends) != len(want.Depends) {
		t.Fatalf("dependency count mismatch: %d != %d", len(got.Depends), len(want.Depends))
	}
	for id := range want.Depends {
		if !got.DependsOn(id) {
			t.Errorf("dependency %s lost", id)
		}
	}
}

func databaseEqual(t *testing.T, want, got *Database) {
	t.Helper()

	if got.Tasks.ID() != want.Tasks.ID() || got.Tasks.Group() != want.Tasks.Group() {
		t.Errorf("task store identity/group mismatch")
	}
	if got.Notes.ID() != want.Notes.ID() || got.Notes.Group() != want.Notes.Group() {
		t.Errorf("note store identity/group mismatch")
	}

	wantTasks, gotTasks := want.Tasks.All(), got.Tasks.All()
	if len(gotTasks) != len(wantTasks) {
		t.Fatalf("task count mismatch: %d != %d", len(gotTasks), len(wantTasks))
	}
	for i := range wantTasks {
		taskEqual(t, wantTasks[i], gotTasks[i])
	}

	wantNotes, gotNotes := want.Notes.All(), got.Notes.All()
	if len(gotNotes) != len(wantNotes) {
		t.Fatalf("note count mismatch: %d != %d", len(gotNotes), len(wantNotes))
	}
	for i := range wantNotes {
		if gotNotes[i].ID != wantNotes[i].ID ||
			!gotNotes[i].Created.Equal(wantNotes[i].Created) ||
			gotNotes[i].Content != wantNotes[i].Content {
			t.Errorf("note mismatch at %d: %+v != %+v", i, gotNotes[i], wantNotes[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("Full Aggregate", func(t *testing.T) {
		want := sampleDatabase(t)

		data, err := Encode(want)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}

		databaseEqual(t, want, got)
	})

	t.Run("Empty Database", func(t *testing.T) {
		want := New()

		data, err := Encode(want)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}

		databaseEqual(t, want, got)
	})

	t.Run("Deterministic", func(t *testing.T) {
		d := sampleDatabase(t)

		first, err := Encode(d)
		if err != nil {
			t.Fatal(err)
		}
		second, err := Encode(d)
		if err != nil {
			t.Fatal(err)
		}

		if string(first) != string(second) {
			t.Error("Encoding the same database twice produced different bytes")
		}
	})
}

// taskStoreHeader writes a well-formed preamble up to the task store's record
// count: magic, version, group identity, group name.
func taskStoreHeader(buf *bytes.Buffer) {
	binary.Write(buf, binary.LittleEndian, Magic)
	binary.Write(buf, binary.LittleEndian, Version)
	id := uuid.New()
	buf.Write(id[:])
	binary.Write(buf, binary.LittleEndian, uint32(4))
	buf.WriteString("root")
}

func hugeRecordCount() []byte {
	var buf bytes.Buffer
	taskStoreHeader(&buf)
	binary.Write(&buf, binary.LittleEndian, uint32(0xFFFFFFFF))
	return buf.Bytes()
}

func hugeDependencyCount() []byte {
	var buf bytes.Buffer
	taskStoreHeader(&buf)
	binary.Write(&buf, binary.LittleEndian, uint32(1)) // one task
	id := uuid.New()
	buf.Write(id[:])
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // priority
	binary.Write(&buf, binary.LittleEndian, int64(0))  // created
	buf.WriteByte(0)                                   // no due
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // empty content
	buf.WriteByte(0)                                   // kind
	buf.WriteByte(0)                                   // repeat
	binary.Write(&buf, binary.LittleEndian, uint32(0xFFFFFFFF))
	return buf.Bytes()
}

func TestDecodeFaults(t *testing.T) {
	valid, err := Encode(sampleDatabase(t))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	cases := []struct {
		name string
		data []byte
	}{
		{"Empty Input", nil},
		{"Foreign Bytes", []byte("this is not a database")},
		{"Bad Magic", append([]byte{0xde, 0xad, 0xbe, 0xef}, valid[4:]...)},
		{"Version Skew", append(append([]byte{}, valid[:4]...), append([]byte{0xff, 0x00, 0x00, 0x00}, valid[8:]...)...)},
		{"Truncated", valid[:len(valid)/2]},
		{"Trailing Bytes", append(append([]byte{}, valid...), 0x00)},
		// Counts larger than the remaining bytes could ever hold must fail
		// cleanly instead of driving a giant allocation.
		{"Huge Record Count", hugeRecordCount()},
		{"Huge Dependency Count", hugeDependencyCount()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.data)
			if !errors.Is(err, core.ErrDecode) {
				t.Errorf("Expected ErrDecode, got %v", err)
			}
		})
	}
}
