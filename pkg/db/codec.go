package db

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/tlasser/regia/pkg/core"
	"github.com/tlasser/regia/pkg/store"
)

const (
	// Magic identifies a regia database file ("RGDB" on disk).
	Magic uint32 = 0x42444752

	// Version is the current format version. Decoding bytes written by a
	// different version fails with a decode fault; there is no migration.
	Version uint32 = 1
)

// Minimum encoded sizes, used to bound counts read from untrusted bytes.
const (
	minTaskSize = 16 + 4 + 8 + 1 + 4 + 1 + 1 + 4 // identity, priority, created, due flag, content length, kind, repeat, dependency count
	minNoteSize = 16 + 8 + 4                      // identity, created, content length
	depSize     = 16
)

// Encode serializes the database deterministically: stores in task/note
// order, records in ascending identity order, dependency sets in sorted
// order. It succeeds for any database reachable through normal construction;
// a failure here indicates a programming defect, not a user condition.
func Encode(d *Database) ([]byte, error) {
	var buf bytes.Buffer

	if err := binary.Write(&buf, binary.LittleEndian, Magic); err != nil {
		return nil, fmt.Errorf("writing magic: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, Version); err != nil {
		return nil, fmt.Errorf("writing version: %w", err)
	}

	if err := encodeStore(&buf, d.Tasks, encodeTask); err != nil {
		return nil, fmt.Errorf("encoding tasks: %w", err)
	}
	if err := encodeStore(&buf, d.Notes, encodeNote); err != nil {
		return nil, fmt.Errorf("encoding notes: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode is the exact inverse of Encode. Bytes not produced by this codec,
// or produced by an incompatible version, fail with core.ErrDecode.
func Decode(data []byte) (*Database, error) {
	d := &decoder{r: bytes.NewReader(data)}

	magic, err := d.uint32("magic")
	if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, fmt.Errorf("bad magic: %w", core.ErrDecode)
	}

	version, err := d.uint32("version")
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, fmt.Errorf("unsupported version %d: %w", version, core.ErrDecode)
	}

	tasks, err := decodeStore(d, minTaskSize, decodeTask)
	if err != nil {
		return nil, fmt.Errorf("decoding tasks: %w", err)
	}
	notes, err := decodeStore(d, minNoteSize, decodeNote)
	if err != nil {
		return nil, fmt.Errorf("decoding notes: %w", err)
	}

	if d.r.Len() != 0 {
		return nil, fmt.Errorf("%d trailing bytes: %w", d.r.Len(), core.ErrDecode)
	}

	return &Database{Tasks: tasks, Notes: notes}, nil
}

// --- Store ---

func encodeStore[T core.Record](buf *bytes.Buffer, s *store.Store[T], enc func(*bytes.Buffer, T) error) error {
	id := s.ID()
	if _, err := buf.Write(id[:]); err != nil {
		return fmt.Errorf("writing group identity: %w", err)
	}
	if err := writeString(buf, s.Group()); err != nil {
		return fmt.Errorf("writing group name: %w", err)
	}

	records := s.All()
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(records))); err != nil {
		return fmt.Errorf("writing record count: %w", err)
	}
	for _, rec := range records {
		if err := enc(buf, rec); err != nil {
			return err
		}
	}
	return nil
}

func decodeStore[T core.Record](d *decoder, minSize int, dec func(*decoder) (T, error)) (*store.Store[T], error) {
	id, err := d.id("group identity")
	if err != nil {
		return nil, err
	}
	group, err := d.str("group name")
	if err != nil {
		return nil, err
	}
	count, err := d.count("record count", minSize)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, count)
	for i := uint32(0); i < count; i++ {
		rec, err := dec(d)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return store.Restore(id, group, records), nil
}

// --- Task ---

func encodeTask(buf *bytes.Buffer, t core.Task) error {
	if _, err := buf.Write(t.ID[:]); err != nil {
		return fmt.Errorf("writing task identity: %w", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, t.Priority); err != nil {
		return fmt.Errorf("writing priority: %w", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, t.Created.UnixNano()); err != nil {
		return fmt.Errorf("writing created time: %w", err)
	}

	if err := writeOptionalTime(buf, t.Due); err != nil {
		return fmt.Errorf("writing due time: %w", err)
	}
	if err := writeString(buf, t.Content); err != nil {
		return fmt.Errorf("writing content: %w", err)
	}
	if err := buf.WriteByte(byte(t.Kind)); err != nil {
		return fmt.Errorf("writing kind: %w", err)
	}
	if err := buf.WriteByte(byte(t.Repeat)); err != nil {
		return fmt.Errorf("writing repeat: %w", err)
	}

	deps := make([]uuid.UUID, 0, len(t.Depends))
	for id := range t.Depends {
		deps = append(deps, id)
	}
	slices.SortFunc(deps, core.CompareID)

	if err := binary.Write(buf, binary.LittleEndian, uint32(len(deps))); err != nil {
		return fmt.Errorf("writing dependency count: %w", err)
	}
	for _, id := range deps {
		if _, err := buf.Write(id[:]); err != nil {
			return fmt.Errorf("writing dependency: %w", err)
		}
	}
	return nil
}

func decodeTask(d *decoder) (core.Task, error) {
	var t core.Task
	var err error

	if t.ID, err = d.id("task identity"); err != nil {
		return t, err
	}
	if t.Priority, err = d.uint32("priority"); err != nil {
		return t, err
	}
	if t.Created, err = d.time("created time"); err != nil {
		return t, err
	}
	if t.Due, err = d.optionalTime("due time"); err != nil {
		return t, err
	}
	if t.Content, err = d.str("content"); err != nil {
		return t, err
	}

	kind, err := d.byte("kind")
	if err != nil {
		return t, err
	}
	if kind > byte(core.KindRepeated) {
		return t, fmt.Errorf("unknown task kind %d: %w", kind, core.ErrDecode)
	}
	t.Kind = core.TaskKind(kind)

	repeat, err := d.byte("repeat")
	if err != nil {
		return t, err
	}
	if repeat > byte(core.RepeatMonthly) {
		return t, fmt.Errorf("unknown repeat period %d: %w", repeat, core.ErrDecode)
	}
	t.Repeat = core.Repeat(repeat)

	count, err := d.count("dependency count", depSize)
	if err != nil {
		return t, err
	}
	t.Depends = make(map[uuid.UUID]struct{}, count)
	for i := uint32(0); i < count; i++ {
		dep, err := d.id("dependency")
		if err != nil {
			return t, err
		}
		t.Depends[dep] = struct{}{}
	}
	return t, nil
}

// --- Note ---

func encodeNote(buf *bytes.Buffer, n core.Note) error {
	if _, err := buf.Write(n.ID[:]); err != nil {
		return fmt.Errorf("writing note identity: %w", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, n.Created.UnixNano()); err != nil {
		return fmt.Errorf("writing created time: %w", err)
	}
	if err := writeString(buf, n.Content); err != nil {
		return fmt.Errorf("writing content: %w", err)
	}
	return nil
}

func decodeNote(d *decoder) (core.Note, error) {
	var n core.Note
	var err error

	if n.ID, err = d.id("note identity"); err != nil {
		return n, err
	}
	if n.Created, err = d.time("created time"); err != nil {
		return n, err
	}
	if n.Content, err = d.str("content"); err != nil {
		return n, err
	}
	return n, nil
}
