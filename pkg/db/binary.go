package db

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/tlasser/regia/pkg/core"
)

// Wire primitives. Everything is little-endian; strings are a uint32 length
// followed by raw bytes; optional values are a presence byte followed by the
// value; timestamps are UTC nanoseconds since the Unix epoch.

func writeString(buf *bytes.Buffer, s string) error {
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := buf.WriteString(s)
	return err
}

func writeOptionalTime(buf *bytes.Buffer, t *time.Time) error {
	if t == nil {
		return buf.WriteByte(0)
	}
	if err := buf.WriteByte(1); err != nil {
		return err
	}
	return binary.Write(buf, binary.LittleEndian, t.UnixNano())
}

// decoder reads wire primitives, reporting any malformed or truncated input
// as core.ErrDecode tagged with the field being read.
type decoder struct {
	r *bytes.Reader
}

func (d *decoder) fail(field string) error {
	return fmt.Errorf("reading %s: %w", field, core.ErrDecode)
}

func (d *decoder) byte(field string) (byte, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, d.fail(field)
	}
	return b, nil
}

func (d *decoder) uint32(field string) (uint32, error) {
	var v uint32
	if err := binary.Read(d.r, binary.LittleEndian, &v); err != nil {
		return 0, d.fail(field)
	}
	return v, nil
}

// count reads an element count and bounds it by the remaining bytes divided
// by the minimum wire size of one element, so corrupt input cannot force a
// huge allocation before any element is decoded.
func (d *decoder) count(field string, minSize int) (uint32, error) {
	n, err := d.uint32(field)
	if err != nil {
		return 0, err
	}
	if int64(n)*int64(minSize) > int64(d.r.Len()) {
		return 0, d.fail(field)
	}
	return n, nil
}

func (d *decoder) int64(field string) (int64, error) {
	var v int64
	if err := binary.Read(d.r, binary.LittleEndian, &v); err != nil {
		return 0, d.fail(field)
	}
	return v, nil
}

func (d *decoder) id(field string) (uuid.UUID, error) {
	var id uuid.UUID
	if _, err := io.ReadFull(d.r, id[:]); err != nil {
		return uuid.Nil, d.fail(field)
	}
	return id, nil
}

func (d *decoder) str(field string) (string, error) {
	length, err := d.uint32(field)
	if err != nil {
		return "", err
	}
	// Guard against lengths pointing past the end of the buffer.
	if int(length) > d.r.Len() {
		return "", d.fail(field)
	}
	b := make([]byte, length)
	if _, err := io.ReadFull(d.r, b); err != nil {
		return "", d.fail(field)
	}
	return string(b), nil
}

func (d *decoder) time(field string) (time.Time, error) {
	nanos, err := d.int64(field)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, nanos).UTC(), nil
}

func (d *decoder) optionalTime(field string) (*time.Time, error) {
	present, err := d.byte(field)
	if err != nil {
		return nil, err
	}
	switch present {
	case 0:
		return nil, nil
	case 1:
		t, err := d.time(field)
		if err != nil {
			return nil, err
		}
		return &t, nil
	default:
		return nil, d.fail(field)
	}
}
