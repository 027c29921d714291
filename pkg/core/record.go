package core

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// Record is the unit of storage. Every record carries a 128-bit identity
// assigned at creation and never reassigned; identity is the sole equality
// and ordering key for store operations.
type Record interface {
	// Key returns the record's identity.
	Key() uuid.UUID
}

// CompareID orders two identities by their byte representation.
// Stores keep their records sorted ascending under this ordering.
func CompareID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// ParseID converts the textual form of an identity as received from the
// command line. A malformed value is reported as ErrBadReference.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrBadReference, s)
	}
	return id, nil
}
