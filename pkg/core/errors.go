package core

import "errors"

// Common errors.
var (
	// ErrNotFound signals an absent record or database file. Callers are
	// expected to substitute a fresh default when loading, rather than
	// treat it as fatal.
	ErrNotFound = errors.New("not found")

	// ErrDecode signals bytes that are not a valid database encoding,
	// including version skew. There is no partial recovery.
	ErrDecode = errors.New("invalid database encoding")

	// ErrBadReference signals a syntactically invalid identity supplied
	// by a caller (e.g. a dependency or removal target).
	ErrBadReference = errors.New("bad identity reference")
)
