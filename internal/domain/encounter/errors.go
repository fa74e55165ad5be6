package encounter

import "errors"

var (
	// ErrNotFound is returned when the encounter or its note does not exist.
	ErrNotFound = errors.New("encounter not found")

	// ErrLocked is returned when a mutation targets a signed, locked note.
	ErrLocked = errors.New("note is signed and locked")

	// ErrForbidden is returned when the caller may not unlock the note.
	ErrForbidden = errors.New("not allowed to unlock this note")
)
