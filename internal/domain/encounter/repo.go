package encounter

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for encounters and their notes.
type Repository interface {
	Create(ctx context.Context, enc *Encounter, note *Note) error
	GetByID(ctx context.Context, id uuid.UUID) (*Encounter, error)
	GetNote(ctx context.Context, encounterID uuid.UUID) (*Note, error)
	UpdateEncounter(ctx context.Context, enc *Encounter) error
	UpdateNote(ctx context.Context, note *Note) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Encounter, int, error)
	ListRecent(ctx context.Context, limit int) ([]*Encounter, error)

	// LatestPriorExtra returns the structured fields of the newest
	// Evaluation or Progress note on the patient's chart, or nil when the
	// chart has none.
	LatestPriorExtra(ctx context.Context, patientID uuid.UUID) (*NoteExtra, error)
}
