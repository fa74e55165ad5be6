package audit

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for the activity log.
type Repository interface {
	Insert(ctx context.Context, e *Entry) error
	ListRecent(ctx context.Context, limit int) ([]*Entry, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*Entry, error)
}
