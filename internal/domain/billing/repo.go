package billing

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// ReplaceForEncounter deletes the encounter's existing charges and
	// inserts the given set in order. Callers run it inside the edit
	// transaction so charges and note commit together.
	ReplaceForEncounter(ctx context.Context, encounterID uuid.UUID, charges []*Charge) error
	ListByEncounter(ctx context.Context, encounterID uuid.UUID) ([]*Charge, error)
}
