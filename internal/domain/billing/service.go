package billing

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ReplaceCharges rebuilds the encounter's charge set from a submitted grid.
// It is delete-then-insert, so re-running with identical input yields the
// same final set.
func (s *Service) ReplaceCharges(ctx context.Context, encounterID uuid.UUID, in ChargeInput) ([]*Charge, error) {
	charges := BuildCharges(encounterID, in)
	if err := s.repo.ReplaceForEncounter(ctx, encounterID, charges); err != nil {
		return nil, err
	}
	return charges, nil
}

func (s *Service) ChargesForEncounter(ctx context.Context, encounterID uuid.UUID) ([]*Charge, error) {
	return s.repo.ListByEncounter(ctx, encounterID)
}
