package audit

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ptalab/emr/internal/platform/auth"
)

// Service records chart activity. Recording is best-effort: a failed insert
// is logged and swallowed so it can never fail the operation being audited.
type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record writes one activity entry attributed to the authenticated caller.
// A nil uuid for patient or encounter stores as absent.
func (s *Service) Record(ctx context.Context, action string, patientID, encounterID uuid.UUID, details string) {
	s.record(ctx, auth.UserIDFromContext(ctx), action, patientID, encounterID, details)
}

// RecordFor writes an entry for an explicitly named user. Login needs this
// form: the request carries no identity until the token has been issued.
func (s *Service) RecordFor(ctx context.Context, userID uuid.UUID, action, details string) {
	s.record(ctx, userID, action, uuid.Nil, uuid.Nil, details)
}

func (s *Service) record(ctx context.Context, userID uuid.UUID, action string, patientID, encounterID uuid.UUID, details string) {
	e := &Entry{
		UserID: userID,
		Action: action,
	}
	if patientID != uuid.Nil {
		e.PatientID = &patientID
	}
	if encounterID != uuid.Nil {
		e.EncounterID = &encounterID
	}
	if details != "" {
		e.Details = &details
	}

	if err := s.repo.Insert(ctx, e); err != nil {
		s.logger.Error().Err(err).Str("action", action).Msg("audit insert failed")
	}
}

func (s *Service) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	return s.repo.ListRecent(ctx, limit)
}

func (s *Service) ForPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*Entry, error) {
	return s.repo.ListByPatient(ctx, patientID, limit)
}
