package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ptalab/emr/internal/platform/auth"
)

type mockRepo struct {
	entries   []*Entry
	insertErr error
}

func (m *mockRepo) Insert(_ context.Context, e *Entry) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockRepo) ListRecent(_ context.Context, limit int) ([]*Entry, error) {
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	return m.entries[:limit], nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, _ int) ([]*Entry, error) {
	var out []*Entry
	for _, e := range m.entries {
		if e.PatientID != nil && *e.PatientID == patientID {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestRecord(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, zerolog.Nop())

	userID := uuid.New()
	patientID := uuid.New()
	ctx := context.WithValue(context.Background(), auth.UserIDKey, userID)

	svc.Record(ctx, "encounter.sign", patientID, uuid.Nil, "")

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	e := repo.entries[0]
	if e.UserID != userID || e.Action != "encounter.sign" {
		t.Errorf("entry: %+v", e)
	}
	if e.PatientID == nil || *e.PatientID != patientID {
		t.Errorf("patient id: %v", e.PatientID)
	}
	if e.EncounterID != nil {
		t.Errorf("nil encounter must store absent, got %v", e.EncounterID)
	}
	if e.Details != nil {
		t.Errorf("empty details must store absent, got %v", e.Details)
	}
}

func TestRecordFor_AttributesExplicitUser(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, zerolog.Nop())

	userID := uuid.New()
	svc.RecordFor(context.Background(), userID, "login", "alex@clinic.test")

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	e := repo.entries[0]
	if e.UserID != userID || e.Action != "login" {
		t.Errorf("entry: %+v", e)
	}
	if e.PatientID != nil || e.EncounterID != nil {
		t.Errorf("login entry must not reference a chart: %+v", e)
	}
	if e.Details == nil || *e.Details != "alex@clinic.test" {
		t.Errorf("details: %v", e.Details)
	}
}

func TestRecord_SwallowsInsertFailure(t *testing.T) {
	repo := &mockRepo{insertErr: errors.New("db down")}
	svc := NewService(repo, zerolog.Nop())

	// Must not panic or surface the error.
	svc.Record(context.Background(), "login", uuid.Nil, uuid.Nil, "")
}
