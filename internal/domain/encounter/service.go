package encounter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ptalab/emr/internal/domain/billing"
	"github.com/ptalab/emr/internal/platform/auth"
)

// ChartInfo is the chart-level safety context pulled in when a note is created.
type ChartInfo struct {
	Contraindications string
	Precautions       string
}

// PatientDirectory resolves chart context for a patient. Implementations
// return ErrNotFound when the patient does not exist.
type PatientDirectory interface {
	ChartInfo(ctx context.Context, patientID uuid.UUID) (ChartInfo, error)
}

// ProviderDirectory resolves the signature line of the authoring clinician.
type ProviderDirectory interface {
	SignatureLine(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuditLogger records chart activity. Implementations must never fail the
// calling operation.
type AuditLogger interface {
	Record(ctx context.Context, action string, patientID, encounterID uuid.UUID, details string)
}

// TxRunner executes fn within a database transaction carried on the context.
type TxRunner func(ctx context.Context, fn func(context.Context) error) error

type Service struct {
	repo      Repository
	charges   *billing.Service
	patients  PatientDirectory
	providers ProviderDirectory
	audit     AuditLogger
	inTx      TxRunner
	now       func() time.Time
}

func NewService(repo Repository, charges *billing.Service, patients PatientDirectory, providers ProviderDirectory, audit AuditLogger, inTx TxRunner) *Service {
	return &Service{
		repo:      repo,
		charges:   charges,
		patients:  patients,
		providers: providers,
		audit:     audit,
		inTx:      inTx,
		now:       time.Now,
	}
}

// CreateRequest is the payload for opening a new encounter on a chart.
type CreateRequest struct {
	EncounterType string `json:"encounter_type"`
	EncounterDate string `json:"encounter_date"`
	Location      string `json:"location"`
}

// Create opens an encounter and its pre-filled note in one transaction. The
// authenticated caller becomes the provider of record.
func (s *Service) Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*Encounter, *Note, error) {
	chart, err := s.patients.ChartInfo(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}

	providerID := auth.UserIDFromContext(ctx)
	signature, err := s.providers.SignatureLine(ctx, providerID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve provider signature: %w", err)
	}

	encType := req.EncounterType
	if encType == "" {
		encType = TypeDaily
	}
	template := TemplateForType(encType)

	date := s.now()
	if req.EncounterDate != "" {
		if parsed, err := time.Parse(dateLayout, req.EncounterDate); err == nil {
			date = parsed
		}
	}

	location := req.Location
	if location == "" {
		location = "Outpatient PT"
	}

	var prior *NoteExtra
	if template != TemplateEvaluation {
		prior, err = s.repo.LatestPriorExtra(ctx, patientID)
		if err != nil {
			return nil, nil, err
		}
	}

	extra := DefaultExtra(template, DefaultNoteContext{
		Contraindications: chart.Contraindications,
		Precautions:       chart.Precautions,
		ProviderSignature: signature,
	}, prior, s.now())

	enc := &Encounter{
		PatientID:     patientID,
		ProviderID:    providerID,
		EncounterDate: date,
		EncounterType: encType,
		Location:      location,
		Status:        StatusDraft,
	}
	note := NewNote(template, extra)

	err = s.inTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, enc, note)
	})
	if err != nil {
		return nil, nil, err
	}

	s.audit.Record(ctx, "encounter.create", patientID, enc.ID, encType)
	return enc, note, nil
}

// Detail bundles everything an encounter view needs.
type Detail struct {
	Encounter *Encounter        `json:"encounter"`
	Note      *Note             `json:"note"`
	Charges   []*billing.Charge `json:"charges"`
	Totals    billing.Totals    `json:"totals"`
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Detail, error) {
	enc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	note, err := s.repo.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	charges, err := s.charges.ChargesForEncounter(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{
		Encounter: enc,
		Note:      note,
		Charges:   charges,
		Totals:    billing.SumTotals(charges),
	}, nil
}

// EditRequest is one full save of the documentation screen: the note fields
// plus the entire charge grid.
type EditRequest struct {
	Note    NoteEdit            `json:"note"`
	Charges billing.ChargeInput `json:"charges"`
}

// Edit merges a documentation submission into the note and replaces the
// encounter's charges, atomically. A locked note rejects the edit before
// anything is written.
func (s *Service) Edit(ctx context.Context, id uuid.UUID, req EditRequest) (*Detail, error) {
	enc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enc.Locked {
		return nil, ErrLocked
	}

	note, err := s.repo.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	ApplyEdit(note, req.Note)

	err = s.inTx(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateNote(ctx, note); err != nil {
			return err
		}
		_, err := s.charges.ReplaceCharges(ctx, id, req.Charges)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "encounter.update", enc.PatientID, enc.ID, note.Template)
	return s.Get(ctx, id)
}

// Sign finalizes the note: status Signed, timestamped, locked against edits.
// Signing an already locked note is a no-op rather than an error.
func (s *Service) Sign(ctx context.Context, id uuid.UUID) (*Encounter, bool, error) {
	enc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if enc.Locked {
		return enc, true, nil
	}

	now := s.now().UTC()
	enc.Status = StatusSigned
	enc.SignedAt = &now
	enc.Locked = true
	if err := s.repo.UpdateEncounter(ctx, enc); err != nil {
		return nil, false, err
	}

	s.audit.Record(ctx, "encounter.sign", enc.PatientID, enc.ID, "")
	return enc, false, nil
}

// Unlock reopens a signed note for amendment. Only an instructor, an admin,
// or the note's original author may unlock.
func (s *Service) Unlock(ctx context.Context, id uuid.UUID) (*Encounter, error) {
	enc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.IsInstructor(ctx) && auth.UserIDFromContext(ctx) != enc.ProviderID {
		return nil, ErrForbidden
	}

	enc.Status = StatusDraft
	enc.SignedAt = nil
	enc.Locked = false
	if err := s.repo.UpdateEncounter(ctx, enc); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "encounter.unlock", enc.PatientID, enc.ID, "")
	return enc, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Encounter, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]*Encounter, error) {
	return s.repo.ListRecent(ctx, limit)
}
