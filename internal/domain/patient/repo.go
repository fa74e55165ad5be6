package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no patient matches the given id.
var ErrNotFound = errors.New("patient not found")

// SearchFilter narrows the patient list. Query matches name or MRN,
// case-insensitively; ServiceLine matches exactly when set.
type SearchFilter struct {
	Query       string
	ServiceLine string
}

// Repository is the persistence boundary for charts.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Search(ctx context.Context, filter SearchFilter, limit, offset int) ([]*Patient, int, error)
	ServiceLines(ctx context.Context) ([]string, error)

	ListAllergies(ctx context.Context, patientID uuid.UUID) ([]*Allergy, error)
	ListMedications(ctx context.Context, patientID uuid.UUID) ([]*Medication, error)
	ListProblems(ctx context.Context, patientID uuid.UUID) ([]*Problem, error)
	ListOrders(ctx context.Context, patientID uuid.UUID) ([]*Order, error)
	ListAppointments(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error)

	AddAllergy(ctx context.Context, a *Allergy) error
	AddMedication(ctx context.Context, m *Medication) error
	AddProblem(ctx context.Context, p *Problem) error
	AddOrder(ctx context.Context, o *Order) error
	AddAppointment(ctx context.Context, a *Appointment) error
}
