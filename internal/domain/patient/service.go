package patient

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

func (s *Service) Search(ctx context.Context, filter SearchFilter, limit, offset int) ([]*Patient, int, error) {
	return s.repo.Search(ctx, filter, limit, offset)
}

func (s *Service) ServiceLines(ctx context.Context) ([]string, error) {
	return s.repo.ServiceLines(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// GetChart assembles the full chart view: demographics plus the clinical lists.
func (s *Service) GetChart(ctx context.Context, id uuid.UUID) (*Chart, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	chart := &Chart{Patient: p}
	if chart.Allergies, err = s.repo.ListAllergies(ctx, id); err != nil {
		return nil, err
	}
	if chart.Medications, err = s.repo.ListMedications(ctx, id); err != nil {
		return nil, err
	}
	if chart.Problems, err = s.repo.ListProblems(ctx, id); err != nil {
		return nil, err
	}
	if chart.Orders, err = s.repo.ListOrders(ctx, id); err != nil {
		return nil, err
	}
	if chart.Appointments, err = s.repo.ListAppointments(ctx, id); err != nil {
		return nil, err
	}
	return chart, nil
}
