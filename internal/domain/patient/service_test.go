package patient

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	patients     map[uuid.UUID]*Patient
	allergies    map[uuid.UUID][]*Allergy
	medications  map[uuid.UUID][]*Medication
	problems     map[uuid.UUID][]*Problem
	orders       map[uuid.UUID][]*Order
	appointments map[uuid.UUID][]*Appointment
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		patients:     make(map[uuid.UUID]*Patient),
		allergies:    make(map[uuid.UUID][]*Allergy),
		medications:  make(map[uuid.UUID][]*Medication),
		problems:     make(map[uuid.UUID][]*Problem),
		orders:       make(map[uuid.UUID][]*Order),
		appointments: make(map[uuid.UUID][]*Appointment),
	}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) Search(_ context.Context, filter SearchFilter, limit, offset int) ([]*Patient, int, error) {
	var out []*Patient
	for _, p := range m.patients {
		if filter.Query != "" {
			q := strings.ToLower(filter.Query)
			if !strings.Contains(strings.ToLower(p.FirstName), q) &&
				!strings.Contains(strings.ToLower(p.LastName), q) &&
				!strings.Contains(strings.ToLower(p.MRN), q) {
				continue
			}
		}
		if filter.ServiceLine != "" && (p.ServiceLine == nil || *p.ServiceLine != filter.ServiceLine) {
			continue
		}
		out = append(out, p)
	}
	return out, len(out), nil
}

func (m *mockRepo) ServiceLines(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var lines []string
	for _, p := range m.patients {
		if p.ServiceLine != nil && !seen[*p.ServiceLine] {
			seen[*p.ServiceLine] = true
			lines = append(lines, *p.ServiceLine)
		}
	}
	return lines, nil
}

func (m *mockRepo) ListAllergies(_ context.Context, id uuid.UUID) ([]*Allergy, error) {
	return m.allergies[id], nil
}
func (m *mockRepo) ListMedications(_ context.Context, id uuid.UUID) ([]*Medication, error) {
	return m.medications[id], nil
}
func (m *mockRepo) ListProblems(_ context.Context, id uuid.UUID) ([]*Problem, error) {
	return m.problems[id], nil
}
func (m *mockRepo) ListOrders(_ context.Context, id uuid.UUID) ([]*Order, error) {
	return m.orders[id], nil
}
func (m *mockRepo) ListAppointments(_ context.Context, id uuid.UUID) ([]*Appointment, error) {
	return m.appointments[id], nil
}

func (m *mockRepo) AddAllergy(_ context.Context, a *Allergy) error {
	m.allergies[a.PatientID] = append(m.allergies[a.PatientID], a)
	return nil
}
func (m *mockRepo) AddMedication(_ context.Context, med *Medication) error {
	m.medications[med.PatientID] = append(m.medications[med.PatientID], med)
	return nil
}
func (m *mockRepo) AddProblem(_ context.Context, p *Problem) error {
	m.problems[p.PatientID] = append(m.problems[p.PatientID], p)
	return nil
}
func (m *mockRepo) AddOrder(_ context.Context, o *Order) error {
	m.orders[o.PatientID] = append(m.orders[o.PatientID], o)
	return nil
}
func (m *mockRepo) AddAppointment(_ context.Context, a *Appointment) error {
	m.appointments[a.PatientID] = append(m.appointments[a.PatientID], a)
	return nil
}

func strPtr(s string) *string { return &s }

func TestSearchFilters(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	repo.Create(ctx, &Patient{FirstName: "Maria", LastName: "Santos", MRN: "MRN-001", ServiceLine: strPtr("Ortho")})
	repo.Create(ctx, &Patient{FirstName: "James", LastName: "Okafor", MRN: "MRN-002", ServiceLine: strPtr("Neuro")})

	got, total, err := svc.Search(ctx, SearchFilter{Query: "santos"}, 20, 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 1 || got[0].LastName != "Santos" {
		t.Errorf("name search: total=%d got=%+v", total, got)
	}

	got, total, _ = svc.Search(ctx, SearchFilter{Query: "MRN-002"}, 20, 0)
	if total != 1 || got[0].MRN != "MRN-002" {
		t.Errorf("mrn search: total=%d", total)
	}

	_, total, _ = svc.Search(ctx, SearchFilter{ServiceLine: "Ortho"}, 20, 0)
	if total != 1 {
		t.Errorf("service line filter: total=%d", total)
	}
}

func TestGetChart(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p := &Patient{FirstName: "Maria", LastName: "Santos", MRN: "MRN-001"}
	repo.Create(ctx, p)
	repo.AddAllergy(ctx, &Allergy{PatientID: p.ID, Substance: "Penicillin"})
	repo.AddMedication(ctx, &Medication{PatientID: p.ID, Name: "Lisinopril", Status: "Active"})
	repo.AddProblem(ctx, &Problem{PatientID: p.ID, Description: "s/p TKA", Status: "Active"})

	chart, err := svc.GetChart(ctx, p.ID)
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	if chart.Patient.DisplayName() != "Santos, Maria" {
		t.Errorf("display name: %s", chart.Patient.DisplayName())
	}
	if len(chart.Allergies) != 1 || len(chart.Medications) != 1 || len(chart.Problems) != 1 {
		t.Errorf("chart lists: %+v", chart)
	}

	if _, err := svc.GetChart(ctx, uuid.New()); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAge(t *testing.T) {
	p := &Patient{DOB: time.Date(1960, 6, 15, 0, 0, 0, 0, time.UTC)}
	now := time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)
	if got := p.Age(now); got != 65 {
		t.Errorf("day before birthday: %d", got)
	}
	now = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	if got := p.Age(now); got != 66 {
		t.Errorf("on birthday: %d", got)
	}
}
