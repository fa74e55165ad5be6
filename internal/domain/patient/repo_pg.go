package patient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ptalab/emr/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const patientColumns = `id, mrn, account_number, first_name, last_name, dob, sex,
	phone, email, address, emergency_contact_name, emergency_contact_phone,
	insurance_type, insurance_payer, insurance_plan, insurance_member_id, insurance_group,
	referring_physician, referring_physician_phone, service_line,
	primary_dx, secondary_dx, treatment_dx, precautions, contraindications, case_summary, created_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.MRN, &p.AccountNumber, &p.FirstName, &p.LastName, &p.DOB, &p.Sex,
		&p.Phone, &p.Email, &p.Address, &p.EmergencyContactName, &p.EmergencyContactPhone,
		&p.InsuranceType, &p.InsurancePayer, &p.InsurancePlan, &p.InsuranceMemberID, &p.InsuranceGroup,
		&p.ReferringPhysician, &p.ReferringPhysicianPhone, &p.ServiceLine,
		&p.PrimaryDx, &p.SecondaryDx, &p.TreatmentDx, &p.Precautions, &p.Contraindications, &p.CaseSummary, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO patients (`+patientColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27)`,
		p.ID, p.MRN, p.AccountNumber, p.FirstName, p.LastName, p.DOB, p.Sex,
		p.Phone, p.Email, p.Address, p.EmergencyContactName, p.EmergencyContactPhone,
		p.InsuranceType, p.InsurancePayer, p.InsurancePlan, p.InsuranceMemberID, p.InsuranceGroup,
		p.ReferringPhysician, p.ReferringPhysicianPhone, p.ServiceLine,
		p.PrimaryDx, p.SecondaryDx, p.TreatmentDx, p.Precautions, p.Contraindications, p.CaseSummary, p.CreatedAt)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	row := r.conn(ctx).QueryRow(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id)
	return scanPatient(row)
}

func (r *repoPG) Search(ctx context.Context, filter SearchFilter, limit, offset int) ([]*Patient, int, error) {
	q := r.conn(ctx)

	where := "TRUE"
	args := []interface{}{}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR mrn ILIKE $%d)", n, n, n)
	}
	if filter.ServiceLine != "" {
		args = append(args, filter.ServiceLine)
		where += fmt.Sprintf(" AND service_line = $%d", len(args))
	}

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM patients WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT `+patientColumns+` FROM patients
		WHERE `+where+`
		ORDER BY last_name, first_name
		LIMIT $%d OFFSET $%d`, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		patients = append(patients, p)
	}
	return patients, total, rows.Err()
}

func (r *repoPG) ServiceLines(ctx context.Context) ([]string, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT DISTINCT service_line FROM patients
		WHERE service_line IS NOT NULL ORDER BY service_line`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		lines = append(lines, s)
	}
	return lines, rows.Err()
}

func (r *repoPG) ListAllergies(ctx context.Context, patientID uuid.UUID) ([]*Allergy, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, patient_id, substance, reaction, severity
		FROM allergies WHERE patient_id = $1 ORDER BY substance`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Allergy
	for rows.Next() {
		var a Allergy
		if err := rows.Scan(&a.ID, &a.PatientID, &a.Substance, &a.Reaction, &a.Severity); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *repoPG) ListMedications(ctx context.Context, patientID uuid.UUID) ([]*Medication, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, patient_id, name, dose, route, frequency, status
		FROM medications WHERE patient_id = $1 ORDER BY name`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Medication
	for rows.Next() {
		var m Medication
		if err := rows.Scan(&m.ID, &m.PatientID, &m.Name, &m.Dose, &m.Route, &m.Frequency, &m.Status); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (r *repoPG) ListProblems(ctx context.Context, patientID uuid.UUID) ([]*Problem, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, patient_id, description, status, onset_date
		FROM problems WHERE patient_id = $1 ORDER BY onset_date DESC NULLS LAST`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Problem
	for rows.Next() {
		var p Problem
		if err := rows.Scan(&p.ID, &p.PatientID, &p.Description, &p.Status, &p.OnsetDate); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *repoPG) ListOrders(ctx context.Context, patientID uuid.UUID) ([]*Order, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, patient_id, ordered_at, description, status
		FROM orders WHERE patient_id = $1 ORDER BY ordered_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.PatientID, &o.OrderedAt, &o.Description, &o.Status); err != nil {
			return nil, err
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

func (r *repoPG) ListAppointments(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, patient_id, provider_id, start_at, end_at, location, status
		FROM appointments WHERE patient_id = $1 ORDER BY start_at`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.ProviderID, &a.StartAt, &a.EndAt, &a.Location, &a.Status); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *repoPG) AddAllergy(ctx context.Context, a *Allergy) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO allergies (id, patient_id, substance, reaction, severity)
		VALUES ($1,$2,$3,$4,$5)`, a.ID, a.PatientID, a.Substance, a.Reaction, a.Severity)
	return err
}

func (r *repoPG) AddMedication(ctx context.Context, m *Medication) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO medications (id, patient_id, name, dose, route, frequency, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`, m.ID, m.PatientID, m.Name, m.Dose, m.Route, m.Frequency, m.Status)
	return err
}

func (r *repoPG) AddProblem(ctx context.Context, p *Problem) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO problems (id, patient_id, description, status, onset_date)
		VALUES ($1,$2,$3,$4,$5)`, p.ID, p.PatientID, p.Description, p.Status, p.OnsetDate)
	return err
}

func (r *repoPG) AddOrder(ctx context.Context, o *Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.OrderedAt.IsZero() {
		o.OrderedAt = time.Now().UTC()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO orders (id, patient_id, ordered_at, description, status)
		VALUES ($1,$2,$3,$4,$5)`, o.ID, o.PatientID, o.OrderedAt, o.Description, o.Status)
	return err
}

func (r *repoPG) AddAppointment(ctx context.Context, a *Appointment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO appointments (id, patient_id, provider_id, start_at, end_at, location, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`, a.ID, a.PatientID, a.ProviderID, a.StartAt, a.EndAt, a.Location, a.Status)
	return err
}
