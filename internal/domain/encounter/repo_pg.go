package encounter

import (
	"context"
	"encoding/json"
	"errors"
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

func (r *repoPG) Create(ctx context.Context, enc *Encounter, note *Note) error {
	q := r.conn(ctx)
	now := time.Now().UTC()

	enc.ID = uuid.New()
	enc.CreatedAt = now
	enc.UpdatedAt = now
	if _, err := q.Exec(ctx, `
		INSERT INTO encounters (id, patient_id, provider_id, encounter_date, encounter_type, location, status, signed_at, locked, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		enc.ID, enc.PatientID, enc.ProviderID, enc.EncounterDate, enc.EncounterType,
		enc.Location, enc.Status, enc.SignedAt, enc.Locked, enc.CreatedAt, enc.UpdatedAt,
	); err != nil {
		return err
	}

	note.ID = uuid.New()
	note.EncounterID = enc.ID
	note.CreatedAt = now
	note.UpdatedAt = now
	vitals, outcomes, extra, err := marshalNoteJSON(note)
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, `
		INSERT INTO notes (id, encounter_id, template, subjective, objective, assessment, plan, pain_pre, pain_post, vitals, outcomes, extra, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		note.ID, note.EncounterID, note.Template,
		note.Subjective, note.Objective, note.Assessment, note.Plan,
		note.PainPre, note.PainPost, vitals, outcomes, extra,
		note.CreatedAt, note.UpdatedAt,
	)
	return err
}

func marshalNoteJSON(note *Note) (vitals, outcomes, extra []byte, err error) {
	if vitals, err = json.Marshal(note.Vitals); err != nil {
		return
	}
	if note.Outcomes == nil {
		note.Outcomes = map[string]interface{}{}
	}
	if outcomes, err = json.Marshal(note.Outcomes); err != nil {
		return
	}
	extra, err = json.Marshal(note.Extra)
	return
}

const encounterColumns = `id, patient_id, provider_id, encounter_date, encounter_type, location, status, signed_at, locked, created_at, updated_at`

func scanEncounter(row pgx.Row) (*Encounter, error) {
	var e Encounter
	err := row.Scan(&e.ID, &e.PatientID, &e.ProviderID, &e.EncounterDate, &e.EncounterType,
		&e.Location, &e.Status, &e.SignedAt, &e.Locked, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Encounter, error) {
	row := r.conn(ctx).QueryRow(ctx, `SELECT `+encounterColumns+` FROM encounters WHERE id = $1`, id)
	return scanEncounter(row)
}

func (r *repoPG) GetNote(ctx context.Context, encounterID uuid.UUID) (*Note, error) {
	var (
		n                       Note
		vitals, outcomes, extra []byte
	)
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, encounter_id, template, subjective, objective, assessment, plan,
		       pain_pre, pain_post, vitals, outcomes, extra, created_at, updated_at
		FROM notes WHERE encounter_id = $1`, encounterID,
	).Scan(&n.ID, &n.EncounterID, &n.Template,
		&n.Subjective, &n.Objective, &n.Assessment, &n.Plan,
		&n.PainPre, &n.PainPost, &vitals, &outcomes, &extra,
		&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(vitals, &n.Vitals); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(outcomes, &n.Outcomes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(extra, &n.Extra); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repoPG) UpdateEncounter(ctx context.Context, enc *Encounter) error {
	enc.UpdatedAt = time.Now().UTC()
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE encounters
		SET encounter_date = $2, encounter_type = $3, location = $4,
		    status = $5, signed_at = $6, locked = $7, updated_at = $8
		WHERE id = $1`,
		enc.ID, enc.EncounterDate, enc.EncounterType, enc.Location,
		enc.Status, enc.SignedAt, enc.Locked, enc.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) UpdateNote(ctx context.Context, note *Note) error {
	note.UpdatedAt = time.Now().UTC()
	vitals, outcomes, extra, err := marshalNoteJSON(note)
	if err != nil {
		return err
	}
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE notes
		SET subjective = $2, objective = $3, assessment = $4, plan = $5,
		    pain_pre = $6, pain_post = $7, vitals = $8, outcomes = $9, extra = $10,
		    updated_at = $11
		WHERE id = $1`,
		note.ID, note.Subjective, note.Objective, note.Assessment, note.Plan,
		note.PainPre, note.PainPost, vitals, outcomes, extra, note.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Encounter, int, error) {
	q := r.conn(ctx)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM encounters WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.Query(ctx, `
		SELECT `+encounterColumns+` FROM encounters
		WHERE patient_id = $1
		ORDER BY encounter_date DESC, id DESC
		LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	encs, err := collectEncounters(rows)
	return encs, total, err
}

func (r *repoPG) ListRecent(ctx context.Context, limit int) ([]*Encounter, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+encounterColumns+` FROM encounters
		ORDER BY encounter_date DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEncounters(rows)
}

func collectEncounters(rows pgx.Rows) ([]*Encounter, error) {
	var encs []*Encounter
	for rows.Next() {
		var e Encounter
		if err := rows.Scan(&e.ID, &e.PatientID, &e.ProviderID, &e.EncounterDate, &e.EncounterType,
			&e.Location, &e.Status, &e.SignedAt, &e.Locked, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		encs = append(encs, &e)
	}
	return encs, rows.Err()
}

func (r *repoPG) LatestPriorExtra(ctx context.Context, patientID uuid.UUID) (*NoteExtra, error) {
	var raw []byte
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT n.extra
		FROM encounters e
		JOIN notes n ON n.encounter_id = e.id
		WHERE e.patient_id = $1 AND n.template IN ('Evaluation', 'Progress')
		ORDER BY e.encounter_date DESC, e.id DESC
		LIMIT 1`, patientID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var extra NoteExtra
	if err := json.Unmarshal(raw, &extra); err != nil {
		return nil, err
	}
	return &extra, nil
}
