package billing

import (
	"context"

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

func (r *repoPG) ReplaceForEncounter(ctx context.Context, encounterID uuid.UUID, charges []*Charge) error {
	q := r.conn(ctx)
	if _, err := q.Exec(ctx, `DELETE FROM charges WHERE encounter_id = $1`, encounterID); err != nil {
		return err
	}
	for i, c := range charges {
		c.ID = uuid.New()
		c.EncounterID = encounterID
		if _, err := q.Exec(ctx, `
			INSERT INTO charges (id, encounter_id, position, cpt_code, description, minutes, units, modifiers)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			c.ID, c.EncounterID, i, c.CPTCode, c.Description, c.Minutes, c.Units, c.Modifiers,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *repoPG) ListByEncounter(ctx context.Context, encounterID uuid.UUID) ([]*Charge, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, encounter_id, cpt_code, description, minutes, units, modifiers, created_at
		FROM charges WHERE encounter_id = $1 ORDER BY position`, encounterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var charges []*Charge
	for rows.Next() {
		var c Charge
		if err := rows.Scan(&c.ID, &c.EncounterID, &c.CPTCode, &c.Description, &c.Minutes, &c.Units, &c.Modifiers, &c.CreatedAt); err != nil {
			return nil, err
		}
		charges = append(charges, &c)
	}
	return charges, rows.Err()
}
