package billing

import (
	"time"

	"github.com/google/uuid"
)

// Charge maps to the charges table: one CPT billing line on an encounter.
type Charge struct {
	ID          uuid.UUID `db:"id" json:"id"`
	EncounterID uuid.UUID `db:"encounter_id" json:"encounter_id"`
	CPTCode     string    `db:"cpt_code" json:"cpt_code"`
	Description *string   `db:"description" json:"description,omitempty"`
	Minutes     *int      `db:"minutes" json:"minutes,omitempty"`
	Units       int       `db:"units" json:"units"`
	Modifiers   *string   `db:"modifiers" json:"modifiers,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Totals sums minutes and units across a charge set for display.
type Totals struct {
	Minutes int `json:"minutes"`
	Units   int `json:"units"`
}

func SumTotals(charges []*Charge) Totals {
	var t Totals
	for _, c := range charges {
		if c.Minutes != nil {
			t.Minutes += *c.Minutes
		}
		t.Units += c.Units
	}
	return t
}
