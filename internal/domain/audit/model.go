package audit

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one row of the chart activity log.
type Entry struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	At          time.Time  `db:"at" json:"at"`
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	PatientID   *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	EncounterID *uuid.UUID `db:"encounter_id" json:"encounter_id,omitempty"`
	Action      string     `db:"action" json:"action"`
	Details     *string    `db:"details" json:"details,omitempty"`
}
