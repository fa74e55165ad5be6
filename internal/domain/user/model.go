package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User maps to the users table: a clinician account in the training cohort.
type User struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Email string    `db:"email" json:"email"`
	Name  string    `db:"name" json:"name"`
	Role  string    `db:"role" json:"role"`

	Credentials   *string `db:"credentials" json:"credentials,omitempty"`
	LicenseNumber *string `db:"license_number" json:"license_number,omitempty"`

	PasswordHash string `db:"password_hash" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DisplayName renders the name with credentials when present,
// e.g. "Alex Morgan, PT, DPT".
func (u *User) DisplayName() string {
	if u.Credentials != nil && *u.Credentials != "" {
		return fmt.Sprintf("%s, %s", u.Name, *u.Credentials)
	}
	return u.Name
}

// SignatureLine renders the attestation line stamped onto notes,
// e.g. "Alex Morgan, PT, DPT | Lic #PT12345".
func (u *User) SignatureLine() string {
	parts := []string{u.DisplayName()}
	if u.LicenseNumber != nil && *u.LicenseNumber != "" {
		parts = append(parts, fmt.Sprintf("Lic #%s", *u.LicenseNumber))
	}
	return strings.Join(parts, " | ")
}
