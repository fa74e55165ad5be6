package patient

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table: one synthetic chart.
type Patient struct {
	ID            uuid.UUID `db:"id" json:"id"`
	MRN           string    `db:"mrn" json:"mrn"`
	AccountNumber string    `db:"account_number" json:"account_number"`

	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	DOB       time.Time `db:"dob" json:"dob"`
	Sex       string    `db:"sex" json:"sex"`

	Phone   *string `db:"phone" json:"phone,omitempty"`
	Email   *string `db:"email" json:"email,omitempty"`
	Address *string `db:"address" json:"address,omitempty"`

	EmergencyContactName  *string `db:"emergency_contact_name" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `db:"emergency_contact_phone" json:"emergency_contact_phone,omitempty"`

	InsuranceType     *string `db:"insurance_type" json:"insurance_type,omitempty"`
	InsurancePayer    *string `db:"insurance_payer" json:"insurance_payer,omitempty"`
	InsurancePlan     *string `db:"insurance_plan" json:"insurance_plan,omitempty"`
	InsuranceMemberID *string `db:"insurance_member_id" json:"insurance_member_id,omitempty"`
	InsuranceGroup    *string `db:"insurance_group" json:"insurance_group,omitempty"`

	ReferringPhysician      *string `db:"referring_physician" json:"referring_physician,omitempty"`
	ReferringPhysicianPhone *string `db:"referring_physician_phone" json:"referring_physician_phone,omitempty"`

	ServiceLine *string `db:"service_line" json:"service_line,omitempty"`

	PrimaryDx   *string `db:"primary_dx" json:"primary_dx,omitempty"`
	SecondaryDx *string `db:"secondary_dx" json:"secondary_dx,omitempty"`
	TreatmentDx *string `db:"treatment_dx" json:"treatment_dx,omitempty"`

	Precautions       *string `db:"precautions" json:"precautions,omitempty"`
	Contraindications *string `db:"contraindications" json:"contraindications,omitempty"`
	CaseSummary       *string `db:"case_summary" json:"case_summary,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DisplayName renders "Last, First" for chart headers and search results.
func (p *Patient) DisplayName() string {
	return fmt.Sprintf("%s, %s", p.LastName, p.FirstName)
}

// Age is the patient's age in whole years as of now.
func (p *Patient) Age(now time.Time) int {
	years := now.Year() - p.DOB.Year()
	if now.Month() < p.DOB.Month() || (now.Month() == p.DOB.Month() && now.Day() < p.DOB.Day()) {
		years--
	}
	return years
}

// Allergy is one row of the chart's allergy list.
type Allergy struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	Substance string    `db:"substance" json:"substance"`
	Reaction  *string   `db:"reaction" json:"reaction,omitempty"`
	Severity  *string   `db:"severity" json:"severity,omitempty"`
}

// Medication is one row of the chart's medication list.
type Medication struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	Name      string    `db:"name" json:"name"`
	Dose      *string   `db:"dose" json:"dose,omitempty"`
	Route     *string   `db:"route" json:"route,omitempty"`
	Frequency *string   `db:"frequency" json:"frequency,omitempty"`
	Status    string    `db:"status" json:"status"`
}

// Problem is one row of the chart's problem list.
type Problem struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	PatientID   uuid.UUID  `db:"patient_id" json:"patient_id"`
	Description string     `db:"description" json:"description"`
	Status      string     `db:"status" json:"status"`
	OnsetDate   *time.Time `db:"onset_date" json:"onset_date,omitempty"`
}

// Order is a standing therapy order on the chart.
type Order struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patient_id"`
	OrderedAt   time.Time `db:"ordered_at" json:"ordered_at"`
	Description string    `db:"description" json:"description"`
	Status      string    `db:"status" json:"status"`
}

// Appointment is a scheduled visit slot.
type Appointment struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	ProviderID uuid.UUID `db:"provider_id" json:"provider_id"`
	StartAt    time.Time `db:"start_at" json:"start_at"`
	EndAt      time.Time `db:"end_at" json:"end_at"`
	Location   *string   `db:"location" json:"location,omitempty"`
	Status     string    `db:"status" json:"status"`
}

// Chart is the full patient view: demographics plus the clinical lists.
type Chart struct {
	Patient      *Patient       `json:"patient"`
	Allergies    []*Allergy     `json:"allergies"`
	Medications  []*Medication  `json:"medications"`
	Problems     []*Problem     `json:"problems"`
	Orders       []*Order       `json:"orders"`
	Appointments []*Appointment `json:"appointments"`
}
