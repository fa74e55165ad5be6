package encounter

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Encounter types as shown on the visit picker.
const (
	TypeEvaluation = "Evaluation"
	TypeDaily      = "Daily Visit Note"
	TypeProgress   = "Progress Report"
	TypeDischarge  = "Discharge Summary"
)

// Note templates derived from the encounter type.
const (
	TemplateEvaluation = "Evaluation"
	TemplateDaily      = "Daily"
	TemplateProgress   = "Progress"
	TemplateDischarge  = "Discharge"
)

const (
	StatusDraft  = "Draft"
	StatusSigned = "Signed"
)

var typeTemplates = map[string]string{
	TypeEvaluation: TemplateEvaluation,
	TypeDaily:      TemplateDaily,
	TypeProgress:   TemplateProgress,
	TypeDischarge:  TemplateDischarge,
}

// TemplateForType maps an encounter type to its note template. Unrecognized
// types fall back to the Daily template.
func TemplateForType(encounterType string) string {
	if t, ok := typeTemplates[encounterType]; ok {
		return t
	}
	return TemplateDaily
}

// Encounter maps to the encounters table: one clinical visit.
type Encounter struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	PatientID     uuid.UUID  `db:"patient_id" json:"patient_id"`
	ProviderID    uuid.UUID  `db:"provider_id" json:"provider_id"`
	EncounterDate time.Time  `db:"encounter_date" json:"encounter_date"`
	EncounterType string     `db:"encounter_type" json:"encounter_type"`
	Location      string     `db:"location" json:"location"`
	Status        string     `db:"status" json:"status"`
	SignedAt      *time.Time `db:"signed_at" json:"signed_at,omitempty"`
	Locked        bool       `db:"locked" json:"locked"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// Goal is one row of a short-term or long-term goal list.
type Goal struct {
	Text       string `json:"text"`
	TargetDate string `json:"target_date"`
	Status     string `json:"status"`
}

// Vitals holds the optional vitals captured on a note. All fields may be
// absent; HR and SpO2 are null when the submitted value did not parse.
type Vitals struct {
	BP   string `json:"bp"`
	HR   *int   `json:"hr"`
	SpO2 *int   `json:"spo2"`
}

// OutcomeMeasures is the fixed set of standardized outcome instrument keys.
var OutcomeMeasures = []string{"Berg", "TUG", "LEFS", "Oswestry", "NDI", "DHI", "PFDI20", "PedsQL"}

// ParseOutcomeValue converts a raw outcome score into its stored form:
// float when it carries a decimal point, int when it parses whole, and the
// raw string otherwise (some instruments are scored with annotations).
func ParseOutcomeValue(raw string) interface{} {
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	} else if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return raw
}

// NoteExtra holds the template-specific structured fields of a note. The
// named fields cover everything the four templates share; Other catches ad
// hoc keys so they survive round-trips. Serialized flat, keyed exactly like
// the form field names.
type NoteExtra struct {
	EvaluationDate            string   `json:"evaluation_date,omitempty"`
	RecertificationDate       string   `json:"recertification_date,omitempty"`
	ReferralMechanism         string   `json:"referral_mechanism,omitempty"`
	Contraindications         string   `json:"contraindications"`
	Precautions               string   `json:"precautions"`
	PatientConsent            bool     `json:"patient_consent"`
	InformedConsent           bool     `json:"informed_consent"`
	TherapistSignature        string   `json:"therapist_signature,omitempty"`
	TherapistSignatureDate    string   `json:"therapist_signature_date,omitempty"`
	PhysicianSignature        string   `json:"physician_signature"`
	PhysicianSignatureDate    string   `json:"physician_signature_date"`
	FrequencyDuration         string   `json:"frequency_duration,omitempty"`
	PTAMayTreat               bool     `json:"pta_may_treat"`
	POCSentToPhysician        bool     `json:"poc_sent_to_physician"`
	ContraindicationsReviewed bool     `json:"contraindications_reviewed"`
	MedicalDx                 string   `json:"medical_dx,omitempty"`
	TreatmentDx               string   `json:"treatment_dx,omitempty"`
	STG                       []Goal   `json:"stg"`
	LTG                       []Goal   `json:"ltg"`
	RequiredCPT               []string `json:"required_cpt"`

	Other map[string]string `json:"-"`
}

// BoolExtraKeys are the checkbox-style flags that are always written as
// explicit booleans on every edit: absent in a submission means false.
var BoolExtraKeys = []string{
	"patient_consent",
	"informed_consent",
	"pta_may_treat",
	"poc_sent_to_physician",
	"contraindications_reviewed",
}

// SetField merges one submitted extra field by key. Known keys land on the
// typed fields; anything else goes to the escape-hatch map. Checkbox flags
// and goal lists are handled separately by ApplyEdit.
func (x *NoteExtra) SetField(key, value string) {
	switch key {
	case "evaluation_date":
		x.EvaluationDate = value
	case "recertification_date":
		x.RecertificationDate = value
	case "referral_mechanism":
		x.ReferralMechanism = value
	case "contraindications":
		x.Contraindications = value
	case "precautions":
		x.Precautions = value
	case "therapist_signature":
		x.TherapistSignature = value
	case "therapist_signature_date":
		x.TherapistSignatureDate = value
	case "physician_signature":
		x.PhysicianSignature = value
	case "physician_signature_date":
		x.PhysicianSignatureDate = value
	case "frequency_duration":
		x.FrequencyDuration = value
	case "medical_dx":
		x.MedicalDx = value
	case "treatment_dx":
		x.TreatmentDx = value
	case "patient_consent", "informed_consent", "pta_may_treat",
		"poc_sent_to_physician", "contraindications_reviewed":
		x.SetFlag(key, value != "")
	default:
		if x.Other == nil {
			x.Other = make(map[string]string)
		}
		x.Other[key] = value
	}
}

// SetFlag sets one checkbox-style flag by key.
func (x *NoteExtra) SetFlag(key string, value bool) {
	switch key {
	case "patient_consent":
		x.PatientConsent = value
	case "informed_consent":
		x.InformedConsent = value
	case "pta_may_treat":
		x.PTAMayTreat = value
	case "poc_sent_to_physician":
		x.POCSentToPhysician = value
	case "contraindications_reviewed":
		x.ContraindicationsReviewed = value
	}
}

type noteExtraAlias NoteExtra

var knownExtraKeys = map[string]bool{
	"evaluation_date": true, "recertification_date": true, "referral_mechanism": true,
	"contraindications": true, "precautions": true,
	"patient_consent": true, "informed_consent": true,
	"therapist_signature": true, "therapist_signature_date": true,
	"physician_signature": true, "physician_signature_date": true,
	"frequency_duration": true, "pta_may_treat": true,
	"poc_sent_to_physician": true, "contraindications_reviewed": true,
	"medical_dx": true, "treatment_dx": true,
	"stg": true, "ltg": true, "required_cpt": true,
}

// MarshalJSON flattens Other into the top-level object so ad hoc keys are
// stored alongside the named fields, matching the form field namespace.
func (x NoteExtra) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(noteExtraAlias(x))
	if err != nil {
		return nil, err
	}
	if len(x.Other) == 0 {
		return base, nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(base, &m); err != nil {
		return nil, err
	}
	for k, v := range x.Other {
		if _, exists := m[k]; exists {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		m[k] = raw
	}
	return json.Marshal(m)
}

// UnmarshalJSON restores the named fields and collects unrecognized keys
// back into Other.
func (x *NoteExtra) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, (*noteExtraAlias)(x)); err != nil {
		return err
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for k, raw := range m {
		if knownExtraKeys[k] {
			continue
		}
		if x.Other == nil {
			x.Other = make(map[string]string)
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			x.Other[k] = s
		} else {
			x.Other[k] = string(raw)
		}
	}
	return nil
}

// Note maps to the notes table: the structured clinical document of an
// encounter, created with it 1:1.
type Note struct {
	ID          uuid.UUID `db:"id" json:"id"`
	EncounterID uuid.UUID `db:"encounter_id" json:"encounter_id"`
	Template    string    `db:"template" json:"template"`

	Subjective string `db:"subjective" json:"subjective"`
	Objective  string `db:"objective" json:"objective"`
	Assessment string `db:"assessment" json:"assessment"`
	Plan       string `db:"plan" json:"plan"`

	PainPre  *int `db:"pain_pre" json:"pain_pre,omitempty"`
	PainPost *int `db:"pain_post" json:"pain_post,omitempty"`

	Vitals   Vitals                 `db:"vitals" json:"vitals"`
	Outcomes map[string]interface{} `db:"outcomes" json:"outcomes"`
	Extra    NoteExtra              `db:"extra" json:"extra"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
