package encounter

import "time"

const dateLayout = "2006-01-02"

// DefaultNoteContext is what the default builder needs from outside the
// encounter itself: the chart-level safety fields and the authoring
// clinician's signature line.
type DefaultNoteContext struct {
	Contraindications string
	Precautions       string
	ProviderSignature string
}

// DefaultExtra pre-fills the structured fields for a fresh note. Every
// template starts from the evaluation defaults; non-evaluation templates then
// carry forward plan-of-care fields from the most recent prior Evaluation or
// Progress note, but only values that were actually filled in there, so a
// blank prior field never erases a default.
func DefaultExtra(template string, dc DefaultNoteContext, prior *NoteExtra, now time.Time) NoteExtra {
	today := now.Format(dateLayout)

	extra := NoteExtra{
		EvaluationDate:         today,
		RecertificationDate:    now.AddDate(0, 0, 90).Format(dateLayout),
		ReferralMechanism:      "Physician referral",
		Contraindications:      dc.Contraindications,
		Precautions:            dc.Precautions,
		PatientConsent:         true,
		InformedConsent:        true,
		TherapistSignature:     dc.ProviderSignature,
		TherapistSignatureDate: today,
		FrequencyDuration:      "2x/wk x 6 wks",
		PTAMayTreat:            true,
		STG:                    []Goal{{Status: "Continue"}},
		LTG:                    []Goal{{Status: "Continue"}},
		RequiredCPT:            []string{},
	}

	if template != TemplateEvaluation && prior != nil {
		if prior.FrequencyDuration != "" {
			extra.FrequencyDuration = prior.FrequencyDuration
		}
		if prior.RecertificationDate != "" {
			extra.RecertificationDate = prior.RecertificationDate
		}
		if prior.ReferralMechanism != "" {
			extra.ReferralMechanism = prior.ReferralMechanism
		}
		if prior.MedicalDx != "" {
			extra.MedicalDx = prior.MedicalDx
		}
		if prior.TreatmentDx != "" {
			extra.TreatmentDx = prior.TreatmentDx
		}
		if len(prior.STG) > 0 {
			extra.STG = append([]Goal(nil), prior.STG...)
		}
		if len(prior.LTG) > 0 {
			extra.LTG = append([]Goal(nil), prior.LTG...)
		}
	}

	return extra
}

// NewNote builds the note that accompanies a freshly created encounter.
func NewNote(template string, extra NoteExtra) *Note {
	return &Note{
		Template: template,
		Outcomes: map[string]interface{}{},
		Extra:    extra,
	}
}
