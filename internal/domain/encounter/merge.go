package encounter

import (
	"strconv"
	"strings"
)

// NoteEdit is one full submission of the documentation form. Narratives and
// vitals arrive as raw strings; Extra holds the free-form template fields
// keyed by name; the checkbox flags live in Extra too and are absent when
// unchecked.
type NoteEdit struct {
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`

	PainPre  string `json:"pain_pre"`
	PainPost string `json:"pain_post"`

	VitalsBP   string `json:"vitals_bp"`
	VitalsHR   string `json:"vitals_hr"`
	VitalsSpO2 string `json:"vitals_spo2"`

	Outcomes map[string]string `json:"outcomes"`
	Extra    map[string]string `json:"extra"`

	STG GoalInput `json:"stg"`
	LTG GoalInput `json:"ltg"`

	RequiredCPT []string `json:"required_cpt"`
}

func intOrNil(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// ApplyEdit merges one form submission into a note. Narratives are always
// overwritten; outcome scores are stored for the fixed instrument set with
// empty submissions removing the score; goal lists and the required-CPT
// checklist are replaced wholesale; checkbox flags are rewritten from
// presence on every edit.
func ApplyEdit(note *Note, edit NoteEdit) {
	note.Subjective = edit.Subjective
	note.Objective = edit.Objective
	note.Assessment = edit.Assessment
	note.Plan = edit.Plan

	note.PainPre = intOrNil(edit.PainPre)
	note.PainPost = intOrNil(edit.PainPost)

	note.Vitals.BP = strings.TrimSpace(edit.VitalsBP)
	note.Vitals.HR = intOrNil(edit.VitalsHR)
	note.Vitals.SpO2 = intOrNil(edit.VitalsSpO2)

	if note.Outcomes == nil {
		note.Outcomes = map[string]interface{}{}
	}
	for _, key := range OutcomeMeasures {
		raw := strings.TrimSpace(edit.Outcomes[key])
		if raw == "" {
			delete(note.Outcomes, key)
			continue
		}
		note.Outcomes[key] = ParseOutcomeValue(raw)
	}

	for key, value := range edit.Extra {
		note.Extra.SetField(key, strings.TrimSpace(value))
	}
	for _, key := range BoolExtraKeys {
		note.Extra.SetFlag(key, edit.Extra[key] != "")
	}

	note.Extra.STG = ParseGoals(edit.STG)
	note.Extra.LTG = ParseGoals(edit.LTG)

	note.Extra.RequiredCPT = append([]string(nil), edit.RequiredCPT...)
	if note.Extra.RequiredCPT == nil {
		note.Extra.RequiredCPT = []string{}
	}
}
