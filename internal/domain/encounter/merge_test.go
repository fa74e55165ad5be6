package encounter

import (
	"encoding/json"
	"testing"
)

func TestApplyEdit_NarrativesAndVitals(t *testing.T) {
	note := NewNote(TemplateDaily, NoteExtra{})
	ApplyEdit(note, NoteEdit{
		Subjective: "Pt reports soreness after last session",
		Objective:  "TherEx as below",
		PainPre:    "4",
		PainPost:   "2",
		VitalsBP:   "118/76",
		VitalsHR:   "72",
		VitalsSpO2: "not recorded",
	})

	if note.Subjective == "" || note.Objective == "" {
		t.Error("narratives must be written")
	}
	if note.Assessment != "" || note.Plan != "" {
		t.Error("absent narratives overwrite with empty")
	}
	if note.PainPre == nil || *note.PainPre != 4 || note.PainPost == nil || *note.PainPost != 2 {
		t.Errorf("pain scores: %v %v", note.PainPre, note.PainPost)
	}
	if note.Vitals.BP != "118/76" {
		t.Errorf("bp: %s", note.Vitals.BP)
	}
	if note.Vitals.HR == nil || *note.Vitals.HR != 72 {
		t.Errorf("hr: %v", note.Vitals.HR)
	}
	if note.Vitals.SpO2 != nil {
		t.Errorf("unparseable spo2 must be nil, got %v", note.Vitals.SpO2)
	}
}

func TestApplyEdit_OutcomeScores(t *testing.T) {
	note := NewNote(TemplateProgress, NoteExtra{})
	note.Outcomes = map[string]interface{}{"Berg": 40, "TUG": 14.2}

	ApplyEdit(note, NoteEdit{
		Outcomes: map[string]string{
			"Berg": "46",
			"TUG":  "",
			"LEFS": "52.5",
			"NDI":  "mod/severe",
		},
	})

	if v, ok := note.Outcomes["Berg"].(int); !ok || v != 46 {
		t.Errorf("Berg: %v", note.Outcomes["Berg"])
	}
	if _, present := note.Outcomes["TUG"]; present {
		t.Error("empty submission must remove the score")
	}
	if v, ok := note.Outcomes["LEFS"].(float64); !ok || v != 52.5 {
		t.Errorf("LEFS: %v", note.Outcomes["LEFS"])
	}
	if v, ok := note.Outcomes["NDI"].(string); !ok || v != "mod/severe" {
		t.Errorf("NDI: %v", note.Outcomes["NDI"])
	}
}

func TestApplyEdit_CheckboxFlagsFromPresence(t *testing.T) {
	note := NewNote(TemplateEvaluation, NoteExtra{PatientConsent: true, InformedConsent: true, PTAMayTreat: true})

	ApplyEdit(note, NoteEdit{
		Extra: map[string]string{
			"patient_consent":            "on",
			"contraindications_reviewed": "on",
		},
	})

	if !note.Extra.PatientConsent || !note.Extra.ContraindicationsReviewed {
		t.Error("submitted flags must be set")
	}
	if note.Extra.InformedConsent || note.Extra.PTAMayTreat || note.Extra.POCSentToPhysician {
		t.Error("absent flags must be cleared")
	}
}

func TestApplyEdit_ExtraFieldsAndGoals(t *testing.T) {
	note := NewNote(TemplateEvaluation, NoteExtra{ReferralMechanism: "Physician referral"})

	ApplyEdit(note, NoteEdit{
		Extra: map[string]string{
			"medical_dx":     "s/p RTC repair",
			"weight_bearing": "WBAT",
		},
		STG:         GoalInput{Texts: []string{"AAROM flexion to 120"}, Dates: []string{"2026-09-10"}},
		RequiredCPT: []string{"97110", "97140"},
	})

	if note.Extra.MedicalDx != "s/p RTC repair" {
		t.Errorf("medical dx: %s", note.Extra.MedicalDx)
	}
	if note.Extra.Other["weight_bearing"] != "WBAT" {
		t.Errorf("ad hoc key not kept: %v", note.Extra.Other)
	}
	if note.Extra.ReferralMechanism != "Physician referral" {
		t.Error("unsubmitted fields keep their value")
	}
	if len(note.Extra.STG) != 1 || note.Extra.STG[0].Text != "AAROM flexion to 120" {
		t.Errorf("stg: %+v", note.Extra.STG)
	}
	if len(note.Extra.LTG) != 1 || note.Extra.LTG[0].Status != "Continue" {
		t.Errorf("ltg placeholder: %+v", note.Extra.LTG)
	}
	if len(note.Extra.RequiredCPT) != 2 {
		t.Errorf("required cpt: %v", note.Extra.RequiredCPT)
	}

	// Clearing the checklist on a later save replaces it wholesale.
	ApplyEdit(note, NoteEdit{})
	if len(note.Extra.RequiredCPT) != 0 {
		t.Errorf("required cpt must be replaced, got %v", note.Extra.RequiredCPT)
	}
}

func TestNoteExtraJSON_RoundTripsAdHocKeys(t *testing.T) {
	in := NoteExtra{
		MedicalDx: "s/p TKA",
		STG:       []Goal{{Text: "Flexion to 110", Status: "Continue"}},
		Other:     map[string]string{"weight_bearing": "WBAT", "assistive_device": "RW"},
	}

	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Ad hoc keys serialize flat, in the same namespace as the named fields.
	var flat map[string]interface{}
	if err := json.Unmarshal(raw, &flat); err != nil {
		t.Fatalf("unmarshal flat: %v", err)
	}
	if flat["weight_bearing"] != "WBAT" || flat["medical_dx"] != "s/p TKA" {
		t.Errorf("unexpected flat form: %v", flat)
	}

	var out NoteExtra
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.MedicalDx != in.MedicalDx {
		t.Errorf("medical dx lost: %s", out.MedicalDx)
	}
	if out.Other["weight_bearing"] != "WBAT" || out.Other["assistive_device"] != "RW" {
		t.Errorf("ad hoc keys lost: %v", out.Other)
	}
	if len(out.STG) != 1 || out.STG[0].Text != "Flexion to 110" {
		t.Errorf("goals lost: %+v", out.STG)
	}
}
