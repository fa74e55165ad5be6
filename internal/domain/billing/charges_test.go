package billing

import (
	"context"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestBuildCharges_EstimatesUnitsForTimedCodes(t *testing.T) {
	encID := uuid.New()
	in := ChargeInput{
		Codes:   []string{"97110", "", "97014"},
		Minutes: []string{"20", "", ""},
		Units:   []string{"", "", ""},
	}

	charges := BuildCharges(encID, in)
	if len(charges) != 2 {
		t.Fatalf("expected 2 charges, got %d", len(charges))
	}

	first := charges[0]
	if first.CPTCode != "97110" {
		t.Errorf("expected 97110 first, got %s", first.CPTCode)
	}
	if first.Minutes == nil || *first.Minutes != 20 {
		t.Errorf("expected minutes 20, got %v", first.Minutes)
	}
	if first.Units != 1 {
		t.Errorf("expected estimated units 1 for 20 minutes, got %d", first.Units)
	}
	if first.Description == nil || *first.Description != "Therapeutic exercise" {
		t.Errorf("expected catalog description, got %v", first.Description)
	}

	second := charges[1]
	if second.CPTCode != "97014" {
		t.Errorf("expected 97014 second, got %s", second.CPTCode)
	}
	if second.Minutes != nil {
		t.Errorf("expected nil minutes, got %v", second.Minutes)
	}
	if second.Units != 1 {
		t.Errorf("expected untimed default of 1 unit, got %d", second.Units)
	}
}

func TestBuildCharges_BelowEightMinutesIsZeroUnits(t *testing.T) {
	charges := BuildCharges(uuid.New(), ChargeInput{
		Codes:   []string{"97110"},
		Minutes: []string{"5"},
		Units:   []string{""},
	})
	if len(charges) != 1 {
		t.Fatalf("expected 1 charge, got %d", len(charges))
	}
	if charges[0].Units != 0 {
		t.Errorf("expected 0 units below 8 minutes, got %d", charges[0].Units)
	}
}

func TestBuildCharges_ExplicitUnitsWin(t *testing.T) {
	charges := BuildCharges(uuid.New(), ChargeInput{
		Codes:   []string{"97110"},
		Minutes: []string{"45"},
		Units:   []string{"1"},
	})
	if charges[0].Units != 1 {
		t.Errorf("expected explicit units 1, got %d", charges[0].Units)
	}
}

func TestBuildCharges_UnparseableInput(t *testing.T) {
	charges := BuildCharges(uuid.New(), ChargeInput{
		Codes:   []string{"97110"},
		Minutes: []string{"abc"},
		Units:   []string{"xyz"},
	})
	if len(charges) != 1 {
		t.Fatalf("expected 1 charge, got %d", len(charges))
	}
	if charges[0].Minutes != nil {
		t.Errorf("expected nil minutes on parse failure, got %v", charges[0].Minutes)
	}
	if charges[0].Units != 1 {
		t.Errorf("expected units fallback 1 on parse failure, got %d", charges[0].Units)
	}
}

func TestBuildCharges_UntimedWithMinutesBlankUnits(t *testing.T) {
	// 97010 is untimed: blank units mean exactly 1 regardless of minutes.
	charges := BuildCharges(uuid.New(), ChargeInput{
		Codes:   []string{"97010"},
		Minutes: []string{"30"},
		Units:   []string{""},
	})
	if charges[0].Units != 1 {
		t.Errorf("expected 1 unit for untimed code, got %d", charges[0].Units)
	}
}

func TestBuildCharges_UnknownCodeKept(t *testing.T) {
	charges := BuildCharges(uuid.New(), ChargeInput{
		Codes:        []string{"G0283"},
		Descriptions: []string{"e-stim, Medicare"},
		Units:        []string{"1"},
	})
	if len(charges) != 1 {
		t.Fatalf("expected unknown code to be accepted, got %d charges", len(charges))
	}
	if charges[0].Description == nil || *charges[0].Description != "e-stim, Medicare" {
		t.Errorf("expected supplied description kept, got %v", charges[0].Description)
	}
}

func TestBuildCharges_ShortParallelArrays(t *testing.T) {
	// Only codes supplied: every other column reads as empty at each index.
	charges := BuildCharges(uuid.New(), ChargeInput{
		Codes: []string{"97110", "97140"},
	})
	if len(charges) != 2 {
		t.Fatalf("expected 2 charges, got %d", len(charges))
	}
	for _, c := range charges {
		if c.Units != 1 {
			t.Errorf("expected default 1 unit, got %d for %s", c.Units, c.CPTCode)
		}
		if c.Minutes != nil {
			t.Errorf("expected nil minutes for %s", c.CPTCode)
		}
	}
}

// -- Mock Repository --

type mockRepo struct {
	charges map[uuid.UUID][]*Charge
}

func newMockRepo() *mockRepo {
	return &mockRepo{charges: make(map[uuid.UUID][]*Charge)}
}

func (m *mockRepo) ReplaceForEncounter(_ context.Context, encounterID uuid.UUID, charges []*Charge) error {
	for _, c := range charges {
		c.ID = uuid.New()
		c.EncounterID = encounterID
	}
	m.charges[encounterID] = charges
	return nil
}

func (m *mockRepo) ListByEncounter(_ context.Context, encounterID uuid.UUID) ([]*Charge, error) {
	return m.charges[encounterID], nil
}

func TestReplaceCharges_Idempotent(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	encID := uuid.New()

	in := ChargeInput{
		Codes:   []string{"97110", "97140"},
		Minutes: []string{"20", "15"},
		Units:   []string{"", ""},
	}

	if _, err := svc.ReplaceCharges(context.Background(), encID, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, _ := svc.ChargesForEncounter(context.Background(), encID)

	if _, err := svc.ReplaceCharges(context.Background(), encID, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := svc.ChargesForEncounter(context.Background(), encID)

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 charges each run, got %d then %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.CPTCode != b.CPTCode || a.Units != b.Units || !reflect.DeepEqual(a.Minutes, b.Minutes) {
			t.Errorf("row %d differs between runs: %+v vs %+v", i, a, b)
		}
	}
}

func TestSumTotals(t *testing.T) {
	m := 20
	charges := []*Charge{
		{Minutes: &m, Units: 2},
		{Units: 1},
	}
	tot := SumTotals(charges)
	if tot.Minutes != 20 || tot.Units != 3 {
		t.Errorf("unexpected totals: %+v", tot)
	}
}
