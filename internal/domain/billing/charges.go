package billing

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ChargeInput carries the parallel value sequences of a charge-entry grid.
// The sequences may have different lengths; an index beyond a sequence's
// length reads as empty.
type ChargeInput struct {
	Codes        []string `json:"codes"`
	Descriptions []string `json:"descriptions"`
	Minutes      []string `json:"minutes"`
	Units        []string `json:"units"`
	Modifiers    []string `json:"modifiers"`
}

func at(vals []string, i int) string {
	if i < len(vals) {
		return strings.TrimSpace(vals[i])
	}
	return ""
}

// BuildCharges converts a submitted charge grid into charge rows, preserving
// input order. Rows with an empty code are skipped. Malformed numeric input
// never fails the build: minutes fall back to null and units to 1. When units
// are left blank for a catalog-timed code with recorded minutes, units are
// estimated from minutes; under 8 minutes that estimate is 0.
func BuildCharges(encounterID uuid.UUID, in ChargeInput) []*Charge {
	var charges []*Charge

	for i, raw := range in.Codes {
		code := strings.TrimSpace(raw)
		if code == "" {
			continue
		}

		desc := at(in.Descriptions, i)
		minutesRaw := at(in.Minutes, i)
		unitsRaw := at(in.Units, i)
		mod := at(in.Modifiers, i)

		var minutes *int
		if minutesRaw != "" {
			if v, err := strconv.Atoi(minutesRaw); err == nil {
				minutes = &v
			}
		}

		units := 1
		if unitsRaw != "" {
			if v, err := strconv.Atoi(unitsRaw); err == nil {
				units = v
			}
		} else if meta, ok := Lookup(code); ok && meta.Timed && minutes != nil {
			// Units left blank: estimate from minutes for timed codes.
			if *minutes >= 8 {
				units = max(1, UnitsFromMinutes(minutes))
			} else {
				units = 0
			}
		}

		if desc == "" {
			if meta, ok := Lookup(code); ok {
				desc = meta.Description
			}
		}

		c := &Charge{
			EncounterID: encounterID,
			CPTCode:     code,
			Minutes:     minutes,
			Units:       units,
		}
		if desc != "" {
			c.Description = &desc
		}
		if mod != "" {
			c.Modifiers = &mod
		}
		charges = append(charges, c)
	}

	return charges
}
