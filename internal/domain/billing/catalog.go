package billing

// CPTEntry describes one procedure code in the educational catalog.
// Timed marks time-based codes where minutes are typically tracked.
type CPTEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Timed       bool   `json:"timed"`
}

// Catalog is the static CPT reference used for charge capture. It is a
// teaching subset, not a complete code set; unknown codes are still accepted
// on charges so ad hoc billing entries work.
var Catalog = []CPTEntry{
	{Code: "97161", Description: "PT Evaluation - low complexity", Timed: false},
	{Code: "97162", Description: "PT Evaluation - moderate complexity", Timed: false},
	{Code: "97163", Description: "PT Evaluation - high complexity", Timed: false},
	{Code: "97164", Description: "PT Re-evaluation", Timed: false},

	{Code: "97110", Description: "Therapeutic exercise", Timed: true},
	{Code: "97112", Description: "Neuromuscular re-education", Timed: true},
	{Code: "97116", Description: "Gait training", Timed: true},
	{Code: "97140", Description: "Manual therapy", Timed: true},
	{Code: "97530", Description: "Therapeutic activities", Timed: true},
	{Code: "97535", Description: "Self-care/home management training", Timed: true},
	{Code: "97113", Description: "Aquatic therapy/exercises", Timed: true},
	{Code: "97760", Description: "Orthotic management/training", Timed: true},
	{Code: "97761", Description: "Prosthetic training", Timed: true},

	{Code: "95992", Description: "Canalith repositioning procedure (e.g., BPPV)", Timed: false},

	{Code: "97010", Description: "Hot/cold packs", Timed: false},
	{Code: "97012", Description: "Mechanical traction", Timed: false},
	{Code: "97014", Description: "Electrical stimulation (unattended)", Timed: false},
	{Code: "97035", Description: "Ultrasound", Timed: true},
}

var catalogIndex = func() map[string]CPTEntry {
	idx := make(map[string]CPTEntry, len(Catalog))
	for _, e := range Catalog {
		idx[e.Code] = e
	}
	return idx
}()

// Lookup returns the catalog entry for a code. Unknown codes return a zero
// entry with ok=false: no default description, not timed.
func Lookup(code string) (CPTEntry, bool) {
	e, ok := catalogIndex[code]
	return e, ok
}
