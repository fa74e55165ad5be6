package billing

// UnitsFromMinutes estimates billed units for a single timed code using the
// 8-minute-rule approximation: 8-22 min = 1 unit, 23-37 = 2, 38-52 = 3,
// 53-67 = 4, and so on. Below 8 minutes (or with no minutes recorded) the
// estimate is 0.
//
// Real-world billing can require aggregating minutes across timed codes on
// one visit; this estimator is deliberately per-line only, as a teaching aid.
func UnitsFromMinutes(minutes *int) int {
	if minutes == nil {
		return 0
	}
	if *minutes < 8 {
		return 0
	}
	return (*minutes + 7) / 15
}
