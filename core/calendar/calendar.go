// Package calendar provides the weekday arithmetic used to bound
// preparation production windows.
package calendar

import "time"

// PreviousSafeDay returns the latest date strictly before deadline on which
// production may still finish. A Monday deadline maps to the prior Friday,
// a Tuesday deadline to the Friday before that; any other weekday keeps a
// two-day buffer. The result may itself fall on a weekend; callers filter
// through BusinessDays.
func PreviousSafeDay(deadline time.Time) time.Time {
	switch deadline.Weekday() {
	case time.Monday:
		return deadline.AddDate(0, 0, -3)
	case time.Tuesday:
		return deadline.AddDate(0, 0, -4)
	default:
		return deadline.AddDate(0, 0, -2)
	}
}

// BusinessDays returns the ordered Monday-to-Friday dates in [start, end]
// inclusive. A start after end yields an empty slice.
func BusinessDays(start, end time.Time) []time.Time {
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append(days, d)
		}
	}
	return days
}
