package service

import "time"

// IsLeapYear reports whether the given year is a Gregorian leap year:
// divisible by 4 and either not divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// InclusiveDayCount counts calendar days from start to end with both
// endpoints included: InclusiveDayCount(d, d) == 1. It requires
// end >= start; callers validate ordering before calling, the result for
// a reversed range is not meaningful.
func InclusiveDayCount(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDay.Sub(startDay).Hours()/24) + 1
}

// lastDayOfMonth returns midnight UTC of the last calendar day of t's month.
func lastDayOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}
