package components

import "time"

// monthLengths holds the length of each month in a non-leap year,
// indexed by month number minus one.
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether the year has a February 29.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the month for the given year.
// Months outside 1-12 return 0, so any day literal fails validation
// against them.
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

// ValidDate reports whether the day exists in the month for the year.
func ValidDate(day, month, year int) bool {
	return day >= 1 && day <= DaysInMonth(month, year)
}

// closestYearSearchRadius bounds the candidate scan in ClosestYear. Eight
// years either side covers the worst leap-day gap, the seven non-leap
// years surrounding a skipped century year such as 2100.
const closestYearSearchRadius = 8

// ClosestYear returns the calendar year nearest the reference instant for
// which the (day, month) pair is a valid date. For dates valid in every
// year this is the reference year or one of its neighbors; for February 29
// it is the nearest leap year. Ties between an earlier and a later
// candidate go to the later one. The second return is false when no
// candidate year makes the date valid, such as February 30.
func ClosestYear(ref time.Time, day, month int) (int, bool) {
	bestYear := 0
	var bestDist time.Duration
	found := false

	for d := -closestYearSearchRadius; d <= closestYearSearchRadius; d++ {
		year := ref.Year() + d
		if !ValidDate(day, month, year) {
			continue
		}
		candidate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, ref.Location())
		dist := candidate.Sub(ref)
		if dist < 0 {
			dist = -dist
		}
		if !found || dist < bestDist || (dist == bestDist && year > bestYear) {
			bestYear = year
			bestDist = dist
			found = true
		}
	}
	return bestYear, found
}
