package utils

import (
	"time"

	"cloud.google.com/go/civil"
)

const daysPerWeek = 7

// CountWeekendDays counts Saturdays and Sundays for a rental of numDays
// starting at start. Whole weeks contribute two days each; the remaining
// days are scanned from the start of the partial week through the due date,
// both ends included.
func CountWeekendDays(start civil.Date, numDays int) int {
	count := 0
	if numDays >= daysPerWeek {
		weeks := numDays / daysPerWeek
		count += 2 * weeks
		start = start.AddDays(weeks * daysPerWeek)
		numDays %= daysPerWeek
	}

	for i := 0; i <= numDays; i++ {
		if IsWeekend(start.AddDays(i)) {
			count++
		}
	}
	return count
}

func IsWeekend(d civil.Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
