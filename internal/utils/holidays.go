package utils

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

const daysPerYear = 365

// HolidayCalendar holds the holidays on which non-holiday-charged tools are free.
type HolidayCalendar struct {
	holidays []*cal.Holiday
}

// NewHolidayCalendar returns the rental calendar: observed Independence Day and Labor Day.
func NewHolidayCalendar() *HolidayCalendar {
	return &HolidayCalendar{
		holidays: []*cal.Holiday{us.IndependenceDay, us.LaborDay},
	}
}

// ObservedIndependenceDay returns July 4th, moved to Friday when it falls on
// Saturday and to Monday when it falls on Sunday.
func ObservedIndependenceDay(year int) civil.Date {
	return observedDate(us.IndependenceDay, year)
}

// LaborDay returns the first Monday of September.
func LaborDay(year int) civil.Date {
	return observedDate(us.LaborDay, year)
}

func observedDate(h *cal.Holiday, year int) civil.Date {
	_, observed := h.Calc(year)
	if observed.IsZero() {
		return civil.Date{}
	}
	return civil.DateOf(observed)
}

// ObservedDates returns the observed date of every calendar holiday in year.
func (c *HolidayCalendar) ObservedDates(year int) []civil.Date {
	dates := make([]civil.Date, 0, len(c.holidays))
	for _, h := range c.holidays {
		if d := observedDate(h, year); d.IsValid() {
			dates = append(dates, d)
		}
	}
	return dates
}

// CountHolidays returns the number of holidays falling strictly between the
// checkout and due dates. Every full 365 days of rental counts each holiday
// once; the remainder is checked against the checkout year's holidays with
// the due date moved back by the same number of years.
func (c *HolidayCalendar) CountHolidays(checkoutDate, dueDate civil.Date, rentalDays int) int {
	count := 0
	if years := rentalDays / daysPerYear; years > 0 {
		count += len(c.holidays) * years
		dueDate = AddYears(dueDate, -years)
	}

	for _, observed := range c.ObservedDates(checkoutDate.Year) {
		if checkoutDate.Before(observed) && dueDate.After(observed) {
			count++
		}
	}
	return count
}

// AddYears shifts d by n years, clamping February 29th to the 28th in common years.
func AddYears(d civil.Date, n int) civil.Date {
	year := d.Year + n
	day := d.Day
	if d.Month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return civil.Date{Year: year, Month: d.Month, Day: day}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
