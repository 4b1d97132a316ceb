// Package calendar implements day arithmetic on the proleptic Gregorian
// calendar: leap years, month lengths, date validation, single-day steps in
// either direction and the weekday of a date.
//
// All functions are pure and safe for concurrent use. Results are only
// meaningful for valid dates (see Parse and Date.Valid), and weekdays are only
// historically accurate from 15 October 1582 onward.
package calendar

import "fmt"

// Date is a calendar date. It carries no time of day and no location.
type Date struct {
	Day   int
	Month int
	Year  int
}

// NewDate returns the date for the given day, month and year without
// validating it.
func NewDate(day, month, year int) Date {
	return Date{Day: day, Month: month, Year: year}
}

// String renders the date as DD/MM/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%d", d.Day, d.Month, d.Year)
}

// Valid reports whether the month is within 1-12 and the day exists in that
// month of that year.
func (d Date) Valid() bool {
	return d.check() == nil
}

// Compare returns -1 if d is before other, +1 if it is after and 0 when both
// denote the same day.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

func (d Date) check() error {
	if d.Year < 0 {
		return &RangeError{Field: "year", Value: d.Year, Min: 0}
	}
	days, err := DaysInMonth(d.Month, d.Year)
	if err != nil {
		return &RangeError{Field: "month", Value: d.Month, Min: 1, Max: 12}
	}
	if d.Day < 1 || d.Day > days {
		return &RangeError{Field: "day", Value: d.Day, Min: 1, Max: days}
	}
	return nil
}

var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year has a 29th of February.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month (1-12) of year.
func DaysInMonth(month, year int) (int, error) {
	if month < 1 || month > 12 {
		return 0, &InvalidMonthError{Month: month}
	}
	return monthLength(month, year), nil
}

// monthLength is DaysInMonth for a month already known to be in range.
func monthLength(month, year int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
