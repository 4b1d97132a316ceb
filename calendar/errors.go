package calendar

import "fmt"

// ParseError is returned when a string does not decompose into three
// slash-separated integers.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Input, e.Reason)
}

// RangeError is returned when a date component lies outside its valid range.
// Max is zero for components without an upper bound.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	if e.Max == 0 {
		return fmt.Sprintf("%s %d out of range (minimum %d)", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("%s %d out of range (%d-%d)", e.Field, e.Value, e.Min, e.Max)
}

// InvalidMonthError is returned by DaysInMonth for a month outside 1-12.
type InvalidMonthError struct {
	Month int
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month %d", e.Month)
}
