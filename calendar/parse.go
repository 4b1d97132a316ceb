package calendar

import (
	"strconv"
	"strings"
)

// Parse decodes a DD/MM/YYYY string into a valid Date. It returns a
// *ParseError when the input is not three slash-separated integers and a
// *RangeError when the resulting date does not exist.
func Parse(s string) (Date, error) {
	fields := strings.Split(s, "/")
	if len(fields) != 3 {
		return Date{}, &ParseError{Input: s, Reason: "expected DD/MM/YYYY"}
	}

	var parts [3]int
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Date{}, &ParseError{Input: s, Reason: "non-numeric field " + strconv.Quote(field)}
		}
		parts[i] = n
	}

	d := Date{Day: parts[0], Month: parts[1], Year: parts[2]}
	if err := d.check(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// MustParse is like Parse but panics if the date is invalid.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Valid reports whether s is a well-formed DD/MM/YYYY date that exists.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
