package cli

import (
	"fmt"
	"io"

	"github.com/robinvdvleuten/daytools/calendar"
)

// RunDateCalc is the datecalc program: it takes exactly a DD/MM/YYYY date and
// a day offset and prints the resulting weekday and date. Any bad input
// prints a usage line and returns exit status 1.
func RunDateCalc(prog string, args []string, stdout, stderr io.Writer) int {
	usage := func() int {
		_, _ = fmt.Fprintf(stderr, "Usage: %s DD/MM/YYYY NN\n", prog)
		return 1
	}

	if len(args) != 2 {
		return usage()
	}

	start, err := calendar.Parse(args[0])
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Invalid date format")
		return usage()
	}

	n, err := parseOffset(args[1])
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Invalid number format")
		return usage()
	}

	end := calendar.Step(start, n)
	writeEndDate(stdout, end, calendar.DayOfWeek(end))
	return 0
}
