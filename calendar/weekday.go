package calendar

// Weekday is a day of the week, Sunday being 0.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// String returns the three-letter English abbreviation.
func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return "Weekday(?)"
	}
	return weekdayNames[w]
}

// Per-month offsets of Sakamoto's congruence, January first.
var sakamotoOffsets = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// DayOfWeek returns the weekday of a valid date using Tomohiko Sakamoto's
// method. Dates before 15/10/1582 get their proleptic Gregorian weekday.
func DayOfWeek(d Date) Weekday {
	y := d.Year
	if d.Month < 3 {
		y--
	}
	n := y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) + sakamotoOffsets[d.Month-1] + d.Day
	return Weekday(((n % 7) + 7) % 7)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
