package meminfo

import "github.com/shopspring/decimal"

var binaryUnits = []string{"KiB", "MiB", "GiB", "TiB", "PiB"}

var kibi = decimal.NewFromInt(1024)

// HumanizeKiB renders a KiB count in the largest binary unit that keeps the
// value at or below 1024, with two decimals: 1536 becomes "1.50 MiB".
func HumanizeKiB(kib int64) string {
	value := decimal.NewFromInt(kib)
	unit := 0
	for value.GreaterThan(kibi) && unit < len(binaryUnits)-1 {
		value = value.Div(kibi)
		unit++
	}
	return value.StringFixed(2) + " " + binaryUnits[unit]
}
