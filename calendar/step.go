package calendar

import (
	"context"
	"fmt"
)

// Direction selects which way a single step moves.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// checkInterval is how many steps StepWithin takes between context checks.
const checkInterval = 4096

// After returns the day following d.
func After(d Date) Date {
	return step(d, Forward)
}

// Before returns the day preceding d.
func Before(d Date) Date {
	return step(d, Backward)
}

// Step moves d by n days, forward when n is positive and backward when it is
// negative. It walks one day at a time, so the cost grows linearly with |n|.
func Step(d Date, n int) Date {
	dir, count := split(n)
	for i := uint(0); i < count; i++ {
		d = step(d, dir)
	}
	return d
}

// StepWithin is Step with cancellation. It gives up with the context's error
// once ctx is done.
func StepWithin(ctx context.Context, d Date, n int) (Date, error) {
	dir, count := split(n)
	for i := uint(0); i < count; i++ {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return d, fmt.Errorf("stepped %d of %d days: %w", i, count, err)
			}
		}
		d = step(d, dir)
	}
	return d, nil
}

// split returns the direction and magnitude of n. The magnitude is unsigned
// so that math.MinInt, whose negation overflows int, still counts correctly.
func split(n int) (Direction, uint) {
	if n < 0 {
		return Backward, uint(-(n + 1)) + 1
	}
	return Forward, uint(n)
}

// step moves a valid date by exactly one day. At most one month and one year
// rollover happen per call.
func step(d Date, dir Direction) Date {
	d.Day += int(dir)

	switch {
	case d.Day > monthLength(d.Month, d.Year):
		d.Day = 1
		d.Month++
		if d.Month > 12 {
			d.Month = 1
			d.Year++
		}
	case d.Day < 1:
		d.Month--
		if d.Month < 1 {
			d.Month = 12
			d.Year--
		}
		d.Day = monthLength(d.Month, d.Year)
	}

	return d
}
