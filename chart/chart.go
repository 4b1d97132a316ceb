// Package chart renders memory usage as fixed-width text bar charts.
package chart

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
)

// DefaultLength is the bar width used when none is given.
const DefaultLength = 20

var hundred = decimal.NewFromInt(100)

// Bar turns a fraction between 0 and 1 into a bar of '#' followed by spaces,
// length characters wide. The filled part is truncated, never rounded up, and
// out-of-range fractions are clamped.
func Bar(fraction decimal.Decimal, length int) string {
	if length <= 0 {
		return ""
	}
	filled := int(fraction.Mul(decimal.NewFromInt(int64(length))).IntPart())
	filled = max(0, min(filled, length))
	return strings.Repeat("#", filled) + strings.Repeat(" ", length-filled)
}

// Fraction returns used/total. A zero total yields zero.
func Fraction(used, total int64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(used).Div(decimal.NewFromInt(total))
}

// Percent is the whole-number percentage of a fraction, truncated.
func Percent(fraction decimal.Decimal) int64 {
	return fraction.Mul(hundred).IntPart()
}

// Row is one line of a memory report.
type Row struct {
	Label string
	Used  int64
	Total int64
}

// Renderer writes rows in the form "label [bar | NN%] used/total".
type Renderer struct {
	Length     int
	LabelWidth int
	Units      func(kib int64) string
	BarStyle   func(bar string, percent int64) string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLength sets the bar width.
func WithLength(length int) Option {
	return func(r *Renderer) {
		r.Length = length
	}
}

// WithLabelWidth pads labels to at least width terminal columns.
func WithLabelWidth(width int) Option {
	return func(r *Renderer) {
		r.LabelWidth = width
	}
}

// WithUnits formats the used and total figures with fn instead of printing
// raw KiB counts.
func WithUnits(fn func(kib int64) string) Option {
	return func(r *Renderer) {
		r.Units = fn
	}
}

// WithBarStyle decorates each bar, for example with a color chosen by the
// percentage it represents.
func WithBarStyle(fn func(bar string, percent int64) string) Option {
	return func(r *Renderer) {
		r.BarStyle = fn
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{Length: DefaultLength}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Format renders a single row.
func (r *Renderer) Format(row Row) string {
	fraction := Fraction(row.Used, row.Total)

	percent := Percent(fraction)

	label := row.Label
	if r.LabelWidth > 0 {
		label = runewidth.FillRight(label, r.LabelWidth)
	}

	bar := Bar(fraction, r.Length)
	if r.BarStyle != nil {
		bar = r.BarStyle(bar, percent)
	}

	return fmt.Sprintf("%s [%s | %d%%] %s/%s",
		label,
		bar,
		percent,
		r.units(row.Used),
		r.units(row.Total),
	)
}

// Render writes every row on its own line.
func (r *Renderer) Render(w io.Writer, rows ...Row) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, r.Format(row)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) units(kib int64) string {
	if r.Units == nil {
		return strconv.FormatInt(kib, 10)
	}
	return r.Units(kib)
}
