// Package output provides styling helpers for terminal output. Styles degrade
// to plain text when the writer is not a terminal.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles renders text for a particular writer.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates Styles matching the color support of w.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Weekday styles a weekday name (bold cyan).
func (s *Styles) Weekday(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("6")).
		Bold().
		String()
}

// Date styles a calendar date (bold).
func (s *Styles) Date(text string) string {
	return s.Keyword(text)
}

// Bar colors a usage bar by how full it is: green below 60%, yellow below
// 85%, red above.
func (s *Styles) Bar(text string, percent int64) string {
	color := "2"
	switch {
	case percent >= 85:
		color = "1"
	case percent >= 60:
		color = "3"
	}
	return s.output.String(text).
		Foreground(s.output.Color(color)).
		String()
}

// Keyword styles emphasized text (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim styles secondary information.
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Warning styles a warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// Timing styles a duration, in red when the operation was slow.
func (s *Styles) Timing(text string, slow bool) string {
	if slow {
		return s.output.String(text).
			Foreground(s.output.Color("1")).
			String()
	}
	return s.Dim(text)
}
