package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/daytools/calendar"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// CommandError signals a command failure with a specific exit code.
// Commands return this after handling all output (printing errors to stderr).
// Main centralizes exit handling instead of commands calling os.Exit directly.
type CommandError struct {
	exitCode int
}

// NewCommandError creates a new CommandError with the given exit code.
func NewCommandError(exitCode int) *CommandError {
	return &CommandError{exitCode: exitCode}
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return "command failed"
}

// ExitCode returns the exit code associated with this error.
func (e *CommandError) ExitCode() int {
	return e.exitCode
}

// ErrorRenderer renders date input errors with the input underlined at the
// offending field.
type ErrorRenderer struct {
	input string
}

// NewErrorRenderer creates a renderer for errors about input.
func NewErrorRenderer(input string) *ErrorRenderer {
	return &ErrorRenderer{input: input}
}

// Render formats err. Errors that are not about the date input are returned
// as their plain message.
func (r *ErrorRenderer) Render(err error) string {
	var rangeErr *calendar.RangeError
	if errors.As(err, &rangeErr) {
		if start, end, ok := r.fieldSpan(rangeErr.Field); ok {
			return r.renderWithCaret(err.Error(), start, end)
		}
	}

	var parseErr *calendar.ParseError
	if errors.As(err, &parseErr) {
		return r.renderWithCaret(err.Error(), 0, len(r.input))
	}

	return err.Error()
}

// fieldSpan returns the byte range of the day, month or year field.
func (r *ErrorRenderer) fieldSpan(field string) (int, int, bool) {
	index := map[string]int{"day": 0, "month": 1, "year": 2}[field]
	parts := strings.Split(r.input, "/")
	if len(parts) != 3 {
		return 0, 0, false
	}

	start := 0
	for _, part := range parts[:index] {
		start += len(part) + 1
	}
	return start, start + len(parts[index]), true
}

func (r *ErrorRenderer) renderWithCaret(message string, start, end int) string {
	var buf strings.Builder

	buf.WriteString(errorStyle.Render(message))
	buf.WriteString("\n\n   ")
	buf.WriteString(errContextStyle.Render(r.input))
	buf.WriteString("\n   ")
	buf.WriteString(strings.Repeat(" ", runewidth.StringWidth(r.input[:start])))

	width := runewidth.StringWidth(r.input[start:end])
	if width == 0 {
		width = 1
	}
	buf.WriteString(errCaretStyle.Render(strings.Repeat("^", width)))

	return buf.String()
}
