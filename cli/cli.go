// Package cli implements the daytools commands: date arithmetic and the
// memory usage report.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/robinvdvleuten/daytools/calendar"
	"github.com/robinvdvleuten/daytools/telemetry"
)

var (
	errorSymbol = "✗"

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
)

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// parseOffset reads a signed day count.
func parseOffset(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q: expected a whole number of days", s)
	}
	return n, nil
}

// promptDate asks for a start date and an offset, validating both before
// the form is accepted.
func promptDate(start, offset *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Placeholder("DD/MM/YYYY").
				Value(start).
				Validate(func(s string) error {
					_, err := calendar.Parse(s)
					return err
				}),
			huh.NewInput().
				Title("Days to move (negative goes back)").
				Placeholder("0").
				Value(offset).
				Validate(func(s string) error {
					_, err := parseOffset(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	return nil
}

// startTelemetry installs a timing collector when enabled and returns the
// context to run with plus a func that ends the root timer and prints the
// report. Both are no-ops when telemetry is off.
func startTelemetry(ctx context.Context, enabled bool, w io.Writer, name string) (context.Context, func()) {
	if !enabled {
		return ctx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	ctx = telemetry.WithCollector(ctx, collector)

	root := collector.Start(name)
	ctx = telemetry.WithRootTimer(ctx, root)

	return ctx, func() {
		root.End()
		_, _ = fmt.Fprintln(w)
		collector.Report(w)
	}
}
