package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"

	"github.com/robinvdvleuten/daytools/calendar"
	"github.com/robinvdvleuten/daytools/output"
	"github.com/robinvdvleuten/daytools/telemetry"
)

type DateCmd struct {
	Interactive bool          `help:"Prompt for the start date and offset." short:"i"`
	Timeout     time.Duration `help:"Give up on offsets that take longer than this to walk." default:"10s" env:"DAYTOOLS_TIMEOUT"`

	// Args is passed through untouched once the start date is seen, so a
	// negative offset such as -10 is not mistaken for a flag.
	Args []string `help:"Start date as DD/MM/YYYY followed by the days to move, negative to go back." arg:"" optional:"" passthrough:"partial" name:"date-and-offset"`
}

func (cmd *DateCmd) Run(ctx *kong.Context, globals *Globals) error {
	args := cmd.Args
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) > 2 {
		printError(ctx.Stderr, fmt.Sprintf("unexpected argument %q", args[2]))
		_ = ctx.PrintUsage(false)
		return NewCommandError(2)
	}

	var startArg, offsetArg string
	if len(args) > 0 {
		startArg = args[0]
	}
	if len(args) > 1 {
		offsetArg = args[1]
	}

	if cmd.Interactive {
		if !isTerminal() {
			return errors.New("--interactive requires a terminal")
		}
		if err := promptDate(&startArg, &offsetArg); err != nil {
			return err
		}
	}

	if startArg == "" || offsetArg == "" {
		printError(ctx.Stderr, "expected a start date and an offset")
		_ = ctx.PrintUsage(false)
		return NewCommandError(2)
	}

	start, err := calendar.Parse(startArg)
	if err != nil {
		_, _ = fmt.Fprintln(ctx.Stderr, NewErrorRenderer(startArg).Render(err))
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "invalid date")
		_ = ctx.PrintUsage(false)
		return NewCommandError(2)
	}

	n, err := parseOffset(offsetArg)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		_ = ctx.PrintUsage(false)
		return NewCommandError(2)
	}

	runCtx, report := startTelemetry(context.Background(), globals.Telemetry, ctx.Stderr,
		fmt.Sprintf("date %s %+d", start, n))
	defer report()

	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, cmd.Timeout)
		defer cancel()
	}

	end, weekday, err := EndDate(runCtx, start, n)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			printError(ctx.Stderr, fmt.Sprintf("offset of %s days did not finish within %s", humanize.Comma(int64(n)), cmd.Timeout))
			return NewCommandError(1)
		}
		return err
	}

	writeEndDate(ctx.Stdout, end, weekday)
	return nil
}

// EndDate walks n days from start and returns the date reached and its
// weekday.
func EndDate(ctx context.Context, start calendar.Date, n int) (calendar.Date, calendar.Weekday, error) {
	stepTimer := telemetry.StartTimer(ctx, fmt.Sprintf("step %s days", humanize.Comma(int64(n))))
	end, err := calendar.StepWithin(ctx, start, n)
	stepTimer.End()
	if err != nil {
		return calendar.Date{}, 0, err
	}

	weekdayTimer := telemetry.StartTimer(ctx, "weekday")
	weekday := calendar.DayOfWeek(end)
	weekdayTimer.End()

	return end, weekday, nil
}

func writeEndDate(w io.Writer, end calendar.Date, weekday calendar.Weekday) {
	styles := output.NewStyles(w)
	_, _ = fmt.Fprintf(w, "The end date is %s, %s.\n",
		styles.Weekday(weekday.String()),
		styles.Date(end.String()),
	)
}
