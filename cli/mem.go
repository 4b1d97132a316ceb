package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/daytools/chart"
	"github.com/robinvdvleuten/daytools/meminfo"
	"github.com/robinvdvleuten/daytools/output"
	"github.com/robinvdvleuten/daytools/telemetry"
)

// systemLabelWidth pads the "Memory" label of the system-wide row so its bar
// opens at column 16.
const systemLabelWidth = 14

type MemCmd struct {
	Length        int    `help:"Length of the bar graph." short:"l" default:"20"`
	HumanReadable bool   `help:"Print sizes in human readable format." short:"H" name:"human-readable"`
	Program       string `help:"Show the memory use of every process of this program instead of the system total." arg:"" optional:""`
	ProcRoot      string `help:"Mount point of the proc filesystem." default:"/proc" env:"DAYTOOLS_PROC_ROOT" hidden:""`
}

func (cmd *MemCmd) Run(ctx *kong.Context, globals *Globals) error {
	if cmd.Length < 0 {
		printError(ctx.Stderr, "--length must not be negative")
		return NewCommandError(2)
	}

	runCtx, report := startTelemetry(context.Background(), globals.Telemetry, ctx.Stderr, "mem")
	defer report()

	reader := meminfo.New(meminfo.WithRoot(cmd.ProcRoot))
	return cmd.Report(runCtx, reader, ctx.Stdout, ctx.Stderr)
}

// Report writes the memory report using reader.
func (cmd *MemCmd) Report(ctx context.Context, reader *meminfo.Reader, stdout, stderr io.Writer) error {
	stats, err := reader.System(ctx)
	if err != nil {
		return err
	}
	if stats.Total <= 0 {
		return fmt.Errorf("total memory reported as %d KiB", stats.Total)
	}

	renderer := cmd.renderer(stdout)

	if cmd.Program == "" {
		return renderer.Render(stdout, chart.Row{Label: "Memory", Used: stats.Used(), Total: stats.Total})
	}

	pids, err := reader.Pids(ctx, cmd.Program)
	if err != nil {
		return err
	}
	if len(pids) == 0 {
		styles := output.NewStyles(stderr)
		_, _ = fmt.Fprintln(stderr, styles.Warning("No running processes named "+cmd.Program))
	}

	timer := telemetry.StartTimer(ctx, fmt.Sprintf("rss of %d processes", len(pids)))
	rows := make([]chart.Row, 0, len(pids)+1)
	var total int64
	for _, pid := range pids {
		rss, err := reader.RSS(pid)
		if err != nil {
			timer.End()
			return err
		}
		rows = append(rows, chart.Row{Label: pid, Used: rss, Total: stats.Total})
		total += rss
	}
	timer.End()

	rows = append(rows, chart.Row{Label: cmd.Program, Used: total, Total: stats.Total})
	return renderer.Render(stdout, rows...)
}

func (cmd *MemCmd) renderer(w io.Writer) *chart.Renderer {
	styles := output.NewStyles(w)

	opts := []chart.Option{
		chart.WithLength(cmd.Length),
		chart.WithBarStyle(styles.Bar),
	}
	if cmd.Program == "" {
		opts = append(opts, chart.WithLabelWidth(systemLabelWidth))
	}
	if cmd.HumanReadable {
		opts = append(opts, chart.WithUnits(meminfo.HumanizeKiB))
	}
	return chart.New(opts...)
}
