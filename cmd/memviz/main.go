// Command memviz shows memory usage as bar charts.
package main

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/daytools/cli"
)

func main() {
	var (
		cmd     cli.MemCmd
		globals cli.Globals
	)

	ctx := kong.Parse(&cmd,
		kong.Name("memviz"),
		kong.Description("Memory Visualiser -- See Memory Usage Report with bar charts"),
		kong.UsageOnError(),
		kong.Bind(&globals),
	)

	err := ctx.Run()

	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		os.Exit(cmdErr.ExitCode())
	}
	ctx.FatalIfErrorf(err)
}
