package cli

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Date DateCmd `cmd:"" help:"Print the weekday and date a number of days away from a start date."`
	Mem  MemCmd  `cmd:"" help:"Show memory usage as a bar chart, system-wide or for one program."`
}
