package cli

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	// Keep rendered messages free of escape codes when tests run in a
	// terminal.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// runApp parses args like the daytools binary and runs the selected command.
func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var app struct {
		Commands
	}
	var stdout, stderr bytes.Buffer

	parser, err := kong.New(&app,
		kong.Name("daytools"),
		kong.Writers(&stdout, &stderr),
		kong.Exit(func(int) {}),
		kong.Bind(&app.Globals),
	)
	assert.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return stdout.String(), stderr.String(), err
	}

	err = ctx.Run()
	return stdout.String(), stderr.String(), err
}

func assertExitCode(t *testing.T, want int, err error) {
	t.Helper()

	var cmdErr *CommandError
	assert.True(t, errors.As(err, &cmdErr), "want *CommandError, got %v", err)
	assert.Equal(t, want, cmdErr.ExitCode())
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"400", 400, false},
		{"-1", -1, false},
		{"+7", 7, false},
		{" 12 ", 12, false},
		{"1.5", 0, true},
		{"ten", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseOffset(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		assert.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer

	printError(&buf, "broken")

	assert.Equal(t, "✗ broken\n", buf.String())
}
