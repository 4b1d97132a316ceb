package cli

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestRunDateCalc(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "leap day",
			args:       []string{"28/02/2024", "1"},
			wantStdout: "The end date is Thu, 29/02/2024.\n",
		},
		{
			name:       "backwards",
			args:       []string{"01/01/2024", "-1"},
			wantStdout: "The end date is Sun, 31/12/2023.\n",
		},
		{
			name:       "weekday of start",
			args:       []string{"01/01/2024", "0"},
			wantStdout: "The end date is Mon, 01/01/2024.\n",
		},
		{
			name:       "no arguments",
			args:       nil,
			wantCode:   1,
			wantStderr: "Usage: datecalc DD/MM/YYYY NN\n",
		},
		{
			name:       "too many arguments",
			args:       []string{"01/01/2024", "1", "2"},
			wantCode:   1,
			wantStderr: "Usage: datecalc DD/MM/YYYY NN\n",
		},
		{
			name:       "not a leap year",
			args:       []string{"29/02/2023", "1"},
			wantCode:   1,
			wantStderr: "Invalid date format\nUsage: datecalc DD/MM/YYYY NN\n",
		},
		{
			name:       "malformed date",
			args:       []string{"2024-01-01", "1"},
			wantCode:   1,
			wantStderr: "Invalid date format\nUsage: datecalc DD/MM/YYYY NN\n",
		},
		{
			name:       "non-integer offset",
			args:       []string{"01/01/2024", "1.5"},
			wantCode:   1,
			wantStderr: "Invalid number format\nUsage: datecalc DD/MM/YYYY NN\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := RunDateCalc("datecalc", tt.args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, stdout.String())
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}
