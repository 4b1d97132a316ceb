package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/daytools/meminfo"
)

func writeProcTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(root, name)
		assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		assert.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	}
	return root
}

func stubPids(pids ...string) meminfo.PidLookup {
	return func(ctx context.Context, name string) ([]string, error) {
		return pids, nil
	}
}

func TestMemCmdReport(t *testing.T) {
	root := writeProcTree(t, map[string]string{
		"meminfo":  "MemTotal: 1000 kB\nMemFree: 100 kB\nMemAvailable: 750 kB\n",
		"10/smaps": "Rss: 60 kB\nPss: 30 kB\nRss: 40 kB\n",
	})

	t.Run("SystemWide", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := MemCmd{Length: 20}

		err := cmd.Report(context.Background(), meminfo.New(meminfo.WithRoot(root)), &stdout, &stderr)
		assert.NoError(t, err)
		assert.Equal(t, "Memory         [#####                | 25%] 250/1000\n", stdout.String())
	})

	t.Run("Program", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := MemCmd{Length: 10, Program: "bash"}
		reader := meminfo.New(meminfo.WithRoot(root), meminfo.WithPidLookup(stubPids("20", "10")))

		err := cmd.Report(context.Background(), reader, &stdout, &stderr)
		assert.NoError(t, err)
		assert.Equal(t,
			"10 [#          | 10%] 100/1000\n"+
				"20 [           | 0%] 0/1000\n"+
				"bash [#          | 10%] 100/1000\n",
			stdout.String())
		assert.Equal(t, "", stderr.String())
	})

	t.Run("ProgramNotRunning", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := MemCmd{Length: 10, Program: "ghost"}
		reader := meminfo.New(meminfo.WithRoot(root), meminfo.WithPidLookup(stubPids()))

		err := cmd.Report(context.Background(), reader, &stdout, &stderr)
		assert.NoError(t, err)
		assert.Equal(t, "ghost [           | 0%] 0/1000\n", stdout.String())
		assert.Equal(t, "No running processes named ghost\n", stderr.String())
	})

	t.Run("ZeroTotal", func(t *testing.T) {
		empty := writeProcTree(t, map[string]string{"meminfo": "MemTotal: 0 kB\nMemAvailable: 0 kB\n"})
		var stdout, stderr bytes.Buffer
		cmd := MemCmd{Length: 10}

		err := cmd.Report(context.Background(), meminfo.New(meminfo.WithRoot(empty)), &stdout, &stderr)
		assert.EqualError(t, err, "total memory reported as 0 KiB")
	})
}

func TestMemCmdHumanReadable(t *testing.T) {
	root := writeProcTree(t, map[string]string{
		"meminfo": "MemTotal: 16303428 kB\nMemAvailable: 9876543 kB\n",
	})

	var stdout, stderr bytes.Buffer
	cmd := MemCmd{Length: 20, HumanReadable: true}

	err := cmd.Report(context.Background(), meminfo.New(meminfo.WithRoot(root)), &stdout, &stderr)
	assert.NoError(t, err)
	assert.Equal(t, "Memory         [#######              | 39%] 6.13 GiB/15.55 GiB\n", stdout.String())
}

func TestMemCmdRun(t *testing.T) {
	root := writeProcTree(t, map[string]string{
		"meminfo": "MemTotal: 2048 kB\nMemAvailable: 1024 kB\n",
	})

	t.Run("Flags", func(t *testing.T) {
		stdout, _, err := runApp(t, "mem", "-l", "4", "-H", "--proc-root", root)
		assert.NoError(t, err)
		assert.Equal(t, "Memory         [##   | 50%] 1024.00 KiB/2.00 MiB\n", stdout)
	})

	t.Run("Telemetry", func(t *testing.T) {
		_, stderr, err := runApp(t, "--telemetry", "mem", "--proc-root", root)
		assert.NoError(t, err)
		assert.Contains(t, stderr, "read meminfo")
	})

	t.Run("NegativeLength", func(t *testing.T) {
		_, stderr, err := runApp(t, "mem", "--length=-3", "--proc-root", root)
		assertExitCode(t, 2, err)
		assert.Contains(t, stderr, "--length must not be negative")
	})

	t.Run("MissingProc", func(t *testing.T) {
		_, _, err := runApp(t, "mem", "--proc-root", filepath.Join(root, "nope"))
		assert.Error(t, err)
	})
}
