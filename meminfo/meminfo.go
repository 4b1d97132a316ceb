// Package meminfo reads memory statistics exposed by the Linux proc
// filesystem: system-wide totals from meminfo and per-process resident set
// sizes from smaps.
//
// All values are in kibibytes, as reported by the kernel.
package meminfo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/robinvdvleuten/daytools/telemetry"
)

// DefaultRoot is where the proc filesystem is normally mounted.
const DefaultRoot = "/proc"

// PidLookup returns the process IDs of every running instance of a program.
type PidLookup func(ctx context.Context, name string) ([]string, error)

// Reader reads memory statistics below a proc filesystem root.
type Reader struct {
	root  string
	pidof PidLookup
}

// Option configures a Reader.
type Option func(*Reader)

// WithRoot reads from dir instead of /proc.
func WithRoot(dir string) Option {
	return func(r *Reader) {
		r.root = dir
	}
}

// WithPidLookup replaces the pidof(8) based process lookup.
func WithPidLookup(lookup PidLookup) Option {
	return func(r *Reader) {
		r.pidof = lookup
	}
}

// New creates a Reader with the given options.
func New(opts ...Option) *Reader {
	r := &Reader{
		root:  DefaultRoot,
		pidof: Pidof,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Stats holds the system-wide memory figures in KiB.
type Stats struct {
	Total     int64
	Available int64
}

// Used is the memory that is not available for new allocations.
func (s Stats) Used() int64 {
	return s.Total - s.Available
}

// MissingFieldError is returned when meminfo lacks a required key.
type MissingFieldError struct {
	Path  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing %s", e.Path, e.Field)
}

// System reads MemTotal and MemAvailable from meminfo.
func (r *Reader) System(ctx context.Context) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	timer := telemetry.StartTimer(ctx, "read meminfo")
	defer timer.End()

	path := filepath.Join(r.root, "meminfo")

	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open meminfo: %w", err)
	}
	defer func() { _ = f.Close() }()

	fields, err := parseFields(f, "MemTotal:", "MemAvailable:")
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	total, ok := fields["MemTotal:"]
	if !ok {
		return Stats{}, &MissingFieldError{Path: path, Field: "MemTotal"}
	}
	// Kernels older than 3.14 have no MemAvailable line; report nothing free.
	return Stats{Total: total, Available: fields["MemAvailable:"]}, nil
}

// RSS returns the resident set size of a process by summing every Rss line
// in its smaps file. A process that no longer exists contributes zero.
func (r *Reader) RSS(pid string) (int64, error) {
	path := filepath.Join(r.root, pid, "smaps")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to open smaps: %w", err)
	}
	defer func() { _ = f.Close() }()

	var total int64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "Rss:") {
			continue
		}
		kib, err := secondField(line)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		total += kib
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return total, nil
}

// parseFields returns the numeric value of each wanted key. Keys keep their
// trailing colon, as they appear in the file.
func parseFields(r io.Reader, keys ...string) (map[string]int64, error) {
	values := make(map[string]int64, len(keys))

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		for _, key := range keys {
			if !strings.HasPrefix(line, key) {
				continue
			}
			n, err := secondField(line)
			if err != nil {
				return nil, err
			}
			values[key] = n
		}
		if len(values) == len(keys) {
			break
		}
	}

	return values, scanner.Err()
}

func secondField(line string) (int64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("malformed line %q", line)
	}
	n, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed line %q: %w", line, err)
	}
	return n, nil
}
