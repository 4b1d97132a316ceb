package meminfo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/daytools/telemetry"
)

// Pids returns the IDs of the running processes named name, in ascending
// numeric order.
func (r *Reader) Pids(ctx context.Context, name string) ([]string, error) {
	timer := telemetry.StartTimer(ctx, "pidof "+name)
	defer timer.End()

	pids, err := r.pidof(ctx, name)
	if err != nil {
		return nil, err
	}
	return sortPids(pids), nil
}

// Pidof runs pidof(8). A program with no running processes yields an empty
// result rather than an error.
func Pidof(ctx context.Context, name string) ([]string, error) {
	out, err := exec.CommandContext(ctx, "pidof", name).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("pidof %s: %w", name, err)
	}
	return strings.Fields(string(out)), nil
}

func sortPids(pids []string) []string {
	sorted := slices.Clone(pids)
	slices.SortFunc(sorted, func(a, b string) int {
		x, errA := strconv.Atoi(a)
		y, errB := strconv.Atoi(b)
		if errA != nil || errB != nil {
			return strings.Compare(a, b)
		}
		return x - y
	})
	return slices.Compact(sorted)
}
