package pkgmanager

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/internetdata/create-my-internet/internal/exec"
)

// VersionReport is the result of checking an installed manager's version.
type VersionReport struct {
	Version *semver.Version
	Minimum *semver.Version
}

// Satisfied reports whether the installed version meets the minimum.
func (r *VersionReport) Satisfied() bool {
	if r.Minimum == nil {
		return true
	}
	return !r.Version.LessThan(r.Minimum)
}

// CheckVersion runs "<manager> --version" and compares the reported version
// against the manager's minimum.
func CheckVersion(ctx context.Context, runner exec.CommandRunner, m Manager) (*VersionReport, error) {
	var stdout, stderr bytes.Buffer
	status, err := runner.Run(ctx, m.Name(), []string{"--version"}, exec.RunOpts{
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("running %s --version: %w", m.Name(), err)
	}
	if !status.Success() {
		return nil, fmt.Errorf("%s --version exited with status %d", m.Name(), status)
	}

	v, err := ParseVersion(stdout.String())
	if err != nil {
		return nil, err
	}

	report := &VersionReport{Version: v}
	if min := m.MinVersion(); min != "" {
		report.Minimum, err = semver.NewVersion(min)
		if err != nil {
			return nil, fmt.Errorf("parsing minimum version %q: %w", min, err)
		}
	}
	return report, nil
}

// ParseVersion extracts a semver from tool output such as "1.22.19\n" or "v10.2.4".
func ParseVersion(output string) (*semver.Version, error) {
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty version output")
	}
	raw := strings.TrimPrefix(fields[0], "v")
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", fields[0], err)
	}
	return v, nil
}
