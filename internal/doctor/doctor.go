// Package doctor reports on the prerequisites a run depends on: which
// package managers are installed and new enough, whether account
// credentials are available and well-formed, and whether the companion
// browser is installed. It only reads; nothing is fixed or written.
package doctor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/internetdata/create-my-internet/internal/credentials"
	"github.com/internetdata/create-my-internet/internal/exec"
	"github.com/internetdata/create-my-internet/internal/pkgmanager"
	"github.com/internetdata/create-my-internet/internal/probe"
)

// Environment is the probe surface the doctor reads.
type Environment interface {
	ExecutableResolvable(name string) bool
	CredentialSource() probe.CredentialSource
	CompanionAppPath() string
}

// CredentialFile is the stored credential the doctor validates.
type CredentialFile interface {
	Path() string
	Exists() bool
	ValidateFile() (*credentials.ValidationResult, error)
	Load() (*credentials.Credential, error)
}

// Summary counts check outcomes.
type Summary struct {
	OK       int
	Warnings int
	Missing  int
}

// Healthy reports whether at least one manager works and nothing warned.
func (s Summary) Healthy() bool {
	return s.Warnings == 0 && s.OK > 0
}

// Doctor runs the checks.
type Doctor struct {
	Env         Environment
	Runner      exec.CommandRunner
	Credentials CredentialFile
	UserEnv     string
	PasswordEnv string
}

var printer = message.NewPrinter(language.English)

// Run writes one line per check to w and returns the tally.
func (d *Doctor) Run(ctx context.Context, w io.Writer) Summary {
	var s Summary

	fmt.Fprintln(w, "Package managers:")
	for _, name := range pkgmanager.Supported() {
		d.checkManager(ctx, w, &s, pkgmanager.Dispatch(name))
	}

	fmt.Fprintln(w, "\nAccount:")
	d.checkCredentials(w, &s)

	fmt.Fprintln(w, "\nCompanion browser:")
	if path := d.Env.CompanionAppPath(); path != "" {
		s.OK++
		fmt.Fprintf(w, "  [ OK ] installed at %s\n", path)
	} else {
		s.Missing++
		fmt.Fprintln(w, "  [MISS] not installed (optional)")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, printer.Sprintf("%d ok, %d warning(s), %d missing", s.OK, s.Warnings, s.Missing))
	return s
}

func (d *Doctor) checkManager(ctx context.Context, w io.Writer, s *Summary, m pkgmanager.Manager) {
	if !d.Env.ExecutableResolvable(m.Name()) {
		s.Missing++
		fmt.Fprintf(w, "  [MISS] %s not found on PATH\n", m.Name())
		return
	}

	report, err := pkgmanager.CheckVersion(ctx, d.Runner, m)
	if err != nil {
		s.Warnings++
		fmt.Fprintf(w, "  [WARN] %s: %v\n", m.Name(), err)
		return
	}
	if !report.Satisfied() {
		s.Warnings++
		fmt.Fprintf(w, "  [WARN] %s %s is older than %s\n", m.Name(), report.Version, report.Minimum)
		return
	}
	s.OK++
	fmt.Fprintf(w, "  [ OK ] %s %s\n", m.Name(), report.Version)
}

func (d *Doctor) checkCredentials(w io.Writer, s *Summary) {
	switch d.Env.CredentialSource() {
	case probe.SourceNone:
		s.Missing++
		fmt.Fprintf(w, "  [MISS] no %s and %s/%s not both set\n", d.Credentials.Path(), d.UserEnv, d.PasswordEnv)
		return
	case probe.SourceEnv:
		s.OK++
		fmt.Fprintf(w, "  [ OK ] credentials from %s/%s\n", d.UserEnv, d.PasswordEnv)
		return
	}

	res, err := d.Credentials.ValidateFile()
	if err != nil {
		s.Warnings++
		fmt.Fprintf(w, "  [WARN] %v\n", err)
		return
	}
	if !res.Valid {
		s.Warnings++
		issues := make([]string, len(res.Issues))
		for i, issue := range res.Issues {
			issues[i] = issue.String()
		}
		fmt.Fprintf(w, "  [WARN] %s is malformed: %s\n", d.Credentials.Path(), strings.Join(issues, "; "))
		return
	}
	cred, err := d.Credentials.Load()
	if err != nil {
		s.Warnings++
		fmt.Fprintf(w, "  [WARN] %v\n", err)
		return
	}
	s.OK++
	fmt.Fprintf(w, "  [ OK ] %s (user %s)\n", d.Credentials.Path(), cred.User)
}
