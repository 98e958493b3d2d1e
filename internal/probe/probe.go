// Package probe answers read-only questions about the local environment:
// whether an executable is on the PATH, whether account credentials are
// available, and whether the companion browser is installed. Nothing is
// cached; every call looks again. Lookup failures are reported as absence.
package probe

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/internetdata/create-my-internet/internal/branding"
	"github.com/internetdata/create-my-internet/internal/platform"
)

// Stater is the filesystem capability used for existence checks.
// Any billy.Filesystem satisfies it.
type Stater interface {
	Stat(filename string) (os.FileInfo, error)
}

// CredentialFile reports whether the stored credential file exists.
type CredentialFile interface {
	Exists() bool
}

// CredentialSource names where credentials were found.
type CredentialSource string

const (
	SourceNone CredentialSource = ""
	SourceFile CredentialSource = "file"
	SourceEnv  CredentialSource = "env"
)

// Prober runs environment checks through injectable capabilities.
type Prober struct {
	LookPath    func(file string) (string, error)
	Getenv      func(key string) string
	FS          Stater
	GOOS        string
	Companions  platform.PathTable
	Credentials CredentialFile
	UserEnv     string
	PasswordEnv string
}

// New returns a Prober wired to the real OS.
func New(creds CredentialFile) *Prober {
	return &Prober{
		LookPath:    exec.LookPath,
		Getenv:      os.Getenv,
		FS:          osfs.Default,
		GOOS:        runtime.GOOS,
		Companions:  platform.CompanionLocations,
		Credentials: creds,
		UserEnv:     branding.UserEnv(),
		PasswordEnv: branding.PasswordEnv(),
	}
}

// ExecutableResolvable reports whether name resolves to a non-empty path on
// the search path.
func (p *Prober) ExecutableResolvable(name string) bool {
	path, err := p.LookPath(name)
	return err == nil && len(path) > 0
}

// CompanionAppInstalled reports whether any candidate location for the
// current platform exists.
func (p *Prober) CompanionAppInstalled() bool {
	return p.anyExists(p.Companions.Candidates(p.GOOS))
}

// CompanionAppPath returns the first existing candidate location, or "".
func (p *Prober) CompanionAppPath() string {
	for _, path := range p.Companions.Candidates(p.GOOS) {
		if p.exists(path) {
			return path
		}
	}
	return ""
}

// CredentialsPresent reports whether the credential file exists or both
// credential environment variables are non-empty.
func (p *Prober) CredentialsPresent() bool {
	return p.CredentialSource() != SourceNone
}

// CredentialSource reports where credentials are available. The file wins
// when both are present.
func (p *Prober) CredentialSource() CredentialSource {
	if p.Credentials != nil && p.Credentials.Exists() {
		return SourceFile
	}
	if p.Getenv(p.UserEnv) != "" && p.Getenv(p.PasswordEnv) != "" {
		return SourceEnv
	}
	return SourceNone
}

func (p *Prober) anyExists(paths []string) bool {
	for _, path := range paths {
		if p.exists(path) {
			return true
		}
	}
	return false
}

func (p *Prober) exists(path string) bool {
	_, err := p.FS.Stat(path)
	return err == nil
}
