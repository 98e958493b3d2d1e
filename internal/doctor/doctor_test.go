package doctor

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/internetdata/create-my-internet/internal/credentials"
	"github.com/internetdata/create-my-internet/internal/exec"
	"github.com/internetdata/create-my-internet/internal/probe"
)

type fakeEnv struct {
	executables map[string]bool
	source      probe.CredentialSource
	companion   string
}

func (e fakeEnv) ExecutableResolvable(name string) bool     { return e.executables[name] }
func (e fakeEnv) CredentialSource() probe.CredentialSource { return e.source }
func (e fakeEnv) CompanionAppPath() string                 { return e.companion }

type versionRunner map[string]string

func (r versionRunner) Run(_ context.Context, name string, _ []string, opts exec.RunOpts) (exec.ExitStatus, error) {
	out, ok := r[name]
	if !ok {
		return 127, nil
	}
	io.WriteString(opts.Stdout, out)
	return 0, nil
}

func newDoctor(env fakeEnv, runner versionRunner, store *credentials.Store) *Doctor {
	return &Doctor{Env: env, Runner: runner, Credentials: store, UserEnv: "LSD_USER", PasswordEnv: "LSD_PASSWORD"}
}

func assertContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output does not contain %q.\nOutput:\n%s", substr, output)
	}
}

func TestDoctor_Healthy(t *testing.T) {
	store := credentials.NewStore(memfs.New(), ".lsd")
	if err := store.Save(credentials.Credential{User: "me@example.com", Password: "p"}); err != nil {
		t.Fatal(err)
	}

	d := newDoctor(fakeEnv{
		executables: map[string]bool{"yarn": true, "npm": true},
		source:      probe.SourceFile,
		companion:   "/usr/bin/Bicycle",
	}, versionRunner{"yarn": "1.22.19\n", "npm": "10.2.4\n"}, store)

	var out bytes.Buffer
	s := d.Run(context.Background(), &out)

	if !s.Healthy() {
		t.Error("expected healthy summary")
	}
	if s != (Summary{OK: 4}) {
		t.Errorf("summary = %+v, want 4 ok", s)
	}
	assertContains(t, out.String(), "[ OK ] yarn 1.22.19")
	assertContains(t, out.String(), "[ OK ] npm 10.2.4")
	assertContains(t, out.String(), "(user me@example.com)")
	assertContains(t, out.String(), "installed at /usr/bin/Bicycle")
	assertContains(t, out.String(), "4 ok, 0 warning(s), 0 missing")
}

func TestDoctor_OldNPMAndMissingYarn(t *testing.T) {
	d := newDoctor(fakeEnv{
		executables: map[string]bool{"npm": true},
		source:      probe.SourceEnv,
	}, versionRunner{"npm": "6.14.18\n"}, credentials.NewStore(memfs.New(), ".lsd"))

	var out bytes.Buffer
	s := d.Run(context.Background(), &out)

	if s.Healthy() {
		t.Error("expected unhealthy summary")
	}
	if want := (Summary{OK: 1, Warnings: 1, Missing: 2}); s != want {
		t.Errorf("summary = %+v, want %+v", s, want)
	}
	assertContains(t, out.String(), "[MISS] yarn not found on PATH")
	assertContains(t, out.String(), "[WARN] npm 6.14.18 is older than 7.0.0")
	assertContains(t, out.String(), "credentials from LSD_USER/LSD_PASSWORD")
	assertContains(t, out.String(), "[MISS] not installed (optional)")
}

func TestDoctor_MalformedCredentialFile(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, ".lsd", []byte(`{"user": ""}`), 0600); err != nil {
		t.Fatal(err)
	}

	d := newDoctor(fakeEnv{source: probe.SourceFile}, versionRunner{}, credentials.NewStore(fs, ".lsd"))

	var out bytes.Buffer
	s := d.Run(context.Background(), &out)

	if s.Warnings != 1 {
		t.Errorf("warnings = %d, want 1", s.Warnings)
	}
	assertContains(t, out.String(), "is malformed")
}

func TestDoctor_NoCredentials(t *testing.T) {
	d := newDoctor(fakeEnv{}, versionRunner{}, credentials.NewStore(memfs.New(), ".lsd"))

	var out bytes.Buffer
	s := d.Run(context.Background(), &out)

	if s.Missing != 4 {
		t.Errorf("missing = %d, want 4", s.Missing)
	}
	assertContains(t, out.String(), "LSD_USER/LSD_PASSWORD not both set")
}
