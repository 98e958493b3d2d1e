//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/internetdata/create-my-internet/internal/branding"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // holds the credential file
	BinDir  string // only entry on PATH; holds stub package managers
	WorkDir string // parent of generated projects
	CallLog string // each stub invocation appends "<dir>|<args>" here
}

// setupTestEnv creates isolated temp directories and points PATH and HOME at
// them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub package managers are shell scripts")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		BinDir:  t.TempDir(),
		WorkDir: t.TempDir(),
	}
	env.CallLog = filepath.Join(env.HomeDir, "calls.log")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir)
	t.Setenv(branding.UserEnv(), "")
	t.Setenv(branding.PasswordEnv(), "")
	return env
}

// installStub writes an executable named name into the bin dir. The stub
// records its working directory and arguments, then exits with code.
func installStub(t *testing.T, env *testEnv, name string, code int) {
	t.Helper()
	script := "#!/bin/sh\n" +
		"echo \"$(pwd)|$*\" >> '" + env.CallLog + "'\n" +
		"exit " + strconv.Itoa(code) + "\n"
	path := filepath.Join(env.BinDir, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing stub %s: %v", path, err)
	}
}

// calls returns the recorded stub invocations.
func calls(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.CallLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading call log: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
