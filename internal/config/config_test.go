package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestLoad_Defaults(t *testing.T) {
	setupHome(t)
	Load()

	if got := Get(KeyPackageManager); got != "yarn" {
		t.Errorf("package_manager = %q, want yarn", got)
	}
	if got := Get(KeyProjectName); got != DefaultProjectName {
		t.Errorf("project_name = %q, want %q", got, DefaultProjectName)
	}
	if got := Get(KeyTargetURL); got != "https://lsd.so" {
		t.Errorf("target_url = %q", got)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("CREATE_MY_INTERNET_PACKAGE_MANAGER", "npm")
	Load()

	if got := Get(KeyPackageManager); got != "npm" {
		t.Errorf("package_manager = %q, want npm", got)
	}
}

func TestSetThenLoad(t *testing.T) {
	home := setupHome(t)
	Load()

	if err := Set(KeyProjectName, "scraper"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".create-my-internet", "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	Load()
	if got := Get(KeyProjectName); got != "scraper" {
		t.Errorf("project_name after reload = %q, want scraper", got)
	}
}

func TestSet_Rejects(t *testing.T) {
	setupHome(t)
	Load()

	if err := Set("colour", "blue"); err == nil {
		t.Error("expected error for unknown key")
	}
	if err := Set(KeyPackageManager, "pnpm"); err == nil {
		t.Error("expected error for unsupported package manager")
	}
	for _, name := range []string{"Demo", "../escape", ".hidden"} {
		if err := Set(KeyProjectName, name); err == nil {
			t.Errorf("expected error for project name %q", name)
		}
	}
	if got := Get(KeyProjectName); got != DefaultProjectName {
		t.Errorf("project_name = %q after rejected sets, want %q", got, DefaultProjectName)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("LSD_USER=file-user\nLSD_PASSWORD=file-key\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LSD_USER", "already-set")
	t.Setenv("LSD_PASSWORD", "")
	os.Unsetenv("LSD_PASSWORD")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error: %v", err)
	}
	if got := os.Getenv("LSD_USER"); got != "already-set" {
		t.Errorf("LSD_USER = %q, existing value must win", got)
	}
	if got := os.Getenv("LSD_PASSWORD"); got != "file-key" {
		t.Errorf("LSD_PASSWORD = %q, want file-key", got)
	}
}

func TestLoadDotEnv_Missing(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing file should not error: %v", err)
	}
}
