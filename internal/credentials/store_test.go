package credentials

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

func TestStore_SaveThenExists(t *testing.T) {
	s := NewStore(memfs.New(), ".lsd")
	if s.Exists() {
		t.Fatal("Exists() = true before Save")
	}

	if err := s.Save(Credential{User: "me@example.com", Password: "key-123"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !s.Exists() {
		t.Error("Exists() = false after Save")
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.User != "me@example.com" || got.Password != "key-123" {
		t.Errorf("Load() = %+v", got)
	}
}

func TestStore_SaveIsIndentedJSON(t *testing.T) {
	fs := memfs.New()
	s := NewStore(fs, ".lsd")
	if err := s.Save(Credential{User: "u", Password: "p"}); err != nil {
		t.Fatal(err)
	}

	data, err := util.ReadFile(fs, ".lsd")
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"user\": \"u\",\n  \"password\": \"p\"\n}"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, ".lsd", []byte(strings.Repeat("x", 500)), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(fs, ".lsd")
	if err := s.Save(Credential{User: "new", Password: "secret"}); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() after overwrite: %v", err)
	}
	if got.User != "new" {
		t.Errorf("User = %q, want new", got.User)
	}
}

func TestStore_SavePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no unix permissions on windows")
	}
	home := t.TempDir()
	s := NewStore(osfs.New(home), ".lsd")
	if err := s.Save(Credential{User: "u", Password: "p"}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Join(home, ".lsd"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != FilePerm {
		t.Errorf("permissions = %o, want %o", perm, FilePerm)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(memfs.New(), ".lsd")
	if _, err := s.Load(); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStore_ValidateFile(t *testing.T) {
	s := NewStore(memfs.New(), ".lsd")
	if err := s.Save(Credential{User: "u", Password: "p"}); err != nil {
		t.Fatal(err)
	}

	res, err := s.ValidateFile()
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !res.Valid {
		t.Errorf("saved file is invalid: %v", res.Issues)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantValid bool
		wantPath  string
	}{
		{"valid", `{"user":"a","password":"b"}`, true, ""},
		{"missing password", `{"user":"a"}`, false, ""},
		{"empty user", `{"user":"","password":"b"}`, false, "/user"},
		{"wrong type", `{"user":1,"password":"b"}`, false, "/user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Validate([]byte(tt.data))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if res.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (issues: %v)", res.Valid, tt.wantValid, res.Issues)
			}
			if !tt.wantValid && len(res.Issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			if tt.wantPath != "" && res.Issues[0].Path != tt.wantPath {
				t.Errorf("Issues[0].Path = %q, want %q", res.Issues[0].Path, tt.wantPath)
			}
		})
	}
}

func TestValidate_NotJSON(t *testing.T) {
	if _, err := Validate([]byte("user=a")); err == nil {
		t.Error("expected error for non-JSON input")
	}
}
