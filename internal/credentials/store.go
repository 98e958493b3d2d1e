package credentials

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/internetdata/create-my-internet/internal/branding"
	"github.com/internetdata/create-my-internet/internal/platform"
)

// FilePerm is the permission applied to the credential file.
const FilePerm os.FileMode = 0600

// Credential is the stored account identity and API key.
type Credential struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// Store reads and writes the credential file inside a filesystem rooted at
// the user's home directory.
type Store struct {
	fs   billy.Filesystem
	name string
}

// NewStore returns a Store for the file name inside fs.
func NewStore(fs billy.Filesystem, name string) *Store {
	return &Store{fs: fs, name: name}
}

// DefaultStore returns the Store for $HOME/<credential file>.
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return NewStore(osfs.New(home), branding.CredentialFile()), nil
}

// Path returns the credential file location for display.
func (s *Store) Path() string {
	return s.fs.Join(s.fs.Root(), s.name)
}

// Exists reports whether the credential file is present. Stat errors other
// than absence are also reported as false.
func (s *Store) Exists() bool {
	_, err := s.fs.Stat(s.name)
	return err == nil
}

// Save writes c as indented JSON, replacing any previous content.
func (s *Store) Save(c Credential) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credential: %w", err)
	}
	if err := util.WriteFile(s.fs, s.name, data, FilePerm); err != nil {
		return fmt.Errorf("writing credential file %s: %w", s.Path(), err)
	}
	if err := platform.Chmod(s.fs, s.name, FilePerm); err != nil {
		return fmt.Errorf("securing credential file %s: %w", s.Path(), err)
	}
	return nil
}

// Load reads and decodes the credential file.
func (s *Store) Load() (*Credential, error) {
	data, err := util.ReadFile(s.fs, s.name)
	if err != nil {
		return nil, fmt.Errorf("reading credential file %s: %w", s.Path(), err)
	}
	var c Credential
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing credential file %s: %w", s.Path(), err)
	}
	return &c, nil
}

// ValidateFile checks the stored file against the credential schema.
func (s *Store) ValidateFile() (*ValidationResult, error) {
	data, err := util.ReadFile(s.fs, s.name)
	if err != nil {
		return nil, fmt.Errorf("reading credential file %s: %w", s.Path(), err)
	}
	return Validate(data)
}
