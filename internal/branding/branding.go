// Package branding provides compile-time identity values for the CLI.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only needs to edit the YAML.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	CredentialFile   string `yaml:"credential_file"`
	UserEnv          string `yaml:"user_env"`
	PasswordEnv      string `yaml:"password_env"`
	SigninURL        string `yaml:"signin_url"`
	CompanionName    string `yaml:"companion_name"`
	CompanionURL     string `yaml:"companion_url"`
	DefaultTargetURL string `yaml:"default_target_url"`
	DocsURL          string `yaml:"docs_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:          "create-my-internet",
			DisplayName:      "internetdata",
			Description:      "Bootstrap a new internetdata project",
			HomeDir:          ".create-my-internet",
			EnvPrefix:        "CREATE_MY_INTERNET",
			CredentialFile:   ".lsd",
			UserEnv:          "LSD_USER",
			PasswordEnv:      "LSD_PASSWORD",
			SigninURL:        "https://lsd.so/signin",
			CompanionName:    "Bicycle",
			CompanionURL:     "https://lsd.so/bicycle",
			DefaultTargetURL: "https://lsd.so",
			DocsURL:          "https://lsd.so/docs",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-my-internet").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the name of the SDK a generated project depends on.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME that holds config.yaml.
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix used by viper.
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// CredentialFile returns the credential file name under $HOME (e.g., ".lsd").
func CredentialFile() string { load(); return defaults.CredentialFile }

// UserEnv returns the environment variable holding the account identity.
func UserEnv() string { load(); return defaults.UserEnv }

// PasswordEnv returns the environment variable holding the account API key.
func PasswordEnv() string { load(); return defaults.PasswordEnv }

// SigninURL returns the page where users create an account and API key.
func SigninURL() string { load(); return defaults.SigninURL }

// CompanionName returns the companion browser's product name.
func CompanionName() string { load(); return defaults.CompanionName }

// CompanionURL returns the companion browser's landing page.
func CompanionURL() string { load(); return defaults.CompanionURL }

// DefaultTargetURL returns the URL offered when the user asks for code help.
func DefaultTargetURL() string { load(); return defaults.DefaultTargetURL }

// DocsURL returns the fallback navigation target for the default entry file.
func DocsURL() string { load(); return defaults.DocsURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "CREATE_MY_INTERNET_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
