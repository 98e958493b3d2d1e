package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/internetdata/create-my-internet/internal/branding"
	"github.com/internetdata/create-my-internet/internal/pkgmanager"
	"github.com/internetdata/create-my-internet/internal/validate"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyPackageManager = "package_manager"
	KeyProjectName    = "project_name"
	KeyTargetURL      = "target_url"
)

// DefaultProjectName is offered when no project_name is configured.
const DefaultProjectName = "my_project"

// Keys lists every recognized setting.
func Keys() []string {
	return []string{KeyPackageManager, KeyProjectName, KeyTargetURL}
}

// Dir returns the path to the config directory (~/.create-my-internet/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyPackageManager, pkgmanager.Default)
	viper.SetDefault(KeyProjectName, DefaultProjectName)
	viper.SetDefault(KeyTargetURL, branding.DefaultTargetURL())

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// LoadDotEnv reads KEY=value pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnownKey reports whether key is a recognized setting.
func IsKnownKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	switch key {
	case KeyPackageManager:
		if _, err := pkgmanager.Dispatch(value).InitArgs("check"); err != nil {
			return err
		}
	case KeyProjectName:
		if !validate.IsValidProjectName(value) {
			return fmt.Errorf("invalid project name %q", value)
		}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
