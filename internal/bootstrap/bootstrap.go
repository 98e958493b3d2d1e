package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"go.uber.org/zap"

	"github.com/internetdata/create-my-internet/internal/config"
	"github.com/internetdata/create-my-internet/internal/materialize"
	"github.com/internetdata/create-my-internet/internal/pkgmanager"
	"github.com/internetdata/create-my-internet/internal/prompt"
	"github.com/internetdata/create-my-internet/internal/render"
	"github.com/internetdata/create-my-internet/internal/validate"
	"github.com/internetdata/create-my-internet/internal/wizard"
)

// ErrManagerNotFound matches errors for a chosen manager missing from PATH.
var ErrManagerNotFound = errors.New("package manager not found")

// ManagerNotFoundError reports a chosen manager that is not on the PATH.
type ManagerNotFoundError struct {
	Name string
}

func (e *ManagerNotFoundError) Error() string {
	return fmt.Sprintf("Requested package manager [%s] however was not accessible in the path", e.Name)
}

// Is makes errors.Is(err, ErrManagerNotFound) true.
func (e *ManagerNotFoundError) Is(target error) bool {
	return target == ErrManagerNotFound
}

// Prompt texts asked directly by the orchestrator.
const (
	InvalidNameMessage = "Provided an invalid project name"
	CodeAssistPrompt   = "Would you like help writing your internetdata integration (Y)es/(N)o? [Y]: "
)

// Environment is the read-only view of the machine the run depends on.
type Environment interface {
	ExecutableResolvable(name string) bool
	CredentialsPresent() bool
	CompanionAppInstalled() bool
}

// Materializer creates the project on disk.
type Materializer interface {
	Materialize(ctx context.Context, plan materialize.Plan, entry materialize.EntryFunc) (*materialize.Result, error)
}

// Defaults are the answers used for empty input.
type Defaults struct {
	PackageManager string
	ProjectName    string
	TargetURL      string
}

// Config is the configuration accumulated during one run.
type Config struct {
	PackageManager string
	ProjectName    string
	Auth           wizard.AuthState
	Companion      wizard.CompanionState
	CodeAssist     prompt.Answer
	TargetURL      string // empty unless CodeAssist is Yes
}

// Bootstrapper runs the wizard end to end.
type Bootstrapper struct {
	Prompts      *prompt.Engine
	Env          Environment
	Credentials  wizard.CredentialSaver
	Materializer Materializer
	Defaults     Defaults
	SigninURL    string
	CompanionURL string
	Out          io.Writer
	Logger       *zap.Logger
}

// Run executes every step in order. The returned Config holds whatever was
// collected before a failure.
func (b *Bootstrapper) Run(ctx context.Context) (*Config, error) {
	log := b.logger()
	cfg := &Config{}

	manager, err := b.askPackageManager()
	if err != nil {
		return cfg, err
	}
	cfg.PackageManager = manager
	if !b.Env.ExecutableResolvable(manager) {
		return cfg, &ManagerNotFoundError{Name: manager}
	}
	log.Debug("package manager resolved", zap.String("manager", manager))

	name, err := b.askProjectName()
	if err != nil {
		return cfg, err
	}
	cfg.ProjectName = name

	auth := &wizard.Credentials{Probe: b.Env, Store: b.Credentials, Prompts: b.Prompts, SigninURL: b.SigninURL}
	if cfg.Auth, err = auth.Run(); err != nil {
		return cfg, err
	}
	log.Debug("credential wizard finished", zap.Stringer("state", cfg.Auth))

	companion := &wizard.Companion{Probe: b.Env, Prompts: b.Prompts, URL: b.CompanionURL}
	if cfg.Companion, err = companion.Run(); err != nil {
		return cfg, err
	}
	log.Debug("companion wizard finished", zap.Stringer("state", cfg.Companion))

	plan := materialize.Plan{Name: name, Manager: pkgmanager.Dispatch(manager)}
	if _, err := b.Materializer.Materialize(ctx, plan, b.entryFunc(cfg)); err != nil {
		return cfg, err
	}

	fmt.Fprintln(b.Out, materialize.Summary(name))
	return cfg, nil
}

func (b *Bootstrapper) askPackageManager() (string, error) {
	def := b.Defaults.PackageManager
	if !slices.Contains(pkgmanager.Supported(), def) {
		b.logger().Warn("ignoring unsupported default package manager",
			zap.String("configured", def), zap.String("using", pkgmanager.Default))
		def = pkgmanager.Default
	}
	text := fmt.Sprintf("Do you prefer (npm) or (yarn)? [%s]: ", def)
	manager, err := prompt.OneOf(b.Prompts, text, def, pkgmanager.Supported()...)
	if err != nil {
		return "", fmt.Errorf("choosing package manager: %w", err)
	}
	return manager, nil
}

// askProjectName checks typed names and the configured default against
// validate.IsValidProjectName. An illegal default is replaced by
// config.DefaultProjectName.
func (b *Bootstrapper) askProjectName() (string, error) {
	def := b.Defaults.ProjectName
	if !validate.IsValidProjectName(def) {
		b.logger().Warn("ignoring invalid default project name",
			zap.String("configured", def), zap.String("using", config.DefaultProjectName))
		def = config.DefaultProjectName
	}
	text := fmt.Sprintf("What would you like to name your project? [%s]: ", def)
	name, err := prompt.Ask(b.Prompts, text, def, func(raw string) (string, error) {
		if !validate.IsValidProjectName(raw) {
			return "", prompt.Invalid(InvalidNameMessage)
		}
		return raw, nil
	})
	if err != nil {
		return "", fmt.Errorf("choosing project name: %w", err)
	}
	return name, nil
}

// entryFunc asks about code help once dependencies are installed and
// renders the matching entry file. The companion app is probed again here
// rather than reusing the wizard's result.
func (b *Bootstrapper) entryFunc(cfg *Config) materialize.EntryFunc {
	return func() (string, error) {
		answer, err := prompt.YesNo(b.Prompts, CodeAssistPrompt)
		if err != nil {
			return "", fmt.Errorf("asking about code help: %w", err)
		}
		cfg.CodeAssist = answer
		fmt.Fprintf(b.Out, "Should we assist with code? %s\n", answer)

		if answer == prompt.No {
			return render.DefaultEntry(b.Env.CompanionAppInstalled())
		}

		def := b.Defaults.TargetURL
		target, err := prompt.Line(b.Prompts, fmt.Sprintf("What URL are you interested in? [%s]: ", def), def)
		if err != nil {
			return "", fmt.Errorf("reading target URL: %w", err)
		}
		cfg.TargetURL = target
		return render.AssistedEntry(target, b.Env.CompanionAppInstalled())
	}
}

func (b *Bootstrapper) logger() *zap.Logger {
	if b.Logger == nil {
		return zap.NewNop()
	}
	return b.Logger
}
