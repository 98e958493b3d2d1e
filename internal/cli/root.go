package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/internetdata/create-my-internet/internal/bootstrap"
	"github.com/internetdata/create-my-internet/internal/branding"
	"github.com/internetdata/create-my-internet/internal/config"
	"github.com/internetdata/create-my-internet/internal/credentials"
	"github.com/internetdata/create-my-internet/internal/exec"
	"github.com/internetdata/create-my-internet/internal/materialize"
	"github.com/internetdata/create-my-internet/internal/probe"
	"github.com/internetdata/create-my-internet/internal/prompt"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: `Create a new ` + branding.DisplayName() + ` project in a directory under the current one.

The wizard asks which package manager to use and what to call the project,
offers to connect your account and install the companion browser, then
writes tsconfig.json, installs dependencies, and generates index.ts.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runWizard,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each step to stderr")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	switch {
	case err == nil, errors.Is(err, prompt.ErrInputClosed):
	case errors.Is(err, bootstrap.ErrManagerNotFound):
		fmt.Fprintln(os.Stderr, err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func runWizard(cmd *cobra.Command, args []string) error {
	config.Load()
	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Warn("ignoring .env", zap.Error(err))
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	store, err := credentials.DefaultStore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if isTerminal(os.Stdout) {
		clearScreen(out)
	}

	b := &bootstrap.Bootstrapper{
		Prompts:     prompt.New(cmd.InOrStdin(), out),
		Env:         probe.New(store),
		Credentials: store,
		Materializer: &materialize.Materializer{
			Root:   osfs.New(cwd),
			Runner: exec.NewRealRunner(),
			Logger: logger,
		},
		Defaults: bootstrap.Defaults{
			PackageManager: config.Get(config.KeyPackageManager),
			ProjectName:    config.Get(config.KeyProjectName),
			TargetURL:      config.Get(config.KeyTargetURL),
		},
		SigninURL:    branding.SigninURL(),
		CompanionURL: branding.CompanionURL(),
		Out:          out,
		Logger:       logger,
	}

	_, err = b.Run(cmd.Context())
	return err
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func clearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}
