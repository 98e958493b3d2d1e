package cli

import (
	"github.com/spf13/cobra"

	"github.com/internetdata/create-my-internet/internal/branding"
	"github.com/internetdata/create-my-internet/internal/config"
	"github.com/internetdata/create-my-internet/internal/credentials"
	"github.com/internetdata/create-my-internet/internal/doctor"
	"github.com/internetdata/create-my-internet/internal/exec"
	"github.com/internetdata/create-my-internet/internal/probe"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check package managers, credentials, and the companion browser",
	Long: `Run read-only checks on the tools and credentials the wizard relies on.

Nothing is installed or written; missing items are reported with [MISS] and
problems with [WARN].`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(".env"); err != nil {
			logger.Sugar().Warnw("ignoring .env", "error", err)
		}

		store, err := credentials.DefaultStore()
		if err != nil {
			return err
		}

		d := &doctor.Doctor{
			Env:         probe.New(store),
			Runner:      exec.NewRealRunner(),
			Credentials: store,
			UserEnv:     branding.UserEnv(),
			PasswordEnv: branding.PasswordEnv(),
		}
		d.Run(cmd.Context(), cmd.OutOrStdout())
		return nil
	},
}
