package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/internetdata/create-my-internet/internal/branding"
)

// buildInfo is the --json shape of the version command.
type buildInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Name:    branding.CLIName(),
		Version: buildVersion,
		Commit:  buildCommit,
		Date:    buildDate,
	}
}

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build info as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeVersion(cmd.OutOrStdout(), currentBuild())
	},
}

func writeVersion(w io.Writer, info buildInfo) error {
	switch {
	case versionShort:
		fmt.Fprintln(w, info.Version)
	case versionJSON:
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding build info: %w", err)
		}
		fmt.Fprintln(w, string(out))
	default:
		fmt.Fprintf(w, "%s %s (commit %s, built %s)\n", info.Name, info.Version, info.Commit, info.Date)
	}
	return nil
}
