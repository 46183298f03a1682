// Package cmd implements the Cobra-based CLI for fastgen.
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbosity  int
	jsonOutput bool // --json flag for machine-readable output
	ciMode     bool
)

// rootCmd is the top-level command for fastgen.
var rootCmd = &cobra.Command{
	Use:   "fastgen",
	Short: "FastAPI project generator",
	Long: `fastgen scaffolds FastAPI projects with a clean architecture layout and
manages optional service add-ons on top of them.

A generated project carries a fastgen.json record at its root that tracks
which services are enabled. Service overlays copy template fragments into the
project and patch .env, requirements.txt, and pyproject.toml; removing an
overlay deletes its files but keeps those edits.

Workflow: create → add/remove services → deploy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON (machine-readable)")
	rootCmd.PersistentFlags().BoolVar(&ciMode, "ci", false, "strict non-interactive mode (fails when required inputs are missing)")

	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("ci", rootCmd.PersistentFlags().Lookup("ci"))
}

func effectiveCIMode() bool {
	if ciMode {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(os.Getenv("CI")), "true")
}

func initConfig() {
	viper.SetEnvPrefix("FASTGEN")
	viper.AutomaticEnv()
}
