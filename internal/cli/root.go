// Package cli implements the planshift command-line interface using
// Cobra. Management commands talk to the running daemon over its
// localhost HTTP API.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planshift",
	Short: "planshift — automatic power plan switching",
	Long: `planshift keeps your OS power plan in line with what you are doing.
Walk away and it switches to a designated plan; come back and the
previous plan is restored.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// cliVersion is the build version, forwarded to the daemon status API.
var cliVersion = "dev"

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	cliVersion = version
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
