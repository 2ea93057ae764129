package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planshift/planshift/internal/infra/autostart"
)

func init() {
	startupCmd.AddCommand(startupOnCmd)
	startupCmd.AddCommand(startupOffCmd)
	startupCmd.AddCommand(startupStatusCmd)
	rootCmd.AddCommand(startupCmd)
}

var startupCmd = &cobra.Command{
	Use:   "startup",
	Short: "Manage launching the daemon at login",
}

var startupOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Register the daemon to start at login",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := autostart.Enable(); err != nil {
			return err
		}
		fmt.Println("planshift will start at login.")
		return nil
	},
}

var startupOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Remove the login registration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := autostart.Disable(); err != nil {
			return err
		}
		fmt.Println("planshift will no longer start at login.")
		return nil
	},
}

var startupStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the daemon starts at login",
	RunE: func(cmd *cobra.Command, args []string) error {
		on, err := autostart.Enabled()
		if err != nil {
			return err
		}
		if on {
			fmt.Println("Start at login: on")
		} else {
			fmt.Println("Start at login: off")
		}
		return nil
	},
}
