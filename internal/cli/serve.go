package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/planshift/planshift/internal/daemon"
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to listen on (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the planshift daemon",
	Long:  `Run the daemon: idle watching, AFK switching and the control API.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	d.Server.SetVersion(cliVersion)

	// Override config from flags
	if serveHost != "" {
		d.Config.API.Host = serveHost
	}
	if servePort > 0 {
		d.Config.API.Port = servePort
	}

	return d.Serve(context.Background())
}
