package cli

import (
	"github.com/phanxgames/gesture/internal/server"
	"github.com/spf13/cobra"
)

const defaultServerAddress = "localhost:12100"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve live gesture sessions over a websocket",
	Long: `Starts an HTTP server with a websocket endpoint at /ws. Every connection gets its own
gesture session: clients send touch frames and visibility signals, the server replies
with gesture events and transform updates.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// GetString/GetBool/GetFloat64 cannot fail for defined flags
		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = defaultServerAddress
		}
		enableCORS, _ := cmd.Flags().GetBool("cors")
		scale, _ := cmd.Flags().GetFloat64("scale")

		return server.StartServer(addr, server.Options{
			Session: server.SessionConfig{
				Gesture:      cfg,
				InitialScale: scale,
				Logger:       logger,
				Debug:        verbose,
			},
			EnableCORS: enableCORS,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", "", "Address to listen on (e.g., 'localhost:12100' or '0.0.0.0:13000')")
	serveCmd.Flags().Bool("cors", false, "Accept websocket connections from any origin")
	serveCmd.Flags().Float64("scale", server.DefaultInitialScale, "initial uniform scale of each session's transform")
}
