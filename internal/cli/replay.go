package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/phanxgames/gesture"
	"github.com/phanxgames/gesture/internal/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [trace.json]",
	Short: "Replay a touch trace and print the resulting gesture events",
	Long: `Replays a JSON trace through a detector and handler. Each gesture event is printed
as one JSON line, followed by a final line with the resulting transform.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read trace: %w", err)
		}
		trace, err := gesture.LoadTrace(data)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// GetFloat64/GetBool cannot fail for defined flags
		scale, _ := cmd.Flags().GetFloat64("scale")
		visible, _ := cmd.Flags().GetBool("visible")

		return runReplay(cmd, trace, server.SessionConfig{
			Gesture:      cfg,
			InitialScale: scale,
			Logger:       logger,
			Debug:        verbose,
		}, visible)
	},
}

func runReplay(cmd *cobra.Command, trace *gesture.Trace, cfg server.SessionConfig, visible bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())

	var writeErr error
	sess, err := server.NewSession(cfg, func(e gesture.Event) {
		if writeErr == nil {
			writeErr = enc.Encode(server.ServerMessage{Type: server.MsgEvent, Event: e.Name(), Data: e})
		}
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	if visible {
		sess.Scene().TargetAcquired()
	}
	sess.RunTrace(trace)
	if writeErr != nil {
		return fmt.Errorf("write events: %w", writeErr)
	}

	logger.WithFields(logrus.Fields{
		"session": sess.ID,
		"steps":   trace.Len(),
		"emitted": sess.Scene().Bus().Emitted(),
	}).Debug("replay finished")

	t := sess.Transform()
	return enc.Encode(server.ServerMessage{Type: server.MsgTransform, Session: sess.ID, Transform: &t})
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().Float64("scale", server.DefaultInitialScale, "initial uniform scale of the transform")
	replayCmd.Flags().Bool("visible", false, "start with the target already acquired")
}
