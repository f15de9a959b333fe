// Package cli implements the gesturereplay command line.
package cli

import (
	"fmt"
	"os"

	"github.com/phanxgames/gesture"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "dev"

var (
	verbose    bool
	configPath string
	strategy   string
)

var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "gesturereplay",
	Short: "Replay and serve multi-touch gesture sessions",
	Long:  `Runs touch traces through the gesture detector and handler, or serves live sessions over a websocket.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func initConfig() {
	logger.SetOutput(os.Stderr)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "INI file with [detector] and [handler] sections")
	rootCmd.PersistentFlags().StringVar(&strategy, "strategy", "", "scale strategy override: ratio or step")
}

// loadConfig reads --config when given and applies --strategy on top.
func loadConfig() (gesture.Config, error) {
	cfg := gesture.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = gesture.LoadConfigFile(configPath); err != nil {
			return gesture.Config{}, err
		}
	}
	if strategy != "" {
		mode, err := gesture.ParseScaleMode(strategy)
		if err != nil {
			return gesture.Config{}, fmt.Errorf("--strategy: %w", err)
		}
		cfg.Handler.Strategy = mode
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
