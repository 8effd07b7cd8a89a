// Command nutritrack runs the diet tracker server and its admin helpers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nutritrack/internal/config"
)

var (
	envFile string
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nutritrack",
	Short: "Self-hosted diet, water and weight tracker",
	Long: `nutritrack logs meals, water and body weight and compares each day
against per-user nutrition targets.

Run "nutritrack serve" to start the web server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, targetsCmd, createUserCmd)
}

// newLogger builds the production logger at LOG_LEVEL, read after the
// --env-file has been applied. -v forces debug.
func newLogger() (*zap.Logger, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	level, err := config.LogLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
