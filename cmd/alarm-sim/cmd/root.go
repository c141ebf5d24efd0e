package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lcdwatch/alarm-face/internal/config"
	"github.com/lcdwatch/alarm-face/internal/service/simulator"
	"github.com/lcdwatch/alarm-face/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// stateFile path where the alarm table is persisted.
	stateFile string
	// noSound disables audible buzzer output.
	noSound bool
	// logLevel overrides the configured log level.
	logLevel string

	// rootCmd represents the base command running the watch simulator.
	rootCmd = &cobra.Command{
		Use:   "alarm-sim",
		Short: "Run the ten-slot alarm watch face in the terminal.",
		Long: `Hosts the multi-alarm watch face in a terminal simulator.

Keys map to the watch buttons: 'l' presses the light button (enter and
advance setting mode), 'L' holds it (leave setting mode), 'a' presses the
alarm button (browse slots / edit the active field), 'A' holds it (toggle
the slot / coarse time jumps), 'm' the mode button and 't' simulates the
inactivity timeout. The alarm table is persisted to a JSON state file
between runs; log output goes to a file because the terminal shows the
watch display.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &simulator.Options{
				ConfigPath: configPath,
				StateFile:  stateFile,
				NoSound:    noSound,
				LogLevel:   logLevel,
			}

			return simulator.Run(ctx, options)
		},
	}
)

// Execute runs the alarm-sim CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		StringVarP(&stateFile, "state-file", "s", "", "path to persist the alarm table (defaults to the configured file)")
	rootCmd.Flags().BoolVar(&noSound, "no-sound", false, "disable audible buzzer output")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "override the configured log level")
}
