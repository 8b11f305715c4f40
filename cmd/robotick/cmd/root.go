// Package cmd provides the command-line interface for the Robotick demo
// runner.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/robotick-labs/robotick/tick"
)

var (
	flagSeconds     float64
	flagFreq        float64
	flagMonitorPort int
	flagNoMonitor   bool
	flagOutput      string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "robotick",
	Short: "Robotick runs a demo model of the tick-driven workload framework.",
	Long: `Robotick runs a demo model of the tick-driven workload ` +
		`framework: a square-wave speed command is smoothed by a low-pass ` +
		`filter and mixed into differential-drive motor outputs. All ` +
		`outputs are recorded to SQLite and a monitoring server exposes ` +
		`the live workload state.`,
	Run: func(_ *cobra.Command, _ []string) {
		runDemo()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func init() {
	loadEnvDefaults()

	rootCmd.Flags().Float64Var(&flagSeconds, "seconds", 5.0,
		"duration of the run in simulated seconds")
	rootCmd.Flags().Float64Var(&flagFreq, "freq",
		envFloat("ROBOTICK_FREQ_HZ", 100),
		"tick frequency in Hz")
	rootCmd.Flags().IntVar(&flagMonitorPort, "monitor-port",
		envInt("ROBOTICK_MONITOR_PORT", 0),
		"port of the monitoring server, 0 for a random port")
	rootCmd.Flags().BoolVar(&flagNoMonitor, "no-monitor", false,
		"disable the monitoring server")
	rootCmd.Flags().StringVar(&flagOutput, "output",
		os.Getenv("ROBOTICK_OUTPUT"),
		"name of the recording database, empty for a generated name")
}

// loadEnvDefaults reads a .env file, if present, so that deployments can
// pin defaults without passing flags.
func loadEnvDefaults() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: cannot load .env: %s\n", err)
	}
}

func envFloat(name string, fallback float64) float64 {
	s, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid %s=%s, using %v\n",
			name, s, fallback)
		return fallback
	}

	return v
}

func envInt(name string, fallback int) int {
	s, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid %s=%s, using %v\n",
			name, s, fallback)
		return fallback
	}

	return v
}

func freqFromFlag() tick.Freq {
	return tick.Freq(flagFreq) * tick.Hz
}
