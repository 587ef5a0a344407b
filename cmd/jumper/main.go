// jumper is an endless vertical jumper for the terminal and the desktop.
//
// Usage:
//
//	jumper play              - Play (terminal by default)
//	jumper frontends         - List available frontends
//	jumper runs              - Browse recorded runs
//	jumper replay <id>       - Re-simulate a recorded run
//	jumper sim               - Run the game headless with a fixed input
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.jumper/runs.db)
//	--config <path>  - Use a custom config YAML
//	--verbose        - Debug logging
//
// Defaults may also come from JUMPER_* variables in the environment or a
// .env file in the working directory.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/config"

	// Import frontends to register them
	_ "github.com/vovakirdan/jumper/internal/platform/tui"
	_ "github.com/vovakirdan/jumper/internal/platform/window"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jumper - bounce upward forever",
	Long: `Jumper is an endless vertical platformer. Bounce off platforms,
avoid enemies and grab springs while the world scrolls upward.

Available commands:
  play       - Play in the terminal or a desktop window
  frontends  - Show available frontends
  runs       - Browse recorded runs
  replay     - Re-simulate a recorded run
  sim        - Run headless with a fixed input
  config     - Print the effective config

Examples:
  jumper play
  jumper play --frontend window --seed 42
  jumper runs
  jumper replay 3
  jumper sim --frames 600 --left`,
	PersistentPreRunE: applyEnv,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumper/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(simCmd)
}

// applyEnv fills flags the user did not set from .env and JUMPER_* variables.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("fps") {
		flagFPS = config.EnvInt(config.EnvFPS, flagFPS)
	}
	if !flags.Changed("seed") {
		flagSeed = config.EnvInt64(config.EnvSeed, flagSeed)
	}
	if !flags.Changed("db") {
		flagDBPath = config.EnvString(config.EnvDB, flagDBPath)
	}
	if !flags.Changed("config") {
		flagConfig = config.EnvString(config.EnvConfig, flagConfig)
	}
	if f := flags.Lookup("frontend"); f != nil && !f.Changed {
		flagFrontend = config.EnvString(config.EnvFrontend, flagFrontend)
	}
	return nil
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumper",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
