package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/platform/tui"
	"github.com/vovakirdan/jumper/internal/registry"
	"github.com/vovakirdan/jumper/internal/replay"
	"github.com/vovakirdan/jumper/internal/storage"
)

var (
	flagFrontend string
	flagRecord   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a play session.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  R          - Restart (after game over)
  Q/Esc      - Quit
  Ctrl+S     - Screenshot (terminal only)

Edits to the config file are picked up while playing and take effect at
the next restart. Every session is recorded for 'jumper replay'.

Examples:
  jumper play
  jumper play --frontend window
  jumper play --seed 42 --config ./my-jumper.yaml
  jumper play --record=false`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", tui.Name, "Frontend: tui or window")
	playCmd.Flags().BoolVar(&flagRecord, "record", true, "Save the run to the database on exit")
}

// runPlay returns errors instead of exiting so the log file and signal
// handler are released before main exits.
func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'jumper frontends' to see available frontends", flagFrontend)
	}

	cfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog := sessionLogger(flagFrontend)
	defer closeLog()

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	fe, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("session start", "frontend", fe.Name(), "seed", runtime.Seed, "fps", runtime.TickRate)
	run, runErr := fe.Run(ctx, registry.Session{
		Config:     cfg,
		ConfigPath: config.ResolvePath(flagConfig),
		Runtime:    runtime,
		Logger:     logger,
	})

	if flagRecord && len(run.Frames) > 0 {
		saveRun(logger, run)
	}

	if runErr != nil {
		logger.Error("session failed", "error", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// sessionLogger keeps the terminal frontend's alt screen clean by
// logging to ~/.jumper/jumper.log; other frontends log to stderr.
func sessionLogger(frontend string) (*log.Logger, func()) {
	if frontend != tui.Name {
		return newLogger(os.Stderr), func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".jumper")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "jumper.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

func saveRun(logger *log.Logger, run replay.Run) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save run: %v\n", err)
		return
	}
	logger.Info("run saved", "id", id, "frames", len(run.Frames), "lives", run.Lives)
	fmt.Printf("Run %d saved (%d frames, %d lives). Replay with 'jumper replay %d'.\n", id, len(run.Frames), run.Lives, id)
}
