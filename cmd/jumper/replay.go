package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/games/jumper"
	"github.com/vovakirdan/jumper/internal/replay"
	"github.com/vovakirdan/jumper/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run",
	Long: `Replay a recorded run headlessly from its seed, rules and inputs,
and print how each life ended.

Examples:
  jumper replay 3`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	run, err := store.LoadRun(id)
	if err != nil {
		return err
	}

	res, err := replay.Play(run)
	fmt.Fprintf(cmd.OutOrStdout(), "Run %d - seed %d, %d frames\n\n", id, run.Seed, len(run.Frames))
	printResult(cmd.OutOrStdout(), res)
	return err
}

// printResult writes per-life outcomes followed by the final snapshot.
func printResult(w io.Writer, res replay.Result) {
	for _, l := range res.Lives {
		state := "game over"
		if !l.Ended {
			state = "still playing"
		}
		fmt.Fprintf(w, "  Life %-3d %6d pts  %6d frames  %s\n", l.Index, l.Score, l.Frames, state)
	}
	fmt.Fprintln(w)
	printSnapshot(w, res.Final)
}

func printSnapshot(w io.Writer, s jumper.Snapshot) {
	fmt.Fprintf(w, "Frame %d, life %d\n", s.Frame, s.Life)
	fmt.Fprintf(w, "  score     %d\n", s.Score)
	fmt.Fprintf(w, "  offset    %.1f\n", s.ViewOffset)
	fmt.Fprintf(w, "  player    (%.1f, %.1f) velocity %.1f\n", s.PlayerX, s.PlayerY, s.Velocity)
	fmt.Fprintf(w, "  entities  %d platforms, %d enemies, %d power-ups\n", s.Platforms, s.Enemies, s.PowerUps)
	fmt.Fprintf(w, "  game over %t\n", s.GameOver)
}
