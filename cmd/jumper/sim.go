package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/games/jumper"
	"github.com/vovakirdan/jumper/internal/replay"
)

var (
	flagSimFrames  int
	flagSimLeft    bool
	flagSimRight   bool
	flagSimRestart bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless with a fixed input",
	Long: `Step the game without any frontend while the same keys are held
every frame, then print each life and the final state.

Examples:
  jumper sim --frames 600
  jumper sim --frames 3000 --right --restart --seed 7`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVarP(&flagSimFrames, "frames", "n", 600, "Number of frames to simulate")
	simCmd.Flags().BoolVar(&flagSimLeft, "left", false, "Hold left")
	simCmd.Flags().BoolVar(&flagSimRight, "right", false, "Hold right")
	simCmd.Flags().BoolVar(&flagSimRestart, "restart", false, "Hold restart, starting a new life after each game over")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var in core.InputFrame
	if flagSimLeft {
		in.Set(core.ActionLeft)
	}
	if flagSimRight {
		in.Set(core.ActionRight)
	}
	if flagSimRestart {
		in.Set(core.ActionRestart)
	}

	res, err := replay.Play(heldRun(cfg, core.RuntimeConfig{TickRate: flagFPS, Seed: seed}, in, flagSimFrames))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Simulated %d frames - seed %d, input %s\n\n", flagSimFrames, seed, describeInput(in))
	printResult(os.Stdout, res)
}

// heldRun builds a run that holds in for every frame.
func heldRun(cfg config.JumperConfig, runtime core.RuntimeConfig, in core.InputFrame, frames int) replay.Run {
	if frames < 0 {
		frames = 0
	}
	masks := make([]byte, frames)
	for i := range masks {
		masks[i] = in.Mask()
	}
	return replay.Run{
		Game:     jumper.ID,
		Seed:     runtime.Seed,
		TickRate: runtime.TickRate,
		Config:   cfg,
		Frames:   masks,
	}
}

func describeInput(in core.InputFrame) string {
	if in.Empty() {
		return "none"
	}
	s := ""
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionRestart} {
		if in.Has(a) {
			if s != "" {
				s += "+"
			}
			s += a.String()
		}
	}
	return s
}
