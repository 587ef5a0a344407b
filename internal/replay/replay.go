// Package replay records the inputs of a jumper session and re-simulates
// them. A run is fully described by its seed, its rules and one input
// bitmask per frame.
package replay

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/games/jumper"
)

// ErrMismatch is returned when a re-simulation does not reproduce the
// recorded number of lives.
var ErrMismatch = errors.New("replay: outcome does not match recording")

// Stage is a config reload staged before the given frame was stepped.
type Stage struct {
	Frame  int                 `yaml:"frame"`
	Config config.JumperConfig `yaml:"config"`
}

// Run is a recorded session.
type Run struct {
	Game     string
	Seed     int64
	TickRate int
	Config   config.JumperConfig
	Stages   []Stage
	Frames   []byte
	Lives    int
}

// rules is the persisted form of Config and Stages.
type rules struct {
	Config config.JumperConfig `yaml:"config"`
	Stages []Stage             `yaml:"stages,omitempty"`
}

// EncodeRules serializes the run's starting config and staged reloads.
func (r Run) EncodeRules() ([]byte, error) {
	data, err := yaml.Marshal(rules{Config: r.Config, Stages: r.Stages})
	if err != nil {
		return nil, fmt.Errorf("replay: encode rules: %w", err)
	}
	return data, nil
}

// DecodeRules fills Config and Stages from EncodeRules output.
func (r *Run) DecodeRules(data []byte) error {
	rl := rules{Config: config.DefaultJumperConfig()}
	if err := yaml.Unmarshal(data, &rl); err != nil {
		return fmt.Errorf("replay: decode rules: %w", err)
	}
	if err := rl.Config.Validate(); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	r.Config = rl.Config
	r.Stages = rl.Stages
	return nil
}

// Recorder captures the inputs of a live session.
type Recorder struct {
	run Run
}

// NewRecorder starts a recording for a session that was Reset with
// runtime and cfg.
func NewRecorder(runtime core.RuntimeConfig, cfg config.JumperConfig) *Recorder {
	return &Recorder{run: Run{
		Game:     jumper.ID,
		Seed:     runtime.Seed,
		TickRate: runtime.TickRate,
		Config:   cfg,
		Lives:    1,
	}}
}

// Record stores one stepped frame and its result.
func (r *Recorder) Record(in core.InputFrame, res core.StepResult) {
	r.run.Frames = append(r.run.Frames, in.Mask())
	if res.Restarted {
		r.run.Lives++
	}
}

// Stage notes a config handed to Game.StageConfig before the next Step.
func (r *Recorder) Stage(cfg config.JumperConfig) {
	r.run.Stages = append(r.run.Stages, Stage{Frame: len(r.run.Frames), Config: cfg})
}

// Frames returns the number of recorded frames.
func (r *Recorder) Frames() int {
	return len(r.run.Frames)
}

// Run returns a copy of the recording so far.
func (r *Recorder) Run() Run {
	run := r.run
	run.Frames = append([]byte(nil), r.run.Frames...)
	run.Stages = append([]Stage(nil), r.run.Stages...)
	return run
}

// Life is the outcome of one life in a replayed run.
type Life struct {
	Index  int
	Score  int
	Frames int
	Ended  bool // False for the life still running when the recording stopped
}

// Result is the outcome of Play.
type Result struct {
	Lives []Life
	Final jumper.Snapshot
}

// Play re-simulates a run headlessly.
func Play(run Run) (Result, error) {
	g := jumper.New(run.Config, nil)
	g.Reset(core.RuntimeConfig{TickRate: run.TickRate, Seed: run.Seed})

	var (
		res    Result
		stages = run.Stages
		cur    = Life{Index: 1}
	)
	for i, mask := range run.Frames {
		for len(stages) > 0 && stages[0].Frame <= i {
			g.StageConfig(stages[0].Config)
			stages = stages[1:]
		}

		step := g.Step(core.FrameFromMask(mask))
		cur.Frames++
		if step.Ended {
			cur.Score = step.Final.Score
			cur.Ended = true
		}
		if step.Restarted {
			res.Lives = append(res.Lives, cur)
			cur = Life{Index: cur.Index + 1}
		}
	}
	if !cur.Ended {
		cur.Score = g.State().Score
	}
	res.Lives = append(res.Lives, cur)
	res.Final = g.Snapshot()

	if run.Lives > 0 && run.Lives != len(res.Lives) {
		return res, fmt.Errorf("%w: recorded %d lives, replayed %d", ErrMismatch, run.Lives, len(res.Lives))
	}
	return res, nil
}
