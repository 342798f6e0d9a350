package loop

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/retro-arcade/internal/audio"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// ErrFramesExhausted is returned by ManualScheduler once all frames ran.
var ErrFramesExhausted = errors.New("loop: frames exhausted")

// Options configures a Driver. Nil fields get harmless defaults.
type Options struct {
	Clock  Clock
	Player audio.Player
	Scores core.ScoreBook
	Logger *log.Logger
}

// Driver owns one game session.
type Driver struct {
	game    registry.Game
	cfg     core.RuntimeConfig
	clock   Clock
	player  audio.Player
	scores  core.ScoreBook
	logger  *log.Logger
	session string
	best    int
	frames  uint64
	last    core.StepResult
}

// NewDriver wraps game and resets it with cfg.
func NewDriver(game registry.Game, cfg core.RuntimeConfig, opts Options) *Driver {
	d := &Driver{
		game:   game,
		cfg:    cfg,
		clock:  opts.Clock,
		player: opts.Player,
		scores: opts.Scores,
		logger: opts.Logger,
	}
	if d.clock == nil {
		d.clock = NewSystemClock()
	}
	if d.player == nil {
		d.player = audio.Nop{}
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard)
	}
	d.Reset()
	return d
}

// Reset restarts the game and opens a new session.
func (d *Driver) Reset() {
	d.session = uuid.NewString()
	d.frames = 0
	d.game.Reset(d.cfg)
	d.last = core.StepResult{State: d.game.State()}
	if d.scores != nil {
		d.best = d.scores.Best(d.game.ID())
	}
	d.logger.Debug("session started", "game", d.game.ID(), "session", d.session, "seed", d.cfg.Seed)
}

// Step advances the game by one frame at the current clock time.
func (d *Driver) Step(in core.InputFrame) core.StepResult {
	res := d.game.Step(in, d.clock.Now())
	d.frames++
	d.last = res

	for _, cue := range res.Cues {
		d.player.Play(cue)
	}
	if res.Ended {
		d.finish(res.FinalScore)
	}
	return res
}

func (d *Driver) finish(score int) {
	d.logger.Info("game ended",
		"game", d.game.ID(),
		"session", d.session,
		"score", score,
		"frames", d.frames,
	)
	if d.scores == nil {
		return
	}
	improved, err := d.scores.Record(d.game.ID(), score)
	if err != nil {
		d.logger.Warn("could not record score", "game", d.game.ID(), "error", err)
		return
	}
	if improved {
		d.best = score
		d.logger.Info("new best score", "game", d.game.ID(), "score", score)
	}
}

// Render draws the current state onto dst.
func (d *Driver) Render(dst core.Surface) {
	d.game.Render(dst)
}

// Frame steps and renders in one call.
func (d *Driver) Frame(in core.InputFrame, dst core.Surface) core.StepResult {
	res := d.Step(in)
	if dst != nil {
		d.Render(dst)
	}
	return res
}

// Game returns the driven game.
func (d *Driver) Game() registry.Game { return d.game }

// Session returns the current session ID.
func (d *Driver) Session() string { return d.session }

// Best returns the best score known for the game, including this session.
func (d *Driver) Best() int {
	return max(d.best, d.last.State.Score)
}

// Frames returns the number of frames stepped since the last Reset.
func (d *Driver) Frames() uint64 { return d.frames }

// Last returns the most recent step result.
func (d *Driver) Last() core.StepResult { return d.last }

// Now returns the driver clock reading.
func (d *Driver) Now() time.Duration { return d.clock.Now() }

// InputSource yields the input for the next frame.
type InputSource func(now time.Duration) core.InputFrame

// FrameSink receives each result after the frame is stepped. Returning
// false stops Run.
type FrameSink func(res core.StepResult) bool

// Run steps the game once per scheduler tick until ctx is cancelled, the
// scheduler stops or sink returns false. Running out of manual frames is
// not an error.
func (d *Driver) Run(ctx context.Context, sched Scheduler, input InputSource, sink FrameSink) error {
	defer sched.Stop()
	for {
		if err := sched.Wait(ctx); err != nil {
			if errors.Is(err, ErrFramesExhausted) {
				return nil
			}
			return err
		}

		var in core.InputFrame
		if input != nil {
			in = input(d.clock.Now())
		}
		res := d.Step(in)
		if sink != nil && !sink(res) {
			return nil
		}
	}
}
