package loop

import (
	"context"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Script returns an input source that presses start on the first frame
// and stays idle afterwards.
func Script(start ...core.Action) InputSource {
	first := true
	return func(time.Duration) core.InputFrame {
		in := core.NewInputFrame()
		if first {
			for _, a := range start {
				in.Set(a)
			}
			first = false
		}
		return in
	}
}

// Simulate runs game for frames frames on a manual clock, as fast as
// possible, and returns the driver for inspection or rendering.
// opts.Clock is replaced.
func Simulate(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, frames int, opts Options, input InputSource) (*Driver, error) {
	clock := NewManualClock(0)
	opts.Clock = clock
	d := NewDriver(game, cfg, opts)
	sched := NewManualScheduler(clock, FrameDuration(cfg.TickRate), frames)
	if err := d.Run(ctx, sched, input, nil); err != nil {
		return d, err
	}
	return d, nil
}
