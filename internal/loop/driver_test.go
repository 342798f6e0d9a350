package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// countingGame scores one point per step and ends after endAt steps.
type countingGame struct {
	resets int
	steps  int
	endAt  int
	times  []time.Duration
	inputs []core.InputFrame
	drawn  int
}

func (g *countingGame) ID() string { return "counter" }
func (g *countingGame) Title() string { return "Counter" }
func (g *countingGame) Viewport() (float64, float64) { return 10, 10 }
func (g *countingGame) Render(dst core.Surface) { g.drawn++ }
func (g *countingGame) Reset(cfg core.RuntimeConfig) { g.resets++; g.steps = 0 }
func (g *countingGame) State() core.GameState {
	return core.GameState{Score: g.steps, Phase: core.PhaseRunning}
}

func (g *countingGame) Step(in core.InputFrame, now time.Duration) core.StepResult {
	g.steps++
	g.times = append(g.times, now)
	g.inputs = append(g.inputs, in)
	res := core.StepResult{State: g.State(), Cues: []core.Cue{core.CueCoin}}
	if g.steps == g.endAt {
		res.Ended = true
		res.FinalScore = g.steps * 10
	}
	return res
}

type recordingPlayer struct{ cues []core.Cue }

func (p *recordingPlayer) Play(c core.Cue) { p.cues = append(p.cues, c) }
func (p *recordingPlayer) Close() error { return nil }

type failingBook struct{}

func (failingBook) Best(string) int { return 0 }
func (failingBook) Record(string, int) (bool, error) { return false, errors.New("disk full") }

func TestDriverStepPassesClockTime(t *testing.T) {
	game := &countingGame{}
	clock := NewManualClock(0)
	d := NewDriver(game, core.DefaultConfig(), Options{Clock: clock})

	require.Equal(t, 1, game.resets)

	d.Step(core.NewInputFrame())
	clock.Advance(16 * time.Millisecond)
	d.Step(core.NewInputFrame())

	assert.Equal(t, []time.Duration{0, 16 * time.Millisecond}, game.times)
	assert.EqualValues(t, 2, d.Frames())
}

func TestDriverPlaysCues(t *testing.T) {
	player := &recordingPlayer{}
	d := NewDriver(&countingGame{}, core.DefaultConfig(), Options{
		Clock:  NewManualClock(0),
		Player: player,
	})

	d.Step(core.NewInputFrame())
	d.Step(core.NewInputFrame())

	assert.Equal(t, []core.Cue{core.CueCoin, core.CueCoin}, player.cues)
}

func TestDriverRecordsBestOnEnd(t *testing.T) {
	book := storage.NewMemory()
	book.Record("counter", 25) //nolint:errcheck

	d := NewDriver(&countingGame{endAt: 3}, core.DefaultConfig(), Options{
		Clock:  NewManualClock(0),
		Scores: book,
	})
	assert.Equal(t, 25, d.Best())

	for i := 0; i < 3; i++ {
		d.Step(core.NewInputFrame())
	}

	assert.Equal(t, 30, book.Best("counter"))
	assert.Equal(t, 30, d.Best())
}

func TestDriverKeepsHigherStoredBest(t *testing.T) {
	book := storage.NewMemory()
	book.Record("counter", 500) //nolint:errcheck

	d := NewDriver(&countingGame{endAt: 1}, core.DefaultConfig(), Options{
		Clock:  NewManualClock(0),
		Scores: book,
	})
	d.Step(core.NewInputFrame())

	assert.Equal(t, 500, book.Best("counter"))
	assert.Equal(t, 500, d.Best())
}

func TestDriverSurvivesRecordError(t *testing.T) {
	d := NewDriver(&countingGame{endAt: 1}, core.DefaultConfig(), Options{
		Clock:  NewManualClock(0),
		Scores: failingBook{},
	})

	res := d.Step(core.NewInputFrame())
	assert.True(t, res.Ended)
}

func TestDriverResetStartsNewSession(t *testing.T) {
	game := &countingGame{}
	d := NewDriver(game, core.DefaultConfig(), Options{Clock: NewManualClock(0)})
	first := d.Session()
	d.Step(core.NewInputFrame())

	d.Reset()

	assert.NotEqual(t, first, d.Session())
	assert.Len(t, d.Session(), 36)
	assert.Equal(t, 2, game.resets)
	assert.Zero(t, d.Frames())
}

func TestDriverFrameRenders(t *testing.T) {
	game := &countingGame{}
	d := NewDriver(game, core.DefaultConfig(), Options{Clock: NewManualClock(0)})

	screen := core.NewScreen(10, 10)
	d.Frame(core.NewInputFrame(), core.NewCellSurface(screen, core.NewRect(0, 0, 10, 10), 10, 10))
	d.Frame(core.NewInputFrame(), nil)

	assert.Equal(t, 1, game.drawn)
	assert.Equal(t, 2, game.steps)
}

func TestRunWithManualScheduler(t *testing.T) {
	game := &countingGame{}
	clock := NewManualClock(0)
	d := NewDriver(game, core.DefaultConfig(), Options{Clock: clock})

	sched := NewManualScheduler(clock, 10*time.Millisecond, 5)
	calls := 0
	err := d.Run(context.Background(), sched, func(now time.Duration) core.InputFrame {
		calls++
		in := core.NewInputFrame()
		in.Set(core.ActionRight)
		return in
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 5, game.steps)
	assert.Equal(t, 5, calls)
	assert.Equal(t, 50*time.Millisecond, clock.Now())
	assert.Equal(t, 10*time.Millisecond, game.times[0])
	assert.True(t, game.inputs[0].Has(core.ActionRight))
}

func TestRunStopsWhenSinkDeclines(t *testing.T) {
	game := &countingGame{}
	clock := NewManualClock(0)
	d := NewDriver(game, core.DefaultConfig(), Options{Clock: clock})

	err := d.Run(context.Background(), NewManualScheduler(clock, time.Millisecond, 100), nil,
		func(res core.StepResult) bool { return res.State.Score < 3 })

	require.NoError(t, err)
	assert.Equal(t, 3, game.steps)
}

func TestRunReturnsContextError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDriver(&countingGame{}, core.DefaultConfig(), Options{})
	err := d.Run(ctx, NewTickerScheduler(60), nil, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(time.Second)
	c.Advance(-time.Second)
	assert.Equal(t, time.Second, c.Now())

	c.Set(500 * time.Millisecond)
	assert.Equal(t, time.Second, c.Now(), "Set never moves backwards")

	c.Set(2 * time.Second)
	assert.Equal(t, 2*time.Second, c.Now())
}

func TestFrameDuration(t *testing.T) {
	assert.Equal(t, time.Second/60, FrameDuration(0))
	assert.Equal(t, 100*time.Millisecond, FrameDuration(10))
}

func TestSimulateRunsFrames(t *testing.T) {
	game := &countingGame{}
	cfg := core.DefaultConfig()
	cfg.TickRate = 10

	d, err := Simulate(context.Background(), game, cfg, 4, Options{}, Script(core.ActionConfirm, core.ActionRight))
	require.NoError(t, err)

	assert.EqualValues(t, 4, d.Frames())
	assert.Equal(t, 400*time.Millisecond, d.Now())
	require.Len(t, game.inputs, 4)
	assert.Equal(t, []core.Action{core.ActionConfirm, core.ActionRight}, game.inputs[0].Order)
	assert.Empty(t, game.inputs[1].Order)
}

func TestSimulateStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d, err := Simulate(ctx, &countingGame{}, core.DefaultConfig(), 10, Options{}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, d.Frames())
}
