package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

const ms = time.Millisecond

func TestFramePreservesPressOrder(t *testing.T) {
	s := NewSampler()
	s.Press(core.ActionUp, 0)
	s.Press(core.ActionLeft, ms)
	s.Press(core.ActionUp, 2*ms)

	f := s.Frame(3 * ms)
	assert.Equal(t, []core.Action{core.ActionUp, core.ActionLeft, core.ActionUp}, f.Order)
	assert.True(t, f.Has(core.ActionLeft))

	next := s.Frame(4 * ms)
	assert.Empty(t, next.Order, "presses are delivered once")
}

func TestHoldWindows(t *testing.T) {
	s := NewSamplerWithWindows(500*ms, 100*ms)
	s.Press(core.ActionRight, 0)
	s.Frame(0)

	assert.True(t, s.Frame(499*ms).IsHeld(core.ActionRight))
	assert.False(t, s.Frame(500*ms).IsHeld(core.ActionRight))

	// auto-repeat while held extends by the short window
	s.Press(core.ActionRight, 600*ms)
	s.Press(core.ActionRight, 1000*ms)
	assert.True(t, s.Frame(1099*ms).IsHeld(core.ActionRight))
	assert.False(t, s.Frame(1100*ms).IsHeld(core.ActionRight))
}

func TestRepeatNeverShortensHold(t *testing.T) {
	s := NewSamplerWithWindows(500*ms, 100*ms)
	s.Press(core.ActionLeft, 0)
	s.Press(core.ActionLeft, 10*ms)
	s.Frame(20 * ms)

	assert.True(t, s.Frame(400*ms).IsHeld(core.ActionLeft))
}

func TestOppositeDirectionCancelsHold(t *testing.T) {
	s := NewSampler()
	s.Press(core.ActionLeft, 0)
	s.Press(core.ActionRight, 10*ms)

	f := s.Frame(20 * ms)
	assert.True(t, f.IsHeld(core.ActionRight))
	assert.False(t, f.Held[core.ActionLeft])
}

func TestNonHoldableActions(t *testing.T) {
	s := NewSampler()
	s.Press(core.ActionPause, 0)
	s.Press(core.ActionNone, 0)

	f := s.Frame(0)
	assert.True(t, f.Has(core.ActionPause))
	assert.False(t, f.Held[core.ActionPause])
	assert.Equal(t, []core.Action{core.ActionPause}, f.Order)
	assert.False(t, s.Frame(ms).IsHeld(core.ActionPause))
}

func TestReleaseAndReset(t *testing.T) {
	s := NewSampler()
	s.Press(core.ActionJump, 0)
	s.Release(core.ActionJump)
	assert.False(t, s.Frame(ms).Held[core.ActionJump])

	s.Press(core.ActionJump, 0)
	s.Reset()
	f := s.Frame(ms)
	assert.Empty(t, f.Order)
	assert.False(t, f.IsHeld(core.ActionJump))
}
