package loop

import (
	"context"
	"time"
)

// Scheduler blocks until the next frame is due.
type Scheduler interface {
	Wait(ctx context.Context) error
	Stop()
}

// TickerScheduler paces frames with a time.Ticker.
type TickerScheduler struct {
	ticker *time.Ticker
}

// NewTickerScheduler creates a scheduler firing fps times per second.
// Non-positive fps falls back to 60.
func NewTickerScheduler(fps int) *TickerScheduler {
	return &TickerScheduler{ticker: time.NewTicker(FrameDuration(fps))}
}

// Wait blocks until the next tick or ctx is cancelled.
func (s *TickerScheduler) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (s *TickerScheduler) Stop() { s.ticker.Stop() }

// ManualScheduler advances a ManualClock by one frame per Wait without
// sleeping, and stops after a fixed number of frames.
type ManualScheduler struct {
	clock  *ManualClock
	frame  time.Duration
	remain int
}

// NewManualScheduler runs frames frames of the given duration.
func NewManualScheduler(clock *ManualClock, frame time.Duration, frames int) *ManualScheduler {
	return &ManualScheduler{clock: clock, frame: frame, remain: frames}
}

// Wait advances the clock or reports ErrFramesExhausted.
func (s *ManualScheduler) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.remain <= 0 {
		return ErrFramesExhausted
	}
	s.remain--
	s.clock.Advance(s.frame)
	return nil
}

// Stop is a no-op.
func (s *ManualScheduler) Stop() {}

// FrameDuration converts a frame rate to the interval between frames.
func FrameDuration(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
