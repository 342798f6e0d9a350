package platformer

import "github.com/vovakirdan/retro-arcade/internal/core"

// EventKind names an intent emitted by an entity rule.
type EventKind uint8

const (
	EventScoreGained EventKind = iota
	EventEnemyDestroyed
	EventParticlesRequested
	EventCoinCollected
	EventPowerUpCollected
	EventPlayerHurt
	EventCueRequested
)

// Event is an intent applied by the step after every entity has updated.
type Event struct {
	Kind   EventKind
	Target EntityID // destroyed or collected entity
	Points int
	X, Y   float64    // particle origin
	Count  int        // particle count
	Color  core.Color // particle color
	Cue    core.Cue
}

// Events buffers intents for one tick.
type Events struct {
	buf []Event
}

// Emit appends an event.
func (e *Events) Emit(ev Event) {
	e.buf = append(e.buf, ev)
}

// Score emits a ScoreGained event.
func (e *Events) Score(points int) {
	e.Emit(Event{Kind: EventScoreGained, Points: points})
}

// Cue emits a CueRequested event.
func (e *Events) Cue(c core.Cue) {
	e.Emit(Event{Kind: EventCueRequested, Cue: c})
}

// Burst emits a ParticlesRequested event.
func (e *Events) Burst(x, y float64, c core.Color, count int) {
	e.Emit(Event{Kind: EventParticlesRequested, X: x, Y: y, Color: c, Count: count})
}

// Len returns the number of buffered events.
func (e *Events) Len() int { return len(e.buf) }

// Drain returns the buffered events and empties the buffer. The returned
// slice is only valid until the next Emit.
func (e *Events) Drain() []Event {
	out := e.buf
	e.buf = e.buf[:0]
	return out
}

// Has reports whether an event of kind k is buffered.
func (e *Events) Has(k EventKind) bool {
	for _, ev := range e.buf {
		if ev.Kind == k {
			return true
		}
	}
	return false
}
