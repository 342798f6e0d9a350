package platformer

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Kind tags an arena entity.
type Kind uint8

const (
	KindEnemy Kind = iota
	KindCoin
	KindPowerUp
	KindParticle
)

func (k Kind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindCoin:
		return "coin"
	case KindPowerUp:
		return "powerup"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Body is the position, velocity and size shared by every mobile entity.
type Body struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
}

// Rect returns the body's bounding box.
func (b Body) Rect() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Bottom returns the y coordinate of the lower edge.
func (b Body) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center.
func (b Body) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center.
func (b Body) CenterY() float64 { return b.Y + b.H/2 }

// Overlaps reports strict AABB overlap with r.
func (b Body) Overlaps(r core.RectF) bool {
	return b.Rect().Overlaps(r)
}

// EntityID identifies an entity for the lifetime of an arena.
// IDs are never reused.
type EntityID uint32

// Entity is one arena record. Kind-specific fields are zero for other kinds.
type Entity struct {
	ID   EntityID
	Kind Kind
	Body
	Dead bool

	Rotation float64    // coin spin phase
	Life     int        // particle ticks left
	MaxLife  int        // particle lifetime
	Color    core.Color // particle color
}

// Arena stores enemies, collectibles and particles. Entities are removed
// by tombstoning (Kill) and physically dropped only by Compact, so
// iteration during a tick always sees a stable slice.
type Arena struct {
	items []Entity
	index map[EntityID]int
	next  EntityID
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{index: make(map[EntityID]int)}
}

// Spawn appends e and returns its new ID.
func (a *Arena) Spawn(e Entity) EntityID {
	a.next++
	e.ID = a.next
	e.Dead = false
	a.index[e.ID] = len(a.items)
	a.items = append(a.items, e)
	return e.ID
}

// Get returns the entity with id, dead or alive, until it is compacted away.
func (a *Arena) Get(id EntityID) *Entity {
	i, ok := a.index[id]
	if !ok {
		return nil
	}
	return &a.items[i]
}

// Kill tombstones an entity. It reports whether a live entity was killed.
func (a *Arena) Kill(id EntityID) bool {
	e := a.Get(id)
	if e == nil || e.Dead {
		return false
	}
	e.Dead = true
	return true
}

// Each calls fn for every live entity in spawn order. Entities spawned
// during the walk are not visited.
func (a *Arena) Each(fn func(e *Entity)) {
	n := len(a.items)
	for i := 0; i < n; i++ {
		if !a.items[i].Dead {
			fn(&a.items[i])
		}
	}
}

// EachKind is Each restricted to one kind.
func (a *Arena) EachKind(k Kind, fn func(e *Entity)) {
	a.Each(func(e *Entity) {
		if e.Kind == k {
			fn(e)
		}
	})
}

// Compact drops tombstoned entities, keeping order, and returns how many
// were removed.
func (a *Arena) Compact() int {
	kept := a.items[:0]
	for _, e := range a.items {
		if !e.Dead {
			kept = append(kept, e)
		}
	}
	removed := len(a.items) - len(kept)
	if removed == 0 {
		return 0
	}
	clear(a.items[len(kept):])
	a.items = kept

	clear(a.index)
	for i, e := range a.items {
		a.index[e.ID] = i
	}
	return removed
}

// Len returns the number of stored entities, including tombstones.
func (a *Arena) Len() int { return len(a.items) }

// Count returns the number of live entities of kind k.
func (a *Arena) Count(k Kind) int {
	n := 0
	a.EachKind(k, func(*Entity) { n++ })
	return n
}
