package elemental

import "github.com/arcadelab/elemental/internal/core"

// Paddle is the player-controlled bat at the bottom of the field.
// Its element is imprinted onto the ball on every paddle bounce.
type Paddle struct {
	Rect    core.Rect
	Speed   float64
	Element Element
}

// BallStatus is the exclusive reaction charge a ball can carry between a
// paddle bounce and its next brick hit. Each paddle bounce recomputes the
// status; brick resolution consumes it.
type BallStatus int

const (
	StatusNone BallStatus = iota
	// StatusOverloaded schedules a delayed area explosion on the next
	// brick hit.
	StatusOverloaded
	// StatusSuperconduct makes the ball pass through the next bricks
	// instead of bouncing off them.
	StatusSuperconduct
	// StatusFreezeReady freezes the ball on the paddle for a fixed time
	// and converts the connected same-element group on the next hit.
	StatusFreezeReady
)

// String returns the status name for HUD display.
func (s BallStatus) String() string {
	switch s {
	case StatusOverloaded:
		return "Overloaded"
	case StatusSuperconduct:
		return "Superconduct"
	case StatusFreezeReady:
		return "FreezeReady"
	default:
		return ""
	}
}

// Ball is the projectile. While Frozen it sits motionless on the paddle;
// StoredVel holds the velocity to restore when the freeze timer expires.
type Ball struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Radius  float64
	Element Element
	Status  BallStatus

	Frozen      bool
	FreezeTimer float64
	StoredVel   core.Vec2

	// InPlay is false while the ball rides the paddle waiting for launch.
	InPlay bool
}

// Brick is one destructible cell of the board. A frozen brick is neutral,
// one hit from breaking, and subject to chain shattering.
type Brick struct {
	Row, Col  int
	Rect      core.Rect
	Active    bool
	Element   Element
	HitPoints int
	Cracked   bool
	Frozen    bool
}

// EventKind classifies a scheduled reaction event.
type EventKind int

const (
	// EventAreaExplosion destroys the 3x3 neighborhood around the cell.
	EventAreaExplosion EventKind = iota
	// EventChainStep destroys the single brick at the cell.
	EventChainStep
)

// ReactionEvent is a delayed destruction scheduled by a reaction. Events
// fire when their timer reaches zero, in insertion order for equal timers.
type ReactionEvent struct {
	Row, Col int
	Timer    float64
	Kind     EventKind
}

// ReactionMessage is the single transient banner shown after a reaction.
// A new reaction overwrites the previous message.
type ReactionMessage struct {
	Text  string
	Color core.Color
	Timer float64
}

// Active reports whether the message should still be drawn.
func (m *ReactionMessage) Active() bool {
	return m.Timer > 0 && m.Text != ""
}

// Show replaces the current message.
func (m *ReactionMessage) Show(text string, color core.Color, duration float64) {
	m.Text = text
	m.Color = color
	m.Timer = duration
}

// Update advances the message timer.
func (m *ReactionMessage) Update(dt float64) {
	if m.Timer > 0 {
		m.Timer -= dt
		if m.Timer < 0 {
			m.Timer = 0
		}
	}
}

// SimpleRNG is a small deterministic linear congruential generator. The
// whole simulation draws from one instance so that a seed fully determines
// a run.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a generator from a seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	return &SimpleRNG{state: uint64(seed)}
}

// Next returns the next raw 64-bit value.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// IntRange returns a value in [lo, hi] inclusive.
func (r *SimpleRNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	span := uint64(hi - lo + 1)
	return lo + int(r.Next()%span)
}

// Chance returns true with probability pct/100.
func (r *SimpleRNG) Chance(pct int) bool {
	return r.IntRange(0, 99) < pct
}

// State returns the internal generator state for snapshotting.
func (r *SimpleRNG) State() uint64 { return r.state }

// SetState restores a previously captured state.
func (r *SimpleRNG) SetState(s uint64) { r.state = s }
