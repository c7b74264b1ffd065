// Package elemental implements Elemental Breakout: a brick breaker where
// bricks, ball, and paddle carry elements, and element pairings trigger
// chained reactions (area blasts, conversions, freezing, chain lightning).
package elemental

import "github.com/arcadelab/elemental/internal/core"

// Element is a categorical tag attachable to the ball, the paddle, or a
// brick. ElementNeutral is the absence of an element: it renders in a
// default color and participates in no reactions.
type Element int

const (
	ElementNeutral   Element = -1
	ElementRed       Element = iota - 1 // 0
	ElementBlue                         // 1
	ElementGreen                        // 2
	ElementPurple                       // 3
	ElementLightBlue                    // 4

	ElementCount = 5
)

// Valid reports whether e is one of the five palette elements.
func (e Element) Valid() bool {
	return e >= 0 && e < ElementCount
}

// Elemental reports whether e is a real element (not neutral and in range).
// Out-of-range indices are treated as neutral, matching the defensive
// fallback for unrecognized palette values.
func (e Element) Elemental() bool {
	return e.Valid()
}

// String returns the element name.
func (e Element) String() string {
	switch e {
	case ElementRed:
		return "Red"
	case ElementBlue:
		return "Blue"
	case ElementGreen:
		return "Green"
	case ElementPurple:
		return "Purple"
	case ElementLightBlue:
		return "LightBlue"
	default:
		return "Neutral"
	}
}

// Color returns the display color for the element.
// Unrecognized indices fall back to white, like neutral.
func (e Element) Color() core.Color {
	switch e {
	case ElementRed:
		return core.ColorBrightRed
	case ElementBlue:
		return core.ColorBlue
	case ElementGreen:
		return core.ColorGreen
	case ElementPurple:
		return core.ColorMagenta
	case ElementLightBlue:
		return core.ColorCyan
	default:
		return core.ColorWhite
	}
}

// NeutralBrickColor is the display color of neutral (non-elemental) bricks.
const NeutralBrickColor = core.ColorYellow

// Reaction is a named rule triggered by a specific element pairing at the
// moment of a collision.
type Reaction int

const (
	ReactionNone Reaction = iota
	ReactionOverloaded
	ReactionSuperconduct
	ReactionFreeze
	ReactionSwirl
	ReactionVaporize
	ReactionLiquefy
	ReactionSurge
	ReactionInfuse
	ReactionMelt
)

// Message returns the on-screen text for the reaction.
func (r Reaction) Message() string {
	switch r {
	case ReactionOverloaded:
		return "Overloaded!"
	case ReactionSuperconduct:
		return "Superconduct!"
	case ReactionFreeze:
		return "Freeze!"
	case ReactionSwirl:
		return "Swirl!"
	case ReactionVaporize:
		return "Vaporize!"
	case ReactionLiquefy:
		return "Liquefy!"
	case ReactionSurge:
		return "Surge!"
	case ReactionInfuse:
		return "Infuse!"
	case ReactionMelt:
		return "Melt!"
	default:
		return ""
	}
}

// Color returns the display color for the reaction message.
func (r Reaction) Color() core.Color {
	switch r {
	case ReactionOverloaded:
		return core.ColorBrightRed
	case ReactionSuperconduct, ReactionFreeze:
		return core.ColorCyan
	case ReactionSwirl:
		return core.ColorGreen
	case ReactionVaporize, ReactionLiquefy:
		return core.ColorBlue
	case ReactionSurge:
		return core.ColorMagenta
	case ReactionInfuse:
		return core.ColorBrightGreen
	case ReactionMelt:
		return core.ColorYellow
	default:
		return core.ColorWhite
	}
}

// pairMatches reports whether {a, b} equals the unordered pair {x, y}.
// Reaction trigger checks are symmetric in the two participants.
func pairMatches(a, b, x, y Element) bool {
	return (a == x && b == y) || (a == y && b == x)
}
