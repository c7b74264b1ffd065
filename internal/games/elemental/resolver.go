package elemental

import (
	"math"

	"github.com/arcadelab/elemental/internal/core"
)

// resolveWalls clamps the ball back inside the field and reflects its
// velocity off the left, right, and top edges. The bottom edge is the
// life-loss boundary and is handled by the phase driver.
func (g *Game) resolveWalls() {
	b := g.ball
	if b.Pos.X-b.Radius < 0 {
		b.Pos.X = b.Radius
		b.Vel.X = math.Abs(b.Vel.X)
	}
	if b.Pos.X+b.Radius > FieldWidth {
		b.Pos.X = FieldWidth - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	if b.Pos.Y-b.Radius < 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y = math.Abs(b.Vel.Y)
	}
}

// resolvePaddle handles the ball bouncing off the paddle. The outgoing
// angle follows the impact offset from the paddle center, the ball takes
// on the paddle's element, and the paddle/ball element pairing may charge
// a reaction status. Returns true if a bounce happened.
func (g *Game) resolvePaddle() bool {
	b, p := g.ball, g.paddle
	if b.Vel.Y <= 0 || !p.Rect.CircleOverlaps(b.Pos, b.Radius) {
		return false
	}

	b.Pos.Y = p.Rect.Y - b.Radius
	relative := core.ClampF((b.Pos.X-p.Rect.CenterX())/(p.Rect.W/2), -1, 1)
	dir := core.Vec2{X: relative, Y: -1}.Normalize()
	b.Vel = dir.Scale(g.ballSpeed)

	// Pairing checks use the element the ball arrived with, before the
	// paddle imprints its own.
	overloaded := pairMatches(b.Element, p.Element, ElementPurple, ElementRed)
	superconduct := pairMatches(b.Element, p.Element, ElementPurple, ElementLightBlue)
	freeze := pairMatches(b.Element, p.Element, ElementBlue, ElementLightBlue)

	if p.Element.Elemental() {
		b.Element = p.Element
	} else {
		b.Element = ElementNeutral
	}

	switch {
	case overloaded:
		b.Status = StatusOverloaded
		g.showReaction(ReactionOverloaded)
	case superconduct:
		b.Status = StatusSuperconduct
		g.showReaction(ReactionSuperconduct)
	case freeze:
		b.Status = StatusFreezeReady
		b.Frozen = true
		b.FreezeTimer = g.cfg.Reactions.FreezeDuration
		b.StoredVel = b.Vel
		b.Vel = core.Vec2{}
		g.showReaction(ReactionFreeze)
	default:
		b.Status = StatusNone
	}
	return true
}

// resolveBricks processes at most one brick collision for this tick: the
// first overlapping active brick in grid order. Further overlaps in the
// same tick are deliberately ignored so a single sweep can never clear a
// seam of bricks at once. Returns the number of bricks destroyed.
func (g *Game) resolveBricks(prevPos core.Vec2) int {
	b := g.ball
	for row := 0; row < g.board.Rows; row++ {
		for col := 0; col < g.board.Cols; col++ {
			br := g.board.At(row, col)
			if br == nil || !br.Active {
				continue
			}
			if !br.Rect.CircleOverlaps(b.Pos, b.Radius) {
				continue
			}
			return g.hitBrick(br, prevPos)
		}
	}
	return 0
}

// hitBrick applies the full reaction pipeline to one struck brick.
func (g *Game) hitBrick(br *Brick, prevPos core.Vec2) int {
	b := g.ball
	wasFrozen := br.Frozen

	// A pending freeze charge converts the connected same-element group
	// around the struck brick, then is spent.
	if b.Status == StatusFreezeReady {
		if n := g.board.FreezeConnected(br.Row, br.Col); n > 0 {
			g.showReaction(ReactionFreeze)
		}
		b.Status = StatusNone
	}

	superconduct := b.Status == StatusSuperconduct
	if !superconduct {
		g.reflectOffBrick(br, prevPos)
	}

	overloaded := b.Status == StatusOverloaded
	if overloaded {
		b.Status = StatusNone
	}

	destroyed := 0

	// Frozen bricks sit outside the element pairing table: they are
	// neutral, so only thaw, shatter, and the overload carryover apply.
	if br.Frozen {
		if b.Element == ElementRed {
			br.Frozen = false
			br.Element = ElementNeutral
			br.HitPoints = 1
			br.Cracked = false
			g.showReaction(ReactionMelt)
		} else if wasFrozen {
			destroyed += g.board.ShatterConnected(br.Row, br.Col)
		} else {
			// Frozen by this very hit: the origin breaks but the fresh
			// group stays standing.
			br.Active = false
			destroyed++
		}
		if overloaded {
			if br.Active {
				br.Active = false
				destroyed++
			}
			g.scheduleAreaExplosion(br.Row, br.Col)
			g.showReaction(ReactionOverloaded)
		}
		return destroyed
	}

	swirl := b.Element == ElementGreen && br.Element.Elemental() && br.Element != ElementGreen
	vaporize := b.Element == ElementBlue && br.Element == ElementRed
	liquefy := b.Element == ElementLightBlue && br.Element == ElementRed
	surge := pairMatches(b.Element, br.Element, ElementPurple, ElementBlue)
	infuse := b.Element.Elemental() && b.Element != ElementGreen && br.Element == ElementGreen

	instantBreak := false
	switch {
	case swirl:
		instantBreak = true
		g.scheduleAreaExplosion(br.Row, br.Col)
		g.showReaction(ReactionSwirl)
	case vaporize:
		instantBreak = true
		g.showReaction(ReactionVaporize)
	case liquefy:
		br.Element = ElementBlue
		g.showReaction(ReactionLiquefy)
	case surge:
		instantBreak = true
		g.scheduleChainBurst(br.Row, br.Col)
		g.showReaction(ReactionSurge)
	case infuse:
		g.board.InfuseConnected(br.Row, br.Col, b.Element)
		g.showReaction(ReactionInfuse)
	}

	if overloaded {
		instantBreak = true
		g.scheduleAreaExplosion(br.Row, br.Col)
		g.showReaction(ReactionOverloaded)
	}

	switch {
	case instantBreak:
		br.Active = false
		destroyed++
	case liquefy || infuse:
		// Conversion replaces damage for this hit.
	default:
		br.HitPoints--
		if br.HitPoints <= 0 {
			br.Active = false
			destroyed++
		} else {
			br.Cracked = true
		}
	}
	return destroyed
}

// reflectOffBrick reflects the ball off the brick face it actually
// struck, judged from where the ball was last frame. Corner entries that
// no face test resolves fall back to the larger center-offset axis.
func (g *Game) reflectOffBrick(br *Brick, prev core.Vec2) {
	b := g.ball
	r := br.Rect
	switch {
	case prev.X+b.Radius <= r.X && b.Vel.X > 0:
		b.Pos.X = r.X - b.Radius
		b.Vel.X = -b.Vel.X
	case prev.X-b.Radius >= r.Right() && b.Vel.X < 0:
		b.Pos.X = r.Right() + b.Radius
		b.Vel.X = -b.Vel.X
	case prev.Y+b.Radius <= r.Y && b.Vel.Y > 0:
		b.Pos.Y = r.Y - b.Radius
		b.Vel.Y = -b.Vel.Y
	case prev.Y-b.Radius >= r.Bottom() && b.Vel.Y < 0:
		b.Pos.Y = r.Bottom() + b.Radius
		b.Vel.Y = -b.Vel.Y
	default:
		dx := b.Pos.X - r.CenterX()
		dy := b.Pos.Y - r.CenterY()
		if math.Abs(dx) > math.Abs(dy) {
			b.Vel.X = -b.Vel.X
			if dx > 0 {
				b.Pos.X = r.Right() + b.Radius
			} else {
				b.Pos.X = r.X - b.Radius
			}
		} else {
			b.Vel.Y = -b.Vel.Y
			if dy > 0 {
				b.Pos.Y = r.Bottom() + b.Radius
			} else {
				b.Pos.Y = r.Y - b.Radius
			}
		}
	}
}

func (g *Game) showReaction(r Reaction) {
	g.message.Show(r.Message(), r.Color(), g.cfg.Reactions.MessageDuration)
}
