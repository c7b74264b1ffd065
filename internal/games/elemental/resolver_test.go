package elemental

import (
	"math"
	"testing"

	"github.com/arcadelab/elemental/internal/config"
	"github.com/arcadelab/elemental/internal/core"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(ModeWaves, config.DefaultElementalConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	g.phase = PhasePlaying
	return g
}

// emptyBoard swaps in a board with no bricks so tests can place exactly
// the cells they need.
func emptyBoard(g *Game) {
	g.board = NewBoard(g.cfg.Board, FieldWidth)
}

func TestWallCollisionClampsInside(t *testing.T) {
	tests := []struct {
		name    string
		pos     core.Vec2
		vel     core.Vec2
		wantPos core.Vec2
		wantVel core.Vec2
	}{
		{"left", core.Vec2{X: -5, Y: 300}, core.Vec2{X: -100, Y: 50}, core.Vec2{X: 10, Y: 300}, core.Vec2{X: 100, Y: 50}},
		{"right", core.Vec2{X: 970, Y: 300}, core.Vec2{X: 100, Y: 50}, core.Vec2{X: 950, Y: 300}, core.Vec2{X: -100, Y: 50}},
		{"top", core.Vec2{X: 300, Y: -4}, core.Vec2{X: 50, Y: -100}, core.Vec2{X: 300, Y: 10}, core.Vec2{X: 50, Y: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(1)
			g.ball.Pos = tt.pos
			g.ball.Vel = tt.vel
			g.resolveWalls()
			if g.ball.Pos != tt.wantPos {
				t.Errorf("pos = %+v, want %+v", g.ball.Pos, tt.wantPos)
			}
			if g.ball.Vel != tt.wantVel {
				t.Errorf("vel = %+v, want %+v", g.ball.Vel, tt.wantVel)
			}
			if g.ball.Pos.X-g.ball.Radius < 0 || g.ball.Pos.X+g.ball.Radius > FieldWidth {
				t.Error("ball left the field horizontally")
			}
		})
	}
}

func TestPaddleBounceCenterIsVertical(t *testing.T) {
	g := newTestGame(1)
	g.ball.InPlay = true
	g.ball.Pos = core.Vec2{X: g.paddle.Rect.CenterX(), Y: g.paddle.Rect.Y - 2}
	g.ball.Vel = core.Vec2{X: 0, Y: 100}

	if !g.resolvePaddle() {
		t.Fatal("expected a paddle bounce")
	}
	if g.ball.Vel.X != 0 {
		t.Errorf("center hit vel.X = %v, want 0", g.ball.Vel.X)
	}
	if g.ball.Vel.Y >= 0 {
		t.Errorf("center hit vel.Y = %v, want upward", g.ball.Vel.Y)
	}
	if got := g.ball.Vel.Length(); !approx(got, g.ballSpeed) {
		t.Errorf("outgoing speed = %v, want %v", got, g.ballSpeed)
	}
	if g.ball.Pos.Y != g.paddle.Rect.Y-g.ball.Radius {
		t.Errorf("ball not repositioned above paddle: y = %v", g.ball.Pos.Y)
	}
}

func TestPaddleBounceAngleMonotonic(t *testing.T) {
	offsets := []float64{-1, -0.5, 0, 0.5, 1}
	prev := math.Inf(-1)
	for _, off := range offsets {
		g := newTestGame(1)
		g.ball.InPlay = true
		g.ball.Pos = core.Vec2{
			X: g.paddle.Rect.CenterX() + off*g.paddle.Rect.W/2,
			Y: g.paddle.Rect.Y - 2,
		}
		g.ball.Vel = core.Vec2{X: 0, Y: 100}
		if !g.resolvePaddle() {
			t.Fatalf("offset %v: expected a bounce", off)
		}
		if g.ball.Vel.X <= prev {
			t.Errorf("offset %v: vel.X %v not increasing (prev %v)", off, g.ball.Vel.X, prev)
		}
		prev = g.ball.Vel.X
	}
}

func TestPaddleImprintsElement(t *testing.T) {
	g := newTestGame(1)
	g.paddle.Element = ElementGreen
	g.ball.InPlay = true
	g.ball.Element = ElementNeutral
	g.ball.Pos = core.Vec2{X: g.paddle.Rect.CenterX(), Y: g.paddle.Rect.Y - 2}
	g.ball.Vel = core.Vec2{X: 0, Y: 100}

	g.resolvePaddle()
	if g.ball.Element != ElementGreen {
		t.Errorf("ball element = %v, want Green", g.ball.Element)
	}
	if g.ball.Status != StatusNone {
		t.Errorf("no pairing should charge a status, got %v", g.ball.Status)
	}
}

func TestPaddleTriggers(t *testing.T) {
	tests := []struct {
		name       string
		ballElem   Element
		paddleElem Element
		want       BallStatus
	}{
		{"overloaded purple paddle", ElementRed, ElementPurple, StatusOverloaded},
		{"overloaded red paddle", ElementPurple, ElementRed, StatusOverloaded},
		{"superconduct", ElementLightBlue, ElementPurple, StatusSuperconduct},
		{"no trigger same element", ElementPurple, ElementPurple, StatusNone},
		{"no trigger neutral ball", ElementNeutral, ElementPurple, StatusNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(1)
			g.paddle.Element = tt.paddleElem
			g.ball.InPlay = true
			g.ball.Element = tt.ballElem
			g.ball.Pos = core.Vec2{X: g.paddle.Rect.CenterX(), Y: g.paddle.Rect.Y - 2}
			g.ball.Vel = core.Vec2{X: 0, Y: 100}

			g.resolvePaddle()
			if g.ball.Status != tt.want {
				t.Errorf("status = %v, want %v", g.ball.Status, tt.want)
			}
		})
	}
}

func TestPaddleFreezeTrigger(t *testing.T) {
	g := newTestGame(1)
	g.paddle.Element = ElementLightBlue
	g.ball.InPlay = true
	g.ball.Element = ElementBlue
	g.ball.Pos = core.Vec2{X: g.paddle.Rect.CenterX(), Y: g.paddle.Rect.Y - 2}
	g.ball.Vel = core.Vec2{X: 0, Y: 100}

	g.resolvePaddle()
	if !g.ball.Frozen {
		t.Fatal("freeze pairing should freeze the ball")
	}
	if g.ball.FreezeTimer != g.cfg.Reactions.FreezeDuration {
		t.Errorf("freeze timer = %v, want %v", g.ball.FreezeTimer, g.cfg.Reactions.FreezeDuration)
	}
	if g.ball.Vel != (core.Vec2{}) {
		t.Errorf("frozen ball velocity = %+v, want zero", g.ball.Vel)
	}
	if g.ball.StoredVel == (core.Vec2{}) {
		t.Error("pre-freeze velocity was not stored")
	}
	if g.ball.Status != StatusFreezeReady {
		t.Errorf("status = %v, want FreezeReady", g.ball.Status)
	}
}

// placeHit positions the ball just above the brick at (row, col) moving
// down into it, and returns the previous-frame position.
func placeHit(g *Game, row, col int) core.Vec2 {
	r := g.board.CellRect(row, col)
	g.ball.InPlay = true
	g.ball.Pos = core.Vec2{X: r.CenterX(), Y: r.Y - g.ball.Radius + 4}
	g.ball.Vel = core.Vec2{X: 0, Y: 200}
	return core.Vec2{X: r.CenterX(), Y: r.Y - g.ball.Radius - 20}
}

func TestBrickNormalDamage(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	br := g.board.Place(0, 0, ElementRed, 2)
	g.ball.Element = ElementNeutral

	prev := placeHit(g, 0, 0)
	if got := g.resolveBricks(prev); got != 0 {
		t.Fatalf("first hit destroyed %d bricks, want 0", got)
	}
	if !br.Active || !br.Cracked || br.HitPoints != 1 {
		t.Fatalf("after first hit: %+v", br)
	}
	if g.ball.Vel.Y >= 0 {
		t.Error("ball should bounce off the brick top")
	}

	prev = placeHit(g, 0, 0)
	if got := g.resolveBricks(prev); got != 1 {
		t.Fatalf("second hit destroyed %d bricks, want 1", got)
	}
	if br.Active {
		t.Error("brick should be destroyed at zero hitPoints")
	}
}

func TestBrickSingleHitPerTick(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	a := g.board.Place(0, 0, ElementRed, 2)
	b := g.board.Place(0, 1, ElementRed, 2)

	// Sit in the seam between the two bricks, overlapping both.
	seamX := (g.board.CellRect(0, 0).Right() + g.board.CellRect(0, 1).X) / 2
	g.ball.InPlay = true
	g.ball.Element = ElementNeutral
	g.ball.Pos = core.Vec2{X: seamX, Y: g.board.CellRect(0, 0).CenterY()}
	g.ball.Vel = core.Vec2{X: 150, Y: 100}
	prev := core.Vec2{X: seamX - 60, Y: g.ball.Pos.Y}

	g.resolveBricks(prev)
	if !a.Cracked {
		t.Error("first brick in grid order should take the hit")
	}
	if b.Cracked || b.HitPoints != 2 {
		t.Error("second overlapping brick must be untouched in the same tick")
	}
}

func TestBrickSwirl(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	br := g.board.Place(2, 2, ElementRed, 2)
	g.ball.Element = ElementGreen

	prev := placeHit(g, 2, 2)
	if got := g.resolveBricks(prev); got != 1 {
		t.Fatalf("destroyed = %d, want 1", got)
	}
	if br.Active {
		t.Error("swirl should destroy instantly")
	}
	if len(g.events) != 1 {
		t.Fatalf("events = %d, want 1 area explosion", len(g.events))
	}
	ev := g.events[0]
	if ev.Kind != EventAreaExplosion || ev.Row != 2 || ev.Col != 2 {
		t.Errorf("event = %+v, want area explosion at (2,2)", ev)
	}
	if ev.Timer != g.cfg.Reactions.AoEDelay {
		t.Errorf("event timer = %v, want %v", ev.Timer, g.cfg.Reactions.AoEDelay)
	}
	if g.message.Text != "Swirl!" {
		t.Errorf("message = %q, want Swirl!", g.message.Text)
	}
}

func TestBrickSwirlNeedsElementalTarget(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	br := g.board.Place(0, 0, ElementNeutral, 2)
	g.ball.Element = ElementGreen

	prev := placeHit(g, 0, 0)
	g.resolveBricks(prev)
	if !br.Active || !br.Cracked {
		t.Error("neutral brick should take normal damage, not swirl")
	}
	if len(g.events) != 0 {
		t.Error("no events should be scheduled")
	}
}

func TestBrickVaporize(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	br := g.board.Place(0, 0, ElementRed, 2)
	g.ball.Element = ElementBlue

	prev := placeHit(g, 0, 0)
	if got := g.resolveBricks(prev); got != 1 {
		t.Fatalf("destroyed = %d, want 1", got)
	}
	if br.Active {
		t.Error("vaporize should destroy instantly")
	}
	if len(g.events) != 0 {
		t.Error("vaporize schedules no events")
	}
	if g.message.Text != "Vaporize!" {
		t.Errorf("message = %q", g.message.Text)
	}
}

func TestBrickLiquefy(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	br := g.board.Place(0, 0, ElementRed, 2)
	g.ball.Element = ElementLightBlue

	prev := placeHit(g, 0, 0)
	if got := g.resolveBricks(prev); got != 0 {
		t.Fatalf("destroyed = %d, want 0", got)
	}
	if !br.Active || br.Element != ElementBlue || br.HitPoints != 2 {
		t.Errorf("liquefy should convert to Blue without damage: %+v", br)
	}
	if g.message.Text != "Liquefy!" {
		t.Errorf("message = %q", g.message.Text)
	}
}

func TestBrickSurge(t *testing.T) {
	for _, tt := range []struct {
		name      string
		ballElem  Element
		brickElem Element
	}{
		{"purple ball blue brick", ElementPurple, ElementBlue},
		{"blue ball purple brick", ElementBlue, ElementPurple},
	} {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(1)
			emptyBoard(g)
			br := g.board.Place(2, 3, tt.brickElem, 2)
			g.ball.Element = tt.ballElem

			prev := placeHit(g, 2, 3)
			if got := g.resolveBricks(prev); got != 1 {
				t.Fatalf("destroyed = %d, want 1", got)
			}
			if br.Active {
				t.Error("surge should destroy the origin instantly")
			}
			// Diagonal reach from (2,3) in a 6x12 grid: 2 up-left,
			// 2 up-right, 3 down-left, 3 down-right.
			if len(g.events) != 10 {
				t.Fatalf("events = %d, want 10 chain steps", len(g.events))
			}
			for _, ev := range g.events {
				if ev.Kind != EventChainStep {
					t.Fatalf("unexpected event kind %v", ev.Kind)
				}
				step := core.Max(core.Abs(ev.Row-2), core.Abs(ev.Col-3))
				if want := float64(step) * g.cfg.Reactions.ChainStepDelay; !approx(ev.Timer, want) {
					t.Errorf("step %d timer = %v, want %v", step, ev.Timer, want)
				}
				if core.Abs(ev.Row-2) != core.Abs(ev.Col-3) {
					t.Errorf("event (%d,%d) is not on a diagonal", ev.Row, ev.Col)
				}
			}
			if g.message.Text != "Surge!" {
				t.Errorf("message = %q", g.message.Text)
			}
		})
	}
}

func TestBrickInfuse(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	origin := g.board.Place(0, 0, ElementGreen, 2)
	neighbor := g.board.Place(0, 1, ElementGreen, 2)
	g.ball.Element = ElementRed

	prev := placeHit(g, 0, 0)
	if got := g.resolveBricks(prev); got != 0 {
		t.Fatalf("destroyed = %d, want 0", got)
	}
	if origin.Element != ElementRed || neighbor.Element != ElementRed {
		t.Error("infuse should convert the connected green group")
	}
	if !origin.Active || origin.HitPoints != 2 {
		t.Errorf("infuse must not damage the origin: %+v", origin)
	}
	if g.message.Text != "Infuse!" {
		t.Errorf("message = %q", g.message.Text)
	}
}

func TestFrozenBrickMelt(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	br := g.board.Place(0, 0, ElementNeutral, 1)
	br.Frozen = true
	g.ball.Element = ElementRed

	prev := placeHit(g, 0, 0)
	if got := g.resolveBricks(prev); got != 0 {
		t.Fatalf("destroyed = %d, want 0", got)
	}
	if br.Frozen || !br.Active {
		t.Errorf("red ball should thaw without destroying: %+v", br)
	}
	if g.message.Text != "Melt!" {
		t.Errorf("message = %q", g.message.Text)
	}
}

func TestFrozenBrickShatterChain(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	for col := 0; col < 3; col++ {
		br := g.board.Place(0, col, ElementNeutral, 1)
		br.Frozen = true
	}
	bystander := g.board.Place(0, 3, ElementRed, 2)
	g.ball.Element = ElementBlue

	prev := placeHit(g, 0, 0)
	if got := g.resolveBricks(prev); got != 3 {
		t.Fatalf("destroyed = %d, want 3", got)
	}
	for col := 0; col < 3; col++ {
		if g.board.At(0, col).Active {
			t.Errorf("frozen brick (0,%d) survived", col)
		}
	}
	if !bystander.Active {
		t.Error("non-frozen neighbor must survive the shatter")
	}
}

func TestFreezeChargeConvertsGroupOnce(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	g.board.Place(0, 0, ElementRed, 2)
	g.board.Place(0, 1, ElementRed, 2)
	g.board.Place(0, 2, ElementRed, 2)
	g.ball.Element = ElementBlue
	g.ball.Status = StatusFreezeReady

	prev := placeHit(g, 0, 0)
	if got := g.resolveBricks(prev); got != 1 {
		t.Fatalf("destroyed = %d, want only the struck brick", got)
	}
	if g.ball.Status != StatusNone {
		t.Error("freeze charge must be spent on the first hit")
	}
	if g.board.At(0, 0).Active {
		t.Error("struck brick should break")
	}
	for col := 1; col < 3; col++ {
		br := g.board.At(0, col)
		if !br.Active || !br.Frozen {
			t.Errorf("brick (0,%d) should be frozen and standing: %+v", col, br)
		}
	}
}

func TestOverloadedCarryover(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	br := g.board.Place(1, 1, ElementNeutral, 2)
	g.ball.Element = ElementPurple
	g.ball.Status = StatusOverloaded

	prev := placeHit(g, 1, 1)
	if got := g.resolveBricks(prev); got != 1 {
		t.Fatalf("destroyed = %d, want 1", got)
	}
	if br.Active {
		t.Error("overloaded hit should destroy instantly")
	}
	if g.ball.Status != StatusNone {
		t.Error("overload charge must be spent")
	}
	if len(g.events) != 1 || g.events[0].Kind != EventAreaExplosion {
		t.Fatalf("expected one scheduled area explosion, got %+v", g.events)
	}
	if g.message.Text != ReactionOverloaded.Message() {
		t.Errorf("message = %q, want %q", g.message.Text, ReactionOverloaded.Message())
	}
}

func TestSuperconductPassesThrough(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	br := g.board.Place(0, 0, ElementRed, 2)
	g.ball.Element = ElementLightBlue
	g.ball.Status = StatusSuperconduct

	prev := placeHit(g, 0, 0)
	velBefore := g.ball.Vel
	// LightBlue vs Red is liquefy; conversion happens but no bounce.
	g.resolveBricks(prev)
	if g.ball.Vel != velBefore {
		t.Errorf("superconduct ball bounced: vel %+v -> %+v", velBefore, g.ball.Vel)
	}
	if br.Element != ElementBlue {
		t.Error("reaction should still apply while passing through")
	}
	if g.ball.Status != StatusSuperconduct {
		t.Error("superconduct persists until the next paddle bounce")
	}
}

func TestCornerGrazeRepositionsBall(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	br := g.board.Place(2, 5, ElementNeutral, 2)
	r := br.Rect

	// Overlap the top-left corner with prev == pos so no face test
	// resolves and the center-offset fallback handles the hit.
	g.ball.InPlay = true
	g.ball.Element = ElementNeutral
	g.ball.Pos = core.Vec2{X: r.X - 2, Y: r.Y - 2}
	g.ball.Vel = core.Vec2{X: 50, Y: 120}
	prev := g.ball.Pos

	if got := g.resolveBricks(prev); got != 0 {
		t.Fatalf("first hit destroyed = %d, want 0", got)
	}
	if br.HitPoints != 1 || !br.Cracked {
		t.Fatalf("after first hit: hp = %d cracked = %v, want 1 true", br.HitPoints, br.Cracked)
	}
	if br.Rect.CircleOverlaps(g.ball.Pos, g.ball.Radius) {
		t.Fatal("ball still overlaps the brick after the fallback reflection")
	}

	// Integrating one frame must not strike the same brick again.
	prev = g.ball.Pos
	g.ball.Pos = g.ball.Pos.Add(g.ball.Vel.Scale(testDT))
	if got := g.resolveBricks(prev); got != 0 {
		t.Fatalf("second tick destroyed = %d, want 0", got)
	}
	if br.HitPoints != 1 {
		t.Errorf("hp = %d after one graze, want 1", br.HitPoints)
	}
}

func TestReflectOffBrickFaces(t *testing.T) {
	g := newTestGame(1)
	emptyBoard(g)
	g.board.Place(2, 5, ElementNeutral, 2)
	r := g.board.CellRect(2, 5)

	tests := []struct {
		name string
		pos  core.Vec2
		prev core.Vec2
		vel  core.Vec2
		// axis that must flip sign
		flipX bool
	}{
		{"from left", core.Vec2{X: r.X - 4, Y: r.CenterY()}, core.Vec2{X: r.X - 40, Y: r.CenterY()}, core.Vec2{X: 200, Y: 10}, true},
		{"from right", core.Vec2{X: r.Right() + 4, Y: r.CenterY()}, core.Vec2{X: r.Right() + 40, Y: r.CenterY()}, core.Vec2{X: -200, Y: 10}, true},
		{"from above", core.Vec2{X: r.CenterX(), Y: r.Y - 4}, core.Vec2{X: r.CenterX(), Y: r.Y - 40}, core.Vec2{X: 10, Y: 200}, false},
		{"from below", core.Vec2{X: r.CenterX(), Y: r.Bottom() + 4}, core.Vec2{X: r.CenterX(), Y: r.Bottom() + 40}, core.Vec2{X: 10, Y: -200}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.board.At(2, 5).Active = true
			g.board.At(2, 5).HitPoints = 2
			g.board.At(2, 5).Cracked = false
			g.ball.InPlay = true
			g.ball.Element = ElementNeutral
			g.ball.Status = StatusNone
			g.ball.Pos = tt.pos
			g.ball.Vel = tt.vel

			g.resolveBricks(tt.prev)
			if tt.flipX {
				if (g.ball.Vel.X > 0) == (tt.vel.X > 0) {
					t.Errorf("vel.X did not flip: %v -> %v", tt.vel.X, g.ball.Vel.X)
				}
				if g.ball.Vel.Y != tt.vel.Y {
					t.Errorf("vel.Y changed on a side hit: %v -> %v", tt.vel.Y, g.ball.Vel.Y)
				}
			} else {
				if (g.ball.Vel.Y > 0) == (tt.vel.Y > 0) {
					t.Errorf("vel.Y did not flip: %v -> %v", tt.vel.Y, g.ball.Vel.Y)
				}
				if g.ball.Vel.X != tt.vel.X {
					t.Errorf("vel.X changed on a vertical hit: %v -> %v", tt.vel.X, g.ball.Vel.X)
				}
			}
		})
	}
}
