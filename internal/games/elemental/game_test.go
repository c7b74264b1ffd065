package elemental

import (
	"strings"
	"testing"

	"github.com/arcadelab/elemental/internal/config"
	"github.com/arcadelab/elemental/internal/core"
	"github.com/arcadelab/elemental/internal/registry"
)

const testDT = 1.0 / 60

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// scriptedInput is a deterministic input schedule keyed on tick index,
// shared by the replay tests.
func scriptedInput(i int) core.InputFrame {
	f := core.NewInputFrame()
	switch {
	case i == 0:
		f.Set(core.ActionLaunch) // leave the intro
	case i == 5:
		f.Set(core.ActionLaunch) // serve
	case i%3 == 0:
		f.Set(core.ActionLeft)
	case i%7 == 0:
		f.Set(core.ActionRight)
	}
	if i > 0 && i%97 == 0 {
		slots := []core.Action{core.ActionSlot1, core.ActionSlot2, core.ActionSlot3, core.ActionSlot4, core.ActionSlot5}
		f.Set(slots[(i/97)%len(slots)])
	}
	return f
}

func runScripted(seed int64, ticks int) uint64 {
	g := NewWithConfig(ModeWaves, config.DefaultElementalConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	for i := 0; i < ticks; i++ {
		g.Step(scriptedInput(i), testDT)
	}
	return g.Snapshot().Hash()
}

func TestRegistryRegistration(t *testing.T) {
	for _, id := range []string{"elemental", "elemental_classic"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	h1 := runScripted(42, 1200)
	h2 := runScripted(42, 1200)
	if h1 != h2 {
		t.Errorf("same seed and inputs diverged: %x vs %x", h1, h2)
	}

	h3 := runScripted(43, 1200)
	if h1 == h3 {
		t.Error("different seeds produced identical state")
	}
}

func TestIntroPhase(t *testing.T) {
	g := newIntroGame()
	if g.phase != PhaseIntro {
		t.Fatalf("phase after Reset = %q, want intro", g.phase)
	}

	g.Step(frame(), testDT)
	if g.phase != PhaseIntro {
		t.Error("intro should wait for launch or confirm")
	}

	g.Step(frame(core.ActionLaunch), testDT)
	if g.phase != PhasePlaying {
		t.Errorf("phase = %q, want playing", g.phase)
	}
}

func newIntroGame() *Game {
	g := NewWithConfig(ModeWaves, config.DefaultElementalConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9})
	return g
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(9)
	g.ball.InPlay = true
	g.ball.Pos = core.Vec2{X: 400, Y: 300}
	g.ball.Vel = core.Vec2{X: 100, Y: 100}

	res := g.Step(frame(core.ActionPause), testDT)
	if !res.State.Paused {
		t.Fatal("pause action should pause")
	}

	pos := g.ball.Pos
	for i := 0; i < 10; i++ {
		g.Step(frame(), testDT)
	}
	if g.ball.Pos != pos {
		t.Error("ball moved while paused")
	}

	res = g.Step(frame(core.ActionPause), testDT)
	if res.State.Paused {
		t.Fatal("second pause action should resume")
	}
	g.Step(frame(), testDT)
	if g.ball.Pos == pos {
		t.Error("ball did not move after resume")
	}
}

func TestForfeitEndsRun(t *testing.T) {
	g := newTestGame(9)
	res := g.Step(frame(core.ActionForfeit), testDT)
	if !res.State.GameOver {
		t.Fatal("forfeit should end the run")
	}
	if res.State.Lives != 0 {
		t.Errorf("lives = %d, want 0", res.State.Lives)
	}
}

func TestLifeLossAndGameOver(t *testing.T) {
	g := newTestGame(9)
	g.ball.InPlay = true
	g.ball.Pos = core.Vec2{X: 400, Y: FieldHeight + 40}
	g.ball.Vel = core.Vec2{X: 0, Y: 100}

	res := g.Step(frame(), testDT)
	if res.State.Lives != g.cfg.Gameplay.Lives-1 {
		t.Fatalf("lives = %d, want %d", res.State.Lives, g.cfg.Gameplay.Lives-1)
	}
	if res.State.GameOver {
		t.Fatal("run should continue with lives remaining")
	}
	if g.ball.InPlay {
		t.Error("ball should return to the paddle after a lost life")
	}

	g.lives = 1
	g.ball.InPlay = true
	g.ball.Pos = core.Vec2{X: 400, Y: FieldHeight + 40}
	res = g.Step(frame(), testDT)
	if !res.State.GameOver || g.phase != PhaseGameOver {
		t.Fatal("losing the last life should end the run")
	}

	// Stays over until restart.
	res = g.Step(frame(), testDT)
	if !res.State.GameOver {
		t.Error("game over state should persist without restart input")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(9)
	g.score = 500
	g.lives = 0
	g.phase = PhaseGameOver

	res := g.Step(frame(core.ActionRestart), testDT)
	if res.State.GameOver {
		t.Fatal("restart should start a fresh run")
	}
	if res.State.Score != 0 || res.State.Lives != g.cfg.Gameplay.Lives || res.State.Wave != 1 {
		t.Errorf("fresh run state = %+v", res.State)
	}
	if g.board.ActiveCount() == 0 {
		t.Error("restart should regenerate the board")
	}
}

func TestWaveClearAdvancesAndSpeedsUp(t *testing.T) {
	g := newTestGame(9)
	baseSpeed := g.ballSpeed
	emptyBoard(g)

	res := g.Step(frame(), testDT)
	if res.State.Wave != 2 {
		t.Fatalf("wave = %d, want 2", res.State.Wave)
	}
	if want := baseSpeed * g.cfg.Gameplay.WaveSpeedup; !approx(g.ballSpeed, want) {
		t.Errorf("ball speed = %v, want %v", g.ballSpeed, want)
	}
	if g.board.ActiveCount() == 0 {
		t.Error("new wave should have bricks")
	}
	if g.ball.InPlay {
		t.Error("ball should reset to the paddle between waves")
	}
	if res.State.GameOver {
		t.Error("waves mode never wins, it only ramps")
	}
}

func TestClassicModeWinsOnClear(t *testing.T) {
	g := NewWithConfig(ModeClassic, config.DefaultElementalConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9})
	g.phase = PhasePlaying
	emptyBoard(g)

	res := g.Step(frame(), testDT)
	if g.phase != PhaseWon {
		t.Fatalf("phase = %q, want won", g.phase)
	}
	if !res.State.GameOver {
		t.Error("won run should report GameOver to the platform")
	}

	g.Step(frame(core.ActionRestart), testDT)
	if g.phase != PhasePlaying {
		t.Error("restart after a win should start a fresh run")
	}
}

func TestFrozenBallThaws(t *testing.T) {
	g := newTestGame(9)
	stored := core.Vec2{X: 120, Y: -300}
	g.ball.InPlay = true
	g.ball.Frozen = true
	g.ball.FreezeTimer = 0.05
	g.ball.StoredVel = stored

	g.Step(frame(), testDT)
	if !g.ball.Frozen {
		t.Fatal("ball thawed before the timer expired")
	}

	g.Step(frame(), 0.1)
	if g.ball.Frozen {
		t.Fatal("ball should thaw when the timer expires")
	}
	if g.ball.Vel != stored {
		t.Errorf("restored vel = %+v, want %+v", g.ball.Vel, stored)
	}
	if g.ball.Pos.X != g.paddle.Rect.CenterX() {
		t.Errorf("thaw position x = %v, want paddle center %v", g.ball.Pos.X, g.paddle.Rect.CenterX())
	}
}

func TestFrozenBallFollowsPaddle(t *testing.T) {
	g := newTestGame(9)
	g.ball.InPlay = true
	g.ball.Frozen = true
	g.ball.FreezeTimer = 1.0
	g.ball.StoredVel = core.Vec2{X: 80, Y: -250}

	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionRight), testDT)
		if g.ball.Pos.X != g.paddle.Rect.CenterX() {
			t.Fatalf("tick %d: frozen ball x = %v, want paddle center %v", i, g.ball.Pos.X, g.paddle.Rect.CenterX())
		}
	}
	if !g.ball.Frozen {
		t.Fatal("ball thawed too early")
	}
}

func TestThawWithZeroStoredVelServesUpward(t *testing.T) {
	g := newTestGame(9)
	g.ball.InPlay = true
	g.ball.Frozen = true
	g.ball.FreezeTimer = 0.01
	g.ball.StoredVel = core.Vec2{}

	g.Step(frame(), testDT)
	if g.ball.Frozen {
		t.Fatal("ball should thaw when the timer expires")
	}
	want := core.Vec2{Y: -g.ballSpeed}
	if g.ball.Vel != want {
		t.Errorf("thaw vel = %+v, want %+v", g.ball.Vel, want)
	}
}

func TestSlotSelectsPaddleElement(t *testing.T) {
	g := newTestGame(9)
	g.Step(frame(core.ActionSlot3), testDT)
	if g.paddle.Element != ElementGreen {
		t.Errorf("paddle element = %v, want Green (slot 3)", g.paddle.Element)
	}
	g.Step(frame(core.ActionSlot1), testDT)
	if g.paddle.Element != ElementRed {
		t.Errorf("paddle element = %v, want Red (slot 1)", g.paddle.Element)
	}
}

func TestScoreAccumulatesPerBrick(t *testing.T) {
	g := newTestGame(9)
	emptyBoard(g)
	g.board.Place(5, 6, ElementRed, 1)
	g.board.Place(0, 0, ElementBlue, 2) // keeps the wave from clearing
	r := g.board.CellRect(5, 6)

	g.ball.InPlay = true
	g.ball.Element = ElementNeutral
	g.ball.Pos = core.Vec2{X: r.CenterX(), Y: r.Y - g.ball.Radius - 2}
	g.ball.Vel = core.Vec2{X: 0, Y: 300}

	res := g.Step(frame(), testDT)
	if res.State.Score != g.cfg.Gameplay.BrickPoints {
		t.Errorf("score = %d, want %d", res.State.Score, g.cfg.Gameplay.BrickPoints)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := NewWithConfig(ModeWaves, config.DefaultElementalConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	for i := 0; i < 300; i++ {
		g.Step(scriptedInput(i), testDT)
	}
	snap := g.Snapshot()
	h1 := snap.Hash()

	for i := 300; i < 600; i++ {
		g.Step(scriptedInput(i), testDT)
	}
	h2 := g.Snapshot().Hash()

	g.ApplySnapshot(snap)
	if got := g.Snapshot().Hash(); got != h1 {
		t.Fatalf("restored hash = %x, want %x", got, h1)
	}

	for i := 300; i < 600; i++ {
		g.Step(scriptedInput(i), testDT)
	}
	if got := g.Snapshot().Hash(); got != h2 {
		t.Errorf("replay after restore diverged: %x vs %x", got, h2)
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame(9)
	s := core.NewScreen(80, 24)
	g.Render(s)

	out := s.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD missing score")
	}
	if !strings.Contains(out, "=") {
		t.Error("paddle not drawn")
	}
	if !strings.Contains(out, "●") {
		t.Error("ball not drawn")
	}
}

func TestRenderIntro(t *testing.T) {
	g := newIntroGame()
	s := core.NewScreen(100, 30)
	g.Render(s)
	if !strings.Contains(s.String(), "ELEMENTAL BREAKOUT") {
		t.Error("intro title not drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(9)
	s := core.NewScreen(30, 10)
	g.Render(s)
	if !strings.Contains(s.String(), "Terminal too small") {
		t.Error("small-terminal guard not drawn")
	}
}
