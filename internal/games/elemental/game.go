package elemental

import (
	"fmt"

	"github.com/arcadelab/elemental/internal/config"
	"github.com/arcadelab/elemental/internal/core"
	"github.com/arcadelab/elemental/internal/registry"
)

// The simulation runs in a fixed logical field; the renderer scales it to
// whatever terminal size the platform provides.
const (
	FieldWidth  = 960.0
	FieldHeight = 720.0

	paddleY = FieldHeight - 50
)

// Mode selects the win condition. Waves regenerates the board on every
// clear with a speed ramp; Classic ends the run on the first full clear.
type Mode int

const (
	ModeWaves Mode = iota
	ModeClassic
)

// Game phases. Paused is tracked separately so a run resumes into the
// exact phase it left.
const (
	PhaseIntro    = "intro"
	PhasePlaying  = "playing"
	PhaseGameOver = "gameover"
	PhaseWon      = "won"
)

func init() {
	registry.Register("elemental", func() registry.Game { return NewWaves() })
	registry.Register("elemental_classic", func() registry.Game { return NewClassic() })
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// loadConfig resolves the effective tuning from the defaults, any custom
// YAML file, and the CLI difficulty preset.
func loadConfig() config.ElementalConfig {
	cfg, err := config.LoadElemental(configPath)
	if err != nil {
		cfg = config.DefaultElementalConfig()
	}
	if difficultyPreset != "" {
		config.ApplyElementalPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Game is the Elemental Breakout simulation. All randomness flows through
// one seeded generator, so identical seeds and inputs replay identically.
type Game struct {
	mode    Mode
	cfg     config.ElementalConfig
	runtime core.RuntimeConfig
	rng     *SimpleRNG

	paddle  *Paddle
	ball    *Ball
	board   *Board
	events  []ReactionEvent
	message ReactionMessage

	phase     string
	paused    bool
	score     int
	lives     int
	wave      int
	ballSpeed float64
	tick      uint64
}

// NewWaves creates the endless-waves mode with the resolved tuning.
func NewWaves() *Game {
	return NewWithConfig(ModeWaves, loadConfig())
}

// NewClassic creates the single-board mode with the resolved tuning.
func NewClassic() *Game {
	return NewWithConfig(ModeClassic, loadConfig())
}

// NewWithConfig creates a game with explicit tuning. Reset must be called
// before the first Step.
func NewWithConfig(mode Mode, cfg config.ElementalConfig) *Game {
	return &Game{mode: mode, cfg: cfg}
}

// SetConfig replaces the tuning. Takes effect on the next Reset.
func (g *Game) SetConfig(cfg config.ElementalConfig) {
	g.cfg = cfg
}

// ID implements registry.Game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "elemental_classic"
	}
	return "elemental"
}

// Title implements registry.Game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Elemental Breakout (Classic)"
	}
	return "Elemental Breakout"
}

// Reset implements registry.Game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = NewSimpleRNG(rc.Seed)
	g.tick = 0

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.wave = 1
	g.ballSpeed = g.cfg.Physics.BallSpeed
	g.phase = PhaseIntro
	g.paused = false
	g.events = nil
	g.message = ReactionMessage{}

	g.paddle = &Paddle{
		Rect: core.Rect{
			X: FieldWidth/2 - g.cfg.Physics.PaddleWidth/2,
			Y: paddleY,
			W: g.cfg.Physics.PaddleWidth,
			H: g.cfg.Physics.PaddleHeight,
		},
		Speed:   g.cfg.Physics.PaddleSpeed,
		Element: ElementPurple,
	}
	g.board = Generate(g.cfg.Board, FieldWidth, g.rng)
	g.resetBallOnPaddle()
}

// Step implements registry.Game.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseIntro:
		if in.Has(core.ActionLaunch) || in.Has(core.ActionConfirm) {
			g.phase = PhasePlaying
		}
		return g.result()
	case PhaseGameOver, PhaseWon:
		if in.Has(core.ActionRestart) {
			g.restartRun()
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}
	if in.Has(core.ActionForfeit) {
		g.lives = 0
		g.ball.InPlay = false
		g.phase = PhaseGameOver
		return g.result()
	}

	g.message.Update(dt)

	if slot := in.Slot(); slot >= 0 {
		g.paddle.Element = Element(slot)
	}
	g.movePaddle(in, dt)

	b := g.ball
	switch {
	case b.Frozen:
		// The frozen ball rides the paddle, so the player can line up
		// the thaw.
		b.FreezeTimer -= dt
		g.ballFollowsPaddle()
		if b.FreezeTimer <= 0 {
			b.Frozen = false
			b.FreezeTimer = 0
			if b.StoredVel.Length() <= 0.001 {
				b.Vel = core.Vec2{Y: -g.ballSpeed}
			} else {
				b.Vel = b.StoredVel
			}
			b.StoredVel = core.Vec2{}
		}
	case !b.InPlay:
		g.ballFollowsPaddle()
		if in.Has(core.ActionLaunch) {
			g.launchBall()
		}
	default:
		prev := b.Pos
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		g.resolveWalls()
		g.resolvePaddle()
		g.score += g.resolveBricks(prev) * g.cfg.Gameplay.BrickPoints
		if b.Pos.Y-b.Radius > FieldHeight {
			g.loseLife()
		}
	}

	// Scheduled reactions keep resolving even while the ball waits on
	// the paddle.
	g.score += g.tickEvents(dt) * g.cfg.Gameplay.BrickPoints
	g.checkWaveClear()

	return g.result()
}

// State implements registry.Game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Wave:     g.wave,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseWon,
		Paused:   g.paused,
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State()}
}

func (g *Game) movePaddle(in core.InputFrame, dt float64) {
	p := g.paddle
	if in.Has(core.ActionLeft) {
		p.Rect.X -= p.Speed * dt
	}
	if in.Has(core.ActionRight) {
		p.Rect.X += p.Speed * dt
	}
	p.Rect.X = core.ClampF(p.Rect.X, 0, FieldWidth-p.Rect.W)
}

func (g *Game) resetBallOnPaddle() {
	g.ball = &Ball{
		Radius:  g.cfg.Physics.BallRadius,
		Element: ElementNeutral,
	}
	g.ballFollowsPaddle()
}

func (g *Game) ballFollowsPaddle() {
	g.ball.Pos = core.Vec2{
		X: g.paddle.Rect.CenterX(),
		Y: g.paddle.Rect.Y - g.ball.Radius - 1,
	}
}

func (g *Game) launchBall() {
	side := 0.6
	if g.rng.IntRange(0, 1) == 0 {
		side = -0.6
	}
	g.ball.Vel = core.Vec2{X: side, Y: -1}.Normalize().Scale(g.ballSpeed)
	g.ball.InPlay = true
}

func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.ball.InPlay = false
		g.phase = PhaseGameOver
		return
	}
	g.resetBallOnPaddle()
}

func (g *Game) checkWaveClear() {
	if g.phase != PhasePlaying || g.board.ActiveCount() > 0 {
		return
	}
	if g.mode == ModeClassic {
		g.phase = PhaseWon
		g.ball.InPlay = false
		return
	}
	g.nextWave()
}

func (g *Game) nextWave() {
	g.wave++
	g.ballSpeed *= g.cfg.Gameplay.WaveSpeedup
	g.board = Generate(g.cfg.Board, FieldWidth, g.rng)
	g.events = nil
	g.resetBallOnPaddle()
	g.message.Show(fmt.Sprintf("Wave %d!", g.wave), core.ColorWhite, g.cfg.Reactions.MessageDuration)
}

// restartRun begins a fresh run without reseeding, so consecutive runs in
// one session see different boards.
func (g *Game) restartRun() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.wave = 1
	g.ballSpeed = g.cfg.Physics.BallSpeed
	g.events = nil
	g.message = ReactionMessage{}
	g.paddle.Rect.X = FieldWidth/2 - g.paddle.Rect.W/2
	g.board = Generate(g.cfg.Board, FieldWidth, g.rng)
	g.resetBallOnPaddle()
	g.phase = PhasePlaying
	g.paused = false
}
