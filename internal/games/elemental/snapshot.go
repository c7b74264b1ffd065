package elemental

import "math"

// BrickState is the serialized form of one grid cell. Present is false
// for permanent gaps.
type BrickState struct {
	Present   bool
	Active    bool
	Element   Element
	HitPoints int
	Cracked   bool
	Frozen    bool
}

// Snapshot captures the full simulation state. Applying a snapshot to a
// game with the same tuning reproduces the run exactly, which is what the
// determinism tests lean on.
type Snapshot struct {
	Tick      uint64
	Phase     string
	Paused    bool
	Score     int
	Lives     int
	Wave      int
	BallSpeed float64
	RNGState  uint64

	PaddleX       float64
	PaddleElement Element
	Ball          Ball

	Rows, Cols int
	Bricks     []BrickState

	Events  []ReactionEvent
	Message ReactionMessage
}

// Snapshot returns a copy of the current simulation state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:          g.tick,
		Phase:         g.phase,
		Paused:        g.paused,
		Score:         g.score,
		Lives:         g.lives,
		Wave:          g.wave,
		BallSpeed:     g.ballSpeed,
		RNGState:      g.rng.State(),
		PaddleX:       g.paddle.Rect.X,
		PaddleElement: g.paddle.Element,
		Ball:          *g.ball,
		Rows:          g.board.Rows,
		Cols:          g.board.Cols,
		Bricks:        make([]BrickState, 0, g.board.Rows*g.board.Cols),
		Events:        append([]ReactionEvent(nil), g.events...),
		Message:       g.message,
	}
	for _, row := range g.board.Cells {
		for _, br := range row {
			if br == nil {
				s.Bricks = append(s.Bricks, BrickState{})
				continue
			}
			s.Bricks = append(s.Bricks, BrickState{
				Present:   true,
				Active:    br.Active,
				Element:   br.Element,
				HitPoints: br.HitPoints,
				Cracked:   br.Cracked,
				Frozen:    br.Frozen,
			})
		}
	}
	return s
}

// ApplySnapshot restores a previously captured state. The game must have
// been Reset at least once with the same tuning so board geometry can be
// rebuilt from row and column indices.
func (g *Game) ApplySnapshot(s Snapshot) {
	g.tick = s.Tick
	g.phase = s.Phase
	g.paused = s.Paused
	g.score = s.Score
	g.lives = s.Lives
	g.wave = s.Wave
	g.ballSpeed = s.BallSpeed
	g.rng.SetState(s.RNGState)

	g.paddle.Rect.X = s.PaddleX
	g.paddle.Element = s.PaddleElement
	ball := s.Ball
	g.ball = &ball

	g.board = NewBoard(g.cfg.Board, FieldWidth)
	i := 0
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			bs := s.Bricks[i]
			i++
			if !bs.Present {
				continue
			}
			br := g.board.Place(row, col, bs.Element, bs.HitPoints)
			br.Active = bs.Active
			br.Cracked = bs.Cracked
			br.Frozen = bs.Frozen
		}
	}

	g.events = append([]ReactionEvent(nil), s.Events...)
	g.message = s.Message
}

// Hash folds the snapshot into a single value. Two identical simulations
// produce identical hashes at every tick.
func (s Snapshot) Hash() uint64 {
	h := uint64(14695981039346656037)
	mix := func(v uint64) {
		h ^= v
		h *= 1099511628211
	}
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mix(s.Tick)
	for _, c := range s.Phase {
		mix(uint64(c))
	}
	mixB(s.Paused)
	mix(uint64(s.Score))
	mix(uint64(s.Lives))
	mix(uint64(s.Wave))
	mixF(s.BallSpeed)
	mix(s.RNGState)

	mixF(s.PaddleX)
	mix(uint64(int64(s.PaddleElement)))

	mixF(s.Ball.Pos.X)
	mixF(s.Ball.Pos.Y)
	mixF(s.Ball.Vel.X)
	mixF(s.Ball.Vel.Y)
	mixF(s.Ball.Radius)
	mix(uint64(int64(s.Ball.Element)))
	mix(uint64(s.Ball.Status))
	mixB(s.Ball.Frozen)
	mixF(s.Ball.FreezeTimer)
	mixF(s.Ball.StoredVel.X)
	mixF(s.Ball.StoredVel.Y)
	mixB(s.Ball.InPlay)

	mix(uint64(s.Rows))
	mix(uint64(s.Cols))
	for _, bs := range s.Bricks {
		mixB(bs.Present)
		mixB(bs.Active)
		mix(uint64(int64(bs.Element)))
		mix(uint64(bs.HitPoints))
		mixB(bs.Cracked)
		mixB(bs.Frozen)
	}

	mix(uint64(len(s.Events)))
	for _, ev := range s.Events {
		mix(uint64(ev.Row))
		mix(uint64(ev.Col))
		mixF(ev.Timer)
		mix(uint64(ev.Kind))
	}

	for _, c := range s.Message.Text {
		mix(uint64(c))
	}
	mixF(s.Message.Timer)

	return h
}
