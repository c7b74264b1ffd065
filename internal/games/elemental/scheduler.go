package elemental

// scheduleAreaExplosion enqueues a delayed 3x3 blast centered on the cell.
func (g *Game) scheduleAreaExplosion(row, col int) {
	g.events = append(g.events, ReactionEvent{
		Row:   row,
		Col:   col,
		Timer: g.cfg.Reactions.AoEDelay,
		Kind:  EventAreaExplosion,
	})
}

// scheduleChainBurst enqueues ChainStep events along all four diagonals
// outward from the origin cell. All steps are enqueued at once; the delay
// grows linearly with distance so the arc resolves outward over time.
func (g *Game) scheduleChainBurst(row, col int) {
	for _, d := range [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		for step := 1; ; step++ {
			r := row + d[0]*step
			c := col + d[1]*step
			if r < 0 || r >= g.board.Rows || c < 0 || c >= g.board.Cols {
				break
			}
			g.events = append(g.events, ReactionEvent{
				Row:   r,
				Col:   c,
				Timer: float64(step) * g.cfg.Reactions.ChainStepDelay,
				Kind:  EventChainStep,
			})
		}
	}
}

// tickEvents advances every pending event timer and fires the expired
// ones in enqueue order. Returns the number of bricks destroyed.
func (g *Game) tickEvents(dt float64) int {
	if len(g.events) == 0 {
		return 0
	}
	destroyed := 0
	remaining := g.events[:0]
	for i := range g.events {
		ev := g.events[i]
		ev.Timer -= dt
		if ev.Timer > 0 {
			remaining = append(remaining, ev)
			continue
		}
		switch ev.Kind {
		case EventAreaExplosion:
			destroyed += g.explodeArea(ev.Row, ev.Col)
		case EventChainStep:
			if br := g.board.At(ev.Row, ev.Col); br != nil && br.Active {
				br.Active = false
				destroyed++
			}
		}
	}
	g.events = remaining
	return destroyed
}

// explodeArea destroys every active brick within Chebyshev distance 1 of
// the cell, the cell itself included.
func (g *Game) explodeArea(row, col int) int {
	destroyed := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if br := g.board.At(row+dr, col+dc); br != nil && br.Active {
				br.Active = false
				destroyed++
			}
		}
	}
	return destroyed
}
