package elemental

import (
	"fmt"

	"github.com/arcadelab/elemental/internal/core"
)

const (
	minScreenW = 40
	minScreenH = 15
)

// Render implements registry.Game. The logical field is scaled to the
// screen area below a one-row HUD.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	if g.phase == PhaseIntro {
		g.renderIntro(dst)
		return
	}

	g.renderHUD(dst)

	sx := float64(w) / FieldWidth
	sy := float64(h-1) / FieldHeight

	g.renderBoard(dst, sx, sy)
	g.renderPaddle(dst, sx, sy)
	g.renderBall(dst, sx, sy)

	if g.message.Active() {
		dst.DrawTextCenteredColored(1+int(0.62*float64(h-1)), g.message.Text, g.message.Color)
	}

	switch {
	case g.paused:
		g.renderOverlay(dst, "PAUSED", "p to resume", core.ColorBrightYellow)
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst, "GAME OVER", fmt.Sprintf("Final score: %d   r to restart", g.score), core.ColorBrightRed)
	case g.phase == PhaseWon:
		g.renderOverlay(dst, "BOARD CLEARED", fmt.Sprintf("Final score: %d   r to restart", g.score), core.ColorBrightGreen)
	case !g.ball.InPlay && !g.ball.Frozen:
		dst.DrawTextCentered(1+int(0.75*float64(h-1)), "space to launch")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d   Wave: %d", g.lives, g.wave))

	right := fmt.Sprintf("Paddle: %s", g.paddle.Element)
	if s := g.ball.Status.String(); s != "" {
		right = fmt.Sprintf("Ball: %s   %s", s, right)
	}
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, g.paddle.Element.Color())
}

func (g *Game) renderBoard(dst *core.Screen, sx, sy float64) {
	for _, row := range g.board.Cells {
		for _, br := range row {
			if br == nil || !br.Active {
				continue
			}
			x0 := int(br.Rect.X * sx)
			x1 := int(br.Rect.Right() * sx)
			y0 := 1 + int(br.Rect.Y*sy)
			y1 := 1 + int(br.Rect.Bottom()*sy)
			if x1 <= x0 {
				x1 = x0 + 1
			}
			if y1 <= y0 {
				y1 = y0 + 1
			}

			glyph := '█'
			color := br.Element.Color()
			switch {
			case br.Frozen:
				glyph = '░'
				color = core.ColorBrightWhite
			case br.Cracked:
				glyph = '▓'
			case !br.Element.Elemental():
				color = NeutralBrickColor
			}
			dst.DrawRect(x0, y0, x1-x0, y1-y0, glyph, color)
		}
	}
}

func (g *Game) renderPaddle(dst *core.Screen, sx, sy float64) {
	p := g.paddle
	x0 := int(p.Rect.X * sx)
	x1 := int(p.Rect.Right() * sx)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	y := 1 + int(p.Rect.CenterY()*sy)
	dst.DrawRect(x0, y, x1-x0, 1, '=', p.Element.Color())
}

func (g *Game) renderBall(dst *core.Screen, sx, sy float64) {
	b := g.ball
	color := b.Element.Color()
	glyph := '●'
	if b.Frozen {
		glyph = '◍'
		color = core.ColorBrightCyan
	}
	dst.SetCell(int(b.Pos.X*sx), 1+int(b.Pos.Y*sy), glyph, color)
}

func (g *Game) renderOverlay(dst *core.Screen, title, hint string, c core.Color) {
	w, h := dst.Width(), dst.Height()
	bw := core.Max(len(title), len(hint)) + 6
	bh := 5
	bx := (w - bw) / 2
	by := (h - bh) / 2
	dst.DrawRect(bx, by, bw, bh, ' ', core.ColorDefault)
	dst.DrawBox(bx, by, bw, bh)
	dst.DrawTextCenteredColored(by+1, title, c)
	dst.DrawTextCentered(by+3, hint)
}

func (g *Game) renderIntro(dst *core.Screen) {
	h := dst.Height()
	y := h/2 - 8
	if y < 1 {
		y = 1
	}
	dst.DrawTextCenteredColored(y, "ELEMENTAL BREAKOUT", core.ColorBrightMagenta)
	dst.DrawTextCentered(y+2, "a/d or arrows move  |  1-5 set paddle element  |  space launches")
	dst.DrawTextCentered(y+3, "p pause  |  f forfeit  |  q quit")

	lines := []string{
		"Paddle combos:  Purple+Red Overload   Purple+LightBlue Superconduct   Blue+LightBlue Freeze",
		"Brick hits:  Green ball Swirl   Blue vs Red Vaporize   LightBlue vs Red Liquefy",
		"Purple vs Blue Surge   elemental vs Green Infuse   Red thaws frozen bricks",
	}
	for i, ln := range lines {
		dst.DrawTextCenteredColored(y+5+i, ln, core.ColorGray)
	}

	dst.DrawTextCenteredColored(y+9, "press space to start", core.ColorBrightWhite)
}
