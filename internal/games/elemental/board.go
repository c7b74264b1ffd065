package elemental

import (
	"github.com/arcadelab/elemental/internal/config"
	"github.com/arcadelab/elemental/internal/core"
)

// Board is the brick grid. Cells is row-major; a nil cell is a permanent
// gap left by generation. Destroyed bricks stay in place with Active=false
// so grid coordinates remain stable for scheduled events.
type Board struct {
	Rows, Cols int
	Cells      [][]*Brick

	brickW, brickH float64
	spacing        float64
	topOffset      float64
}

// NewBoard creates an empty board with the given grid geometry. Bricks are
// added with Place; Generate fills a board procedurally.
func NewBoard(cfg config.ElementalBoard, fieldW float64) *Board {
	b := &Board{
		Rows:      cfg.Rows,
		Cols:      cfg.Cols,
		spacing:   cfg.Spacing,
		brickH:    cfg.BrickHeight,
		topOffset: cfg.TopOffset,
	}
	b.brickW = (fieldW - float64(cfg.Cols+1)*cfg.Spacing) / float64(cfg.Cols)
	b.Cells = make([][]*Brick, cfg.Rows)
	for r := range b.Cells {
		b.Cells[r] = make([]*Brick, cfg.Cols)
	}
	return b
}

// Place adds an active brick at the cell and returns it.
func (b *Board) Place(row, col int, elem Element, hp int) *Brick {
	br := &Brick{
		Row:       row,
		Col:       col,
		Rect:      b.CellRect(row, col),
		Active:    true,
		Element:   elem,
		HitPoints: hp,
	}
	b.Cells[row][col] = br
	return br
}

// CellRect returns the world rectangle of a grid cell.
func (b *Board) CellRect(row, col int) core.Rect {
	return core.Rect{
		X: b.spacing + float64(col)*(b.brickW+b.spacing),
		Y: b.topOffset + float64(row)*(b.brickH+b.spacing),
		W: b.brickW,
		H: b.brickH,
	}
}

// At returns the brick at the cell, or nil for gaps and out-of-range
// coordinates.
func (b *Board) At(row, col int) *Brick {
	if row < 0 || row >= b.Rows || col < 0 || col >= b.Cols {
		return nil
	}
	return b.Cells[row][col]
}

// ActiveCount returns the number of bricks still standing.
func (b *Board) ActiveCount() int {
	n := 0
	for _, row := range b.Cells {
		for _, br := range row {
			if br != nil && br.Active {
				n++
			}
		}
	}
	return n
}

// Generate fills a board with element chunks. Each row is carved into runs
// of 3 to 6 cells sharing one element; a run may come out neutral instead,
// and individual cells may be skipped entirely, leaving gaps.
func Generate(cfg config.ElementalBoard, fieldW float64, rng *SimpleRNG) *Board {
	b := NewBoard(cfg, fieldW)
	for row := 0; row < cfg.Rows; row++ {
		col := 0
		for col < cfg.Cols {
			chunk := rng.IntRange(cfg.ChunkMin, cfg.ChunkMax)
			elem := Element(rng.IntRange(0, ElementCount-1))
			if rng.Chance(cfg.NeutralChance) {
				elem = ElementNeutral
			}
			for i := 0; i < chunk && col < cfg.Cols; i++ {
				if rng.Chance(cfg.GapChance) {
					col++
					continue
				}
				b.Place(row, col, elem, cfg.HitPoints)
				col++
			}
		}
	}
	return b
}

// floodFill walks the 4-connected region starting at the cell, admitting
// bricks for which admit returns true and applying apply to each admitted
// brick. Returns the number of bricks mutated. The start cell must itself
// pass admit or nothing happens.
func (b *Board) floodFill(startRow, startCol int, admit func(*Brick) bool, apply func(*Brick)) int {
	start := b.At(startRow, startCol)
	if start == nil || !admit(start) {
		return 0
	}
	visited := make([][]bool, b.Rows)
	for r := range visited {
		visited[r] = make([]bool, b.Cols)
	}
	type cell struct{ row, col int }
	queue := []cell{{startRow, startCol}}
	visited[startRow][startCol] = true
	count := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		br := b.At(c.row, c.col)
		if br == nil || !admit(br) {
			continue
		}
		apply(br)
		count++
		for _, d := range [4]cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := c.row+d.row, c.col+d.col
			if nr < 0 || nr >= b.Rows || nc < 0 || nc >= b.Cols || visited[nr][nc] {
				continue
			}
			visited[nr][nc] = true
			queue = append(queue, cell{nr, nc})
		}
	}
	return count
}

// FreezeConnected converts the connected group of active bricks matching
// the start brick's element into frozen bricks: neutral, uncracked, one
// hit from breaking. Returns the number of bricks frozen.
func (b *Board) FreezeConnected(row, col int) int {
	start := b.At(row, col)
	if start == nil || !start.Active || !start.Element.Elemental() {
		return 0
	}
	target := start.Element
	return b.floodFill(row, col,
		func(br *Brick) bool { return br.Active && br.Element == target },
		func(br *Brick) {
			br.Element = ElementNeutral
			br.HitPoints = 1
			br.Cracked = false
			br.Frozen = true
		})
}

// ShatterConnected destroys the connected group of active frozen bricks,
// the start brick included. Returns the number destroyed.
func (b *Board) ShatterConnected(row, col int) int {
	return b.floodFill(row, col,
		func(br *Brick) bool { return br.Active && br.Frozen },
		func(br *Brick) { br.Active = false })
}

// InfuseConnected converts the connected group of active green bricks to
// the given element without damaging them. Returns the number converted.
func (b *Board) InfuseConnected(row, col int, elem Element) int {
	return b.floodFill(row, col,
		func(br *Brick) bool { return br.Active && br.Element == ElementGreen },
		func(br *Brick) { br.Element = elem })
}
