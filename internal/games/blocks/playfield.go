package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Default playfield dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Cell is one square of the playfield: empty, or occupied with a color.
type Cell struct {
	Occupied bool
	Color    core.Color
}

// Playfield is the grid of settled cells, indexed [row][col].
// Cells become occupied only through Merge and are emptied only by ClearFullRows.
type Playfield struct {
	width  int
	height int
	rows   [][]Cell
}

// NewPlayfield creates an empty playfield.
func NewPlayfield(width, height int) *Playfield {
	p := &Playfield{width: width, height: height}
	p.rows = make([][]Cell, height)
	for y := range p.rows {
		p.rows[y] = make([]Cell, width)
	}
	return p
}

// Width returns the number of columns.
func (p *Playfield) Width() int {
	return p.width
}

// Height returns the number of rows.
func (p *Playfield) Height() int {
	return p.height
}

// InBounds reports whether (x, y) lies inside the grid.
func (p *Playfield) InBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// IsOccupied returns true iff (x, y) is in bounds and occupied.
func (p *Playfield) IsOccupied(x, y int) bool {
	return p.InBounds(x, y) && p.rows[y][x].Occupied
}

// At returns the cell at (x, y), or an empty cell when out of bounds.
func (p *Playfield) At(x, y int) Cell {
	if !p.InBounds(x, y) {
		return Cell{}
	}
	return p.rows[y][x]
}

// Merge marks every occupied cell of shape, offset by anchor, with color.
// The placement must already be validated: merging outside the grid or onto
// an occupied cell is a programming error and panics.
func (p *Playfield) Merge(shape Shape, anchor core.Point, color core.Color) {
	for dy, row := range shape {
		for dx, filled := range row {
			if !filled {
				continue
			}
			x, y := anchor.X+dx, anchor.Y+dy
			if !p.InBounds(x, y) {
				panic(fmt.Sprintf("blocks: merge out of bounds at (%d, %d)", x, y))
			}
			if p.rows[y][x].Occupied {
				panic(fmt.Sprintf("blocks: merge onto occupied cell (%d, %d)", x, y))
			}
			p.rows[y][x] = Cell{Occupied: true, Color: color}
		}
	}
}

// ClearFullRows removes every row with no empty cell, shifts the rows above
// down and inserts the same number of empty rows at the top.
// Returns the number of rows removed.
func (p *Playfield) ClearFullRows() int {
	kept := make([][]Cell, 0, p.height)
	for _, row := range p.rows {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := p.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]Cell, 0, p.height)
	for range cleared {
		rows = append(rows, make([]Cell, p.width))
	}
	p.rows = append(rows, kept...)
	return cleared
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Occupied {
			return false
		}
	}
	return true
}

// OccupiedCount returns the number of occupied cells.
func (p *Playfield) OccupiedCount() int {
	n := 0
	for _, row := range p.rows {
		for _, c := range row {
			if c.Occupied {
				n++
			}
		}
	}
	return n
}

// Cells returns a deep copy of the grid.
func (p *Playfield) Cells() [][]Cell {
	out := make([][]Cell, p.height)
	for y, row := range p.rows {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// Clone returns an independent copy of the playfield.
func (p *Playfield) Clone() *Playfield {
	return &Playfield{width: p.width, height: p.height, rows: p.Cells()}
}
