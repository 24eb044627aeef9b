package blocks

import "github.com/vovakirdan/tui-blocks/internal/core"

// Snapshot is an immutable view of the engine, safe to hand to another
// goroutine. Cells holds the settled playfield with the active piece overlaid.
type Snapshot struct {
	Width     int
	Height    int
	Cells     [][]Cell
	Active    []core.Point // absolute active cells, including any above the top
	HasActive bool
	Kind      Kind
	Score     int
	Lines     int
	Pieces    int
	Phase     Phase
	GameOver  bool
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Width:     e.width,
		Height:    e.height,
		Cells:     e.field.Cells(),
		HasActive: e.active,
		Score:     e.score,
		Lines:     e.lines,
		Pieces:    e.pieces,
		Phase:     e.phase,
		GameOver:  e.phase == PhaseGameOver,
	}
	if e.active {
		s.Kind = e.piece.Kind
		s.Active = e.piece.Cells()
		for _, p := range s.Active {
			if p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height {
				s.Cells[p.Y][p.X] = Cell{Occupied: true, Color: e.piece.Color}
			}
		}
	}
	return s
}

// At returns the cell at (x, y) with the active piece overlaid.
func (s Snapshot) At(x, y int) Cell {
	if !core.NewRect(0, 0, s.Width, s.Height).Contains(x, y) {
		return Cell{}
	}
	return s.Cells[y][x]
}

// IsActive reports whether (x, y) is covered by the falling piece.
func (s Snapshot) IsActive(x, y int) bool {
	for _, p := range s.Active {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}
