package blocks

import "github.com/vovakirdan/tui-blocks/internal/core"

// Piece is the currently falling shape. Anchor is the top-left corner of the
// shape's bounding box in playfield coordinates; Anchor.Y may be negative
// while the piece is partly above the visible top.
type Piece struct {
	Kind   Kind
	Shape  Shape
	Color  core.Color
	Anchor core.Point
}

// newPiece wraps a tetromino at the given anchor.
func newPiece(t Tetromino, anchor core.Point) Piece {
	return Piece{Kind: t.Kind, Shape: t.Shape, Color: t.Color, Anchor: anchor}
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Anchor = p.Anchor.Add(core.Point{X: dx, Y: dy})
	return p
}

// Rotated returns the piece rotated 90° clockwise around its anchor.
func (p Piece) Rotated() Piece {
	p.Shape = RotateClockwise(p.Shape)
	return p
}

// Cells lists the absolute coordinates of every occupied cell.
func (p Piece) Cells() []core.Point {
	out := make([]core.Point, 0, 4)
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if filled {
				out = append(out, p.Anchor.Add(core.Point{X: dx, Y: dy}))
			}
		}
	}
	return out
}

// aboveTop reports whether any occupied cell lies above row 0.
func (p Piece) aboveTop() bool {
	for _, c := range p.Cells() {
		if c.Y < 0 {
			return true
		}
	}
	return false
}

// ValidOn reports whether the piece may occupy its position on field.
func (p Piece) ValidOn(field *Playfield) bool {
	return IsValidPlacement(p.Shape, p.Anchor, field)
}
