package blocks

import "github.com/vovakirdan/tui-blocks/internal/core"

// IsValidPlacement reports whether shape may sit at anchor on field.
// Every occupied cell must lie within [0, W) horizontally and above the floor
// (y < H). Cells above the visible top (y < 0) are only checked horizontally;
// all others must land on empty playfield cells.
func IsValidPlacement(shape Shape, anchor core.Point, field *Playfield) bool {
	for dy, row := range shape {
		for dx, filled := range row {
			if !filled {
				continue
			}
			x, y := anchor.X+dx, anchor.Y+dy
			if x < 0 || x >= field.Width() || y >= field.Height() {
				return false
			}
			if y >= 0 && field.IsOccupied(x, y) {
				return false
			}
		}
	}
	return true
}

// RotateClockwise returns shape turned 90° clockwise: the cell at new
// position (r, c) is the old cell at (rows-1-c, r). The input is not modified.
func RotateClockwise(shape Shape) Shape {
	rows, cols := shape.Rows(), shape.Cols()
	out := make(Shape, cols)
	for r := range cols {
		out[r] = make([]bool, rows)
		for c := range rows {
			out[r][c] = shape[rows-1-c][r]
		}
	}
	return out
}
