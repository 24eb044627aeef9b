package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

const (
	cellWidth = 2  // terminal columns per playfield cell
	hudWidth  = 14 // columns reserved right of the board
	hudGap    = 2
)

// MinScreenSize returns the smallest screen that fits a board of the given size.
func MinScreenSize(width, height int) (w, h int) {
	return width*cellWidth + 2 + hudGap + hudWidth, height + 2
}

// Render draws frame into dst: the bordered board, the HUD and any overlay.
func Render(dst *core.Screen, f Frame) {
	dst.Clear()
	s := f.Snapshot

	minW, minH := MinScreenSize(s.Width, s.Height)
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst)
		return
	}

	boardW := s.Width*cellWidth + 2
	boardH := s.Height + 2
	total := boardW + hudGap + hudWidth
	area := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(total, boardH)
	board := core.NewRect(area.X, area.Y, boardW, boardH)

	borderColor := core.ColorWhite
	if s.GameOver {
		borderColor = core.ColorRed
	}
	dst.DrawBox(board, borderColor)
	renderCells(dst, board.X+1, board.Y+1, s)
	renderHUD(dst, board.Right()+hudGap, board.Y, f)
	renderOverlay(dst, board, f)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func renderCells(dst *core.Screen, ox, oy int, s Snapshot) {
	for y := range s.Height {
		for x := range s.Width {
			px := ox + x*cellWidth
			c := s.At(x, y)
			if !c.Occupied {
				dst.Set(px, oy+y, ' ')
				dst.SetCell(px+1, oy+y, '·', core.ColorGray)
				continue
			}
			glyph := '█'
			if s.IsActive(x, y) {
				glyph = '▓'
			}
			dst.SetCell(px, oy+y, glyph, c.Color)
			dst.SetCell(px+1, oy+y, glyph, c.Color)
		}
	}
}

func renderHUD(dst *core.Screen, x, y int, f Frame) {
	s := f.Snapshot
	dst.DrawColorText(x, y, "BLOCKS", core.ColorCyan)
	dst.DrawText(x, y+2, "Score")
	dst.DrawColorText(x, y+3, fmt.Sprintf("%d", s.Score), core.ColorYellow)
	dst.DrawText(x, y+5, "Lines")
	dst.DrawColorText(x, y+6, fmt.Sprintf("%d", s.Lines), core.ColorYellow)
	dst.DrawText(x, y+8, "Pieces")
	dst.DrawColorText(x, y+9, fmt.Sprintf("%d", s.Pieces), core.ColorYellow)

	status, color := "playing", core.ColorGreen
	switch {
	case s.GameOver:
		status, color = "game over", core.ColorRed
	case f.Paused:
		status, color = "paused", core.ColorGray
	}
	dst.DrawColorText(x, y+11, status, color)
}

func renderOverlay(dst *core.Screen, board core.Rect, f Frame) {
	var lines []string
	switch {
	case f.Snapshot.GameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score: %d", f.Snapshot.Score), "R to restart"}
	case f.Paused:
		lines = []string{"PAUSED", "P to resume"}
	default:
		return
	}

	for i, line := range lines {
		r := board.Centered(len([]rune(line)), len(lines))
		dst.DrawColorText(r.X, r.Y+i, line, core.ColorWhite)
	}
}
