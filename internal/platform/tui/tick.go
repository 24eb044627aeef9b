// Package tui provides the Bubble Tea integration for the blocks game.
// It handles the terminal UI loop, input mapping and SSH serving. The game
// itself runs in a blocks.Runner; the model only forwards input and draws
// the frames the runner publishes.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

// FrameMsg carries a frame published by the runner.
type FrameMsg blocks.Frame

// StoppedMsg is sent when the runner has exited.
type StoppedMsg struct{}

// waitForFrame returns a command that blocks until the runner publishes the
// next frame or stops.
func waitForFrame(r *blocks.Runner) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-r.Updates():
			return FrameMsg(f)
		case <-r.Done():
			return StoppedMsg{}
		}
	}
}
