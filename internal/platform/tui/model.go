package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

// Model is the Bubble Tea model for one game session. It forwards input to
// the runner and draws the frames the runner publishes; it never touches the
// engine directly.
type Model struct {
	ctx           context.Context
	game          *Game
	screen        *core.Screen
	keys          KeyMap
	help          help.Model
	width         int
	height        int
	frame         blocks.Frame
	ready         bool
	quitting      bool
	screenshotDir string
}

// NewModel creates a model bound to a started game.
func NewModel(ctx context.Context, game *Game, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		ctx:           ctx,
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:          DefaultKeyMap(),
		help:          h,
		width:         cfg.ScreenW,
		height:        cfg.ScreenH,
		screenshotDir: filepath.Join(os.Getenv("HOME"), ".blocks", "screenshots"),
	}
}

// Init starts listening for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.game.Runner)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.frame = blocks.Frame(msg)
		m.ready = true
		return m, waitForFrame(m.game.Runner)

	case StoppedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	r := m.game.Runner
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.apply(r.Command(m.ctx, blocks.CommandLeft))
	case core.ActionRight:
		m.apply(r.Command(m.ctx, blocks.CommandRight))
	case core.ActionRotate:
		m.apply(r.Command(m.ctx, blocks.CommandRotate))
	case core.ActionDown:
		m.apply(r.Command(m.ctx, blocks.CommandDown))
	case core.ActionPause:
		m.apply(r.TogglePause(m.ctx))
	case core.ActionRestart:
		m.apply(r.Reset(m.ctx))
	}
	return m, nil
}

// apply shows the frame returned by the runner right away instead of
// waiting for the update channel.
func (m *Model) apply(f blocks.Frame, err error) {
	if err != nil {
		return
	}
	m.frame = f
	m.ready = true
}

// Frame returns the last frame the model received.
func (m Model) Frame() blocks.Frame {
	return m.frame
}

// saveScreenshot saves the current board to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("blocks_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// draw renders the current frame into the screen buffer, leaving room for
// the help footer.
func (m *Model) draw() string {
	footer := m.help.View(m.keys)
	m.screen.Resize(m.width, m.height-lipgloss.Height(footer))
	blocks.Render(m.screen, m.frame)
	return footer
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting..."
	}

	footer := m.draw()
	return RenderScreen(m.screen) + "\n" + footer
}

// Run plays game in the local terminal until the player quits or ctx is
// cancelled. The runner is started and stopped here.
func Run(ctx context.Context, game *Game, cfg core.RuntimeConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	game.Start(ctx)

	p := tea.NewProgram(
		NewModel(ctx, game, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	cancel()
	runErr := game.Wait()

	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return runErr
}
