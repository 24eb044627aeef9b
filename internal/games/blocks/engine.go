package blocks

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// PointsPerRow is the score awarded for each cleared row.
// Simultaneous clears earn no bonus.
const PointsPerRow = 10

// Phase is a state of the engine's lifecycle.
//
// A stimulus always runs to completion, so callers only ever observe
// PhaseFalling or PhaseGameOver between stimuli; the other phases are
// passed through while a stimulus cascades.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseClearing
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseClearing:
		return "clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is a player move request.
type Command string

const (
	CommandLeft   Command = "left"
	CommandRight  Command = "right"
	CommandRotate Command = "rotate"
	CommandDown   Command = "down" // soft drop, same procedure as a gravity tick
)

// StimulusKind distinguishes the inputs that may change engine state.
type StimulusKind string

const (
	StimulusTick    StimulusKind = "tick"
	StimulusCommand StimulusKind = "command"
	StimulusReset   StimulusKind = "reset"
)

// Stimulus is a single input to the engine: a gravity tick, a player
// command, or a reset.
type Stimulus struct {
	Kind    StimulusKind
	Command Command
}

// Tick returns the gravity stimulus.
func Tick() Stimulus {
	return Stimulus{Kind: StimulusTick}
}

// Move returns the stimulus for a player command.
func Move(c Command) Stimulus {
	return Stimulus{Kind: StimulusCommand, Command: c}
}

// ResetGame returns the reset stimulus.
func ResetGame() Stimulus {
	return Stimulus{Kind: StimulusReset}
}

// String returns the compact name used in logs and replay journals:
// "tick", "reset", or the command name.
func (s Stimulus) String() string {
	if s.Kind == StimulusCommand {
		return string(s.Command)
	}
	return string(s.Kind)
}

// ParseStimulus is the inverse of Stimulus.String.
func ParseStimulus(name string) (Stimulus, error) {
	switch name {
	case string(StimulusTick):
		return Tick(), nil
	case string(StimulusReset):
		return ResetGame(), nil
	case string(CommandLeft), string(CommandRight), string(CommandRotate), string(CommandDown):
		return Move(Command(name)), nil
	}
	return Stimulus{}, fmt.Errorf("blocks: unknown stimulus %q", name)
}

// Result describes what a stimulus did.
type Result struct {
	Stimulus    Stimulus
	Applied     bool // state changed (moved, rotated, locked, or reset)
	Locked      bool // the active piece came to rest and was merged, or ended the game above the top
	RowsCleared int
	ScoreDelta  int
	Spawned     bool // a new active piece entered the playfield
	GameOver    bool // the engine is in game over after this stimulus
}

// Engine is the block-stacking state machine. It owns the playfield, the
// active piece and the score, and is the only code that mutates them.
//
// Engine is not safe for concurrent use; see Runner.
type Engine struct {
	width  int
	height int
	source ShapeSource
	field  *Playfield
	piece  Piece
	active bool
	phase  Phase
	score  int
	lines  int
	pieces int
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSize sets the playfield dimensions.
func WithSize(width, height int) Option {
	return func(e *Engine) {
		e.width = width
		e.height = height
	}
}

// WithSource sets where spawned pieces come from.
func WithSource(src ShapeSource) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// WithPlayfield starts the first game on a copy of field instead of an empty
// grid. The playfield dimensions follow field. Reset always empties the grid.
func WithPlayfield(field *Playfield) Option {
	return func(e *Engine) {
		e.field = field.Clone()
	}
}

// NewEngine creates an engine and performs the first spawn.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.source == nil {
		e.source = NewRandomSource(time.Now().UnixNano(), DefaultPalette())
	}
	if e.field == nil {
		e.field = NewPlayfield(e.width, e.height)
	}
	e.width, e.height = e.field.Width(), e.field.Height()

	e.phase = PhaseSpawning
	var res Result
	e.advance(&res)
	return e
}

// Apply processes one stimulus to completion, including any lock, clear and
// spawn it triggers.
func (e *Engine) Apply(s Stimulus) Result {
	res := Result{Stimulus: s}

	switch s.Kind {
	case StimulusReset:
		e.reset()
		res.Applied = true
		e.advance(&res)

	case StimulusTick:
		if e.phase == PhaseFalling {
			e.fall(&res)
		}

	case StimulusCommand:
		if e.phase != PhaseFalling {
			break
		}
		switch s.Command {
		case CommandLeft:
			e.try(e.piece.Moved(-1, 0), &res)
		case CommandRight:
			e.try(e.piece.Moved(1, 0), &res)
		case CommandRotate:
			e.try(e.piece.Rotated(), &res)
		case CommandDown:
			e.fall(&res)
		}
	}

	res.GameOver = e.phase == PhaseGameOver
	return res
}

// Tick applies one gravity step.
func (e *Engine) Tick() Result {
	return e.Apply(Tick())
}

// Command applies a player command.
func (e *Engine) Command(c Command) Result {
	return e.Apply(Move(c))
}

// Reset starts a new game on an empty playfield.
func (e *Engine) Reset() Result {
	return e.Apply(ResetGame())
}

// try replaces the active piece with candidate if it fits.
// Rejected horizontal moves and rotations leave the state untouched.
func (e *Engine) try(candidate Piece, res *Result) {
	if !candidate.ValidOn(e.field) {
		return
	}
	e.piece = candidate
	res.Applied = true
}

// fall moves the active piece down one row, or locks it when it cannot move.
func (e *Engine) fall(res *Result) {
	next := e.piece.Moved(0, 1)
	if next.ValidOn(e.field) {
		e.piece = next
		res.Applied = true
		return
	}
	e.phase = PhaseLocking
	e.advance(res)
}

// advance runs the transient phases until the engine settles in Falling or GameOver.
func (e *Engine) advance(res *Result) {
	for {
		switch e.phase {
		case PhaseLocking:
			e.lock(res)
		case PhaseClearing:
			e.clear(res)
		case PhaseSpawning:
			e.spawn(res)
		default:
			return
		}
	}
}

// lock settles the active piece. A piece resting with cells above the top
// row cannot be merged and ends the game.
func (e *Engine) lock(res *Result) {
	e.active = false
	e.pieces++
	res.Locked = true
	res.Applied = true
	if e.piece.aboveTop() {
		e.phase = PhaseGameOver
		return
	}
	e.field.Merge(e.piece.Shape, e.piece.Anchor, e.piece.Color)
	e.phase = PhaseClearing
}

func (e *Engine) clear(res *Result) {
	n := e.field.ClearFullRows()
	e.lines += n
	e.score += n * PointsPerRow
	res.RowsCleared += n
	res.ScoreDelta += n * PointsPerRow
	e.phase = PhaseSpawning
}

func (e *Engine) spawn(res *Result) {
	t := e.source.Next()
	p := newPiece(t, SpawnAnchor(t.Shape, e.width))
	if !p.ValidOn(e.field) {
		e.active = false
		e.phase = PhaseGameOver
		return
	}
	e.piece = p
	e.active = true
	res.Spawned = true
	e.phase = PhaseFalling
}

func (e *Engine) reset() {
	e.field = NewPlayfield(e.width, e.height)
	e.active = false
	e.score = 0
	e.lines = 0
	e.pieces = 0
	e.phase = PhaseSpawning
}

// SpawnAnchor returns where a new piece enters a playfield of the given width:
// horizontally centered, with its topmost occupied row at y=0.
func SpawnAnchor(shape Shape, width int) core.Point {
	return core.Point{
		X: (width - shape.Cols()) / 2,
		Y: -shape.leadingEmptyRows(),
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// GameOver reports whether the board could not admit a new piece.
func (e *Engine) GameOver() bool {
	return e.phase == PhaseGameOver
}

// ActivePiece returns the falling piece, if any.
func (e *Engine) ActivePiece() (Piece, bool) {
	return e.piece, e.active
}

// Width returns the playfield width.
func (e *Engine) Width() int {
	return e.width
}

// Height returns the playfield height.
func (e *Engine) Height() int {
	return e.height
}
