package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

// ReplaySaver persists recorded sessions.
type ReplaySaver interface {
	SaveReplay(r blocks.Replay) (string, error)
}

// GameOptions configures a single-player game session.
type GameOptions struct {
	Config     config.BlocksConfig
	Seed       int64 // 0 means time based
	Logger     *log.Logger
	Observers  []blocks.Observer
	OnGameOver func(score int) // called on the runner goroutine
}

// Game is one player's session: an engine running in its own runner, with
// every stimulus recorded for the replay journal.
type Game struct {
	Runner   *blocks.Runner
	Recorder *blocks.Recorder
	Seed     int64

	logger *log.Logger
	errCh  chan error
}

// NewGame builds the engine and runner for a session. The runner is not
// started; see Start.
func NewGame(opts GameOptions) (*Game, error) {
	palette, err := opts.Config.PiecePalette()
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := opts.Config.Board.Width, opts.Config.Board.Height
	engine := blocks.NewEngine(
		blocks.WithSize(w, h),
		blocks.WithSource(blocks.NewRandomSource(seed, palette)),
	)
	rec := blocks.NewRecorder(seed, w, h)

	runnerOpts := []blocks.RunnerOption{
		blocks.WithLogger(logger),
		blocks.WithObserver(rec),
	}
	for _, o := range opts.Observers {
		runnerOpts = append(runnerOpts, blocks.WithObserver(o))
	}
	if opts.OnGameOver != nil {
		runnerOpts = append(runnerOpts, blocks.WithObserver(blocks.ObserverFunc(func(res blocks.Result) {
			if res.Locked && res.GameOver {
				score, _, _ := rec.Totals()
				opts.OnGameOver(score)
			}
		})))
	}

	return &Game{
		Runner:   blocks.NewRunner(engine, opts.Config.Gravity.Period(), runnerOpts...),
		Recorder: rec,
		Seed:     seed,
		logger:   logger,
		errCh:    make(chan error, 1),
	}, nil
}

// Start runs the runner until ctx is cancelled.
func (g *Game) Start(ctx context.Context) {
	go func() {
		g.errCh <- g.Runner.Run(ctx)
	}()
}

// Wait blocks until the runner started by Start exits.
func (g *Game) Wait() error {
	return <-g.errCh
}

// Save stores the recording if anything was played.
// Storage failures are logged and never stop the caller.
func (g *Game) Save(saver ReplaySaver) string {
	if saver == nil || g.Recorder.Len() == 0 {
		return ""
	}
	r := g.Recorder.Replay()
	id, err := saver.SaveReplay(r)
	if err != nil {
		g.logger.Warn("could not save replay", "error", err)
		return ""
	}
	g.logger.Info("replay saved", "id", id, "score", r.Score, "stimuli", len(r.Stimuli))
	return id
}
