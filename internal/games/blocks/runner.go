package blocks

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// ErrStopped is returned when a message is sent to a runner whose Run has returned.
var ErrStopped = errors.New("blocks: runner stopped")

// ErrAlreadyRunning is returned by a second call to Run.
var ErrAlreadyRunning = errors.New("blocks: runner already running")

// Frame is what the runner publishes after every processed message.
type Frame struct {
	Snapshot Snapshot
	Result   Result
	Paused   bool
	Gravity  bool // gravity timer is running
}

// Observer is notified of every stimulus the engine processed, in order.
// Observers run on the runner goroutine and must not block.
type Observer interface {
	Observe(res Result)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(res Result)

// Observe calls f(res).
func (f ObserverFunc) Observe(res Result) {
	f(res)
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithObserver adds an observer.
func WithObserver(o Observer) RunnerOption {
	return func(r *Runner) {
		r.observers = append(r.observers, o)
	}
}

type message struct {
	stimulus Stimulus
	pause    bool
	reply    chan Frame
}

// Runner owns an engine and serializes every stimulus against it: gravity
// ticks from its own timer and messages from any number of goroutines are
// processed one at a time, each to completion.
//
// The gravity timer runs only while a game is in progress and not paused.
// A period of zero disables the timer; ticks then arrive only through Tick.
type Runner struct {
	engine    *Engine
	period    time.Duration
	logger    *log.Logger
	observers []Observer

	mailbox chan message
	updates chan Frame
	done    chan struct{}
	started atomic.Bool

	// owned by the Run goroutine
	paused  bool
	gravity *gravity
}

// NewRunner wraps engine. The engine must not be used directly afterwards.
func NewRunner(engine *Engine, period time.Duration, opts ...RunnerOption) *Runner {
	r := &Runner{
		engine:  engine,
		period:  period,
		mailbox: make(chan message, 64),
		updates: make(chan Frame, 1),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	return r
}

// Updates delivers the latest frame. Frames are coalesced: a slow reader
// sees only the most recent one.
func (r *Runner) Updates() <-chan Frame {
	return r.updates
}

// Done is closed when Run returns.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Run processes messages until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(r.done)

	r.gravity = newGravity(r.period)
	defer r.gravity.stop()
	r.syncGravity()
	r.publish(Result{GameOver: r.engine.GameOver()})

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.gravity.C():
			r.handle(message{stimulus: Tick()})
		case msg := <-r.mailbox:
			frame := r.handle(msg)
			if msg.reply != nil {
				msg.reply <- frame
			}
		}
	}
}

// Send enqueues a stimulus and waits until it has been processed.
// Messages sent before Run starts are queued and handled once it does; bound
// the wait with ctx. After Run has returned, Send fails with ErrStopped.
func (r *Runner) Send(ctx context.Context, s Stimulus) (Frame, error) {
	return r.send(ctx, message{stimulus: s})
}

// Tick enqueues a gravity tick.
func (r *Runner) Tick(ctx context.Context) (Frame, error) {
	return r.Send(ctx, Tick())
}

// Command enqueues a player command.
func (r *Runner) Command(ctx context.Context, c Command) (Frame, error) {
	return r.Send(ctx, Move(c))
}

// Reset enqueues a reset. The returned frame shows the fresh game.
func (r *Runner) Reset(ctx context.Context) (Frame, error) {
	return r.Send(ctx, ResetGame())
}

// TogglePause suspends or resumes gravity. Commands are ignored while paused.
// A finished game cannot be paused.
func (r *Runner) TogglePause(ctx context.Context) (Frame, error) {
	return r.send(ctx, message{pause: true})
}

func (r *Runner) send(ctx context.Context, msg message) (Frame, error) {
	msg.reply = make(chan Frame, 1)
	select {
	case r.mailbox <- msg:
	case <-r.done:
		return Frame{}, ErrStopped
	case <-ctx.Done():
		return Frame{}, ctx.Err()
	}

	select {
	case f := <-msg.reply:
		return f, nil
	case <-r.done:
		return Frame{}, ErrStopped
	case <-ctx.Done():
		return Frame{}, ctx.Err()
	}
}

func (r *Runner) handle(msg message) Frame {
	if msg.pause {
		return r.togglePause()
	}

	if r.paused && msg.stimulus.Kind != StimulusReset {
		res := Result{Stimulus: msg.stimulus, GameOver: r.engine.GameOver()}
		return r.publish(res)
	}

	wasOver := r.engine.GameOver()
	res := r.engine.Apply(msg.stimulus)
	for _, o := range r.observers {
		o.Observe(res)
	}

	switch {
	case msg.stimulus.Kind == StimulusReset:
		r.paused = false
		r.logger.Info("new game")
	case res.GameOver && !wasOver:
		snap := r.engine.Snapshot()
		r.logger.Info("game over", "score", snap.Score, "lines", snap.Lines, "pieces", snap.Pieces)
	}
	if res.RowsCleared > 0 {
		r.logger.Debug("rows cleared", "rows", res.RowsCleared, "score", r.engine.Score())
	}

	r.syncGravity()
	return r.publish(res)
}

func (r *Runner) togglePause() Frame {
	if !r.engine.GameOver() {
		r.paused = !r.paused
		r.logger.Debug("pause", "paused", r.paused)
	}
	r.syncGravity()
	return r.publish(Result{GameOver: r.engine.GameOver()})
}

func (r *Runner) syncGravity() {
	r.gravity.set(!r.paused && !r.engine.GameOver())
}

// publish replaces any unread frame with the current one.
func (r *Runner) publish(res Result) Frame {
	f := Frame{
		Snapshot: r.engine.Snapshot(),
		Result:   res,
		Paused:   r.paused,
		Gravity:  r.gravity.running,
	}
	select {
	case <-r.updates:
	default:
	}
	r.updates <- f
	return f
}

// gravity wraps a ticker that can be suspended. A nil channel from C blocks
// forever in a select, which is how a stopped timer drops out of the loop.
type gravity struct {
	period  time.Duration
	ticker  *time.Ticker
	running bool
}

func newGravity(period time.Duration) *gravity {
	return &gravity{period: period}
}

func (g *gravity) C() <-chan time.Time {
	if !g.running {
		return nil
	}
	return g.ticker.C
}

func (g *gravity) set(on bool) {
	if g.period <= 0 || on == g.running {
		return
	}
	switch {
	case !on:
		g.ticker.Stop()
	case g.ticker == nil:
		g.ticker = time.NewTicker(g.period)
	default:
		g.ticker.Reset(g.period)
	}
	g.running = on
}

func (g *gravity) stop() {
	if g.ticker != nil {
		g.ticker.Stop()
	}
	g.running = false
}
