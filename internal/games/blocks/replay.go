package blocks

import (
	"sync"
	"time"
)

// Replay is the recorded stimulus log of one session. Together with the seed
// and board size it reproduces every game of the session exactly.
type Replay struct {
	ID        string
	Seed      int64
	Width     int
	Height    int
	Stimuli   []Stimulus
	Score     int // score of the last game in the session
	Lines     int
	Games     int
	CreatedAt time.Time
}

// Play rebuilds the session on a fresh engine and returns it in its final state.
// palette only affects cell colors.
func (r Replay) Play(palette Palette) *Engine {
	e := NewEngine(
		WithSize(r.Width, r.Height),
		WithSource(NewRandomSource(r.Seed, palette)),
	)
	for _, s := range r.Stimuli {
		e.Apply(s)
	}
	return e
}

// Recorder is an Observer that captures every processed stimulus.
type Recorder struct {
	mu      sync.Mutex
	replay  Replay
	started time.Time
}

// NewRecorder starts a recording for an engine built with the given seed and size.
func NewRecorder(seed int64, width, height int) *Recorder {
	return &Recorder{
		replay: Replay{
			Seed:   seed,
			Width:  width,
			Height: height,
			Games:  1,
		},
		started: time.Now(),
	}
}

// Observe appends the stimulus and updates the running totals.
func (r *Recorder) Observe(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.replay.Stimuli = append(r.replay.Stimuli, res.Stimulus)
	if res.Stimulus.Kind == StimulusReset {
		r.replay.Score = 0
		r.replay.Lines = 0
		r.replay.Games++
	}
	r.replay.Score += res.ScoreDelta
	r.replay.Lines += res.RowsCleared
}

// Len returns the number of recorded stimuli.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.replay.Stimuli)
}

// Totals returns the score and lines of the current game and the number of
// games started so far.
func (r *Recorder) Totals() (score, lines, games int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.replay.Score, r.replay.Lines, r.replay.Games
}

// Replay returns a copy of the recording so far.
func (r *Recorder) Replay() Replay {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.replay
	out.Stimuli = append([]Stimulus(nil), r.replay.Stimuli...)
	out.CreatedAt = r.started
	return out
}
