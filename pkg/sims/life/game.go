package life

import (
	"context"
	"io"
	"log/slog"

	"gol-cycle/internal/core"
)

// Game runs a board until it revisits a state. The history holds one key per
// iteration and is never pruned, so memory grows with the length of the
// transient plus the cycle.
type Game struct {
	board Board
	cfg   core.Config

	count  int
	seen   map[Key]int
	done   bool
	repeat int
	out    io.Writer
	pacer  *core.Pacer
	logger *slog.Logger
}

var (
	_ core.Configurable = (*Game)(nil)
	_ core.Renderable   = (*Board)(nil)
	_ core.Renderable   = Result{}
)

// NewGame wraps a copy of board using the default configuration.
func NewGame(board Board) *Game {
	cfg := core.DefaultConfig()
	return &Game{
		board:  board.Clone(),
		cfg:    cfg,
		seen:   make(map[Key]int),
		out:    io.Discard,
		pacer:  core.NewPacer(cfg.SleepTime),
		logger: slog.New(slog.DiscardHandler),
	}
}

// Configure applies cfg to subsequent iterations.
func (g *Game) Configure(cfg core.Config) {
	g.cfg = cfg
	g.pacer.SetDelay(cfg.SleepTime)
}

// Config returns the active configuration.
func (g *Game) Config() core.Config { return g.cfg }

// SetOutput sets where drawn generations are written.
func (g *Game) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	g.out = w
}

// SetLogger sets the logger used for progress messages.
func (g *Game) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	g.logger = l
}

// Board exposes the current board.
func (g *Game) Board() *Board { return &g.board }

// Generation is the number of iterations performed so far.
func (g *Game) Generation() int { return g.count }

// HistoryLen is the number of distinct states recorded.
func (g *Game) HistoryLen() int { return len(g.seen) }

// Done reports whether a repeated state has been found.
func (g *Game) Done() bool { return g.done }

// Step performs one iteration: record the current state, optionally draw it,
// advance, then look the new state up. It returns the iteration at which the
// new state was first seen and whether it had been seen at all. After a
// repeat is found Step stops advancing and keeps reporting it.
func (g *Game) Step() (int, bool) {
	if g.done {
		return g.repeat, true
	}

	g.count++
	key := g.board.Key()
	if _, ok := g.seen[key]; !ok {
		g.seen[key] = g.count
	}

	if g.cfg.Draws {
		if err := g.board.Draw(g.out); err != nil {
			g.logger.Warn("draw failed", "iteration", g.count, "error", err)
		}
		g.pacer.Wait()
	}

	g.board.Advance()

	first, ok := g.seen[g.board.Key()]
	if !ok {
		if g.logger.Enabled(context.Background(), slog.LevelDebug) {
			g.logger.Debug("generation advanced", "iteration", g.count, "population", g.board.Population())
		}
		return 0, false
	}

	g.done = true
	g.repeat = first
	g.logger.Info("repeat detected",
		"iteration", g.count,
		"first_seen", first,
		"pattern_length", g.count-first,
		"history", len(g.seen),
	)
	return first, true
}

// Run steps until a state repeats. The result is only materialised when the
// configuration asks for it; otherwise ok is false.
func (g *Game) Run() (Result, bool) {
	for {
		if _, ok := g.Step(); ok {
			break
		}
	}
	if !g.cfg.Returns {
		return Result{}, false
	}
	return g.Result(), true
}

// Result builds the summary of a finished run. It is only meaningful once
// Done reports true.
func (g *Game) Result() Result {
	return Result{
		FinalBoard:   g.board.Clone(),
		FinalCount:   g.count,
		RepeatingKey: g.repeat,
	}
}
