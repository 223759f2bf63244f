// Package engine drives the simulation: a fixed-interval scheduler that
// drains inbound commands, asks the script host for a decision, and steps
// the game. The engine, game, and host belong to one goroutine; external
// callers interact only through the mailbox, the error surface, and
// snapshots.
package engine

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/snakescript/snakescript/internal/game"
	"github.com/snakescript/snakescript/internal/script"
)

// Engine owns the tick loop state.
type Engine struct {
	game   *game.Game
	host   *script.Host
	box    Mailbox
	logger *log.Logger

	interval time.Duration
	last     time.Time // zero until the first tick
}

// Options configures an Engine.
type Options struct {
	Game         *game.Game
	Host         *script.Host
	TickInterval time.Duration
	Logger       *log.Logger
}

// New creates an engine around an existing game and host.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	interval := opts.TickInterval
	if interval <= 0 {
		interval = game.DefaultTickInterval
	}
	return &Engine{
		game:     opts.Game,
		host:     opts.Host,
		logger:   logger,
		interval: interval,
	}
}

// Interval returns the tick interval the scheduler expects to be driven at.
func (e *Engine) Interval() time.Duration {
	return e.interval
}

// SubmitScript queues new script source; it is loaded at the start of the
// next tick. Safe to call from another goroutine.
func (e *Engine) SubmitScript(source string) {
	e.box.SubmitScript(source)
}

// RequestReset queues a reset; it aborts the next tick, including any
// in-flight game-over countdown. Safe to call from another goroutine.
func (e *Engine) RequestReset() {
	e.box.RequestReset()
}

// TakeLastScriptError reads and clears the most recent script failure.
// Safe to call from another goroutine.
func (e *Engine) TakeLastScriptError() (string, bool) {
	return e.host.Errors().Take()
}

// Snapshot returns a copy of the game state for rendering.
func (e *Engine) Snapshot() game.Snapshot {
	return e.game.Snapshot()
}

// Tick runs one scheduler interval. Must be called from the goroutine that
// owns the engine, at (roughly) Interval cadence; the game-over countdown
// uses the wall-clock gap between calls.
func (e *Engine) Tick(now time.Time) {
	var dt time.Duration
	if !e.last.IsZero() {
		dt = now.Sub(e.last)
	}
	e.last = now

	if source, ok := e.box.TakeScript(); ok {
		if e.host.Load(source) {
			e.logger.Info("script loaded")
		}
	}
	if e.box.TakeReset() {
		e.logger.Info("reset requested")
		e.game.Reset()
		return
	}

	if e.game.Over() {
		if e.game.TickCountdown(dt) {
			e.logger.Debug("countdown expired, game reset")
		}
		return
	}

	snap := e.game.Snapshot()
	dir, ok := e.host.Think(script.State{
		Snake:    snap.Body,
		Food:     snap.Food,
		Dir:      snap.Dir,
		GridSize: snap.GridSize,
		Score:    snap.Score,
	})
	e.game.Step(dir, ok)
}
