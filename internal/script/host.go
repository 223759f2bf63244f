// Package script hosts the embedded Lua interpreter that drives the snake.
// Scripts are untrusted: every failure class (bad syntax, missing entry
// point, runtime error, bogus return value) is contained at this boundary
// and degrades to "no decision this tick".
package script

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/snakescript/snakescript/internal/game"
)

// DefaultThinkTimeout bounds a single think() call. The interpreter has no
// instruction budget of its own, so without a deadline a pathological loop
// would stall the simulation thread forever.
const DefaultThinkTimeout = 50 * time.Millisecond

// State is the value-level protocol handed to think(). The snake list is
// marshaled 1-indexed, head first, as {x, y} tables.
type State struct {
	Snake    []game.Point
	Food     game.Point
	Dir      game.Direction
	GridSize int
	Score    int
}

// Options configures a Host.
type Options struct {
	Logger *log.Logger
	// ThinkTimeout is the per-call execution budget. Zero means the
	// package default; negative disables the bound entirely.
	ThinkTimeout time.Duration
}

// Host owns exactly one Lua state. It must only ever be touched from the
// simulation goroutine; an LState is not safe to share across goroutines.
type Host struct {
	l       *lua.LState
	loaded  bool
	errs    *ErrorSurface
	logger  *log.Logger
	timeout time.Duration
}

// New creates a host with no script loaded.
func New(opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	timeout := opts.ThinkTimeout
	if timeout == 0 {
		timeout = DefaultThinkTimeout
	} else if timeout < 0 {
		timeout = 0
	}
	return &Host{
		errs:    &ErrorSurface{},
		logger:  logger,
		timeout: timeout,
	}
}

// Errors exposes the error surface for external polling.
func (h *Host) Errors() *ErrorSurface {
	return h.errs
}

// Loaded reports whether a callable script is in place.
func (h *Host) Loaded() bool {
	return h.loaded
}

// Load replaces the interpreter with a fresh one and executes source in it.
// Returns false, with the failure published, if the source does not run or
// does not define a think function. A successful load clears any previous
// error.
func (h *Host) Load(source string) bool {
	if h.l != nil {
		h.l.Close()
	}
	h.l = lua.NewState()
	h.loaded = false

	if err := h.l.DoString(source); err != nil {
		h.fail(fmt.Sprintf("Syntax error: %v", err))
		return false
	}
	if _, ok := h.l.GetGlobal("think").(*lua.LFunction); !ok {
		h.fail("Script must define a `think(state)` function")
		return false
	}

	h.errs.Clear()
	h.loaded = true
	return true
}

// Close releases the interpreter.
func (h *Host) Close() {
	if h.l != nil {
		h.l.Close()
		h.l = nil
	}
	h.loaded = false
}

// Think invokes the script's entry point once with the marshaled state and
// decodes its answer. ok=false means no usable decision: either no script
// is loaded, or the call failed and the failure was published. A
// successful call leaves any unread error untouched.
func (h *Host) Think(state State) (game.Direction, bool) {
	if !h.loaded {
		return 0, false
	}

	fn := h.l.GetGlobal("think")

	if h.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		h.l.SetContext(ctx)
		defer func() {
			cancel()
			h.l.RemoveContext()
		}()
	}

	err := h.l.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, h.marshalState(state))
	if err != nil {
		h.fail(fmt.Sprintf("Runtime error in think(): %v", err))
		return 0, false
	}

	ret := h.l.Get(-1)
	h.l.Pop(1)

	str, isString := ret.(lua.LString)
	if isString {
		if dir, ok := game.ParseDirection(string(str)); ok {
			return dir, true
		}
	}
	h.fail(fmt.Sprintf("think() returned '%s', expected 'north', 'south', 'east', or 'west'", ret.String()))
	return 0, false
}

// marshalState builds the Lua table handed to think().
func (h *Host) marshalState(state State) *lua.LTable {
	tbl := h.l.NewTable()

	snake := h.l.NewTable()
	for i, seg := range state.Snake {
		cell := h.l.NewTable()
		cell.RawSetString("x", lua.LNumber(seg.X))
		cell.RawSetString("y", lua.LNumber(seg.Y))
		snake.RawSetInt(i+1, cell)
	}
	tbl.RawSetString("snake", snake)

	food := h.l.NewTable()
	food.RawSetString("x", lua.LNumber(state.Food.X))
	food.RawSetString("y", lua.LNumber(state.Food.Y))
	tbl.RawSetString("food", food)

	tbl.RawSetString("direction", lua.LString(state.Dir.String()))
	tbl.RawSetString("grid_size", lua.LNumber(state.GridSize))
	tbl.RawSetString("score", lua.LNumber(state.Score))
	return tbl
}

func (h *Host) fail(msg string) {
	h.logger.Warn("script failure", "error", msg)
	h.errs.Publish(msg)
}

// CheckSource compiles source without executing it, for validating agent
// code before it is stored.
func CheckSource(source string) error {
	l := lua.NewState()
	defer l.Close()
	if _, err := l.LoadString(source); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}
