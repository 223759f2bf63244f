package game

import (
	"math/rand"
	"time"
)

// Defaults matching the classic setup.
const (
	DefaultGridSize      = 32
	DefaultTickInterval  = 150 * time.Millisecond
	DefaultGameOverDelay = 3 * time.Second
	initialLength        = 3
)

// Config holds the simulation parameters.
type Config struct {
	GridSize      int
	GameOverDelay time.Duration
	Seed          int64 // 0 means seed from current time
}

// DefaultConfig returns the standard 32x32 setup.
func DefaultConfig() Config {
	return Config{
		GridSize:      DefaultGridSize,
		GameOverDelay: DefaultGameOverDelay,
	}
}

// Game is the snake simulation state. It is owned by a single goroutine;
// all mutation happens through Step, TickCountdown and Reset.
type Game struct {
	rng       *rand.Rand
	gridSize  int
	overDelay time.Duration

	snake     []Point // head at index 0
	direction Direction
	food      Point
	score     int

	gameOver  bool
	won       bool
	overTimer time.Duration // remaining delay before auto-reset
}

// New creates a game in the initial configuration.
func New(cfg Config) *Game {
	if cfg.GridSize <= 0 {
		cfg.GridSize = DefaultGridSize
	}
	if cfg.GameOverDelay <= 0 {
		cfg.GameOverDelay = DefaultGameOverDelay
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		rng:       rand.New(rand.NewSource(seed)),
		gridSize:  cfg.GridSize,
		overDelay: cfg.GameOverDelay,
	}
	g.Reset()
	return g
}

// Reset restores the initial configuration: three segments with the head at
// the grid center and the body extending west, heading east, fresh food.
func (g *Game) Reset() {
	mid := g.gridSize / 2
	g.snake = g.snake[:0]
	for i := 0; i < initialLength; i++ {
		g.snake = append(g.snake, Point{X: mid - i, Y: mid})
	}
	g.direction = East
	g.score = 0
	g.gameOver = false
	g.won = false
	g.overTimer = 0
	g.spawnFood()
}

// spawnFood places food uniformly at random among free cells.
// Returns false when the snake fills the whole grid.
func (g *Game) spawnFood() bool {
	free := make([]Point, 0, g.gridSize*g.gridSize-len(g.snake))
	for y := 0; y < g.gridSize; y++ {
		for x := 0; x < g.gridSize; x++ {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	g.food = free[g.rng.Intn(len(free))]
	return true
}

func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the simulation by one move. proposed is the script's
// decision for this tick; ok=false means no decision arrived and the
// current heading is kept. Step is a no-op in a terminal state.
func (g *Game) Step(proposed Direction, ok bool) {
	if g.gameOver {
		return
	}

	// A decision is adopted only if it is not a direct reversal.
	if ok && proposed != g.direction.Opposite() {
		g.direction = proposed
	}

	dx, dy := g.direction.Delta()
	head := g.snake[0]
	newHead := Point{X: head.X + dx, Y: head.Y + dy}

	// Wall collision
	if newHead.X < 0 || newHead.X >= g.gridSize || newHead.Y < 0 || newHead.Y >= g.gridSize {
		g.endGame(false)
		return
	}

	willGrow := newHead == g.food

	// Self collision. When not growing the tail vacates its cell this
	// move, so it is excluded from the check.
	checkLen := len(g.snake)
	if !willGrow {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.snake[i] == newHead {
			g.endGame(false)
			return
		}
	}

	g.snake = append([]Point{newHead}, g.snake...)

	if willGrow {
		g.score++
		if !g.spawnFood() {
			// Snake fills the entire grid.
			g.endGame(true)
		}
		return
	}

	g.snake = g.snake[:len(g.snake)-1]
}

func (g *Game) endGame(won bool) {
	g.won = won
	g.gameOver = true
	g.overTimer = g.overDelay
}

// TickCountdown burns elapsed time off the game-over delay. When it
// expires the game resets; returns true on the tick that reset happened.
func (g *Game) TickCountdown(dt time.Duration) bool {
	if !g.gameOver {
		return false
	}
	g.overTimer -= dt
	if g.overTimer <= 0 {
		g.Reset()
		return true
	}
	return false
}

// Over reports whether the game is in a terminal state.
func (g *Game) Over() bool {
	return g.gameOver
}

// GridSize returns the grid dimension.
func (g *Game) GridSize() int {
	return g.gridSize
}
