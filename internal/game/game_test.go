package game

import (
	"testing"
	"time"
)

func newTestGame(seed int64) *Game {
	return New(Config{GridSize: 32, GameOverDelay: 3 * time.Second, Seed: seed})
}

func TestInitialConfiguration(t *testing.T) {
	g := newTestGame(12345)

	if len(g.snake) != 3 {
		t.Fatalf("initial snake length = %d, want 3", len(g.snake))
	}
	mid := g.gridSize / 2
	if g.snake[0] != (Point{X: mid, Y: mid}) {
		t.Errorf("head = %v, want grid center (%d,%d)", g.snake[0], mid, mid)
	}
	if g.snake[1] != (Point{X: mid - 1, Y: mid}) || g.snake[2] != (Point{X: mid - 2, Y: mid}) {
		t.Errorf("body should extend west from the head, got %v", g.snake)
	}
	if g.direction != East {
		t.Errorf("initial direction = %v, want East", g.direction)
	}
	if g.gameOver || g.won {
		t.Error("fresh game should not be terminal")
	}
	if g.score != 0 {
		t.Errorf("initial score = %d, want 0", g.score)
	}
	if g.isSnakeAt(g.food) {
		t.Errorf("food %v spawned inside the snake", g.food)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(999)
	g2 := newTestGame(999)

	for i := 0; i < 200; i++ {
		// Steer south every 7th move so the snake eats occasionally.
		if i%7 == 0 {
			g1.Step(South, true)
			g2.Step(South, true)
		} else {
			g1.Step(East, i%3 == 0)
			g2.Step(East, i%3 == 0)
		}
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Score != s2.Score || s1.Dir != s2.Dir || s1.Food != s2.Food {
		t.Errorf("same-seed games diverged: %+v vs %+v", s1, s2)
	}
	if len(s1.Body) != len(s2.Body) || s1.Body[0] != s2.Body[0] {
		t.Errorf("body mismatch: %v vs %v", s1.Body, s2.Body)
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	g := newTestGame(42)

	for i := 0; i < 50; i++ {
		g.spawnFood()
		if g.food.X < 0 || g.food.X >= g.gridSize || g.food.Y < 0 || g.food.Y >= g.gridSize {
			t.Fatalf("food out of bounds at %v", g.food)
		}
		if g.isSnakeAt(g.food) {
			t.Fatalf("food spawned on snake at %v", g.food)
		}
	}
}

func TestReversalRejected(t *testing.T) {
	g := newTestGame(7)
	g.snake = []Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	g.direction = East
	g.food = Point{X: 20, Y: 20}

	// Proposing the exact opposite is ignored; the step proceeds east.
	g.Step(West, true)

	if g.direction != East {
		t.Errorf("direction = %v after rejected reversal, want East", g.direction)
	}
	if g.snake[0] != (Point{X: 6, Y: 5}) {
		t.Errorf("head = %v, want (6,5)", g.snake[0])
	}
}

func TestNoDecisionKeepsHeading(t *testing.T) {
	g := newTestGame(7)
	g.snake = []Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	g.direction = North
	g.food = Point{X: 20, Y: 20}

	g.Step(0, false)

	if g.direction != North {
		t.Errorf("direction = %v without decision, want North", g.direction)
	}
	if g.snake[0] != (Point{X: 5, Y: 6}) {
		t.Errorf("head = %v, want (5,6)", g.snake[0])
	}
}

func TestWallCollision(t *testing.T) {
	g := newTestGame(7)
	g.snake = []Point{{X: 31, Y: 10}, {X: 30, Y: 10}, {X: 29, Y: 10}}
	g.direction = East
	g.food = Point{X: 0, Y: 0}

	g.Step(East, true)

	if !g.gameOver {
		t.Fatal("moving past the east wall should end the game")
	}
	if g.won {
		t.Error("wall collision must not count as a win")
	}
	if g.overTimer != g.overDelay {
		t.Errorf("countdown = %v, want %v", g.overTimer, g.overDelay)
	}
	if g.snake[0] != (Point{X: 31, Y: 10}) {
		t.Error("terminal state must freeze the body")
	}
}

func TestTailCellIsLegalWhenNotGrowing(t *testing.T) {
	g := newTestGame(7)
	// A 2x2 loop: moving onto the tail is fine because it vacates.
	g.snake = []Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	g.direction = North
	g.food = Point{X: 20, Y: 20}

	g.Step(North, true)

	if g.gameOver {
		t.Fatal("stepping onto the vacating tail should be legal")
	}
	if g.snake[0] != (Point{X: 5, Y: 6}) {
		t.Errorf("head = %v, want (5,6)", g.snake[0])
	}
	if len(g.snake) != 4 {
		t.Errorf("length changed to %d on a non-growth move", len(g.snake))
	}
}

func TestTailCellCollidesWhenGrowing(t *testing.T) {
	g := newTestGame(7)
	g.snake = []Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	g.direction = North
	// Food on the tail cell: growth applies the full-body check.
	g.food = Point{X: 5, Y: 6}

	g.Step(North, true)

	if !g.gameOver {
		t.Fatal("growing onto the tail cell must be a collision")
	}
}

func TestGrowth(t *testing.T) {
	g := newTestGame(7)
	g.snake = []Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	g.direction = East
	g.food = Point{X: 6, Y: 5}

	g.Step(East, true)

	if g.score != 1 {
		t.Errorf("score = %d after eating, want 1", g.score)
	}
	if len(g.snake) != 4 {
		t.Errorf("length = %d after eating, want 4", len(g.snake))
	}
	if g.snake[len(g.snake)-1] != (Point{X: 3, Y: 5}) {
		t.Error("tail must be kept on a growth move")
	}
	if g.isSnakeAt(g.food) {
		t.Errorf("replacement food %v landed on the snake", g.food)
	}
}

func TestWinWhenGridFull(t *testing.T) {
	g := New(Config{GridSize: 2, GameOverDelay: time.Second, Seed: 1})
	// Hand-build a 2x2 board with one free cell holding the food.
	g.snake = []Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	g.direction = East
	g.food = Point{X: 1, Y: 0}

	g.Step(East, true)

	if !g.won {
		t.Error("filling the grid should set won")
	}
	if !g.gameOver {
		t.Error("filling the grid should be terminal")
	}
	if g.score != 1 {
		t.Errorf("score = %d, want 1", g.score)
	}
}

func TestCountdownResets(t *testing.T) {
	g := newTestGame(7)
	g.snake = []Point{{X: 31, Y: 10}, {X: 30, Y: 10}, {X: 29, Y: 10}}
	g.direction = East
	g.score = 5
	g.Step(East, true)
	if !g.gameOver {
		t.Fatal("setup: expected terminal state")
	}

	if g.TickCountdown(time.Second) {
		t.Fatal("countdown expired too early")
	}
	if !g.TickCountdown(2 * time.Second) {
		t.Fatal("countdown should expire after the full delay")
	}

	if g.gameOver || g.won {
		t.Error("reset should clear terminal flags")
	}
	if g.score != 0 {
		t.Errorf("score = %d after reset, want 0", g.score)
	}
	if len(g.snake) != 3 || g.direction != East {
		t.Error("reset should restore the initial configuration")
	}
}

func TestStepIsNoOpWhenTerminal(t *testing.T) {
	g := newTestGame(7)
	g.gameOver = true
	g.overTimer = time.Second
	before := g.Snapshot()

	g.Step(North, true)

	after := g.Snapshot()
	if before.Dir != after.Dir || len(before.Body) != len(after.Body) || before.Body[0] != after.Body[0] {
		t.Error("Step mutated a terminal game")
	}
}
