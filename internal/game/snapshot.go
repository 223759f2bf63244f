package game

// Snapshot is a read-only copy of the simulation state, safe to hand to
// renderers and tests without exposing the mutable game.
type Snapshot struct {
	Body     []Point // head first
	Food     Point
	Dir      Direction
	Score    int
	GridSize int
	GameOver bool
	Won      bool
}

// Snapshot captures the current state. The body slice is copied.
func (g *Game) Snapshot() Snapshot {
	body := make([]Point, len(g.snake))
	copy(body, g.snake)
	return Snapshot{
		Body:     body,
		Food:     g.food,
		Dir:      g.direction,
		Score:    g.score,
		GridSize: g.gridSize,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
