package snake

// Phase represents the current game phase.
type Phase string

const (
	PhaseRunning  Phase = "running"
	PhaseGameOver Phase = "game_over"
	PhaseWon      Phase = "won"
	PhaseQuit     Phase = "quit"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	Reason   EndReason
	Phase    Phase
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	phase := PhaseRunning
	switch g.reason {
	case EndWall, EndSelf:
		phase = PhaseGameOver
	case EndVictory:
		phase = PhaseWon
	case EndQuit:
		phase = PhaseQuit
	}

	head := g.Head()
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: len(g.snake),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.heading,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
		Reason:   g.reason,
		Phase:    phase,
	}
}
