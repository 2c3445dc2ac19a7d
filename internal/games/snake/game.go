// Package snake implements the classic single-player snake game: a snake on
// a walled grid that grows on food and dies on walls or itself.
package snake

import (
	"github.com/vovakirdan/term-snake/internal/core"
)

// Grid dimensions, including the wall ring.
const (
	Width  = 120
	Height = 30
)

const (
	// InitialLength is the number of segments the snake starts with.
	InitialLength = 3
	// ScorePerFood is awarded for every food consumed.
	ScorePerFood = 10
)

var (
	grid     = core.NewRect(0, 0, Width, Height)
	interior = grid.Inset(1)

	offGrid = core.Point{X: -1, Y: -1}
)

// EndReason records why a game terminated.
type EndReason string

const (
	EndNone    EndReason = ""
	EndWall    EndReason = "wall"
	EndSelf    EndReason = "self"
	EndQuit    EndReason = "quit"
	EndVictory EndReason = "victory"
)

// Game implements the Snake game.
type Game struct {
	theme Theme
	rng   core.Rand
	tick  uint64
	score int

	snake   []core.Point // Head at index 0
	heading Direction
	food    core.Point

	terminated bool
	reason     EndReason
}

// New creates a Snake game drawn with the given theme.
// Call Reset before the first Step.
func New(theme Theme) *Game {
	return &Game{theme: theme}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = core.NewRand(cfg.Seed)
	g.tick = 0
	g.score = 0
	g.terminated = false
	g.reason = EndNone

	g.initSnake()
	g.respawnFood()
}

// initSnake places the snake centred on the grid, heading right.
func (g *Game) initSnake() {
	head := grid.Center()
	g.snake = make([]core.Point, 0, InitialLength)
	for i := 0; i < InitialLength; i++ {
		g.snake = append(g.snake, core.Point{X: head.X - i, Y: head.Y})
	}
	g.heading = DirRight
}

// respawnFood places food on a uniformly random free interior cell.
// A snake that fills the whole interior wins the game instead.
func (g *Game) respawnFood() {
	if len(g.snake) >= interior.Area() {
		g.food = offGrid
		g.end(EndVictory)
		return
	}

	for {
		p := core.Point{
			X: g.rng.IntRange(interior.X, interior.Right()),
			Y: g.rng.IntRange(interior.Y, interior.Bottom()),
		}
		if !g.occupies(p) {
			g.food = p
			return
		}
	}
}

// occupies checks if any snake segment, tail included, is at p.
func (g *Game) occupies(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// HandleAction applies one input action. Direction changes are rejected when
// they reverse the current heading; Quit terminates the game.
func (g *Game) HandleAction(a core.Action) {
	if g.terminated {
		return
	}
	if a == core.ActionQuit {
		g.end(EndQuit)
		return
	}
	if d, ok := directionFor(a); ok && d != g.heading.Opposite() {
		g.heading = d
	}
}

// Step advances the game by one tick: move, collide, eat, grow.
func (g *Game) Step() core.StepResult {
	if g.terminated || len(g.snake) == 0 {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	next := g.snake[0].Add(g.heading.Delta())

	if !interior.Contains(next) {
		g.end(EndWall)
		return core.StepResult{State: g.State()}
	}
	// The tail still counts as occupied even though it would move this tick.
	if g.occupies(next) {
		g.end(EndSelf)
		return core.StepResult{State: g.State()}
	}

	g.snake = append([]core.Point{next}, g.snake...)

	ate := next == g.food
	if ate {
		g.score += ScorePerFood
		g.respawnFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	return core.StepResult{State: g.State(), Moved: true, Ate: ate}
}

func (g *Game) end(reason EndReason) {
	if g.terminated {
		return
	}
	g.terminated = true
	g.reason = reason
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.terminated,
		Won:      g.reason == EndVictory,
	}
}

// EndReason reports why the game terminated, or EndNone while running.
func (g *Game) EndReason() EndReason {
	return g.reason
}

// Heading returns the direction the next Step will move in.
func (g *Game) Heading() Direction {
	return g.heading
}

// Head returns the head cell.
func (g *Game) Head() core.Point {
	if len(g.snake) == 0 {
		return offGrid
	}
	return g.snake[0]
}

// Len returns the number of snake segments.
func (g *Game) Len() int {
	return len(g.snake)
}
