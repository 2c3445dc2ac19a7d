package snake

import (
	"github.com/pkg/errors"

	"github.com/vovakirdan/term-snake/internal/core"
)

// ErrInvariant is wrapped by every error Validate returns.
var ErrInvariant = errors.New("snake: invariant violated")

// Validate checks the state invariants that must hold after every tick.
// A non-nil result is a programming error, never a gameplay outcome.
func (g *Game) Validate() error {
	if len(g.snake) == 0 {
		return errors.Wrap(ErrInvariant, "empty snake")
	}

	seen := make(map[core.Point]bool, len(g.snake))
	for i, p := range g.snake {
		if !interior.Contains(p) {
			return errors.Wrapf(ErrInvariant, "segment %d at %v outside the playfield", i, p)
		}
		if seen[p] {
			return errors.Wrapf(ErrInvariant, "segment %d at %v overlaps another segment", i, p)
		}
		seen[p] = true
		if i > 0 && !adjacent(g.snake[i-1], p) {
			return errors.Wrapf(ErrInvariant, "segments %d and %d are not adjacent", i-1, i)
		}
	}

	if want := ScorePerFood * (len(g.snake) - InitialLength); g.score != want {
		return errors.Wrapf(ErrInvariant, "score %d does not match length %d", g.score, len(g.snake))
	}

	if g.terminated {
		return nil
	}
	if !interior.Contains(g.food) {
		return errors.Wrapf(ErrInvariant, "food at %v outside the playfield", g.food)
	}
	if seen[g.food] {
		return errors.Wrapf(ErrInvariant, "food at %v inside the snake", g.food)
	}
	return nil
}

func adjacent(a, b core.Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}
