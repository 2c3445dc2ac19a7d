package snake

import "github.com/vovakirdan/term-snake/internal/core"

// Direction represents the snake's heading.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var (
	opposites = map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}

	deltas = map[Direction]core.Point{
		DirUp:    {X: 0, Y: -1},
		DirDown:  {X: 0, Y: 1},
		DirLeft:  {X: -1, Y: 0},
		DirRight: {X: 1, Y: 0},
	}
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Delta returns the one-cell displacement for this heading.
func (d Direction) Delta() core.Point {
	return deltas[d]
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor maps a movement action to its heading.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}
