package snake

import (
	"fmt"

	"github.com/vovakirdan/term-snake/internal/core"
)

// Frame dimensions: the grid plus side borders, and title, separator,
// bottom border and help rows.
const (
	FrameWidth  = Width + 2
	FrameHeight = Height + 5
)

const (
	titleRow     = 1
	separatorRow = 2
	fieldTop     = 3
	helpRow      = Height + 4
)

// Render draws the full frame for the current state. It always redraws
// everything, so rendering the same state twice gives the same frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderChrome(dst)
	g.renderHUD(dst)
	g.renderField(dst)

	dst.DrawText(0, helpRow, g.theme.Help, g.theme.HelpColor)
}

// renderChrome draws the outer box and the separator under the title.
func (g *Game) renderChrome(dst *core.Screen) {
	box := core.NewRect(0, 0, FrameWidth, FrameHeight-1)
	dst.DrawBox(box, g.theme.BorderColor)
	dst.DrawDivider(box, separatorRow, g.theme.BorderColor)
}

// renderHUD draws the title and the zero-padded score.
func (g *Game) renderHUD(dst *core.Screen) {
	x := dst.DrawText(2, titleRow, g.theme.Title, g.theme.TitleColor)
	x = dst.DrawText(x, titleRow, " - Score: ", core.ColorDefault)
	dst.DrawText(x, titleRow, fmt.Sprintf("%03d", g.score), g.theme.ScoreColor)
}

// renderField draws food and snake; head is drawn last so it is never hidden.
func (g *Game) renderField(dst *core.Screen) {
	if interior.Contains(g.food) {
		g.plot(dst, g.food, g.theme.Food, g.theme.FoodColor)
	}
	for i := len(g.snake) - 1; i > 0; i-- {
		g.plot(dst, g.snake[i], g.theme.Body, g.theme.BodyColor)
	}
	if len(g.snake) > 0 {
		g.plot(dst, g.snake[0], g.theme.Head, g.theme.HeadColor)
	}
}

// plot maps a grid cell to its frame position.
func (g *Game) plot(dst *core.Screen, p core.Point, r rune, c core.Color) {
	dst.SetCell(p.X+1, p.Y+fieldTop, r, c)
}
