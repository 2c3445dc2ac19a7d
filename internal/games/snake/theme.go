package snake

import (
	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
)

// Theme holds the glyphs, colors and texts used by Render.
type Theme struct {
	Title string
	Help  string

	Head, Body, Food rune

	BorderColor core.Color
	TitleColor  core.Color
	ScoreColor  core.Color
	HeadColor   core.Color
	BodyColor   core.Color
	FoodColor   core.Color
	HelpColor   core.Color
}

// DefaultTheme returns the theme built from the default configuration.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.DefaultSnakeConfig(), "")
}

// ThemeFromConfig builds a theme from a loaded configuration.
// Unknown color names render in the default color.
func ThemeFromConfig(cfg config.SnakeConfig, help string) Theme {
	head, body, food := cfg.Glyphs.Runes()
	return Theme{
		Title:       cfg.Title,
		Help:        help,
		Head:        head,
		Body:        body,
		Food:        food,
		BorderColor: color(cfg.Colors.Border),
		TitleColor:  color(cfg.Colors.Title),
		ScoreColor:  color(cfg.Colors.Score),
		HeadColor:   color(cfg.Colors.Head),
		BodyColor:   color(cfg.Colors.Body),
		FoodColor:   color(cfg.Colors.Food),
		HelpColor:   color(cfg.Colors.Help),
	}
}

func color(name string) core.Color {
	c, _ := core.ParseColor(name)
	return c
}
