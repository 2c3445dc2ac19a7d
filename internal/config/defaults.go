package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded Snake configuration.
// It matches defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		TickMS: 150,
		Title:  "Snake",
		Glyphs: GlyphSet{
			Head: "●",
			Body: "○",
			Food: "★",
		},
		FallbackGlyphs: ASCIIGlyphs(),
		Colors: Palette{
			Border: "gray",
			Title:  "bright_cyan",
			Score:  "bright_yellow",
			Head:   "bright_green",
			Body:   "green",
			Food:   "bright_red",
			Help:   "gray",
		},
	}
}

// ASCIIGlyphs returns a glyph set every terminal can display.
func ASCIIGlyphs() GlyphSet {
	return GlyphSet{Head: "@", Body: "o", Food: "*"}
}
