// Package config provides embedded YAML configuration for the snake game:
// tick timing, glyphs and colors.
package config

import (
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	TickMS         int      `yaml:"tick_ms"`
	Title          string   `yaml:"title"`
	Glyphs         GlyphSet `yaml:"glyphs"`
	FallbackGlyphs GlyphSet `yaml:"fallback_glyphs"`
	Colors         Palette  `yaml:"colors"`
}

// GlyphSet defines the characters drawn for snake and food cells.
type GlyphSet struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// Palette names the color of each frame element (see core.ParseColor).
type Palette struct {
	Border string `yaml:"border"`
	Title  string `yaml:"title"`
	Score  string `yaml:"score"`
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Food   string `yaml:"food"`
	Help   string `yaml:"help"`
}

// TickPeriod returns the configured time between ticks.
func (c SnakeConfig) TickPeriod() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Runes returns the head, body and food glyphs as runes.
// Only valid after Validate succeeds.
func (g GlyphSet) Runes() (head, body, food rune) {
	head, _ = utf8.DecodeRuneInString(g.Head)
	body, _ = utf8.DecodeRuneInString(g.Body)
	food, _ = utf8.DecodeRuneInString(g.Food)
	return head, body, food
}

// Validate checks that every glyph is a single character and that the three
// glyphs are mutually distinct.
func (g GlyphSet) Validate() error {
	for name, s := range map[string]string{"head": g.Head, "body": g.Body, "food": g.Food} {
		if utf8.RuneCountInString(s) != 1 {
			return errors.Errorf("config: %s glyph %q must be exactly one character", name, s)
		}
	}
	if g.Head == g.Body || g.Head == g.Food || g.Body == g.Food {
		return errors.Errorf("config: glyphs %q, %q, %q are not distinct", g.Head, g.Body, g.Food)
	}
	return nil
}
