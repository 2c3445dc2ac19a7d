package config

import (
	"testing"
	"time"
)

func TestLoadSnakeEmbedded(t *testing.T) {
	cfg, err := LoadSnake()
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.TickPeriod() != 150*time.Millisecond {
		t.Errorf("TickPeriod() = %v, expected 150ms", cfg.TickPeriod())
	}
	if err := cfg.Glyphs.Validate(); err != nil {
		t.Errorf("embedded glyphs invalid: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded config drifted from DefaultSnakeConfig():\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestParseSnakeOverrides(t *testing.T) {
	cfg, err := ParseSnake([]byte("tick_ms: 80\ntitle: Worm\n"))
	if err != nil {
		t.Fatalf("ParseSnake() failed: %v", err)
	}
	if cfg.TickMS != 80 || cfg.Title != "Worm" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Unset fields keep their defaults
	if cfg.Glyphs != DefaultSnakeConfig().Glyphs {
		t.Errorf("glyphs should keep defaults, got %+v", cfg.Glyphs)
	}
}

func TestParseSnakeNormalize(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		wantTick   int
		wantGlyphs GlyphSet
	}{
		{
			name:       "non-positive tick",
			yaml:       "tick_ms: 0",
			wantTick:   150,
			wantGlyphs: DefaultSnakeConfig().Glyphs,
		},
		{
			name:       "duplicate glyphs use fallback",
			yaml:       "glyphs: {head: 'X', body: 'X', food: '*'}",
			wantTick:   150,
			wantGlyphs: ASCIIGlyphs(),
		},
		{
			name:       "multi-character glyph uses fallback",
			yaml:       "glyphs: {head: '<>', body: 'o', food: '*'}\nfallback_glyphs: {head: 'H', body: 'b', food: 'f'}",
			wantTick:   150,
			wantGlyphs: GlyphSet{Head: "H", Body: "b", Food: "f"},
		},
		{
			name:       "broken fallback uses ascii",
			yaml:       "glyphs: {head: '', body: 'o', food: '*'}\nfallback_glyphs: {head: 'a', body: 'a', food: 'a'}",
			wantTick:   150,
			wantGlyphs: ASCIIGlyphs(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ParseSnake([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("ParseSnake() failed: %v", err)
			}
			if cfg.TickMS != tc.wantTick {
				t.Errorf("TickMS = %d, expected %d", cfg.TickMS, tc.wantTick)
			}
			if cfg.Glyphs != tc.wantGlyphs {
				t.Errorf("Glyphs = %+v, expected %+v", cfg.Glyphs, tc.wantGlyphs)
			}
		})
	}
}

func TestParseSnakeInvalidYAML(t *testing.T) {
	cfg, err := ParseSnake([]byte("tick_ms: [not a number"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg.TickMS <= 0 {
		t.Error("config returned with an error should still be usable")
	}
}

func TestGlyphRunes(t *testing.T) {
	head, body, food := DefaultSnakeConfig().Glyphs.Runes()
	if head != '●' || body != '○' || food != '★' {
		t.Errorf("Runes() = %q %q %q", head, body, food)
	}
}
