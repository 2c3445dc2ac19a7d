package config

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadSnake loads the Snake configuration from the embedded defaults.
// Nothing is read from disk. If the embedded YAML cannot be parsed the
// hardcoded defaults are returned together with the parse error.
func LoadSnake() (SnakeConfig, error) {
	cfg, err := ParseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), err
	}
	return cfg, nil
}

// ParseSnake parses a Snake YAML document on top of the defaults and
// normalizes it: a non-positive tick falls back to the default period and an
// invalid glyph set is replaced by the fallback set (or ASCII).
func ParseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "config: parse snake config")
	}
	return normalize(cfg), nil
}

func normalize(cfg SnakeConfig) SnakeConfig {
	def := DefaultSnakeConfig()
	if cfg.TickMS <= 0 {
		cfg.TickMS = def.TickMS
	}
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Glyphs.Validate() != nil {
		cfg.Glyphs = cfg.FallbackGlyphs
		if cfg.Glyphs.Validate() != nil {
			cfg.Glyphs = ASCIIGlyphs()
		}
	}
	return cfg
}
