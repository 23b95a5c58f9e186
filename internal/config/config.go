// Package config provides YAML-based game configuration loading and
// difficulty management for the frogger game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a loaded config cannot produce a playable game.
var ErrInvalidConfig = errors.New("invalid config")

// FroggerConfig contains all configuration for the Frogger game.
type FroggerConfig struct {
	Field      FroggerField     `yaml:"field"`
	Enemies    FroggerEnemies   `yaml:"enemies"`
	Player     FroggerPlayer    `yaml:"player"`
	HUD        FroggerHUD       `yaml:"hud"`
	Gameplay   FroggerGameplay  `yaml:"gameplay"`
	Input      FroggerInput     `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FroggerField defines the road layout. Width and height of zero mean
// "use the terminal size".
type FroggerField struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	FirstRowY    float64 `yaml:"first_row_y"`
	RowHeight    float64 `yaml:"row_height"`
	Rows         int     `yaml:"rows"`
	MarkerHeight int     `yaml:"marker_height"` // Rows of the level-end strip at the top
}

// FroggerEnemies defines enemy motion parameters.
type FroggerEnemies struct {
	Sprite          string  `yaml:"sprite"`
	StartX          float64 `yaml:"start_x"`
	MinSpeed        float64 `yaml:"min_speed"`     // cells per second
	SpeedEntropy    float64 `yaml:"speed_entropy"` // random surplus added to MinSpeed
	WobbleAmplitude float64 `yaml:"wobble_amplitude"`
	WobbleStep      float64 `yaml:"wobble_step"` // cells per tick
	FlickerMinAlpha float64 `yaml:"flicker_min_alpha"`
	FlickerStep     float64 `yaml:"flicker_step"` // alpha per tick
}

// FroggerPlayer defines the hero.
type FroggerPlayer struct {
	Sprite             string  `yaml:"sprite"`
	StartX             float64 `yaml:"start_x"`
	StartY             float64 `yaml:"start_y"` // Negative values are measured from the bottom edge
	Lives              int     `yaml:"lives"`
	MaxSpeed           float64 `yaml:"max_speed"`           // cells per second
	AccelerationBudget float64 `yaml:"acceleration_budget"` // initial kick, decays by 1 per tick
	VerticalScale      float64 `yaml:"vertical_scale"`      // terminal rows are taller than columns
	TopOverflow        float64 `yaml:"top_overflow"`        // how far the sprite box may leave the top edge
}

// FroggerHUD defines where lives are drawn.
type FroggerHUD struct {
	HeartSprite string  `yaml:"heart_sprite"`
	HeartOffset float64 `yaml:"heart_offset"`
	HeartY      float64 `yaml:"heart_y"`
}

// FroggerGameplay defines scoring and timing rules.
type FroggerGameplay struct {
	LevelBonus      int     `yaml:"level_bonus"`
	CountdownFrom   int     `yaml:"countdown_from"`
	CountdownStep   float64 `yaml:"countdown_step"` // seconds per countdown number
	VanishSeconds   float64 `yaml:"vanish_seconds"`
	VanishAlphaStep float64 `yaml:"vanish_alpha_step"`
}

// FroggerInput tunes synthesized key releases. Terminals only report
// presses, so a held key is considered released once it stops repeating.
type FroggerInput struct {
	ReleaseAfterMS        int `yaml:"release_after_ms"`
	InitialReleaseAfterMS int `yaml:"initial_release_after_ms"` // grace before the first autorepeat
}

// ReleaseAfter returns ReleaseAfterMS as a duration.
func (in FroggerInput) ReleaseAfter() time.Duration {
	return time.Duration(in.ReleaseAfterMS) * time.Millisecond
}

// InitialReleaseAfter returns InitialReleaseAfterMS as a duration.
func (in FroggerInput) InitialReleaseAfter() time.Duration {
	return time.Duration(in.InitialReleaseAfterMS) * time.Millisecond
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// Validate checks that the config can produce a playable game.
func (c FroggerConfig) Validate() error {
	switch {
	case c.Field.Rows <= 0:
		return fmt.Errorf("%w: field.rows must be positive, got %d", ErrInvalidConfig, c.Field.Rows)
	case c.Field.RowHeight <= 0:
		return fmt.Errorf("%w: field.row_height must be positive", ErrInvalidConfig)
	case c.Field.MarkerHeight <= 0:
		return fmt.Errorf("%w: field.marker_height must be positive", ErrInvalidConfig)
	case c.Field.Width < 0 || c.Field.Height < 0:
		return fmt.Errorf("%w: field size must not be negative", ErrInvalidConfig)
	case c.Enemies.MinSpeed <= 0:
		return fmt.Errorf("%w: enemies.min_speed must be positive", ErrInvalidConfig)
	case c.Enemies.SpeedEntropy < 0:
		return fmt.Errorf("%w: enemies.speed_entropy must not be negative", ErrInvalidConfig)
	case c.Enemies.FlickerMinAlpha < 0 || c.Enemies.FlickerMinAlpha > 1:
		return fmt.Errorf("%w: enemies.flicker_min_alpha must be within [0, 1]", ErrInvalidConfig)
	case c.Player.Lives <= 0:
		return fmt.Errorf("%w: player.lives must be positive", ErrInvalidConfig)
	case c.Player.MaxSpeed < 0:
		return fmt.Errorf("%w: player.max_speed must not be negative", ErrInvalidConfig)
	case c.Gameplay.CountdownStep <= 0:
		return fmt.Errorf("%w: gameplay.countdown_step must be positive", ErrInvalidConfig)
	case c.Gameplay.VanishSeconds <= 0:
		return fmt.Errorf("%w: gameplay.vanish_seconds must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means "use the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyFroggerPreset modifies the config based on a difficulty preset.
func ApplyFroggerPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Player.Lives = 2
	}
}
