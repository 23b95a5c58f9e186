package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the default Frogger configuration.
// It mirrors defaults/frogger.yaml and is used when the embedded file cannot be parsed.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Field: FroggerField{
			FirstRowY:    4,
			RowHeight:    5,
			Rows:         3,
			MarkerHeight: 3,
		},
		Enemies: FroggerEnemies{
			Sprite:          "enemy-bug",
			StartX:          -10,
			MinSpeed:        12,
			SpeedEntropy:    12,
			WobbleAmplitude: 1,
			WobbleStep:      0.05,
			FlickerMinAlpha: 0.05,
			FlickerStep:     0.01,
		},
		Player: FroggerPlayer{
			Sprite:             "char-boy",
			StartX:             36,
			StartY:             -5,
			Lives:              3,
			MaxSpeed:           24,
			AccelerationBudget: 120,
			VerticalScale:      0.5,
			TopOverflow:        1,
		},
		HUD: FroggerHUD{
			HeartSprite: "heart",
			HeartOffset: 4,
			HeartY:      0,
		},
		Gameplay: FroggerGameplay{
			LevelBonus:      10,
			CountdownFrom:   3,
			CountdownStep:   1,
			VanishSeconds:   2,
			VanishAlphaStep: 0.01,
		},
		Input: FroggerInput{
			ReleaseAfterMS:        120,
			InitialReleaseAfterMS: 550,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFroggerYAML
}
