package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/sprite"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing.

Controls:
  Arrows/WASD  - Move
  Space        - Restart (after game over)
  P/Esc        - Pause
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  frogger play
  frogger play --difficulty easy
  frogger play --config ./my-frogger.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.FroggerConfig, error) {
	cfg, err := config.LoadFrogger(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyFroggerPreset(&cfg, preset)
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Debug = flagDebug

	game := frogger.New(
		frogger.WithConfig(gameCfg),
		frogger.WithSprites(sprite.NewCatalog(flagSprites, spriteMaxW, spriteMaxH)),
		frogger.WithGameLogger(logger),
	)

	err = tui.Run(game, cfg,
		tui.WithLogger(logger),
		tui.WithHoldTimings(gameCfg.Input.ReleaseAfter(), gameCfg.Input.InitialReleaseAfter()),
	)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
