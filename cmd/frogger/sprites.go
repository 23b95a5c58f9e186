package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/sprite"
)

// Raster sprites are scaled down to fit this many cells.
const (
	spriteMaxW = 12
	spriteMaxH = 6
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List sprites and their visible bounds",
	Long: `Loads every built-in sprite and every override in --sprites, then
shows its size and the bounding box of its visible pixels. Collisions use
these boxes.

Examples:
  frogger sprites
  frogger sprites --sprites ./my-sprites`,
	Args: cobra.NoArgs,
	RunE: runSprites,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func runSprites(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	catalog := sprite.NewCatalog(flagSprites, spriteMaxW, spriteMaxH)
	ids, err := catalog.IDs()
	if err != nil {
		return err
	}

	loader := sprite.NewLoader(catalog, sprite.WithLogger(logger))
	for _, id := range ids {
		loader.Load(id, nil)
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	if err := loader.Wait(ctx); err != nil {
		return fmt.Errorf("loading sprites: %w", err)
	}

	detector := sprite.NewDetector()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SPRITE", "SIZE", "BOUNDS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, id := range ids {
		img, ok := loader.Get(id)
		if !ok {
			t.Row(string(id), "-", "failed to load")
			continue
		}
		b := detector.DetectImage(img)
		t.Row(
			string(id),
			strconv.Itoa(img.Width)+"x"+strconv.Itoa(img.Height),
			fmt.Sprintf("x=%d y=%d w=%d h=%d", b.X, b.Y, b.W, b.H),
		)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
