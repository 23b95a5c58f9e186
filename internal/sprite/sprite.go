// Package sprite loads sprite images and detects their visible bounds.
//
// Sprites are small RGBA images where one pixel maps to one terminal cell.
// Built-in sprites are text-art YAML files; a sprite directory may override
// them with YAML, PNG or BMP files.
package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ID identifies a sprite, e.g. "enemy-bug".
type ID string

// ErrUnknownSprite is returned when no source provides the requested sprite.
var ErrUnknownSprite = errors.New("unknown sprite")

// Image is a decoded sprite.
type Image struct {
	ID     ID
	Width  int
	Height int
	Pix    *image.RGBA
	// Glyphs optionally overrides the rune drawn for a pixel; zero means "use a block".
	Glyphs [][]rune
}

// Alpha returns the alpha channel of the pixel at (x, y).
func (img *Image) Alpha(x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return 0
	}
	return img.Pix.RGBAAt(x, y).A
}

// Glyph returns the rune override for a pixel, or 0.
func (img *Image) Glyph(x, y int) rune {
	if y < 0 || y >= len(img.Glyphs) || x < 0 || x >= len(img.Glyphs[y]) {
		return 0
	}
	return img.Glyphs[y][x]
}

// textArt is the YAML layout of a text-art sprite.
type textArt struct {
	ID      string            `yaml:"id"`
	Palette map[string]string `yaml:"palette"`
	Glyphs  map[string]string `yaml:"glyphs,omitempty"`
	Rows    []string          `yaml:"rows"`
}

// transparent reports whether a text-art rune leaves the pixel empty.
func transparent(r rune) bool {
	return r == '.' || r == ' '
}

// ParseYAML parses a text-art sprite. The id argument wins over the id in
// the file so that overrides can be renamed by file name.
func ParseYAML(id ID, data []byte) (*Image, error) {
	var art textArt
	if err := yaml.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("sprite %s: yaml unmarshal: %w", id, err)
	}
	if len(art.Rows) == 0 {
		return nil, fmt.Errorf("sprite %s: no rows", id)
	}

	colors := make(map[rune]color.RGBA, len(art.Palette))
	for key, name := range art.Palette {
		r, ok := singleRune(key)
		if !ok {
			return nil, fmt.Errorf("sprite %s: palette key %q must be one character", id, key)
		}
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("sprite %s: unknown color %q", id, name)
		}
		colors[r] = c.ToRGBA()
	}

	glyphs := make(map[rune]rune, len(art.Glyphs))
	for key, g := range art.Glyphs {
		r, ok := singleRune(key)
		gr, gok := singleRune(g)
		if !ok || !gok {
			return nil, fmt.Errorf("sprite %s: glyph %q -> %q must map one character to one character", id, key, g)
		}
		glyphs[r] = gr
	}

	width := 0
	for _, row := range art.Rows {
		width = core.Max(width, len([]rune(row)))
	}
	height := len(art.Rows)

	pix := image.NewRGBA(image.Rect(0, 0, width, height))
	var cells [][]rune
	if len(glyphs) > 0 {
		cells = make([][]rune, height)
	}
	for y, row := range art.Rows {
		if cells != nil {
			cells[y] = make([]rune, width)
		}
		for x, r := range []rune(row) {
			if transparent(r) {
				continue
			}
			c, ok := colors[r]
			if !ok {
				return nil, fmt.Errorf("sprite %s: rune %q at (%d, %d) missing from palette", id, r, x, y)
			}
			pix.SetRGBA(x, y, c)
			if cells != nil {
				cells[y][x] = glyphs[r]
			}
		}
	}

	return &Image{ID: id, Width: width, Height: height, Pix: pix, Glyphs: cells}, nil
}

func singleRune(s string) (rune, bool) {
	rs := []rune(s)
	if len(rs) != 1 {
		return 0, false
	}
	return rs[0], true
}
