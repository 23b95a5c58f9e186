package sprite

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder
	"golang.org/x/image/draw"
)

//go:embed assets/*.yaml
var builtin embed.FS

// Source provides decoded sprites by ID.
type Source interface {
	Open(id ID) (*Image, error)
}

// Catalog resolves sprites from an optional override directory first and the
// built-in assets second.
type Catalog struct {
	dir  string
	maxW int
	maxH int
}

// NewCatalog creates a catalog. dir may be empty. Raster images larger than
// maxW x maxH cells are scaled down; zero disables the limit.
func NewCatalog(dir string, maxW, maxH int) *Catalog {
	return &Catalog{dir: dir, maxW: maxW, maxH: maxH}
}

// rasterExtensions are decoded with image.Decode.
var rasterExtensions = []string{".png", ".bmp"}

// Open loads and decodes a sprite.
func (c *Catalog) Open(id ID) (*Image, error) {
	name := string(id)
	if name == "" || filepath.Base(name) != name || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSprite, id)
	}

	if c.dir != "" {
		img, err := c.openDir(id)
		if err == nil {
			return img, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	data, err := builtin.ReadFile("assets/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSprite, id)
	}
	return ParseYAML(id, data)
}

// openDir looks for <id>.yaml, <id>.png and <id>.bmp in the override directory.
// It returns an error wrapping fs.ErrNotExist when none exists.
func (c *Catalog) openDir(id ID) (*Image, error) {
	base := filepath.Join(c.dir, string(id))

	if data, err := os.ReadFile(base + ".yaml"); err == nil {
		return ParseYAML(id, data)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("sprite %s: %w", id, err)
	}

	for _, ext := range rasterExtensions {
		f, err := os.Open(base + ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", id, err)
		}
		img, err := DecodeRaster(id, f, c.maxW, c.maxH)
		f.Close()
		return img, err
	}

	return nil, fmt.Errorf("sprite %s: %w", id, fs.ErrNotExist)
}

// IDs lists every sprite the catalog can open, sorted.
func (c *Catalog) IDs() ([]ID, error) {
	seen := make(map[ID]bool)

	entries, err := fs.ReadDir(builtin, "assets")
	if err != nil {
		return nil, fmt.Errorf("reading built-in sprites: %w", err)
	}
	for _, e := range entries {
		seen[ID(strings.TrimSuffix(e.Name(), ".yaml"))] = true
	}

	if c.dir != "" {
		entries, err := os.ReadDir(c.dir)
		if err != nil {
			return nil, fmt.Errorf("reading sprite directory %s: %w", c.dir, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if ext == ".yaml" || ext == ".png" || ext == ".bmp" {
				seen[ID(strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))] = true
			}
		}
	}

	ids := make([]ID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// DecodeRaster decodes a PNG or BMP sprite and converts it to RGBA,
// scaling it down with nearest-neighbour sampling to fit maxW x maxH.
func DecodeRaster(id ID, r io.Reader, maxW, maxH int) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("sprite %s: decode: %w", id, err)
	}

	w, h := fitSize(src.Bounds().Dx(), src.Bounds().Dy(), maxW, maxH)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == src.Bounds().Dx() && h == src.Bounds().Dy() {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}

	return &Image{ID: id, Width: w, Height: h, Pix: dst}, nil
}

// fitSize shrinks (w, h) to fit within (maxW, maxH) keeping the aspect ratio.
func fitSize(w, h, maxW, maxH int) (int, int) {
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 && h > maxH {
		if s := float64(maxH) / float64(h); s < scale {
			scale = s
		}
	}
	if scale >= 1.0 {
		return w, h
	}
	return max(1, int(math.Round(float64(w)*scale))), max(1, int(math.Round(float64(h)*scale)))
}
