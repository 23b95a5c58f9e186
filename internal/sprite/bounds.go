package sprite

import "github.com/vovakirdan/tui-frogger/internal/core"

const (
	bands      = 4 // bytes per RGBA pixel
	alphaIndex = 3 // offset of the alpha byte within a pixel
)

// Detector finds the tightest rectangle around the non-transparent pixels
// of a sprite. Results are cached per sprite ID so each sprite is scanned
// at most once.
type Detector struct {
	cache map[ID]core.Rect
	scans int
}

// NewDetector creates a detector with an empty cache.
func NewDetector() *Detector {
	return &Detector{cache: make(map[ID]core.Rect)}
}

// Detect returns the visible bounds of a width x height RGBA buffer.
// A fully transparent image yields a rectangle with non-positive size.
func (d *Detector) Detect(id ID, pix []byte, width, height int) core.Rect {
	if r, ok := d.cache[id]; ok {
		return r
	}

	d.scans++
	minX, minY, maxX, maxY := width, height, -1, -1
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (width*y+x)*bands + alphaIndex
			if i >= len(pix) || pix[i] == 0 {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}

	r := core.NewRect(minX, minY, maxX-minX+1, maxY-minY+1)
	d.cache[id] = r
	return r
}

// DetectImage runs Detect on a loaded sprite.
func (d *Detector) DetectImage(img *Image) core.Rect {
	return d.Detect(img.ID, img.Pix.Pix, img.Width, img.Height)
}

// Cached returns the cached bounds of a sprite, if any.
func (d *Detector) Cached(id ID) (core.Rect, bool) {
	r, ok := d.cache[id]
	return r, ok
}

// Scans returns how many pixel scans have run.
func (d *Detector) Scans() int {
	return d.scans
}

// Reset drops every cached result.
func (d *Detector) Reset() {
	clear(d.cache)
	d.scans = 0
}
