package frogger

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/sprite"
)

// Visual characters for rendering
const (
	GoalChar   = '≈'
	LaneChar   = '╌'
	DigitChar  = '█'
	ShadeFull  = '█'
	ShadeDark  = '▓'
	ShadeMid   = '▒'
	ShadeLight = '░'
)

// bigDigits is a 3x5 font for the countdown.
var bigDigits = [10][5]string{
	{"###", "# #", "# #", "# #", "###"},
	{" # ", "## ", " # ", " # ", "###"},
	{"###", "  #", "###", "#  ", "###"},
	{"###", "  #", "###", "  #", "###"},
	{"# #", "# #", "###", "  #", "  #"},
	{"###", "#  ", "###", "  #", "###"},
	{"###", "#  ", "###", "# #", "###"},
	{"###", "  #", "  #", "  #", "  #"},
	{"###", "# #", "###", "# #", "###"},
	{"###", "# #", "###", "  #", "###"},
}

// Render draws the field and then every entity in registry order.
func (s *Session) Render(dst *core.Screen) {
	s.drawField(dst)

	for _, e := range s.registry.All() {
		switch e.Kind {
		case KindPlayer:
			s.drawImage(dst, e)
			s.drawHUD(dst, e)
		case KindEnemy, KindHeart:
			s.drawImage(dst, e)
		case KindCountdown:
			drawBigNumber(dst, e.Countdown.Count)
		case KindGameOver:
			mid := dst.Height() / 2
			dst.DrawTextCentered(mid-1, "GAME OVER", core.ColorBrightWhite)
			dst.DrawTextCentered(mid+1, "(press space)", core.ColorGray)
		}
		if s.debug {
			drawDebugBox(dst, e)
		}
	}
}

// drawField paints the goal strip and lane separators.
func (s *Session) drawField(dst *core.Screen) {
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), s.cfg.Field.MarkerHeight), GoalChar, core.ColorBlue)

	f := s.cfg.Field
	for row := 0; row <= f.Rows; row++ {
		y := int(f.FirstRowY+float64(row)*f.RowHeight) - 1
		dst.DrawHLine(0, y, dst.Width(), LaneChar, core.ColorGray)
	}
}

// drawImage rasterises the entity's sprite, one cell per pixel, shading by
// pixel alpha times entity alpha.
func (s *Session) drawImage(dst *core.Screen, e *Entity) {
	if e.Sprite == "" {
		return
	}
	img, ok := s.loader.Get(e.Sprite)
	if !ok {
		return
	}

	ox := int(math.Round(e.Pos.X))
	oy := int(math.Round(e.Pos.Y))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			a := img.Alpha(x, y)
			if a == 0 {
				continue
			}
			px := img.Pix.RGBAAt(x, y)
			c := core.NearestColor(px.R, px.G, px.B)
			dst.SetColored(ox+x, oy+y, shade(img, x, y, float64(a)/255*e.Alpha), c)
		}
	}
}

// shade picks the rune for a pixel of the given effective opacity.
func shade(img *sprite.Image, x, y int, opacity float64) rune {
	switch {
	case opacity >= 0.75:
		if g := img.Glyph(x, y); g != 0 {
			return g
		}
		return ShadeFull
	case opacity >= 0.5:
		return ShadeDark
	case opacity >= 0.25:
		return ShadeMid
	default:
		return ShadeLight
	}
}

func (s *Session) drawHUD(dst *core.Screen, player *Entity) {
	for _, h := range player.Player.Hearts {
		s.drawImage(dst, h)
	}
	dst.DrawTextRight(0, strconv.Itoa(player.Player.Score), core.ColorBrightWhite)
	dst.DrawTextRight(1, fmt.Sprintf("L%d", s.level), core.ColorGray)
}

// drawBigNumber draws n with the 3x5 font centred on screen.
func drawBigNumber(dst *core.Screen, n int) {
	text := strconv.Itoa(max(n, 0))
	width := len(text)*4 - 1
	x0 := (dst.Width() - width) / 2
	y0 := (dst.Height() - 5) / 2

	for i, ch := range text {
		glyph := bigDigits[ch-'0']
		for dy, line := range glyph {
			for dx, px := range line {
				if px == '#' {
					dst.SetColored(x0+i*4+dx, y0+dy, DigitChar, core.ColorBrightWhite)
				}
			}
		}
	}
}

func drawDebugBox(dst *core.Screen, e *Entity) {
	b := e.WorldBounds()
	if b.Empty() {
		return
	}
	r := core.NewRect(int(math.Round(b.X)), int(math.Round(b.Y)), int(b.W), int(b.H))
	dst.DrawBox(r, core.ColorRed)
}
