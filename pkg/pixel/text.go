package pixel

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Face is the bitmap face used by DrawText.
var Face font.Face = basicfont.Face7x13

// DrawText renders str with its top-left corner at (x, y). Glyph pixels are
// written through Draw and clipped like any other write.
func (s *Surface) DrawText(x, y int, str string, c Color) {
	d := font.Drawer{
		Dst:  s,
		Src:  image.NewUniform(c),
		Face: Face,
		Dot:  fixed.P(x, y+Face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(str)
}

// TextSize reports the width and height DrawText would cover.
func TextSize(str string) (int, int) {
	m := Face.Metrics()
	return font.MeasureString(Face, str).Ceil(), (m.Ascent + m.Descent).Ceil()
}
