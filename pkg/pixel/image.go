package pixel

import (
	"image"
	"image/color"
)

// ColorModel, Bounds, At and Set let a Surface be used as a draw.Image.
// Set goes through Draw, so out-of-bounds writes are still clipped.

func (s *Surface) ColorModel() color.Model { return Model }

func (s *Surface) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }

func (s *Surface) At(x, y int) color.Color { return s.Pixel(x, y) }

func (s *Surface) Set(x, y int, c color.Color) {
	s.Draw(x, y, Model.Convert(c).(Color))
}

// Image exports the surface as a freshly allocated NRGBA image.
func (s *Surface) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.w, s.h))
	s.CopyRGBA(img.Pix)
	return img
}
