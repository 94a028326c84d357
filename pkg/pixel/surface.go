package pixel

// Surface is a row-major width*height array of Colors. Index = x + y*width.
// All writes go through Draw, which is the only bounds check.
type Surface struct {
	w   int
	h   int
	pix []Color
}

func NewSurface(w, h int) *Surface {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Surface{w: w, h: h, pix: make([]Color, w*h)}
}

func (s *Surface) Width() int  { return s.w }
func (s *Surface) Height() int { return s.h }

func (s *Surface) Clear(c Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// Draw writes c at (x, y) when the point lies on the surface and silently
// ignores it otherwise.
func (s *Surface) Draw(x, y int, c Color) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.pix[x+y*s.w] = c
}

// DrawRect fills [x, x+dx) x [y, y+dy). Pixels falling outside the surface
// are clipped by Draw.
func (s *Surface) DrawRect(x, y, dx, dy int, c Color) {
	for row := 0; row < dy; row++ {
		for col := 0; col < dx; col++ {
			s.Draw(x+col, y+row, c)
		}
	}
}

func (s *Surface) StrokeRect(x, y, dx, dy, line int, c Color) {
	if line <= 0 {
		line = 1
	}
	s.DrawRect(x, y, dx, line, c)
	s.DrawRect(x, y+dy-line, dx, line, c)
	s.DrawRect(x, y, line, dy, c)
	s.DrawRect(x+dx-line, y, line, dy, c)
}

// Pixel returns the color at (x, y), or the zero Color when out of bounds.
func (s *Surface) Pixel(x, y int) Color {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return Color{}
	}
	return s.pix[x+y*s.w]
}

// CopyRGBA packs the surface into dst as R,G,B,A bytes and returns the number
// of bytes written. dst must hold at least 4*width*height bytes.
func (s *Surface) CopyRGBA(dst []byte) int {
	n := len(s.pix) * 4
	if len(dst) < n {
		return 0
	}
	for i, c := range s.pix {
		w := c.word
		off := i * 4
		dst[off+0] = uint8(w)
		dst[off+1] = uint8(w >> 8)
		dst[off+2] = uint8(w >> 16)
		dst[off+3] = uint8(w >> 24)
	}
	return n
}

// Snapshot returns a copy of the pixel data suitable for Restore.
func (s *Surface) Snapshot() []Color {
	out := make([]Color, len(s.pix))
	copy(out, s.pix)
	return out
}

// Restore overwrites the surface with a previous Snapshot. Snapshots of a
// different size are ignored.
func (s *Surface) Restore(snap []Color) bool {
	if len(snap) != len(s.pix) {
		return false
	}
	copy(s.pix, snap)
	return true
}

// Blit copies src onto s with its top-left corner at (x, y). Fully
// transparent source pixels are skipped.
func (s *Surface) Blit(src *Surface, x, y int) {
	for sy := 0; sy < src.h; sy++ {
		for sx := 0; sx < src.w; sx++ {
			c := src.pix[sx+sy*src.w]
			if c.A() == 0 {
				continue
			}
			s.Draw(x+sx, y+sy, c)
		}
	}
}
