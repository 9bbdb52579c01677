package fastgfx

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
)

// Surface adapts a Display to the tinygo drivers Displayer contract so that
// tinyfont, tinyterm and other Displayer consumers can draw through the
// engine. Coordinates are logical; RGBA colors are packed down to RGB565.
type Surface struct {
	d       *Display
	present func() error
}

// NewSurface wraps a Display. present is invoked by Display() to hand the
// finished buffer to a panel; it may be nil when no handoff is wired.
func NewSurface(d *Display, present func() error) *Surface {
	return &Surface{d: d, present: present}
}

func (s *Surface) Size() (x, y int16) {
	return s.d.Width(), s.d.Height()
}

func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	s.d.pixel(x, y, RGB565(c.R, c.G, c.B))
}

func (s *Surface) Display() error {
	if s.present == nil {
		return nil
	}
	return s.present()
}

func (s *Surface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	s.d.FillRect(x, y, width, height, RGB565(c.R, c.G, c.B))
	return nil
}

// SetScroll is a no-op: the engine has no hardware scroll region.
func (s *Surface) SetScroll(line int16) {}

var errUnsupportedRotation = errors.New("unsupported rotation")

// SetRotation maps the four plain drivers rotations onto the engine's.
// Mirrored variants are rejected.
func (s *Surface) SetRotation(rotation drivers.Rotation) error {
	switch rotation {
	case drivers.Rotation0:
		s.d.SetRotation(Rotation0)
	case drivers.Rotation90:
		s.d.SetRotation(Rotation90)
	case drivers.Rotation180:
		s.d.SetRotation(Rotation180)
	case drivers.Rotation270:
		s.d.SetRotation(Rotation270)
	default:
		return errUnsupportedRotation
	}
	return nil
}
