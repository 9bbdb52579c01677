package fastgfx

import (
	"image/color"
	"testing"

	"tinygo.org/x/drivers"
)

func TestSurfaceSetPixelPacksRGB565(t *testing.T) {
	d := testDisplay(t, 8, 8)
	s := NewSurface(d, nil)

	s.SetPixel(3, 2, color.RGBA{R: 0xFF, A: 0xFF})
	if got := d.buf[2*8+3]; got != Red {
		t.Fatalf("cell = %#04x, want red", got)
	}

	s.SetPixel(-1, 0, color.RGBA{G: 0xFF, A: 0xFF})
	s.SetPixel(0, 8, color.RGBA{G: 0xFF, A: 0xFF})
	if n := len(cellsWith(d, Green)); n != 0 {
		t.Fatalf("out-of-bounds SetPixel painted %d cells", n)
	}
}

func TestSurfaceFillRectangleMatchesFillRect(t *testing.T) {
	d1 := testDisplay(t, 16, 16)
	if err := NewSurface(d1, nil).FillRectangle(2, 3, 5, 4, color.RGBA{B: 0xFF, A: 0xFF}); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}

	d2 := testDisplay(t, 16, 16)
	d2.FillRect(2, 3, 5, 4, Blue)
	if !buffersEqual(d1, d2) {
		t.Fatalf("FillRectangle differs from FillRect")
	}
}

func TestSurfaceSetRotation(t *testing.T) {
	d := testDisplay(t, 16, 8)
	s := NewSurface(d, nil)

	if err := s.SetRotation(drivers.Rotation90); err != nil {
		t.Fatalf("SetRotation: %v", err)
	}
	if w, h := s.Size(); w != 8 || h != 16 {
		t.Fatalf("size = %dx%d after 90", w, h)
	}
	if d.Rotation() != Rotation90 {
		t.Fatalf("display rotation = %d", d.Rotation())
	}

	if err := s.SetRotation(drivers.Rotation90Mirror); err == nil {
		t.Fatalf("mirrored rotation accepted")
	}
	if d.Rotation() != Rotation90 {
		t.Fatalf("rejected rotation changed state")
	}
}

func TestSurfaceDisplayHook(t *testing.T) {
	d := testDisplay(t, 8, 8)

	if err := NewSurface(d, nil).Display(); err != nil {
		t.Fatalf("nil hook: %v", err)
	}

	called := false
	s := NewSurface(d, func() error { called = true; return nil })
	if err := s.Display(); err != nil || !called {
		t.Fatalf("present hook not invoked (err %v)", err)
	}
}
