//go:build !tinygo

package hal

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"fastgfx"
	"fastgfx/internal/buildinfo"
)

// RunWindow opens a desktop window that presents buf every frame and calls
// step once per tick. It blocks until the window closes or step errors.
func RunWindow(buf []uint16, w, h int, step func() error) error {
	if w <= 0 || h <= 0 || len(buf) < w*h {
		return errors.New("invalid framebuffer")
	}
	g := &window{buf: buf, w: w, h: h, step: step}
	ebiten.SetWindowTitle("fastgfx (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type window struct {
	buf  []uint16
	w, h int
	img  *image.RGBA
	fb   *ebiten.Image
	step func() error
}

func (g *window) Update() error {
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *window) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.w, g.h))
		g.fb = ebiten.NewImage(g.w, g.h)
	}

	dst := g.img.Pix
	for i := 0; i < g.w*g.h && i < len(g.buf); i++ {
		c := fastgfx.RGBAFrom565(g.buf[i])
		j := i * 4
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = 0xFF
	}

	g.fb.WritePixels(dst)
	screen.DrawImage(g.fb, nil)
}

func (g *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
