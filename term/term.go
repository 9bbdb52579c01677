// Package term runs a terminal console on top of an engine surface.
//
// It is a thin wrapper over tinyterm: the engine's Surface satisfies the
// tinyterm Displayer contract, so the terminal draws straight into the
// framebuffer with whatever tinyfont font it is configured with.
package term

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"

	"fastgfx"
	"fastgfx/fonts/font8x8ascii"
)

var _ tinyterm.Displayer = (*fastgfx.Surface)(nil)

// Config selects the console font. The zero value picks the engine's
// built-in 8x8 ASCII font.
type Config struct {
	Font       *tinyfont.Font
	FontHeight int16
	FontOffset int16
}

// Console is a write-only terminal session rendered through a Surface.
type Console struct {
	s   *fastgfx.Surface
	cfg Config
	t   *tinyterm.Terminal
}

// NewConsole creates and configures a terminal over s.
func NewConsole(s *fastgfx.Surface, cfg Config) *Console {
	if cfg.Font == nil {
		cfg.Font = &font8x8ascii.Font
		cfg.FontHeight = 10
		cfg.FontOffset = 8
	}
	c := &Console{s: s, cfg: cfg}
	c.reset()
	return c
}

func (c *Console) reset() {
	c.t = tinyterm.NewTerminal(c.s)
	c.t.Configure(&tinyterm.Config{
		Font:       c.cfg.Font,
		FontHeight: c.cfg.FontHeight,
		FontOffset: c.cfg.FontOffset,
	})
}

// Write feeds bytes to the terminal. It implements io.Writer.
func (c *Console) Write(p []byte) (int, error) {
	return c.t.Write(p)
}

// Clear drops all terminal state and starts a fresh session on the same
// surface.
func (c *Console) Clear() {
	c.reset()
}
