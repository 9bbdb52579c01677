//go:build !tinygo

package main

import (
	"flag"
	"fmt"
	"os"

	"tinygo.org/x/tinyfont"

	"fastgfx"
	"fastgfx/fonts/font8x8ascii"
	"fastgfx/hal"
	"fastgfx/term"
)

func main() {
	var width, height int
	var console bool
	flag.IntVar(&width, "width", 800, "Panel width in pixels.")
	flag.IntVar(&height, "height", 480, "Panel height in pixels.")
	flag.BoolVar(&console, "console", false, "Run the terminal console demo instead of the scene.")
	flag.Parse()

	buf := make([]uint16, width*height)
	d, err := fastgfx.New(buf, int16(width), int16(height))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if console {
		d.Clear(fastgfx.Black)
		c := term.NewConsole(fastgfx.NewSurface(d, nil), term.Config{})
		fmt.Fprintln(c, "fastgfx console")
		fmt.Fprintf(c, "panel %dx%d RGB565\n", width, height)
		fmt.Fprintln(c, "type is rendered by tinyterm through the engine surface")
	} else {
		fastgfx.Demo(d)
		tinyfont.WriteLine(fastgfx.NewSurface(d, nil), &font8x8ascii.Font,
			10, d.Height()-80, "tinyfont footer via Surface", fastgfx.RGBAFrom565(fastgfx.Gray))
	}

	if err := hal.RunWindow(buf, width, height, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
