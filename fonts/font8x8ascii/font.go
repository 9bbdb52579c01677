// Package font8x8ascii holds the engine's built-in 8x8 bitmap font covering
// ASCII 0-127.
//
// Besides the raw Data table consumed by the glyph renderer, the package
// exposes the same glyphs as a concrete tinyfont font, so they can be drawn
// on any drivers.Displayer and used wherever a *tinyfont.Font is required,
// tinyterm included.
package font8x8ascii

import (
	"math/bits"

	"tinygo.org/x/tinyfont"
)

// Font is the 8x8 ASCII font in tinyfont's format. Pass &Font to the tinyfont
// draw functions and to tinyterm.
var Font = tinyfont.Font{
	BBox:     [4]int8{8, 8, 0, -7},
	YAdvance: 8,
	Glyphs:   glyphs(),
}

// glyphs converts Data into tinyfont's bitmap layout. tinyfont packs rows
// MSB-first while Data keeps bit 0 as the leftmost column, so every row byte
// is bit-reversed. Runes stay in ascending order for tinyfont's glyph lookup.
func glyphs() []tinyfont.Glyph {
	gs := make([]tinyfont.Glyph, len(Data))
	for i := range Data {
		bm := make([]byte, 8)
		for row, b := range Data[i] {
			bm[row] = bits.Reverse8(b)
		}
		gs[i] = tinyfont.Glyph{
			Rune:     rune(i),
			Width:    8,
			Height:   8,
			XAdvance: 8,
			YOffset:  -7,
			Bitmaps:  bm,
		}
	}
	return gs
}
