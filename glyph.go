package fastgfx

import "fastgfx/fonts/font8x8ascii"

// DrawChar blits one 8x8 glyph at the given logical position.
//
// Codes above 127 are ignored. Background bits are painted only when bg
// differs from fg; passing bg == fg gives transparent-background text.
// size multiplies each font bit into a size*size block.
func (d *Display) DrawChar(x, y int16, ch byte, fg, bg uint16, size uint8) {
	if ch > 127 {
		return
	}
	rows := &font8x8ascii.Data[ch]

	if size == 1 {
		for row := int16(0); row < 8; row++ {
			bits := rows[row]
			for col := int16(0); col < 8; col++ {
				if bits&(1<<col) != 0 {
					d.pixel(x+col, y+row, fg)
				} else if bg != fg {
					d.pixel(x+col, y+row, bg)
				}
			}
		}
		return
	}

	s := int16(size)
	for row := int16(0); row < 8; row++ {
		bits := rows[row]
		for col := int16(0); col < 8; col++ {
			if bits&(1<<col) != 0 {
				d.FillRect(x+col*s, y+row*s, s, s, fg)
			} else if bg != fg {
				d.FillRect(x+col*s, y+row*s, s, s, bg)
			}
		}
	}
}

// Text draws a string at a fixed position without touching the cursor state.
// Newlines drop to the next row at the starting x; carriage returns are
// ignored.
func (d *Display) Text(x, y int16, s string, fg, bg uint16, size uint8) {
	cx, cy := x, y
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '\n':
			cy += int16(size) * 8
			cx = x
		case '\r':
		default:
			d.DrawChar(cx, cy, ch, fg, bg, size)
			cx += int16(size) * 8
		}
	}
}

// TextSmall draws s at size 1 on a black background.
func (d *Display) TextSmall(x, y int16, s string, c uint16) {
	d.Text(x, y, s, c, Black, 1)
}

// TextMedium draws s at size 2 on a black background.
func (d *Display) TextMedium(x, y int16, s string, c uint16) {
	d.Text(x, y, s, c, Black, 2)
}

// TextLarge draws s at size 3 on a black background.
func (d *Display) TextLarge(x, y int16, s string, c uint16) {
	d.Text(x, y, s, c, Black, 3)
}
