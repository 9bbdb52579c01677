package fastgfx

// wordCap bounds the wrap path's word accumulator. Characters of a word
// beyond the cap are dropped, never the whole word.
const wordCap = 49

// PrintWrapped lays out text into a rectangle of width maxWidth starting at
// (x, y), breaking lines between words only. It keeps its own position and
// ignores the cursor, wrap flag and text area entirely; only the current line
// spacing and background color are read. There is no bottom-edge handling
// beyond ordinary pixel clipping.
//
// Separator advances: a space adds one glyph width, a tab adds four, a
// newline forces a line break.
func (d *Display) PrintWrapped(x, y, maxWidth int16, s string, c uint16, size uint8) {
	var word [wordCap]byte
	n := 0
	cx, cy := x, y
	glyphW := int16(size) * 8
	lineHeight := glyphW + d.lineSpacing

	for i := 0; i < len(s); i++ {
		ch := s[i]
		sep := ch == ' ' || ch == '\n' || ch == '\t'
		if !sep && i < len(s)-1 {
			if n < wordCap {
				word[n] = ch
				n++
			}
			continue
		}
		if !sep && n < wordCap {
			// Final character of the input closes the word.
			word[n] = ch
			n++
		}

		wordWidth := int16(n) * glyphW
		if cx+wordWidth > x+maxWidth && cx > x {
			cx = x
			cy += lineHeight
		}
		wx := cx
		for j := 0; j < n; j++ {
			d.DrawChar(wx, cy, word[j], c, d.textBG, size)
			wx += glyphW
		}
		cx += wordWidth
		n = 0

		switch ch {
		case ' ':
			cx += glyphW
		case '\n':
			cx = x
			cy += lineHeight
		case '\t':
			cx += glyphW * 4
		}
	}
}
