package fastgfx

import "strconv"

// SetCursor moves the text cursor to a logical position.
func (d *Display) SetCursor(x, y int16) {
	d.cursorX = x
	d.cursorY = y
}

// Cursor returns the current text cursor position.
func (d *Display) Cursor() (x, y int16) { return d.cursorX, d.cursorY }

func (d *Display) CursorX() int16 { return d.cursorX }
func (d *Display) CursorY() int16 { return d.cursorY }

// SetTextColor sets the foreground and background used by the print family.
// Pass the same color for both to draw with a transparent background.
func (d *Display) SetTextColor(fg, bg uint16) {
	d.textColor = fg
	d.textBG = bg
}

// SetTextSize sets the glyph scale multiplier. Values outside 1..10 leave the
// size unchanged.
func (d *Display) SetTextSize(size uint8) {
	if size >= 1 && size <= 10 {
		d.textSize = size
	}
}

func (d *Display) TextSize() uint8 { return d.textSize }

// SetTextWrap enables or disables automatic line breaks at the text area's
// right edge.
func (d *Display) SetTextWrap(on bool) { d.textWrap = on }

// SetLineSpacing sets the extra pixels between lines. Values outside 0..20
// leave the spacing unchanged.
func (d *Display) SetLineSpacing(px int16) {
	if px >= 0 && px <= 20 {
		d.lineSpacing = px
	}
}

func (d *Display) LineSpacing() int16 { return d.lineSpacing }

// SetTextArea bounds cursor-driven wrapping and clearing to a rectangle.
func (d *Display) SetTextArea(x, y, w, h int16) {
	d.areaX = x
	d.areaY = y
	d.areaW = w
	d.areaH = h
}

// TextArea returns the active text area rectangle.
func (d *Display) TextArea() (x, y, w, h int16) {
	return d.areaX, d.areaY, d.areaW, d.areaH
}

// ClearTextArea fills the text area with the background color and moves the
// cursor to its top-left corner.
func (d *Display) ClearTextArea() {
	d.FillRect(d.areaX, d.areaY, d.areaW, d.areaH, d.textBG)
	d.cursorX = d.areaX
	d.cursorY = d.areaY
}

// advanceCursor moves past a drawn glyph and breaks the line early when the
// next glyph of the same width would pass the text area's right edge.
func (d *Display) advanceCursor(w int16) {
	d.cursorX += w
	if d.textWrap && d.cursorX+w > d.areaX+d.areaW {
		d.newLine()
	}
}

// newLine returns the cursor to the area's left edge and drops one line.
// Overflowing the bottom clears the whole area and restarts at its top-left;
// content is overwritten, not scrolled.
func (d *Display) newLine() {
	d.cursorX = d.areaX
	d.cursorY += int16(d.textSize)*8 + d.lineSpacing
	if d.cursorY+int16(d.textSize)*8 > d.areaY+d.areaH {
		d.ClearTextArea()
	}
}

func (d *Display) printByte(ch byte) {
	switch {
	case ch == '\n':
		d.newLine()
	case ch == '\r':
		d.cursorX = d.areaX
	case ch <= 127:
		d.DrawChar(d.cursorX, d.cursorY, ch, d.textColor, d.textBG, d.textSize)
		d.advanceCursor(int16(d.textSize) * 8)
	}
}

func (d *Display) printBytes(b []byte) {
	for _, ch := range b {
		d.printByte(ch)
	}
}

// Print draws a string at the cursor using the active color, size and wrap
// settings. '\n' breaks the line, '\r' returns to the area's left edge, and
// bytes above 127 are skipped.
func (d *Display) Print(s string) {
	for i := 0; i < len(s); i++ {
		d.printByte(s[i])
	}
}

// Println is Print followed by a line break.
func (d *Display) Println(s string) {
	d.Print(s)
	d.printByte('\n')
}

// PrintChar prints a single byte, subject to the same control-byte rules as
// Print.
func (d *Display) PrintChar(ch byte) { d.printByte(ch) }

func (d *Display) PrintlnChar(ch byte) {
	d.printByte(ch)
	d.printByte('\n')
}

// PrintInt prints a signed integer in decimal.
func (d *Display) PrintInt(n int) { d.PrintInt64(int64(n)) }

func (d *Display) PrintlnInt(n int) {
	d.PrintInt(n)
	d.printByte('\n')
}

// PrintUint prints an unsigned integer in decimal.
func (d *Display) PrintUint(n uint) { d.PrintUint64(uint64(n)) }

func (d *Display) PrintlnUint(n uint) {
	d.PrintUint(n)
	d.printByte('\n')
}

func (d *Display) PrintInt64(n int64) {
	var buf [20]byte
	d.printBytes(strconv.AppendInt(buf[:0], n, 10))
}

func (d *Display) PrintlnInt64(n int64) {
	d.PrintInt64(n)
	d.printByte('\n')
}

func (d *Display) PrintUint64(n uint64) {
	var buf [20]byte
	d.printBytes(strconv.AppendUint(buf[:0], n, 10))
}

func (d *Display) PrintlnUint64(n uint64) {
	d.PrintUint64(n)
	d.printByte('\n')
}

// PrintFloat prints f with exactly decimals fractional digits. Negative
// decimals fall back to the default of 2.
func (d *Display) PrintFloat(f float64, decimals int) {
	if decimals < 0 {
		decimals = 2
	}
	var buf [24]byte
	d.printBytes(strconv.AppendFloat(buf[:0], f, 'f', decimals, 64))
}

func (d *Display) PrintlnFloat(f float64, decimals int) {
	d.PrintFloat(f, decimals)
	d.printByte('\n')
}

// PrintBool prints the literal words "true" or "false".
func (d *Display) PrintBool(v bool) {
	if v {
		d.Print("true")
	} else {
		d.Print("false")
	}
}

func (d *Display) PrintlnBool(v bool) {
	d.PrintBool(v)
	d.printByte('\n')
}
