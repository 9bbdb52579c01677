package fastgfx

import "testing"

func TestPrintAdvancesCursor(t *testing.T) {
	d := testDisplay(t, 64, 32)
	d.SetCursor(10, 10)
	d.Print("AB")
	if x, y := d.Cursor(); x != 26 || y != 10 {
		t.Fatalf("cursor = (%d,%d), want (26,10)", x, y)
	}
}

func TestPrintWrapsAtAreaEdge(t *testing.T) {
	d := testDisplay(t, 64, 32)
	d.SetTextArea(0, 0, 40, 32)
	d.Print("ABCDE")
	// The fifth glyph lands at x=32; the next one would pass the edge, so
	// the cursor breaks to the line below.
	if x, y := d.Cursor(); x != 0 || y != 10 {
		t.Fatalf("cursor = (%d,%d), want (0,10)", x, y)
	}

	d.Print("F")
	got := cellsWith(d, White)
	found := false
	for p := range got {
		if p.y >= 10 && p.y < 18 && p.x < 8 {
			found = true
		}
	}
	if !found {
		t.Fatalf("wrapped glyph not drawn on second line")
	}
}

func TestPrintRespectsWrapDisabled(t *testing.T) {
	d := testDisplay(t, 64, 32)
	d.SetTextArea(0, 0, 40, 32)
	d.SetTextWrap(false)
	d.Print("ABCDEFG")
	if x, y := d.Cursor(); x != 56 || y != 0 {
		t.Fatalf("cursor = (%d,%d), want (56,0)", x, y)
	}
}

func TestCarriageReturnResetsXOnly(t *testing.T) {
	d := testDisplay(t, 64, 32)
	d.SetTextArea(4, 0, 48, 32)
	d.SetCursor(20, 12)
	d.Print("\r")
	if x, y := d.Cursor(); x != 4 || y != 12 {
		t.Fatalf("cursor = (%d,%d), want (4,12)", x, y)
	}
}

func TestNewlineAdvancesBySizeAndSpacing(t *testing.T) {
	d := testDisplay(t, 128, 128)
	d.SetTextSize(2)
	d.SetLineSpacing(5)
	d.SetCursor(30, 10)
	d.Print("\n")
	if x, y := d.Cursor(); x != 0 || y != 31 {
		t.Fatalf("cursor = (%d,%d), want (0,31)", x, y)
	}
}

func TestOverflowClearsTextArea(t *testing.T) {
	d := testDisplay(t, 80, 40)
	d.Clear(Gray)
	d.SetTextArea(0, 0, 80, 20)

	d.Println("A") // cursor to (0,10); 10+8 fits in 20
	d.Println("B") // cursor would reach 20; 20+8 overflows, area clears

	if x, y := d.Cursor(); x != 0 || y != 0 {
		t.Fatalf("cursor = (%d,%d), want area origin", x, y)
	}
	// Area wiped to the background, content below it untouched.
	for y := int16(0); y < 20; y++ {
		for x := int16(0); x < 80; x++ {
			if got := d.buf[int(y)*80+int(x)]; got != Black {
				t.Fatalf("area cell (%d,%d) = %#04x after clear", x, y, got)
			}
		}
	}
	if d.buf[25*80+3] != Gray {
		t.Fatalf("content outside the text area was cleared")
	}
}

func TestSizeAndSpacingClampRejected(t *testing.T) {
	d := testDisplay(t, 32, 32)

	d.SetTextSize(0)
	if d.TextSize() != 1 {
		t.Fatalf("size 0 accepted")
	}
	d.SetTextSize(11)
	if d.TextSize() != 1 {
		t.Fatalf("size 11 accepted")
	}
	d.SetTextSize(10)
	if d.TextSize() != 10 {
		t.Fatalf("size 10 rejected")
	}

	d.SetLineSpacing(-1)
	if d.LineSpacing() != 2 {
		t.Fatalf("spacing -1 accepted")
	}
	d.SetLineSpacing(21)
	if d.LineSpacing() != 2 {
		t.Fatalf("spacing 21 accepted")
	}
	d.SetLineSpacing(0)
	if d.LineSpacing() != 0 {
		t.Fatalf("spacing 0 rejected")
	}
}

func TestPrintSkipsHighBytes(t *testing.T) {
	d := testDisplay(t, 64, 32)
	d.Print("A\xc3\xa9B") // é arrives as two bytes above 127
	if x, _ := d.Cursor(); x != 16 {
		t.Fatalf("cursor x = %d, want 16", x)
	}
}

func TestPrintIntMatchesText(t *testing.T) {
	d1 := testDisplay(t, 64, 16)
	d1.PrintInt(-42)

	d2 := testDisplay(t, 64, 16)
	d2.Text(0, 0, "-42", White, Black, 1)
	if !buffersEqual(d1, d2) {
		t.Fatalf("PrintInt(-42) differs from drawing \"-42\"")
	}
}

func TestPrintUintMatchesText(t *testing.T) {
	d1 := testDisplay(t, 64, 16)
	d1.PrintUint(305)

	d2 := testDisplay(t, 64, 16)
	d2.Text(0, 0, "305", White, Black, 1)
	if !buffersEqual(d1, d2) {
		t.Fatalf("PrintUint(305) differs from drawing \"305\"")
	}
}

func TestPrintFloatPrecision(t *testing.T) {
	d1 := testDisplay(t, 96, 16)
	d1.PrintFloat(25.6, 1)

	d2 := testDisplay(t, 96, 16)
	d2.Text(0, 0, "25.6", White, Black, 1)
	if !buffersEqual(d1, d2) {
		t.Fatalf("PrintFloat(25.6, 1) differs from drawing \"25.6\"")
	}

	d3 := testDisplay(t, 96, 16)
	d3.PrintFloat(3.0, -1) // negative precision falls back to 2 digits

	d4 := testDisplay(t, 96, 16)
	d4.Text(0, 0, "3.00", White, Black, 1)
	if !buffersEqual(d3, d4) {
		t.Fatalf("default precision is not 2 digits")
	}
}

func TestPrintBool(t *testing.T) {
	d1 := testDisplay(t, 64, 16)
	d1.PrintBool(true)

	d2 := testDisplay(t, 64, 16)
	d2.Text(0, 0, "true", White, Black, 1)
	if !buffersEqual(d1, d2) {
		t.Fatalf("PrintBool(true) differs from drawing \"true\"")
	}
}

func TestPrintCharHandlesControls(t *testing.T) {
	d := testDisplay(t, 64, 32)
	d.PrintChar('\n')
	if x, y := d.Cursor(); x != 0 || y != 10 {
		t.Fatalf("cursor = (%d,%d) after newline char", x, y)
	}
	d.PrintChar('X')
	if x, _ := d.Cursor(); x != 8 {
		t.Fatalf("cursor x = %d after glyph", x)
	}
}

func TestPrintlnAppendsLineBreak(t *testing.T) {
	d1 := testDisplay(t, 64, 64)
	d1.Println("hi")

	d2 := testDisplay(t, 64, 64)
	d2.Print("hi\n")
	if !buffersEqual(d1, d2) {
		t.Fatalf("Println differs from Print plus newline")
	}
	if x, y := d1.Cursor(); x != 0 || y != 10 {
		t.Fatalf("cursor = (%d,%d)", x, y)
	}
}
