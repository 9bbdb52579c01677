package fastgfx

import (
	"strings"
	"testing"
)

func TestPrintWrappedBreaksBetweenWords(t *testing.T) {
	d := testDisplay(t, 64, 64)
	d.PrintWrapped(0, 0, 30, "abc def ghi", White, 1)

	// Every word fits in 30px on its own, so nothing may be drawn past the
	// right edge of the wrap rectangle.
	for p := range cellsWith(d, White) {
		if p.x >= 30 {
			t.Fatalf("pixel (%d,%d) drawn past maxWidth", p.x, p.y)
		}
	}

	// Three words, three lines (line height 8+2).
	rows := map[int16]bool{}
	for p := range cellsWith(d, White) {
		rows[p.y/10] = true
	}
	if len(rows) != 3 {
		t.Fatalf("words landed on %d lines, want 3", len(rows))
	}
}

func TestPrintWrappedNeverSplitsWords(t *testing.T) {
	d1 := testDisplay(t, 128, 64)
	d1.PrintWrapped(0, 0, 40, "aa bbbb", White, 1)

	// "aa" on the first line, "bbbb" moved whole to the second.
	d2 := testDisplay(t, 128, 64)
	d2.Text(0, 0, "aa", White, Black, 1)
	d2.Text(0, 10, "bbbb", White, Black, 1)
	if !buffersEqual(d1, d2) {
		t.Fatalf("wrap split or misplaced a word")
	}
}

func TestPrintWrappedLongWordOverflowsInPlace(t *testing.T) {
	d := testDisplay(t, 128, 32)
	d.PrintWrapped(0, 0, 30, "abcdefgh", White, 1)

	past := false
	for p := range cellsWith(d, White) {
		if p.y >= 8 {
			t.Fatalf("single word moved off the first line")
		}
		if p.x >= 30 {
			past = true
		}
	}
	if !past {
		t.Fatalf("over-long word did not overflow maxWidth")
	}
}

func TestPrintWrappedTruncatesLongWord(t *testing.T) {
	d1 := testDisplay(t, 512, 16)
	d1.PrintWrapped(0, 0, 512, strings.Repeat("x", 60), White, 1)

	d2 := testDisplay(t, 512, 16)
	d2.Text(0, 0, strings.Repeat("x", 49), White, Black, 1)
	if !buffersEqual(d1, d2) {
		t.Fatalf("word not truncated to the buffer capacity")
	}
}

func TestPrintWrappedSeparatorAdvances(t *testing.T) {
	d1 := testDisplay(t, 128, 32)
	d1.PrintWrapped(0, 0, 1000, "ab cd\tef\ngh", White, 1)

	d2 := testDisplay(t, 128, 32)
	d2.Text(0, 0, "ab", White, Black, 1)
	d2.Text(24, 0, "cd", White, Black, 1) // space advances one glyph
	d2.Text(72, 0, "ef", White, Black, 1) // tab advances four glyphs
	d2.Text(0, 10, "gh", White, Black, 1) // newline breaks the line
	if !buffersEqual(d1, d2) {
		t.Fatalf("separator advances differ")
	}
}

func TestPrintWrappedIgnoresCursorState(t *testing.T) {
	d := testDisplay(t, 128, 64)
	d.SetCursor(33, 44)
	d.SetTextWrap(false)
	d.SetTextArea(0, 0, 10, 10)
	d.PrintWrapped(0, 0, 60, "one two three", White, 1)

	if x, y := d.Cursor(); x != 33 || y != 44 {
		t.Fatalf("cursor moved to (%d,%d)", x, y)
	}
	// Words wrap against maxWidth even though the text area is tiny and the
	// wrap flag is off.
	for p := range cellsWith(d, White) {
		if p.x >= 60 {
			t.Fatalf("wrap rectangle ignored")
		}
	}
}
