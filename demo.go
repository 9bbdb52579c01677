package fastgfx

// Demo draws the library showcase scene: colored and sized text, numeric
// printing, a word-wrapped paragraph, a bounded text area and a primitive
// sampler. Useful as a smoke test on new panels.
func Demo(d *Display) {
	d.Clear(Black)

	d.SetCursor(10, 10)
	d.SetTextColor(White, Black)
	d.SetTextSize(1)

	d.Println("=== Text Demo ===")
	d.Println("")

	d.SetTextColor(Green, Black)
	d.Print("Green text, ")
	d.SetTextColor(Red, Black)
	d.Print("Red text, ")
	d.SetTextColor(Blue, Black)
	d.Println("Blue text")
	d.Println("")

	d.SetTextColor(Yellow, Black)
	d.Print("Temperature: ")
	d.PrintFloat(25.6, 1)
	d.Println(" C")

	d.Print("Count: ")
	d.PrintlnInt(42)
	d.Println("")

	d.PrintWrapped(10, d.CursorY(), d.Width()-20,
		"This is a long line that should automatically wrap to the next line when it reaches the edge of the display.",
		Cyan, 1)

	d.SetCursor(10, d.CursorY()+40)

	// Bounded text area inside a blue box.
	d.FillRect(d.Width()-200, 100, 180, 100, Blue)
	d.SetTextArea(d.Width()-190, 110, 160, 80)
	d.SetCursor(d.Width()-190, 110)
	d.SetTextColor(White, Blue)

	d.Println("Text Area:")
	d.Println("Confined to")
	d.Println("this blue box")
	d.Println("with auto-wrap")

	d.SetTextArea(0, 0, d.Width(), d.Height())
	d.SetTextColor(White, Black)

	// Primitive sampler along the bottom edge.
	base := d.Height() - 70
	d.FillCircle(40, base+30, 25, Orange)
	d.Circle(110, base+30, 25, Magenta)
	d.Rect(150, base+5, 60, 50, Gray)
	d.FillRect(160, base+15, 40, 30, Purple)
	d.Line(230, base+5, 310, base+55, Yellow)
	d.Line(230, base+55, 310, base+5, Yellow)
}
