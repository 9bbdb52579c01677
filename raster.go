package fastgfx

// pixel writes one logical pixel. Coordinates are clipped against the logical
// screen before the rotation transform and against the physical panel after
// it, so a wrong transform can never write out of bounds.
func (d *Display) pixel(x, y int16, c uint16) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	px, py := d.transform(x, y)
	if px < 0 || px >= d.physW || py < 0 || py >= d.physH {
		return
	}
	d.buf[int(py)*int(d.physW)+int(px)] = c
}

// FillRect fills a rectangle, clipped to the logical screen.
//
// Under rotation 0 rows are physically contiguous and are written as slices;
// any other rotation goes pixel by pixel through the transform.
func (d *Display) FillRect(x, y, w, h int16, c uint16) {
	if x >= d.width || y >= d.height || w <= 0 || h <= 0 {
		return
	}
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > d.width {
		w = d.width - x
	}
	if y+h > d.height {
		h = d.height - y
	}
	if w <= 0 || h <= 0 {
		return
	}

	if d.rot != Rotation0 {
		for row := int16(0); row < h; row++ {
			for col := int16(0); col < w; col++ {
				d.pixel(x+col, y+row, c)
			}
		}
		return
	}

	stride := int(d.physW)
	for row := 0; row < int(h); row++ {
		base := (int(y)+row)*stride + int(x)
		line := d.buf[base : base+int(w)]
		for i := range line {
			line[i] = c
		}
	}
}

// Clear fills the whole logical screen.
func (d *Display) Clear(c uint16) {
	d.FillRect(0, 0, d.width, d.height, c)
}

// Line draws a one-pixel line between two points, endpoints included.
// Horizontal and vertical lines collapse to FillRect; the general case is
// integer Bresenham.
func (d *Display) Line(x0, y0, x1, y1 int16, c uint16) {
	if y0 == y1 {
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		d.FillRect(x0, y0, x1-x0+1, 1, c)
		return
	}
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		d.FillRect(x0, y0, 1, y1-y0+1, c)
		return
	}

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := int16(1)
	if x0 > x1 {
		sx = -1
	}
	sy := int16(1)
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for {
		d.pixel(x, y, c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Rect draws a rectangle outline as four lines.
func (d *Display) Rect(x, y, w, h int16, c uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	d.Line(x, y, x+w-1, y, c)
	d.Line(x, y+h-1, x+w-1, y+h-1, c)
	d.Line(x, y, x, y+h-1, c)
	d.Line(x+w-1, y, x+w-1, y+h-1, c)
}

// Circle draws a circle outline using the midpoint algorithm with 8-way
// symmetry. Radius must be positive.
func (d *Display) Circle(x0, y0, r int16, c uint16) {
	if r <= 0 {
		return
	}

	x, y := int16(0), r
	decision := 1 - r

	for x <= y {
		d.pixel(x0+x, y0+y, c)
		d.pixel(x0-x, y0+y, c)
		d.pixel(x0+x, y0-y, c)
		d.pixel(x0-x, y0-y, c)
		d.pixel(x0+y, y0+x, c)
		d.pixel(x0-y, y0+x, c)
		d.pixel(x0+y, y0-x, c)
		d.pixel(x0-y, y0-x, c)

		if decision < 0 {
			decision += 2*x + 3
		} else {
			decision += 2*(x-y) + 5
			y--
		}
		x++
	}
}

// FillCircle fills a circle with horizontal scanlines instead of points.
//
// Rows at the old y are filled before the decrement, and the second pair of
// rows only after the x increment still satisfies x <= y; changing either
// would double-draw or skip scanlines at the octant boundary.
func (d *Display) FillCircle(x0, y0, r int16, c uint16) {
	if r <= 0 {
		return
	}

	x, y := int16(0), r
	decision := 1 - r

	d.FillRect(x0-r, y0, 2*r+1, 1, c)

	for x < y {
		if decision < 0 {
			decision += 2*x + 3
		} else {
			decision += 2*(x-y) + 5
			d.FillRect(x0-x, y0+y, 2*x+1, 1, c)
			d.FillRect(x0-x, y0-y, 2*x+1, 1, c)
			y--
		}
		x++
		if x <= y {
			d.FillRect(x0-y, y0+x, 2*y+1, 1, c)
			d.FillRect(x0-y, y0-x, 2*y+1, 1, c)
		}
	}
}
