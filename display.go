package fastgfx

import "errors"

// Rotation selects the logical orientation of the screen.
type Rotation uint8

const (
	Rotation0   Rotation = iota // native orientation
	Rotation90                  // 90 degrees clockwise
	Rotation180                 // upside down
	Rotation270                 // 270 degrees clockwise
)

var (
	ErrBadPanelSize = errors.New("invalid panel size")
	ErrShortBuffer  = errors.New("framebuffer smaller than panel")
)

// Display is a rendering session over a caller-owned RGB565 framebuffer.
//
// The buffer is row-major in physical panel order and must stay valid for
// every call made on the Display. A Display is a single mutable session and
// is not safe for concurrent use.
type Display struct {
	buf   []uint16
	physW int16
	physH int16

	rot    Rotation
	width  int16 // logical, swapped under 90/270
	height int16

	cursorX     int16
	cursorY     int16
	textColor   uint16
	textBG      uint16
	textSize    uint8
	textWrap    bool
	lineSpacing int16
	areaX       int16
	areaY       int16
	areaW       int16
	areaH       int16
}

// New wraps a pre-allocated framebuffer of at least physW*physH pixels.
//
// All state starts at defaults: rotation 0, cursor at the origin, white on
// black text at size 1, wrap enabled, line spacing 2, text area covering the
// whole screen.
func New(buf []uint16, physW, physH int16) (*Display, error) {
	if physW <= 0 || physH <= 0 {
		return nil, ErrBadPanelSize
	}
	if len(buf) < int(physW)*int(physH) {
		return nil, ErrShortBuffer
	}
	d := &Display{buf: buf, physW: physW, physH: physH}
	d.reset()
	return d, nil
}

func (d *Display) reset() {
	d.rot = Rotation0
	d.width = d.physW
	d.height = d.physH
	d.cursorX = 0
	d.cursorY = 0
	d.textColor = White
	d.textBG = Black
	d.textSize = 1
	d.textWrap = true
	d.lineSpacing = 2
	d.areaX = 0
	d.areaY = 0
	d.areaW = d.width
	d.areaH = d.height
}

// SetRotation changes the logical orientation. Logical width/height swap for
// the portrait rotations and the text area resets to the full new screen.
// Content already in the buffer is not transformed.
func (d *Display) SetRotation(r Rotation) {
	switch r {
	case Rotation0, Rotation180:
		d.width, d.height = d.physW, d.physH
	case Rotation90, Rotation270:
		d.width, d.height = d.physH, d.physW
	default:
		return
	}
	d.rot = r
	d.areaX = 0
	d.areaY = 0
	d.areaW = d.width
	d.areaH = d.height
}

func (d *Display) Rotation() Rotation { return d.rot }

// Width returns the logical width under the current rotation.
func (d *Display) Width() int16 { return d.width }

// Height returns the logical height under the current rotation.
func (d *Display) Height() int16 { return d.height }

// PhysicalSize returns the fixed panel dimensions.
func (d *Display) PhysicalSize() (w, h int16) { return d.physW, d.physH }

// Buffer returns the underlying framebuffer for the presentation blit.
func (d *Display) Buffer() []uint16 { return d.buf }

// transform maps a logical coordinate to its physical framebuffer coordinate.
// Forward map only; all consumers write, nobody reads back.
func (d *Display) transform(x, y int16) (int16, int16) {
	switch d.rot {
	case Rotation90:
		return d.physW - 1 - y, x
	case Rotation180:
		return d.physW - 1 - x, d.physH - 1 - y
	case Rotation270:
		return y, d.physH - 1 - x
	}
	return x, y
}
