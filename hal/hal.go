// Package hal holds the presentation side of the engine: code that pushes a
// finished RGB565 framebuffer to a physical or virtual panel.
//
// The engine itself never presents; drawing and presentation are decoupled so
// the same scene code runs against a desktop window on the host and an SPI
// panel on hardware. Build tags select the implementation.
package hal

import "errors"

var ErrNotImplemented = errors.New("not implemented")

// Presenter pushes one finished frame to a panel.
//
// buf is row-major physical order, one uint16 RGB565 cell per pixel, and must
// hold at least w*h cells.
type Presenter interface {
	Present(buf []uint16, w, h int) error
}
