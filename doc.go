// Package fastgfx is a direct-framebuffer 2D rendering engine for
// fixed-resolution RGB565 raster panels.
//
// The engine draws into a caller-owned framebuffer: a contiguous row-major
// slice of 16-bit pixels, one uint16 per cell. It never allocates in the draw
// path, never resizes the buffer, and handles invalid input by clipping or
// silently doing nothing, so every call returns predictably.
//
// Pipeline (fixed):
//
//	Text engine → Glyph renderer → Rasterizer → Rotation transform → buffer write.
//
// A Display is a single mutable session: rotation, text cursor, colors and the
// active text area all live on it. It is not safe for concurrent use; callers
// with more than one producer must serialize access themselves. Presenting the
// finished buffer to a panel is the caller's job (see the hal package for host
// and device presenters).
package fastgfx
