package fastgfx

import "image/color"

// Named RGB565 colors.
const (
	Black   uint16 = 0x0000
	White   uint16 = 0xFFFF
	Red     uint16 = 0xF800
	Green   uint16 = 0x07E0
	Blue    uint16 = 0x001F
	Yellow  uint16 = 0xFFE0
	Magenta uint16 = 0xF81F
	Cyan    uint16 = 0x07FF
	Gray    uint16 = 0x8410
	Orange  uint16 = 0xFD20
	Purple  uint16 = 0x801F
)

// RGB565 packs 8-bit channels into a 16bpp rrrrrggggggbbbbb pixel.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGBAFrom565 expands a 16bpp pixel to opaque 8-bit channels.
func RGBAFrom565(p uint16) color.RGBA {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return color.RGBA{
		R: uint8((rr * 255) / 31),
		G: uint8((gg * 255) / 63),
		B: uint8((bb * 255) / 31),
		A: 0xFF,
	}
}
