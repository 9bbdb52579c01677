//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"time"
)

// ILI9488Config selects the SPI port and pin wiring for the panel. A nil SPI
// picks SPI1 on GP10-GP15; a zero Frequency runs the bus at 40 MHz.
type ILI9488Config struct {
	SPI           *machine.SPI
	SCK, SDO, SDI machine.Pin
	CS, DC, RST   machine.Pin
	Frequency     uint32
}

// ILI9488 presents frames to an SPI-attached ILI9488 panel.
type ILI9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	txBuf []byte
}

// NewILI9488 configures the SPI bus and brings the panel out of reset.
func NewILI9488(cfg ILI9488Config) (*ILI9488, error) {
	if cfg.SPI == nil {
		cfg.SPI = machine.SPI1
		cfg.SCK, cfg.SDO, cfg.SDI = machine.GP10, machine.GP11, machine.GP12
		cfg.CS, cfg.DC, cfg.RST = machine.GP13, machine.GP14, machine.GP15
	}
	if cfg.SPI == nil {
		return nil, errors.New("no SPI port")
	}
	if cfg.Frequency == 0 {
		cfg.Frequency = 40_000_000
	}

	cfg.SPI.Configure(machine.SPIConfig{
		SCK:       cfg.SCK,
		SDO:       cfg.SDO,
		SDI:       cfg.SDI,
		Frequency: cfg.Frequency,
	})

	p := &ILI9488{
		spi:   *cfg.SPI,
		cs:    cfg.CS,
		dc:    cfg.DC,
		rst:   cfg.RST,
		txBuf: make([]byte, 4096),
	}

	p.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.cs.High()
	p.dc.High()
	p.rst.High()

	p.reset()
	p.init()

	return p, nil
}

func (p *ILI9488) reset() {
	p.rst.Low()
	time.Sleep(10 * time.Millisecond)
	p.rst.High()
	// The controller needs 120 ms after releasing reset before SLPOUT.
	time.Sleep(120 * time.Millisecond)
}

func (p *ILI9488) init() {
	p.cmd(0xC0, 0x17, 0x15)             // PWCTRL1
	p.cmd(0xC1, 0x41)                   // PWCTRL2
	p.cmd(0xC5, 0x00, 0x12, 0x80, 0x40) // VMCTRL
	p.cmd(0x3A, 0x55)                   // COLMOD: 16bpp
	p.cmd(0xB1, 0xA0, 0x11)             // FRMCTRL1
	p.cmd(0xB6, 0x02, 0x22, 0x27)       // DISCTRL
	p.cmd(0x21)                         // INVON
	p.cmd(0x36, 0x20|0x40|0x08)         // MADCTL: MV|MX, landscape scan, BGR order

	p.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	p.cmd(0x29) // DISPON
}

func (p *ILI9488) cmd(cmd byte, data ...byte) {
	p.cs.Low()
	p.dc.Low()
	p.spi.Tx([]byte{cmd}, nil)
	p.dc.High()
	if len(data) > 0 {
		p.spi.Tx(data, nil)
	}
	p.cs.High()
}

func (p *ILI9488) setWindow(x0, y0, x1, y1 uint16) {
	p.cmd(0x2A,
		byte(x0>>8), byte(x0),
		byte(x1>>8), byte(x1),
	)
	p.cmd(0x2B,
		byte(y0>>8), byte(y0),
		byte(y1>>8), byte(y1),
	)
	p.cmd(0x2C)
}

// Present streams the framebuffer to the panel. Cells are converted to the
// panel's big-endian byte order in a fixed tx chunk buffer.
func (p *ILI9488) Present(buf []uint16, w, h int) error {
	if w <= 0 || h <= 0 || len(buf) < w*h {
		return errors.New("invalid framebuffer")
	}

	p.setWindow(0, 0, uint16(w-1), uint16(h-1))

	p.cs.Low()
	p.dc.High()

	chunk := p.txBuf
	if len(chunk)%2 != 0 {
		chunk = chunk[:len(chunk)-1]
	}
	if len(chunk) < 2 {
		return errors.New("tx buffer too small")
	}

	cells := w * h
	for off := 0; off < cells; {
		n := len(chunk) / 2
		if remain := cells - off; n > remain {
			n = remain
		}
		for i := 0; i < n; i++ {
			c := buf[off+i]
			chunk[i*2] = byte(c >> 8)
			chunk[i*2+1] = byte(c)
		}
		p.spi.Tx(chunk[:n*2], nil)
		off += n
	}

	p.cs.High()
	return nil
}
