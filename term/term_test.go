package term

import (
	"io"
	"testing"

	"tinygo.org/x/tinyfont"

	"fastgfx"
)

var _ io.Writer = (*Console)(nil)

// The console passes its font straight into tinyterm's Config, which takes a
// concrete *tinyfont.Font.
var _ *tinyfont.Font = Config{}.Font

func newConsole(t *testing.T) (*Console, *fastgfx.Display) {
	t.Helper()
	buf := make([]uint16, 160*120)
	d, err := fastgfx.New(buf, 160, 120)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return NewConsole(fastgfx.NewSurface(d, nil), Config{}), d
}

func TestConsoleWrite(t *testing.T) {
	c, _ := newConsole(t)
	if _, err := c.Write([]byte("hello\r\nworld\r\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
}

func TestConsoleClearStartsFreshSession(t *testing.T) {
	c, _ := newConsole(t)
	if _, err := c.Write([]byte("before\r\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	c.Clear()
	if _, err := c.Write([]byte("after\r\n")); err != nil {
		t.Fatalf("Write after Clear: %v", err)
	}
}
