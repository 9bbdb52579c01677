//go:build tinygo && !baremetal

package hal

// StubPresenter stands in on tinygo targets without a wired panel, such as
// wasm builds. Every frame is rejected.
type StubPresenter struct{}

func (StubPresenter) Present(buf []uint16, w, h int) error { return ErrNotImplemented }
