// Package display defines the capability interface every output device
// implements, decoupling frame composition from how frames reach hardware.
package display

import "PixelTicker/internal/pixel"

// Driver is the single capability a display must provide: accept a composed
// frame. Implementations decide how and when pixels reach the panel.
type Driver interface {
	Show(buf *pixel.Buffer) error
	Close() error
}

// NoopDriver discards frames. Used when no output is configured and in
// tests.
type NoopDriver struct{}

func NewNoopDriver() *NoopDriver { return &NoopDriver{} }

func (*NoopDriver) Show(_ *pixel.Buffer) error { return nil }
func (*NoopDriver) Close() error               { return nil }
