package display

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"PixelTicker/internal/pixel"
)

// PNGDriver writes each frame as a PNG file, replacing it atomically so
// readers never see a half-written image.
type PNGDriver struct {
	Path string
}

// NewPNGDriver creates the output directory if needed.
func NewPNGDriver(path string) (*PNGDriver, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	return &PNGDriver{Path: path}, nil
}

func (d *PNGDriver) Show(buf *pixel.Buffer) error {
	tmp := d.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create frame file: %w", err)
	}
	if err := png.Encode(f, buf); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close frame file: %w", err)
	}
	if err := os.Rename(tmp, d.Path); err != nil {
		return fmt.Errorf("publish frame: %w", err)
	}
	return nil
}

func (d *PNGDriver) Close() error { return nil }
