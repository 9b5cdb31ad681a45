// Package screen composes full display frames: header bar with the live
// price, the history chart and the last-update footer, plus plain text
// status screens for bootstrap and errors.
package screen

import (
	"fmt"
	"math"

	"PixelTicker/internal/chart"
	"PixelTicker/internal/localtime"
	"PixelTicker/internal/model"
	"PixelTicker/internal/pixel"
	"PixelTicker/internal/series"

	"github.com/dustin/go-humanize"
)

const (
	headerHeight = 23
	titleX       = 6
	titleY       = 8
	priceX       = 120
	priceY       = 5
	priceScale   = 2
	footerX      = 6
	footerRise   = 14 // footer baseline offset from the bottom edge
	messageX     = 6
	messageY     = 10
	messageStep  = 12
)

// Geometry fixes the chart rectangle inside the frame. Width is derived
// from the frame width minus Left and RightMargin.
type Geometry struct {
	Left        int
	Top         int
	Height      int
	RightMargin int
	Dash        int
	Gap         int
}

// Config describes the frame being composed.
type Config struct {
	Width  int
	Height int
	Title  string // header label, e.g. "BTC/EUR"
	Unit   string // currency tag on price labels, e.g. "EUR"
	Chart  Geometry
}

// Screen owns one pixel buffer and redraws complete frames into it.
type Screen struct {
	cfg Config
	buf *pixel.Buffer
}

// New allocates the frame buffer for the given configuration.
func New(cfg Config) *Screen {
	return &Screen{cfg: cfg, buf: pixel.New(cfg.Width, cfg.Height)}
}

// Buffer returns the composed frame for flushing to a display driver.
func (s *Screen) Buffer() *pixel.Buffer { return s.buf }

// Compose redraws the full frame: header, chart for the given view, footer.
// A nil updatedAt leaves the footer empty.
func (s *Screen) Compose(price float64, hist *series.HistoryBuffer, view model.View, updatedAt *localtime.Civil) {
	s.buf.Fill(pixel.Clear)
	s.drawHeader(price)
	chart.Render(s.buf, s.chartSpec(view), hist)
	s.drawFooter(updatedAt)
}

// Message clears the frame and renders plain text lines, used for bootstrap
// progress and error screens.
func (s *Screen) Message(lines ...string) {
	s.buf.Fill(pixel.Clear)
	y := messageY
	for _, line := range lines {
		s.buf.Text(line, messageX, y, pixel.Ink)
		y += messageStep
	}
}

func (s *Screen) chartSpec(view model.View) chart.Spec {
	g := s.cfg.Chart
	return chart.Spec{
		Left:      g.Left,
		Top:       g.Top,
		Width:     s.cfg.Width - g.Left - g.RightMargin,
		Height:    g.Height,
		SpanLabel: view.Label,
		Unit:      s.cfg.Unit,
		Grid:      view.GridCols,
		Dash:      g.Dash,
		Gap:       g.Gap,
	}
}

func (s *Screen) drawHeader(price float64) {
	s.buf.FillRect(0, 0, s.cfg.Width, headerHeight, pixel.Ink)
	s.buf.Text(s.cfg.Title, titleX, titleY, pixel.Clear)
	// The price gets its own clear cell so it stays readable regardless of
	// display inversion.
	label := fmt.Sprintf("%s %s", humanize.Comma(int64(math.Round(price))), s.cfg.Unit)
	s.buf.TextScaled(label, priceX, priceY, priceScale, pixel.Ink, pixel.Clear)
}

func (s *Screen) drawFooter(updatedAt *localtime.Civil) {
	if updatedAt == nil {
		return
	}
	stamp := fmt.Sprintf("Updated: %04d-%02d-%02d %02d:%02d:%02d",
		updatedAt.Year, updatedAt.Month, updatedAt.Day,
		updatedAt.Hour, updatedAt.Min, updatedAt.Sec)
	s.buf.Text(stamp, footerX, s.cfg.Height-footerRise, pixel.Ink)
}
