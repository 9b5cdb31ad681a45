package screen

import (
	"testing"

	"PixelTicker/internal/localtime"
	"PixelTicker/internal/model"
	"PixelTicker/internal/pixel"
	"PixelTicker/internal/series"
)

func testConfig() Config {
	return Config{
		Width:  296,
		Height: 128,
		Title:  "BTC/EUR",
		Unit:   "EUR",
		Chart: Geometry{
			Left:        55,
			Top:         34,
			Height:      64,
			RightMargin: 6,
			Dash:        3,
			Gap:         2,
		},
	}
}

func shortView() model.View {
	return model.View{Label: "24h", Points: 96, FeedDays: 1, GridCols: 6}
}

func TestCompose_HeaderBarInverted(t *testing.T) {
	s := New(testConfig())
	hist := series.New(96)
	hist.Extend([]float64{58000, 58500, 59000})
	s.Compose(59000, hist, shortView(), nil)

	buf := s.Buffer()
	// The header bar is solid ink outside the price cell.
	for _, x := range []int{0, 2, 50, 295} {
		if buf.Pixel(x, 0) != pixel.Ink {
			t.Errorf("header bar not filled at x=%d", x)
		}
	}
	// The title is punched out of the bar in clear pixels.
	clearInTitle := false
	for y := titleY; y < titleY+pixel.GlyphHeight; y++ {
		for x := titleX; x < titleX+8*pixel.GlyphWidth; x++ {
			if buf.Pixel(x, y) == pixel.Clear {
				clearInTitle = true
			}
		}
	}
	if !clearInTitle {
		t.Error("header title not visible on the inked bar")
	}
}

func TestCompose_FooterTimestamp(t *testing.T) {
	s := New(testConfig())
	hist := series.New(96)
	hist.Append(100)
	stamp := localtime.Civil{Year: 2024, Month: 6, Day: 1, Hour: 12, Min: 30, Sec: 45}
	s.Compose(100, hist, shortView(), &stamp)

	buf := s.Buffer()
	footerTop := testConfig().Height - footerRise
	found := false
	for y := footerTop; y < footerTop+pixel.GlyphHeight && !found; y++ {
		for x := footerX; x < buf.Width(); x++ {
			if buf.Pixel(x, y) == pixel.Ink {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("footer timestamp not drawn")
	}
}

func TestCompose_NilTimestampLeavesFooterEmpty(t *testing.T) {
	s := New(testConfig())
	hist := series.New(96)
	hist.Append(100)
	s.Compose(100, hist, shortView(), nil)

	buf := s.Buffer()
	// Scan below the min/max label rows, which may touch the footer top.
	footerTop := testConfig().Height - footerRise + 4
	for y := footerTop; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if buf.Pixel(x, y) == pixel.Ink {
				t.Fatalf("unexpected footer ink at (%d,%d)", x, y)
			}
		}
	}
}

func TestCompose_EmptyHistorySafe(t *testing.T) {
	s := New(testConfig())
	s.Compose(0, series.New(96), shortView(), nil)
}

func TestMessage_LinesStacked(t *testing.T) {
	s := New(testConfig())
	s.Message("loading history...", "please wait")
	buf := s.Buffer()

	firstLine := false
	for y := messageY; y < messageY+pixel.GlyphHeight; y++ {
		for x := 0; x < buf.Width(); x++ {
			if buf.Pixel(x, y) == pixel.Ink {
				firstLine = true
			}
		}
	}
	secondLine := false
	for y := messageY + messageStep; y < messageY+messageStep+pixel.GlyphHeight; y++ {
		for x := 0; x < buf.Width(); x++ {
			if buf.Pixel(x, y) == pixel.Ink {
				secondLine = true
			}
		}
	}
	if !firstLine || !secondLine {
		t.Fatalf("message lines missing: first=%v second=%v", firstLine, secondLine)
	}
}
