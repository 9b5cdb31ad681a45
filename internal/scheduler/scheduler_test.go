package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"unicode/utf8"

	"PixelTicker/internal/feed"
	"PixelTicker/internal/model"
	"PixelTicker/internal/pixel"
	"PixelTicker/internal/recorder"
	"PixelTicker/internal/screen"
)

// captureDriver counts flushed frames and remembers the last one.
type captureDriver struct {
	mu     sync.Mutex
	frames int
	last   *pixel.Buffer
}

func (d *captureDriver) Show(buf *pixel.Buffer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames++
	d.last = buf
	return nil
}

func (d *captureDriver) Close() error { return nil }

func (d *captureDriver) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

func testScreen() *screen.Screen {
	return screen.New(screen.Config{
		Width:  296,
		Height: 128,
		Title:  "BTC/EUR",
		Unit:   "EUR",
		Chart:  screen.Geometry{Left: 55, Top: 34, Height: 64, RightMargin: 6, Dash: 3, Gap: 2},
	})
}

func testViews() (model.View, model.View) {
	short := model.View{Label: "24h", Points: 96, FeedDays: 1, GridCols: 6}
	long := model.View{Label: "365d", Points: 365, FeedDays: 365, GridCols: 12}
	return short, long
}

func newTestScheduler(fetcher feed.Fetcher) (*Scheduler, *captureDriver) {
	drv := &captureDriver{}
	short, long := testViews()
	col := feed.NewCollector(fetcher, nil)
	s := NewScheduler(context.Background(), col, testScreen(), drv, recorder.NewNoopRecorder(), short, long)
	return s, drv
}

func TestRefreshNow_AppendsToBothBuffers(t *testing.T) {
	s, drv := newTestScheduler(&feed.MockFetcher{Price: 58000})
	s.RunRefreshNow()
	s.RunRefreshNow()

	if s.shortHist.Len() != 2 || s.longHist.Len() != 2 {
		t.Fatalf("expected 2 samples in both buffers, got %d and %d", s.shortHist.Len(), s.longHist.Len())
	}
	if s.price != 58000 {
		t.Errorf("expected price 58000, got %v", s.price)
	}
	if s.lastUpdate == nil {
		t.Error("expected last update timestamp after refresh")
	}
	if drv.count() != 2 {
		t.Errorf("expected 2 flushed frames, got %d", drv.count())
	}
}

func TestRefresh_FetchErrorShowsMessageAndKeepsBuffers(t *testing.T) {
	s, drv := newTestScheduler(&feed.MockFetcher{Price: 100})
	s.RunRefreshNow()

	s.Collector = feed.NewCollector(erroringFetcher{}, nil)
	s.RunRefreshNow()

	if s.shortHist.Len() != 1 {
		t.Fatalf("failed refresh must not append, got %d samples", s.shortHist.Len())
	}
	if drv.count() != 2 {
		t.Errorf("expected error screen flush, got %d frames", drv.count())
	}
}

func TestSwap_TogglesActiveView(t *testing.T) {
	s, _ := newTestScheduler(&feed.MockFetcher{Price: 100})
	if s.activeViewLocked().Label != "24h" {
		t.Fatal("expected short view initially")
	}
	s.swapTask()
	if s.activeViewLocked().Label != "365d" {
		t.Fatal("expected long view after one swap")
	}
	s.swapTask()
	if s.activeViewLocked().Label != "24h" {
		t.Fatal("expected short view after two swaps")
	}
}

func TestBootstrap_LoadsHistoryAndInitialPrice(t *testing.T) {
	s, drv := newTestScheduler(&feed.MockFetcher{Price: 200})
	if err := s.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	// Both buffers filled to capacity by the resampled history, then the
	// initial live price appended with FIFO eviction.
	if s.shortHist.Len() != 96 {
		t.Errorf("expected short buffer full (96), got %d", s.shortHist.Len())
	}
	if s.longHist.Len() != 365 {
		t.Errorf("expected long buffer full (365), got %d", s.longHist.Len())
	}
	values := s.shortHist.Values()
	if values[len(values)-1] != 200 {
		t.Errorf("expected live price appended last, got %v", values[len(values)-1])
	}
	if drv.count() == 0 {
		t.Error("bootstrap flushed no frames")
	}
}

func TestBootstrap_HistoryFailureDegradesToLive(t *testing.T) {
	s, _ := newTestScheduler(historyFailingFetcher{price: 300})
	if err := s.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap must tolerate history failure: %v", err)
	}
	if s.shortHist.Len() != 1 {
		t.Fatalf("expected only the live sample, got %d", s.shortHist.Len())
	}
}

func TestBootstrap_PriceFailureIsFatal(t *testing.T) {
	s, _ := newTestScheduler(erroringFetcher{})
	if err := s.Bootstrap(context.Background()); err == nil {
		t.Fatal("expected error when the initial price fetch fails")
	}
}

func TestRegisterAll_BadSpec(t *testing.T) {
	s, _ := newTestScheduler(&feed.MockFetcher{})
	if err := s.RegisterAll("not a cron spec", "@every 60s"); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}

func TestTruncate_KeepsRuneBoundaries(t *testing.T) {
	msg := "fehler: übertragung unterbrochen"
	got := truncate(msg, 10)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated message is not valid UTF-8: %q", got)
	}
	if n := len([]rune(got)); n != 10 {
		t.Errorf("expected 10 runes, got %d", n)
	}
	if truncate("short", 38) != "short" {
		t.Error("short message must pass through unchanged")
	}
}

type erroringFetcher struct{}

func (erroringFetcher) Name() string { return "erroring" }
func (erroringFetcher) FetchHistory(context.Context, int) ([]model.PricePoint, error) {
	return nil, errors.New("feed down")
}
func (erroringFetcher) FetchCurrentPrice(context.Context) (float64, error) {
	return 0, errors.New("feed down")
}

type historyFailingFetcher struct{ price float64 }

func (historyFailingFetcher) Name() string { return "history-failing" }
func (historyFailingFetcher) FetchHistory(context.Context, int) ([]model.PricePoint, error) {
	return nil, errors.New("history down")
}
func (f historyFailingFetcher) FetchCurrentPrice(context.Context) (float64, error) {
	return f.price, nil
}
