package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"PixelTicker/internal/display"
	"PixelTicker/internal/feed"
	"PixelTicker/internal/localtime"
	"PixelTicker/internal/model"
	"PixelTicker/internal/recorder"
	"PixelTicker/internal/screen"
	"PixelTicker/internal/series"

	"github.com/robfig/cron/v3"
)

// fetchTimeout bounds every feed round trip started by a cron job.
const fetchTimeout = 30 * time.Second

// Scheduler drives the polling loop: a price-refresh job feeding both
// history buffers and a view-swap job alternating between the short and
// long chart windows. A mutex serializes the jobs, so each buffer and the
// frame buffer have exactly one writer at a time.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *feed.Collector
	Screen    *screen.Screen
	Display   display.Driver
	Recorder  recorder.Recorder
	Ctx       context.Context
	Now       func() time.Time

	mu         sync.Mutex
	shortView  model.View
	longView   model.View
	shortHist  *series.HistoryBuffer
	longHist   *series.HistoryBuffer
	price      float64
	lastUpdate *localtime.Civil
	showLong   bool
}

// NewScheduler creates a Scheduler and preallocates both history buffers.
func NewScheduler(ctx context.Context, col *feed.Collector, scr *screen.Screen, drv display.Driver, rec recorder.Recorder, short, long model.View) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Screen:    scr,
		Display:   drv,
		Recorder:  rec,
		Ctx:       ctx,
		Now:       time.Now,
		shortView: short,
		longView:  long,
		shortHist: series.New(short.Points),
		longHist:  series.New(long.Points),
	}
}

// RegisterAll registers the price-refresh and view-swap jobs.
func (s *Scheduler) RegisterAll(refreshSpec, swapSpec string) error {
	if _, err := s.Cron.AddFunc(refreshSpec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	if _, err := s.Cron.AddFunc(swapSpec, s.swapTask); err != nil {
		return fmt.Errorf("register swap task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (manual trigger).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

// Bootstrap loads both history windows and the initial price before the
// cron jobs take over. A failed history load degrades that view to live
// samples only; a failed initial price fetch is fatal.
func (s *Scheduler) Bootstrap(ctx context.Context) error {
	s.showMessage("loading history...", "please wait")

	loads := []struct {
		view model.View
		hist *series.HistoryBuffer
	}{
		{s.shortView, s.shortHist},
		{s.longView, s.longHist},
	}
	for _, l := range loads {
		started := s.Now()
		values, err := s.Collector.History(ctx, l.view)
		if err != nil {
			log.Printf("[WARN] %s history load failed: %v, continuing with live data", l.view.Label, err)
			s.showMessage(l.view.Label+" history failed", truncate(err.Error(), 38))
			continue
		}
		l.hist.Extend(values)
		log.Printf("[INFO] %s history loaded: %d points in %v", l.view.Label, len(values), s.Now().Sub(started).Round(time.Millisecond))
		s.showMessage(l.view.Label+" history loaded", fmt.Sprintf("points: %d", len(values)))
	}

	price, err := s.Collector.CurrentPrice(ctx)
	if err != nil {
		return fmt.Errorf("initial price: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyPriceLocked(price)
	s.redrawLocked()
	return nil
}

func (s *Scheduler) refreshTask() {
	ctx, cancel := context.WithTimeout(s.Ctx, fetchTimeout)
	defer cancel()

	price, err := s.Collector.CurrentPrice(ctx)
	if err != nil {
		log.Printf("[ERROR] price refresh: %v", err)
		s.showMessage("error:", truncate(err.Error(), 38))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyPriceLocked(price)
	log.Printf("[INFO] price updated: %.2f (short: %d, long: %d)", price, s.shortHist.Len(), s.longHist.Len())
	if err := s.Recorder.RecordTick(price, s.shortHist.Len(), s.longHist.Len()); err != nil {
		log.Printf("[ERROR] record tick: %v", err)
	}
	s.redrawLocked()
}

func (s *Scheduler) swapTask() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showLong = !s.showLong
	log.Printf("[INFO] switching to %s view", s.activeViewLocked().Label)
	s.redrawLocked()
}

func (s *Scheduler) applyPriceLocked(price float64) {
	s.price = price
	now := localtime.ToBerlin(localtime.FromTime(s.Now()))
	s.lastUpdate = &now
	s.shortHist.Append(price)
	s.longHist.Append(price)
}

func (s *Scheduler) activeViewLocked() model.View {
	if s.showLong {
		return s.longView
	}
	return s.shortView
}

func (s *Scheduler) activeHistLocked() *series.HistoryBuffer {
	if s.showLong {
		return s.longHist
	}
	return s.shortHist
}

func (s *Scheduler) redrawLocked() {
	view := s.activeViewLocked()
	hist := s.activeHistLocked()
	s.Screen.Compose(s.price, hist, view, s.lastUpdate)

	min, max := hist.MinMax()
	if err := s.Recorder.RecordRender(view.Label, hist.Len(), min, max); err != nil {
		log.Printf("[ERROR] record render: %v", err)
	}
	if err := s.Display.Show(s.Screen.Buffer()); err != nil {
		log.Printf("[ERROR] flush frame: %v", err)
	}
}

func (s *Scheduler) showMessage(lines ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Screen.Message(lines...)
	if err := s.Display.Show(s.Screen.Buffer()); err != nil {
		log.Printf("[ERROR] flush message: %v", err)
	}
}

// truncate shortens msg to at most max runes, never splitting a multi-byte
// character.
func truncate(msg string, max int) string {
	runes := []rune(msg)
	if len(runes) <= max {
		return msg
	}
	return string(runes[:max])
}
