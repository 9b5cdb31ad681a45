package feed

import (
	"context"
	"fmt"
	"log"

	"PixelTicker/internal/model"
	"PixelTicker/internal/series"
)

// Collector orchestrates price fetching. It owns the primary/fallback
// decision and normalizes raw history payloads to a view's target length.
type Collector struct {
	Primary  Fetcher
	Fallback Fetcher // optional
}

// NewCollector creates a Collector. Fallback may be nil.
func NewCollector(primary, fallback Fetcher) *Collector {
	return &Collector{Primary: primary, Fallback: fallback}
}

// History fetches raw history for a view, truncates it to the most recent
// 2x target samples to bound resampling cost, and resamples it to exactly
// view.Points values. An empty feed result yields an empty slice without
// error.
func (c *Collector) History(ctx context.Context, view model.View) ([]float64, error) {
	points, err := c.fetchHistory(ctx, view.FeedDays)
	if err != nil {
		return nil, fmt.Errorf("fetch history (%s): %w", view.Label, err)
	}
	prices := model.Prices(points)
	if len(prices) == 0 {
		log.Printf("[WARN] history empty (%s)", view.Label)
		return nil, nil
	}
	if len(prices) > 2*view.Points {
		prices = prices[len(prices)-2*view.Points:]
	}
	return series.Resample(prices, view.Points), nil
}

// CurrentPrice fetches the live price, falling back once on failure.
func (c *Collector) CurrentPrice(ctx context.Context) (float64, error) {
	price, err := c.Primary.FetchCurrentPrice(ctx)
	if err == nil {
		return price, nil
	}
	if c.Fallback == nil {
		return 0, err
	}
	log.Printf("[WARN] %s price fetch failed: %v, trying %s", c.Primary.Name(), err, c.Fallback.Name())
	return c.Fallback.FetchCurrentPrice(ctx)
}

func (c *Collector) fetchHistory(ctx context.Context, days int) ([]model.PricePoint, error) {
	points, err := c.Primary.FetchHistory(ctx, days)
	if err == nil {
		return points, nil
	}
	if c.Fallback == nil {
		return nil, err
	}
	log.Printf("[WARN] %s history fetch failed: %v, trying %s", c.Primary.Name(), err, c.Fallback.Name())
	return c.Fallback.FetchHistory(ctx, days)
}
