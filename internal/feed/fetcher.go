package feed

import (
	"context"
	"time"

	"PixelTicker/internal/model"
)

// Fetcher defines the interface for one price data source. Failures are
// reported as errors; the retry/fallback decision belongs to the caller.
type Fetcher interface {
	// FetchHistory returns (timestamp, price) samples covering the last
	// `days` days, oldest first. An empty result without error means the
	// source has no data for the window.
	FetchHistory(ctx context.Context, days int) ([]model.PricePoint, error)
	FetchCurrentPrice(ctx context.Context) (float64, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price       float64
	HistoryData []model.PricePoint
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ context.Context, days int) ([]model.PricePoint, error) {
	if m.HistoryData != nil {
		return m.HistoryData, nil
	}
	return generateMockHistory(m.Price, 24*days), nil
}

func (m *MockFetcher) FetchCurrentPrice(_ context.Context) (float64, error) {
	return m.Price, nil
}

func generateMockHistory(basePrice float64, count int) []model.PricePoint {
	points := make([]model.PricePoint, count)
	now := time.Now()
	for i := 0; i < count; i++ {
		points[i] = model.PricePoint{
			Time:  now.Add(-time.Duration(count-i) * time.Hour),
			Price: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return points
}
