package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"PixelTicker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingFetcher always errors, to drive the fallback path.
type failingFetcher struct{}

func (failingFetcher) Name() string { return "failing" }
func (failingFetcher) FetchHistory(context.Context, int) ([]model.PricePoint, error) {
	return nil, errors.New("boom")
}
func (failingFetcher) FetchCurrentPrice(context.Context) (float64, error) {
	return 0, errors.New("boom")
}

func rampHistory(n int) []model.PricePoint {
	points := make([]model.PricePoint, n)
	base := time.Unix(1700000000, 0)
	for i := range points {
		points[i] = model.PricePoint{Time: base.Add(time.Duration(i) * time.Minute), Price: float64(100 + i)}
	}
	return points
}

func shortView() model.View {
	return model.View{Label: "24h", Points: 96, FeedDays: 1, GridCols: 6}
}

func TestHistory_ResamplesToTargetLength(t *testing.T) {
	col := NewCollector(&MockFetcher{HistoryData: rampHistory(288)}, nil)
	values, err := col.History(context.Background(), shortView())
	require.NoError(t, err)
	require.Len(t, values, 96)
	// Endpoints survive truncation + resampling: the raw tail is the last
	// 192 samples, so the resampled series runs from 196 to 387.
	assert.InDelta(t, 196, values[0], 1e-9)
	assert.InDelta(t, 387, values[95], 1e-9)
}

func TestHistory_SmallPayloadUpsampled(t *testing.T) {
	col := NewCollector(&MockFetcher{HistoryData: rampHistory(5)}, nil)
	values, err := col.History(context.Background(), shortView())
	require.NoError(t, err)
	require.Len(t, values, 96)
	assert.InDelta(t, 100, values[0], 1e-9)
	assert.InDelta(t, 104, values[95], 1e-9)
}

func TestHistory_EmptyFeedIsNotAnError(t *testing.T) {
	col := NewCollector(&MockFetcher{HistoryData: []model.PricePoint{}}, nil)
	values, err := col.History(context.Background(), shortView())
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestHistory_FallsBackExplicitly(t *testing.T) {
	col := NewCollector(failingFetcher{}, &MockFetcher{HistoryData: rampHistory(10)})
	values, err := col.History(context.Background(), shortView())
	require.NoError(t, err)
	assert.Len(t, values, 96)
}

func TestHistory_BothSourcesFailing(t *testing.T) {
	col := NewCollector(failingFetcher{}, failingFetcher{})
	_, err := col.History(context.Background(), shortView())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "24h")
}

func TestCurrentPrice_FallsBack(t *testing.T) {
	col := NewCollector(failingFetcher{}, &MockFetcher{Price: 1234.5})
	price, err := col.CurrentPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1234.5, price)
}

func TestCurrentPrice_NoFallback(t *testing.T) {
	col := NewCollector(failingFetcher{}, nil)
	_, err := col.CurrentPrice(context.Background())
	require.Error(t, err)
}
