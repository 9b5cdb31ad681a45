package feed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"PixelTicker/internal/model"

	"github.com/adshao/go-binance/v2"
)

// BinanceFetcher implements Fetcher using the Binance spot API. It needs no
// API keys since klines and prices are public endpoints.
type BinanceFetcher struct {
	client *binance.Client
	symbol string // e.g. "BTCEUR"
}

// NewBinanceFetcher creates a fetcher for the given spot symbol.
func NewBinanceFetcher(symbol string) *BinanceFetcher {
	return &BinanceFetcher{
		client: binance.NewClient("", ""),
		symbol: symbol,
	}
}

func (f *BinanceFetcher) Name() string { return "binance" }

// FetchHistory loads close prices from spot klines: 15-minute candles for a
// one-day window, daily candles otherwise.
func (f *BinanceFetcher) FetchHistory(ctx context.Context, days int) ([]model.PricePoint, error) {
	interval := "1d"
	limit := days
	if days <= 1 {
		interval = "15m"
		limit = 96
	}
	if limit > 1000 {
		limit = 1000
	}

	klines, err := f.client.NewKlinesService().
		Symbol(f.symbol).
		Interval(interval).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance klines: %w", err)
	}

	points := make([]model.PricePoint, 0, len(klines))
	for _, k := range klines {
		closePrice, err := strconv.ParseFloat(k.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("binance parse close %q: %w", k.Close, err)
		}
		points = append(points, model.PricePoint{
			Time:  time.UnixMilli(k.CloseTime),
			Price: closePrice,
		})
	}
	return points, nil
}

// FetchCurrentPrice reads the current spot price for the symbol.
func (f *BinanceFetcher) FetchCurrentPrice(ctx context.Context) (float64, error) {
	prices, err := f.client.NewListPricesService().Symbol(f.symbol).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("binance list prices: %w", err)
	}
	if len(prices) == 0 {
		return 0, fmt.Errorf("binance: no price for %s", f.symbol)
	}
	price, err := strconv.ParseFloat(prices[0].Price, 64)
	if err != nil {
		return 0, fmt.Errorf("binance parse price %q: %w", prices[0].Price, err)
	}
	return price, nil
}
