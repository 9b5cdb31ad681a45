package model

import "time"

// PricePoint is a single (timestamp, price) sample from a market data feed.
type PricePoint struct {
	Time  time.Time
	Price float64
}

// Prices extracts just the price values, preserving order.
func Prices(points []PricePoint) []float64 {
	prices := make([]float64, len(points))
	for i, p := range points {
		prices[i] = p.Price
	}
	return prices
}
