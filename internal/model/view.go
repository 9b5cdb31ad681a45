package model

// View describes one chart window: how much history it covers, how many
// samples it keeps, and how dense its vertical grid is.
type View struct {
	Label    string // shown in the chart corner, e.g. "24h" or "365d"
	Points   int    // history buffer capacity and resample target length
	FeedDays int    // how many days of history to request from the feed
	GridCols int    // desired vertical gridline count
}
