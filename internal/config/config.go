package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ViewConfig describes one chart window.
type ViewConfig struct {
	Label    string `yaml:"label"`
	Points   int    `yaml:"points"`
	FeedDays int    `yaml:"feed_days"`
	GridCols int    `yaml:"grid_cols"`
}

// Config holds all application configuration.
type Config struct {
	Feed struct {
		Source   string `yaml:"source"`   // coingecko, binance or mock
		Coin     string `yaml:"coin"`     // CoinGecko coin id
		Currency string `yaml:"currency"` // quote currency
		Symbol   string `yaml:"symbol"`   // Binance spot symbol
		Ticker   string `yaml:"ticker"`   // header label prefix
		Proxy    string `yaml:"proxy"`
	} `yaml:"feed"`
	Display struct {
		Driver     string `yaml:"driver"` // png or noop
		OutputPath string `yaml:"output_path"`
		Width      int    `yaml:"width"`
		Height     int    `yaml:"height"`
	} `yaml:"display"`
	Chart struct {
		Left        int `yaml:"left"`
		Top         int `yaml:"top"`
		Height      int `yaml:"height"`
		RightMargin int `yaml:"right_margin"`
		Dash        int `yaml:"dash"`
		Gap         int `yaml:"gap"`
	} `yaml:"chart"`
	Views struct {
		Short ViewConfig `yaml:"short"`
		Long  ViewConfig `yaml:"long"`
	} `yaml:"views"`
	Schedule struct {
		PriceRefresh string `yaml:"price_refresh"`
		ViewSwap     string `yaml:"view_swap"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; the defaults
// describe a working CoinGecko setup.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FEED_SOURCE"); v != "" {
		cfg.Feed.Source = v
	}
	if v := os.Getenv("FEED_CURRENCY"); v != "" {
		cfg.Feed.Currency = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Feed.Proxy = v
	}
	if v := os.Getenv("DISPLAY_DRIVER"); v != "" {
		cfg.Display.Driver = v
	}
	if v := os.Getenv("DISPLAY_OUTPUT"); v != "" {
		cfg.Display.OutputPath = v
	}
	if v := os.Getenv("PRICE_REFRESH"); v != "" {
		cfg.Schedule.PriceRefresh = v
	}
	if v := os.Getenv("VIEW_SWAP"); v != "" {
		cfg.Schedule.ViewSwap = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Feed.Source == "" {
		cfg.Feed.Source = "coingecko"
	}
	if cfg.Feed.Coin == "" {
		cfg.Feed.Coin = "bitcoin"
	}
	if cfg.Feed.Currency == "" {
		cfg.Feed.Currency = "eur"
	}
	if cfg.Feed.Symbol == "" {
		cfg.Feed.Symbol = "BTCEUR"
	}
	if cfg.Feed.Ticker == "" {
		cfg.Feed.Ticker = "BTC"
	}
	if cfg.Display.Driver == "" {
		cfg.Display.Driver = "png"
	}
	if cfg.Display.OutputPath == "" {
		cfg.Display.OutputPath = "data/frame.png"
	}
	if cfg.Display.Width == 0 {
		cfg.Display.Width = 296
	}
	if cfg.Display.Height == 0 {
		cfg.Display.Height = 128
	}
	if cfg.Chart.Left == 0 {
		cfg.Chart.Left = 55
	}
	if cfg.Chart.Top == 0 {
		cfg.Chart.Top = 34
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 64
	}
	if cfg.Chart.RightMargin == 0 {
		cfg.Chart.RightMargin = 6
	}
	if cfg.Chart.Dash == 0 {
		cfg.Chart.Dash = 3
	}
	if cfg.Chart.Gap == 0 {
		cfg.Chart.Gap = 2
	}
	if cfg.Views.Short.Label == "" {
		cfg.Views.Short = ViewConfig{Label: "24h", Points: 96, FeedDays: 1, GridCols: 6}
	}
	if cfg.Views.Long.Label == "" {
		cfg.Views.Long = ViewConfig{Label: "365d", Points: 365, FeedDays: 365, GridCols: 12}
	}
	if cfg.Schedule.PriceRefresh == "" {
		cfg.Schedule.PriceRefresh = "@every 60s"
	}
	if cfg.Schedule.ViewSwap == "" {
		cfg.Schedule.ViewSwap = "@every 60s"
	}

	return cfg, nil
}

// Validate checks the loaded configuration for contradictions.
func (c *Config) Validate() error {
	switch c.Feed.Source {
	case "coingecko", "binance", "mock":
	default:
		return fmt.Errorf("feed.source must be coingecko, binance or mock, got %q", c.Feed.Source)
	}
	switch c.Display.Driver {
	case "png", "noop":
	default:
		return fmt.Errorf("display.driver must be png or noop, got %q", c.Display.Driver)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display dimensions must be positive")
	}
	if c.Views.Short.Points <= 0 || c.Views.Long.Points <= 0 {
		return fmt.Errorf("view points must be positive")
	}
	if c.Chart.Left+c.Chart.RightMargin >= c.Display.Width {
		return fmt.Errorf("chart margins exceed display width")
	}
	if c.Chart.Top+c.Chart.Height >= c.Display.Height {
		return fmt.Errorf("chart rectangle exceeds display height")
	}
	return nil
}
