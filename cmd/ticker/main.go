package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"PixelTicker/internal/config"
	"PixelTicker/internal/display"
	"PixelTicker/internal/feed"
	"PixelTicker/internal/model"
	"PixelTicker/internal/recorder"
	"PixelTicker/internal/scheduler"
	"PixelTicker/internal/screen"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] PixelTicker starting...")

	// Load .env if present, then config
	_ = godotenv.Load()
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init feed
	var primary, fallback feed.Fetcher
	switch cfg.Feed.Source {
	case "binance":
		primary = feed.NewBinanceFetcher(cfg.Feed.Symbol)
	case "mock":
		primary = &feed.MockFetcher{Price: 50000}
	default:
		primary = feed.NewCoinGeckoFetcher(cfg.Feed.Coin, cfg.Feed.Currency, cfg.Feed.Proxy)
		fallback = feed.NewCoinGeckoFallback(cfg.Feed.Coin, cfg.Feed.Currency)
	}
	col := feed.NewCollector(primary, fallback)
	log.Printf("[INFO] feed source: %s", primary.Name())

	// Init display driver
	var drv display.Driver
	if cfg.Display.Driver == "png" {
		pd, err := display.NewPNGDriver(cfg.Display.OutputPath)
		if err != nil {
			log.Fatalf("[FATAL] init png driver: %v", err)
		}
		drv = pd
		log.Printf("[INFO] display output: %s", cfg.Display.OutputPath)
	} else {
		drv = display.NewNoopDriver()
	}
	defer drv.Close()

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init screen
	scr := screen.New(screen.Config{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		Title:  cfg.Feed.Ticker + "/" + strings.ToUpper(cfg.Feed.Currency),
		Unit:   strings.ToUpper(cfg.Feed.Currency),
		Chart: screen.Geometry{
			Left:        cfg.Chart.Left,
			Top:         cfg.Chart.Top,
			Height:      cfg.Chart.Height,
			RightMargin: cfg.Chart.RightMargin,
			Dash:        cfg.Chart.Dash,
			Gap:         cfg.Chart.Gap,
		},
	})

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	short := model.View(cfg.Views.Short)
	long := model.View(cfg.Views.Long)
	sched := scheduler.NewScheduler(ctx, col, scr, drv, rec, short, long)
	if err := sched.RegisterAll(cfg.Schedule.PriceRefresh, cfg.Schedule.ViewSwap); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}

	if err := sched.Bootstrap(ctx); err != nil {
		log.Fatalf("[FATAL] bootstrap: %v", err)
	}

	sched.Start()
	defer sched.Stop()

	log.Println("[INFO] PixelTicker is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] PixelTicker stopped")
}
