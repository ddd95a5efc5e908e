package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"StockDigest/internal/collector"
	"StockDigest/internal/config"
	"StockDigest/internal/model"
	"StockDigest/internal/notifier"
	"StockDigest/internal/recorder"
	"StockDigest/internal/report"
	"StockDigest/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockDigest starting...")

	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	// Load config
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

	// Init fetcher
	var fetcher collector.Fetcher
	if os.Getenv("MOCK_DATA") == "true" {
		fetcher = &collector.MockFetcher{Price: 100}
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher, cfg.Watchlist.Symbols)

	// Init formatter and policy
	formatter := report.NewFormatter(cfg.Watchlist.Symbols)
	policy := model.ThresholdPolicy(cfg.Watchlist.Targets)
	tags := make(map[string]model.RecommendationTag, len(cfg.Watchlist.Recommendations))
	for sym, tag := range cfg.Watchlist.Recommendations {
		tags[sym] = model.RecommendationTag(tag)
	}

	// Init mail notifier
	mn := notifier.NewMailNotifier(
		cfg.Mail.SMTPHost, cfg.Mail.SMTPPort,
		cfg.Mail.SenderName, cfg.Mail.SenderEmail, cfg.Mail.SenderPassword,
		cfg.Mail.RecipientName, cfg.Mail.RecipientEmail,
	)

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

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, formatter, policy, tags, mn, rec, cfg.DataSource.LookbackDays, cfg.Mail.RecipientEmail)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing daily report now")
		go sched.RunNow()
	}

	log.Println("[INFO] StockDigest is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockDigest stopped")
}
