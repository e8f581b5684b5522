package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AdPulse/internal/cache"
	"AdPulse/internal/config"
	"AdPulse/internal/cost"
	"AdPulse/internal/predictor"
	"AdPulse/internal/recorder"
	"AdPulse/internal/scheduler"
	"AdPulse/internal/server"
	sig "AdPulse/internal/signal"
	"AdPulse/internal/simulator"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] AdPulse starting...")

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init signal cache: Redis when configured, in-memory otherwise.
	var store cache.Store
	var mem *cache.MemoryStore
	if cfg.Redis.URL != "" {
		rs, err := cache.NewRedisStore(ctx, cfg.Redis.URL)
		if err != nil {
			log.Printf("[WARN] redis unavailable, using in-memory cache: %v", err)
			mem = cache.NewMemoryStore()
			store = mem
		} else {
			store = rs
		}
	} else {
		mem = cache.NewMemoryStore()
		store = mem
	}
	defer store.Close()

	// Init signal providers and aggregator
	trendProvider := &sig.TrendProvider{
		Store:  store,
		Trends: sig.NewTrendsClient(cfg.Trends.BaseURL, cfg.Proxy),
	}
	policyProvider := &sig.PolicyProvider{
		Store: store,
		News:  sig.NewNewsClient(cfg.News.BaseURL, cfg.News.APIKey, cfg.Proxy),
	}
	agg := sig.NewAggregator(trendProvider, policyProvider)

	// Init cost estimator and predictor
	estimator := cost.NewEstimator(cfg.Ads.BaseURL, cfg.Ads.Token, cfg.Proxy)
	pred := predictor.NewHTTPPredictor(cfg.ML.BaseURL, cfg.MLTimeout(), cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath); err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		rec = recorder.NewNoopRecorder()
	} else {
		rec = sr
	}
	defer rec.Close()

	// Init simulator and HTTP server
	sim := simulator.NewSimulator(estimator, agg, pred)
	srv := server.New(sim, estimator, rec, cfg.PollingInterval())

	// Init maintenance scheduler
	sched := scheduler.NewScheduler(mem, rec)
	if err := sched.RegisterAll(); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Router(),
	}
	go func() {
		log.Printf("[INFO] listening on %s", cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] AdPulse is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	cancel()
	log.Println("[INFO] AdPulse stopped")
}
