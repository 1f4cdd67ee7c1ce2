package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"predictionMart/internal/config"
	"predictionMart/internal/finance"
	"predictionMart/internal/logger"
	"predictionMart/internal/openai"
	"predictionMart/internal/server"
	"predictionMart/internal/storage"
	"predictionMart/internal/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Ensure parent directory for the DB exists
	_ = os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755)
	db, err := storage.OpenSQLite("file:" + cfg.DBPath + "?_fk=1")
	if err != nil {
		log.Fatal("db: open", zap.Error(err))
	}
	defer db.Close()
	log.Info("db: opened sqlite", zap.String("path", cfg.DBPath))
	if err := storage.InitSchema(db); err != nil {
		log.Fatal("db: schema", zap.Error(err))
	}
	log.Info("db: schema ensured (usage table)")

	ex := openai.NewExplainer(cfg.OpenAIKey)
	if !ex.Enabled() {
		log.Warn("openai: no API key, /explain disabled")
	}
	cache := finance.NewChartCache(cfg.ChartCacheTTL)

	tg, err := telegram.NewBot(cfg.TelegramToken, cfg.WebhookPublicURL, storage.NewStore(db), ex, cache, log)
	if err != nil {
		log.Fatal("telegram: init", zap.Error(err))
	}
	log.Info("telegram: bot initialized", zap.String("webhook", cfg.WebhookPublicURL))

	mux := server.NewHTTPMux(tg.WebhookHandler) // registers /telegram/webhook
	addr := ":" + cfg.Port
	log.Info("http: listening", zap.String("addr", addr))
	if err := server.ListenAndServe(ctx, addr, mux); err != nil {
		log.Error("server error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("http: stopped")
}
