package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"robomua/aiysha-bot/internal/beauty"
	"robomua/aiysha-bot/internal/bot"
	"robomua/aiysha-bot/internal/catalog"
	"robomua/aiysha-bot/internal/config"
	"robomua/aiysha-bot/internal/handlers"
	"robomua/aiysha-bot/internal/llm"
	"robomua/aiysha-bot/internal/retry"
	"robomua/aiysha-bot/internal/session"
	"robomua/aiysha-bot/internal/utils"
	"robomua/aiysha-bot/internal/whatsapp"

	_ "robomua/aiysha-bot/internal/metrics"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	if cfg.WhatsApp.VerifyToken == "" {
		log.Fatal("APP_TOKEN environment variable not set")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("error building logger: %v", err)
	}
	defer logger.Sync()

	feats, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("error loading feature catalog", zap.Error(err))
	}

	policy := retry.Policy{MaxAttempts: cfg.Retry.MaxAttempts, Delay: cfg.Retry.Delay}
	waClient := whatsapp.NewClient(cfg.WhatsApp, policy, logger)
	beautyClient := beauty.NewClient(cfg.Services, policy, logger)
	sessions := session.NewCacheStore(cfg.Session.TTL)

	var fallback bot.Fallback = bot.StaticFallback{}
	if cfg.Fallback.Mode == "model" {
		brandInfo := ""
		if cfg.Fallback.BrandPageURL != "" {
			brandInfo, err = utils.FetchBrandInfo(cfg.Fallback.BrandPageURL)
			if err != nil {
				logger.Warn("couldn't fetch brand info, continuing without it", zap.Error(err))
			}
		}
		fallback = bot.NewModelFallback(llm.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, brandInfo))
	}

	dispatcher := bot.NewDispatcher(sessions, feats, waClient, beautyClient, fallback, logger)
	worker := handlers.NewWorker(64, dispatcher, waClient, logger)
	go worker.Run(context.Background())

	r := chi.NewRouter()
	r.Get("/", handlers.IndexHandler())
	r.Get("/welcome", handlers.WelcomeHandler())
	r.Get("/webhook", handlers.VerifyHandler(cfg.WhatsApp.VerifyToken, logger))
	r.Post("/webhook", handlers.WebhookHandler(worker, logger))
	r.Handle("/metrics", promhttp.Handler())

	logger.Info("listening", zap.String("address", cfg.Server.Address))
	if err := http.ListenAndServe(cfg.Server.Address, r); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
