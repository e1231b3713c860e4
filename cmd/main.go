package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/amirko228/couple-shop/internal/config"
	httpapi "github.com/amirko228/couple-shop/internal/http"
	"github.com/amirko228/couple-shop/internal/relay"
	"github.com/amirko228/couple-shop/internal/repository"
	"github.com/amirko228/couple-shop/internal/service"

	_ "github.com/amirko228/couple-shop/docs"
)

// @title couple-shop API
// @version 1.0
// @description Storefront backend: catalog, cart, checkout via Telegram relay, admin panel.
// @BasePath /api/v1
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load(logger)

	kv := repository.NewMemoryKV()
	products := repository.NewProductStore(kv, logger)
	ordersRepo := repository.NewOrderList()
	printsRepo := repository.NewCustomPrintList()

	notifier := relay.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID, logger)

	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"

	srv := httpapi.NewServer(httpapi.Deps{
		Catalog:  service.NewCatalogService(products, cfg.FeaturedLimit, logger),
		Cart:     service.NewCartService(kv, logger),
		Orders:   service.NewOrderService(ordersRepo, printsRepo, notifier, logger),
		Auth:     service.NewAuthService(kv, logger),
		Uploads:  service.NewUploadService(kv, logger),
		KV:       kv,
		Sessions: sessionStore,
		Log:      logger,
	})

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
