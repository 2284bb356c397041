package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/HSouheill/salesapp_backend/config"
	"github.com/HSouheill/salesapp_backend/controllers"
	"github.com/HSouheill/salesapp_backend/routes"
	"github.com/HSouheill/salesapp_backend/utils"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := config.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("store unavailable", zap.Error(err))
	}

	var notifier controllers.ResetNotifier
	if mailer := utils.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From); mailer != nil {
		notifier = mailer
	}

	e := routes.NewServer(store, routes.Options{
		LoginMatchMode: cfg.LoginMatchMode,
		Notifier:       notifier,
		Logger:         logger,
	}, cfg.CORSOrigins)

	go func() {
		logger.Info("server started",
			zap.String("addr", cfg.Address()),
			zap.String("store", cfg.StoreDriver),
			zap.String("loginMatch", string(cfg.LoginMatchMode)),
		)
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("store close failed", zap.Error(err))
	}
	logger.Info("stopped")
}
