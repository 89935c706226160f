package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"katering/internal/auth"
	"katering/internal/config"
	"katering/internal/infrastructure/logger"
	"katering/internal/infrastructure/mysql"
	"katering/internal/jobs"
	"katering/internal/menu"
	"katering/internal/metrics"
	"katering/internal/pesanan"
	"katering/internal/server"
	"katering/internal/shipping"
	shippingrepo "katering/internal/shipping/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := mysql.RunMigrations(db, cfg.Database.MigrationsPath); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	authModule := auth.NewModule(db, cfg.Auth, log)
	menuModule := menu.NewModule(db, cfg.Upload, log)
	shippingModule := shipping.NewModule(db, cfg.Shipping, log)
	pesananController := pesanan.NewModule(db, shippingModule, log)

	pruner := jobs.NewHistoryPruner(
		shippingrepo.NewMySQLHistoryRepository(db),
		cfg.History,
		log,
	)
	if err := pruner.Start(); err != nil {
		log.Fatal("failed to start history pruner", zap.Error(err))
	}

	router := server.NewRouter(server.RouterDeps{
		Auth:     authModule,
		Menu:     menuModule,
		Pesanan:  pesananController,
		Shipping: shippingModule,
		Metrics:  metrics.NewServerMetrics(),
		Logger:   log,
	})

	srv := server.New(cfg.Server, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	pruner.Stop()

	log.Info("server stopped")
}
