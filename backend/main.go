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

	"go.uber.org/zap"

	"opsboard/m/internal/api"
	"opsboard/m/internal/config"
	"opsboard/m/internal/dashboard"
	"opsboard/m/internal/database"
	"opsboard/m/internal/logger"
	"opsboard/m/internal/migrations"
	"opsboard/m/internal/notify"
	"opsboard/m/internal/scheduler"
	"opsboard/m/internal/seed"
	"opsboard/m/internal/store"
	"opsboard/m/internal/view"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	db := database.Connect(cfg.DatabaseDSN)
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		zl.Fatal("migrations failed", zap.Error(err))
	}

	st := store.New(db)
	if err := seed.Load(ctx, st, seed.Sample()); err != nil {
		zl.Fatal("seed failed", zap.Error(err))
	}
	if cfg.InventoryCSV != "" {
		n, err := seed.LoadInventoryCSV(ctx, st, cfg.InventoryCSV, zl)
		if err != nil {
			zl.Warn("inventory catalog not loaded", zap.String("path", cfg.InventoryCSV), zap.Error(err))
		} else {
			zl.Info("inventory catalog loaded", zap.Int("items", n))
		}
	}

	var pub notify.Publisher
	if cfg.RedisEnabled() {
		rp, err := notify.NewRedisPublisher(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisChannel)
		if err != nil {
			zl.Warn("redis unavailable, notifications stay local", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			defer rp.Close()
			pub = rp
			zl.Info("publishing notifications", zap.String("channel", cfg.RedisChannel))
		}
	}

	ctrl := dashboard.New(st, notify.NewCenter(pub, zl), zl)
	if err := ctrl.Init(ctx); err != nil {
		zl.Fatal("dashboard init failed", zap.Error(err))
	}

	renderer, err := view.NewRenderer(zl)
	if err != nil {
		zl.Fatal("templates", zap.Error(err))
	}

	sched := scheduler.New(zl)
	sched.Add("simulation", cfg.SimulationInterval, ctrl.Tick)
	sched.Add("clock", cfg.ClockInterval, ctrl.RefreshClock)
	sched.Start(ctx)

	handler := api.New(ctrl, renderer, zl)
	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler.Router(),
	}

	go func() {
		zl.Info("opsboard server starting", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zl.Warn("http shutdown", zap.Error(err))
	}

	cancel()
	sched.Wait()
	zl.Info("stopped")
}
