// camprobed serves the probe API for the mobile UI and keeps watching
// the camera in the background.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/config"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/httpapi"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/logging"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/notify"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/preflight"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/repo"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/repo/memory"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/repo/postgres"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/watch"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store repo.RunStore = memory.New()
	if cfg.DatabaseURL != "" {
		pg, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("postgres_connect", zap.Error(err))
		}
		defer pg.Close()
		store = pg
	}

	// The daemon probes without a console sink; results land in the
	// store and the log.
	prober := preflight.New(cfg.Timeouts(), nil)

	// Only a configured webhook goes into the fan-out; a disabled one
	// would otherwise look like a live notifier to the watcher.
	var notifier notify.Notifier
	if wh := notify.NewWebhook(cfg.NotifyWebhook); wh != nil {
		notifier = notify.Multi{wh}
	}

	w := watch.New(logger, prober, store, notifier, cfg.Device(), watch.Config{
		Interval:         cfg.WatchInterval,
		Cooldown:         cfg.NotifyCooldown,
		NotifyOnRecovery: true,
	})
	go w.Run(ctx)

	api := httpapi.NewServer(logger, store, prober, cfg.Device(), cfg.APIKeyList())
	srv := &http.Server{Addr: cfg.Addr, Handler: api.Router()}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("api_serve", zap.Error(err))
	}
}
