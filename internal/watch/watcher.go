// Package watch re-probes the camera on an interval while the scanner
// runs, records each run, and raises a notification when the camera
// changes state.
package watch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/notify"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/repo"
)

// Prober runs one full reachability pass.
type Prober interface {
	Run(ctx context.Context, dev camera.Device) []camera.ProbeResult
}

type Config struct {
	Interval time.Duration
	// Cooldown suppresses repeated DOWN notices. Recovery notices
	// bypass it.
	Cooldown         time.Duration
	NotifyOnRecovery bool
}

type Watcher struct {
	Logger   *zap.Logger
	Prober   Prober
	Store    repo.RunStore
	Notifier notify.Notifier
	Device   camera.Device
	Cfg      Config

	lastState  *bool
	lastSentAt time.Time
}

func New(logger *zap.Logger, p Prober, store repo.RunStore, n notify.Notifier, dev camera.Device, cfg Config) *Watcher {
	return &Watcher{
		Logger:   logger,
		Prober:   p,
		Store:    store,
		Notifier: n,
		Device:   dev,
		Cfg:      cfg,
	}
}

// Run starts the loop: an immediate pass, then one each tick, until
// ctx is cancelled. Interval 0 disables the watcher.
func (w *Watcher) Run(ctx context.Context) {
	if w.Cfg.Interval == 0 {
		w.Logger.Info("watcher_disabled")
		return
	}
	t := time.NewTicker(w.Cfg.Interval)
	defer t.Stop()

	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("watcher_stopped")
			return
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context) {
	started := time.Now().UTC()
	results := w.Prober.Run(ctx, w.Device)
	healthy := camera.Healthy(results)

	run := &camera.ProbeRun{
		Host:      w.Device.Host,
		Port:      w.Device.Port,
		Results:   results,
		Healthy:   healthy,
		StartedAt: started,
	}
	if err := w.Store.Append(ctx, run); err != nil {
		w.Logger.Warn("watch_append_error", zap.Error(err))
	}
	w.Logger.Debug("watch_probed",
		zap.String("host", w.Device.Host),
		zap.Int("port", w.Device.Port),
		zap.Bool("healthy", healthy),
	)

	w.maybeNotify(ctx, healthy, results)
}

func (w *Watcher) maybeNotify(ctx context.Context, healthy bool, results []camera.ProbeResult) {
	wasKnown := w.lastState != nil
	stateChanged := !wasKnown || *w.lastState != healthy
	w.lastState = &healthy
	if !stateChanged || w.Notifier == nil {
		return
	}

	now := time.Now()
	cooled := w.lastSentAt.IsZero() || now.Sub(w.lastSentAt) >= w.Cfg.Cooldown

	switch {
	case !healthy && cooled:
		title := "🔴 Camera DOWN"
		body := fmt.Sprintf("camera %s\n%s", w.Device.Addr(), detailLines(results))
		if err := w.Notifier.Send(ctx, title, body); err != nil {
			w.Logger.Warn("watch_notify_error", zap.Error(err))
			return
		}
		w.lastSentAt = now
	// A healthy first observation is not a recovery; stay quiet.
	case healthy && wasKnown && w.Cfg.NotifyOnRecovery:
		title := "🟢 Camera RECOVERED"
		body := fmt.Sprintf("camera %s is serving again", w.Device.Addr())
		if err := w.Notifier.Send(ctx, title, body); err != nil {
			w.Logger.Warn("watch_notify_error", zap.Error(err))
		}
	}
}

func detailLines(results []camera.ProbeResult) string {
	out := ""
	for _, r := range results {
		mark := "fail"
		if r.Succeeded {
			mark = "ok"
		}
		out += fmt.Sprintf("%s: %s (%s)\n", r.Stage, r.Detail, mark)
	}
	return out
}
