package watch

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/repo/memory"
)

// scriptedProber returns one canned outcome per call.
type scriptedProber struct {
	healthy []bool
	i       int
}

func (s *scriptedProber) Run(ctx context.Context, dev camera.Device) []camera.ProbeResult {
	h := false
	if s.i < len(s.healthy) {
		h = s.healthy[s.i]
	}
	s.i++
	return []camera.ProbeResult{
		{Stage: camera.StagePing},
		{Stage: camera.StageTCP, Succeeded: h, Detail: "port 4747"},
		{Stage: camera.StageHTTP, Succeeded: h},
	}
}

type countingNotifier struct{ sent []string }

func (c *countingNotifier) Send(ctx context.Context, title, text string) error {
	c.sent = append(c.sent, title)
	return nil
}

func newTestWatcher(p Prober, n *countingNotifier, recovery bool) (*Watcher, *memory.Store) {
	store := memory.New()
	w := New(zap.NewNop(), p, store, n, camera.Device{Host: "10.0.0.187", Port: 4747}, Config{
		Interval:         time.Minute,
		Cooldown:         time.Hour,
		NotifyOnRecovery: recovery,
	})
	return w, store
}

func TestWatcher_NotifiesOnceOnDown(t *testing.T) {
	nt := &countingNotifier{}
	w, store := newTestWatcher(&scriptedProber{healthy: []bool{false, false}}, nt, true)
	ctx := context.Background()

	w.runOnce(ctx)
	if len(nt.sent) != 1 {
		t.Fatalf("want 1 notice after first down, got %d", len(nt.sent))
	}

	// Same state again: no new notice.
	w.runOnce(ctx)
	if len(nt.sent) != 1 {
		t.Fatalf("unchanged state must not re-notify, got %d", len(nt.sent))
	}

	runs, _ := store.Recent(ctx, 10)
	if len(runs) != 2 {
		t.Fatalf("every pass must be recorded, got %d runs", len(runs))
	}
}

func TestWatcher_RecoveryBypassesCooldown(t *testing.T) {
	nt := &countingNotifier{}
	w, _ := newTestWatcher(&scriptedProber{healthy: []bool{false, true}}, nt, true)
	ctx := context.Background()

	w.runOnce(ctx) // down -> notice, starts cooldown
	w.runOnce(ctx) // recovered -> notice despite cooldown
	if len(nt.sent) != 2 {
		t.Fatalf("want down + recovery notices, got %v", nt.sent)
	}
}

func TestWatcher_RecoveryDisabled(t *testing.T) {
	nt := &countingNotifier{}
	w, _ := newTestWatcher(&scriptedProber{healthy: []bool{false, true}}, nt, false)
	ctx := context.Background()

	w.runOnce(ctx)
	w.runOnce(ctx)
	if len(nt.sent) != 1 {
		t.Fatalf("recovery notices disabled, want only the down notice; got %v", nt.sent)
	}
}

func TestWatcher_NoNotifierConfigured(t *testing.T) {
	// An unset webhook must reach the watcher as a nil interface, not
	// a disabled sender that errors on every state change.
	store := memory.New()
	w := New(zap.NewNop(), &scriptedProber{healthy: []bool{false, true}}, store, nil,
		camera.Device{Host: "10.0.0.187", Port: 4747}, Config{
			Interval:         time.Minute,
			Cooldown:         time.Hour,
			NotifyOnRecovery: true,
		})
	ctx := context.Background()

	w.runOnce(ctx) // down
	w.runOnce(ctx) // recovered

	runs, _ := store.Recent(ctx, 10)
	if len(runs) != 2 {
		t.Fatalf("runs must still be recorded without a notifier, got %d", len(runs))
	}
}

func TestWatcher_FirstPassHealthyIsQuiet(t *testing.T) {
	nt := &countingNotifier{}
	w, _ := newTestWatcher(&scriptedProber{healthy: []bool{true}}, nt, true)

	w.runOnce(context.Background())
	if len(nt.sent) != 0 {
		t.Fatalf("healthy first pass should not notify, got %v", nt.sent)
	}
}
