package repo

import (
	"context"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
)

// RunStore persists probe-run history. Swap in any adapter; the daemon
// picks postgres when DATABASE_URL is set and memory otherwise.
type RunStore interface {
	Append(ctx context.Context, run *camera.ProbeRun) error
	// Recent returns up to limit runs, newest first.
	Recent(ctx context.Context, limit int) ([]camera.ProbeRun, error)
	// LastRun returns nil, nil when no run has been recorded yet.
	LastRun(ctx context.Context) (*camera.ProbeRun, error)
}
