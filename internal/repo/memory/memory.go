package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
)

type Store struct {
	mu   sync.RWMutex
	runs []camera.ProbeRun
}

func New() *Store {
	return &Store{runs: make([]camera.ProbeRun, 0, 128)}
}

func (m *Store) Append(ctx context.Context, run *camera.ProbeRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if run.ID == "" {
		run.ID = camera.RunID(time.Now().UTC().Format("20060102T150405.000000000"))
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	m.runs = append(m.runs, *run)
	return nil
}

func (m *Store) Recent(ctx context.Context, limit int) ([]camera.ProbeRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if limit <= 0 || limit > len(m.runs) {
		limit = len(m.runs)
	}
	out := make([]camera.ProbeRun, 0, limit)
	for i := len(m.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.runs[i])
	}
	return out, nil
}

func (m *Store) LastRun(ctx context.Context) (*camera.ProbeRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.runs) == 0 {
		return nil, nil
	}
	r := m.runs[len(m.runs)-1]
	return &r, nil
}
