package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/repo"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.Ping(pingCtx); err != nil {
		p.Close()
		return nil, err
	}
	return &Store{pool: p}, nil
}

func (s *Store) Close() { s.pool.Close() }

func (s *Store) Append(ctx context.Context, run *camera.ProbeRun) error {
	if run.ID == "" {
		run.ID = camera.RunID(time.Now().UTC().Format("20060102T150405.000000000"))
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	// Stage results go in as one jsonb column; nothing queries
	// individual stages server-side.
	results, err := json.Marshal(run.Results)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO probe_runs (id, host, port, results, healthy, started_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		string(run.ID), run.Host, run.Port, results, run.Healthy, run.StartedAt)
	return err
}

func (s *Store) Recent(ctx context.Context, limit int) ([]camera.ProbeRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, host, port, results, healthy, started_at
		   FROM probe_runs
		  ORDER BY started_at DESC
		  LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []camera.ProbeRun
	for rows.Next() {
		var (
			r       camera.ProbeRun
			id      string
			results []byte
		)
		if err := rows.Scan(&id, &r.Host, &r.Port, &results, &r.Healthy, &r.StartedAt); err != nil {
			return nil, err
		}
		r.ID = camera.RunID(id)
		if err := json.Unmarshal(results, &r.Results); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) LastRun(ctx context.Context) (*camera.ProbeRun, error) {
	runs, err := s.Recent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

var _ repo.RunStore = (*Store)(nil)
