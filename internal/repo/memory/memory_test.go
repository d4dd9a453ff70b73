package memory

import (
	"context"
	"testing"
	"time"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
)

func run(host string, healthy bool) *camera.ProbeRun {
	return &camera.ProbeRun{
		Host: host,
		Port: 4747,
		Results: []camera.ProbeResult{
			{Stage: camera.StagePing},
			{Stage: camera.StageTCP, Succeeded: healthy},
			{Stage: camera.StageHTTP, Succeeded: healthy},
		},
		Healthy:   healthy,
		StartedAt: time.Now().UTC(),
	}
}

func TestMemoryStore_AppendAssignsID(t *testing.T) {
	ctx := context.Background()
	s := New()

	r := run("10.0.0.187", true)
	if err := s.Append(ctx, r); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if r.ID == "" {
		t.Fatal("expected run ID to be set")
	}
}

func TestMemoryStore_RecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, h := range []string{"a", "b", "c"} {
		if err := s.Append(ctx, run(h, true)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 runs, got %d", len(got))
	}
	if got[0].Host != "c" || got[1].Host != "b" {
		t.Fatalf("want newest first, got %s then %s", got[0].Host, got[1].Host)
	}
}

func TestMemoryStore_LastRun(t *testing.T) {
	ctx := context.Background()
	s := New()

	last, err := s.LastRun(ctx)
	if err != nil || last != nil {
		t.Fatalf("empty store should return nil, nil; got %v, %v", last, err)
	}

	_ = s.Append(ctx, run("a", false))
	_ = s.Append(ctx, run("b", true))

	last, err = s.LastRun(ctx)
	if err != nil {
		t.Fatalf("LastRun: %v", err)
	}
	if last == nil || last.Host != "b" || !last.Healthy {
		t.Fatalf("unexpected last run: %+v", last)
	}
}
