package config

import (
	"testing"
	"time"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("CAM_HOST", "10.0.0.187")
	t.Setenv("HTTP_HEAD_TIMEOUT", "2s")
	t.Setenv("SCANNER_CMD", "python")
	t.Setenv("API_KEYS", "key1, key2")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	if cfg.CamHost != "10.0.0.187" {
		t.Fatalf("CamHost = %q", cfg.CamHost)
	}
	if cfg.CamPort != 4747 {
		t.Fatalf("default CamPort = %d, want 4747", cfg.CamPort)
	}
	if cfg.HeadTimeout != 2*time.Second {
		t.Fatalf("HeadTimeout = %v", cfg.HeadTimeout)
	}
	if cfg.GetTimeout != 5*time.Second {
		t.Fatalf("default GetTimeout = %v, want 5s", cfg.GetTimeout)
	}
	if keys := cfg.APIKeyList(); len(keys) != 2 || keys[1] != "key2" {
		t.Fatalf("APIKeyList = %v", keys)
	}

	dev := cfg.Device()
	if dev.Host != "10.0.0.187" || dev.Port != 4747 || dev.StreamPath != "/video" {
		t.Fatalf("Device = %+v", dev)
	}
}

func TestFromEnv_EmptyEnvStillLoads(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv with empty env: %v", err)
	}
	if cfg.Addr == "" || cfg.LogDir == "" {
		t.Fatalf("defaults missing: %+v", cfg)
	}
	if cfg.APIKeyList() != nil {
		t.Fatalf("no keys configured should mean nil list, got %v", cfg.APIKeyList())
	}
	ts := cfg.Timeouts()
	if ts.Ping <= 0 || ts.TCP <= 0 || ts.Head <= 0 || ts.Get <= 0 {
		t.Fatalf("timeout defaults missing: %+v", ts)
	}
}
