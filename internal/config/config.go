package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/preflight"
)

// Config is everything the harness needs, resolved once at startup and
// passed explicitly to components. Nothing below this layer reads the
// process environment.
type Config struct {
	CamHost       string `envconfig:"CAM_HOST"`
	CamPort       int    `envconfig:"CAM_PORT" default:"4747"`
	CamStreamPath string `envconfig:"CAM_STREAM_PATH" default:"/video"`

	PingTimeout time.Duration `envconfig:"PING_TIMEOUT" default:"1s"`
	TCPTimeout  time.Duration `envconfig:"TCP_TIMEOUT" default:"1s"`
	HeadTimeout time.Duration `envconfig:"HTTP_HEAD_TIMEOUT" default:"4s"`
	GetTimeout  time.Duration `envconfig:"HTTP_GET_TIMEOUT" default:"5s"`

	ScannerCmd  string   `envconfig:"SCANNER_CMD"`
	ScannerArgs []string `envconfig:"SCANNER_ARGS"`
	// Env keys copied from the harness environment into the scanner
	// process (API keys the providers need).
	PassEnv []string `envconfig:"SCANNER_PASS_ENV" default:"OPENAI_API_KEY,UPCITEMDB_KEY,FLIPP_POSTAL_CODE"`

	WatchInterval  time.Duration `envconfig:"WATCH_INTERVAL" default:"0"`
	NotifyWebhook  string        `envconfig:"NOTIFY_WEBHOOK"`
	NotifyCooldown time.Duration `envconfig:"NOTIFY_COOLDOWN" default:"5m"`

	Addr        string `envconfig:"API_ADDR" default:"127.0.0.1:8080"`
	APIKeys     string `envconfig:"API_KEYS"`
	LogDir      string `envconfig:"LOG_DIR" default:"logs"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
}

// FromEnv loads the .env key file if present, then resolves Config from
// the environment with defaults applied.
func FromEnv() (Config, error) {
	_ = ReadEnv()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Device() camera.Device {
	return camera.Device{
		Host:       c.CamHost,
		Port:       c.CamPort,
		StreamPath: c.CamStreamPath,
	}
}

func (c Config) Timeouts() preflight.Timeouts {
	return preflight.Timeouts{
		Ping: c.PingTimeout,
		TCP:  c.TCPTimeout,
		Head: c.HeadTimeout,
		Get:  c.GetTimeout,
	}
}

// APIKeyList splits the comma-separated API_KEYS value. Empty means
// the API runs open (local dev).
func (c Config) APIKeyList() []string {
	if strings.TrimSpace(c.APIKeys) == "" {
		return nil
	}
	parts := strings.Split(c.APIKeys, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
