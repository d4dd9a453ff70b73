package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/httpapi/middleware"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/repo"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/watch"
)

// Server exposes the probe to the mobile UI: trigger a preflight now,
// read recent history.
type Server struct {
	Logger  *zap.Logger
	Runs    repo.RunStore
	Prober  watch.Prober
	Device  camera.Device
	APIKeys []string
}

func NewServer(l *zap.Logger, runs repo.RunStore, p watch.Prober, dev camera.Device, keys []string) *Server {
	return &Server{Logger: l, Runs: runs, Prober: p, Device: dev, APIKeys: keys}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireKey(s.APIKeys))
		r.Post("/probe", s.handleProbe)
		r.Get("/runs", s.handleListRuns)
	})

	return r
}

type probePayload struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`
}

// handleProbe runs a preflight synchronously and returns the full run.
// Host/port default to the configured device; the UI can override them
// when the phone's address changed.
func (s *Server) handleProbe(w http.ResponseWriter, r *http.Request) {
	var p probePayload
	// Empty body means "probe the configured device".
	_ = json.NewDecoder(r.Body).Decode(&p)

	dev := s.Device
	if p.Host != "" {
		dev.Host = p.Host
	}
	if p.Port != 0 {
		if p.Port < 1 || p.Port > 65535 {
			http.Error(w, "port out of range", http.StatusBadRequest)
			return
		}
		dev.Port = p.Port
	}
	if dev.Host == "" {
		http.Error(w, "no host configured", http.StatusBadRequest)
		return
	}

	started := time.Now().UTC()
	results := s.Prober.Run(r.Context(), dev)

	run := &camera.ProbeRun{
		Host:      dev.Host,
		Port:      dev.Port,
		Results:   results,
		Healthy:   camera.Healthy(results),
		StartedAt: started,
	}
	_ = s.Runs.Append(r.Context(), run)

	s.Logger.Info("api_probe",
		zap.String("host", dev.Host),
		zap.Int("port", dev.Port),
		zap.Bool("healthy", run.Healthy),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(run)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	runs, err := s.Runs.Recent(r.Context(), limit)
	if err != nil {
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []camera.ProbeRun{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(runs)
}
