// internal/api/server.go
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"soundproofing-calculator/internal/cache"
	"soundproofing-calculator/internal/common/logger"
	"soundproofing-calculator/internal/common/observability"
	"soundproofing-calculator/internal/engine"
	"soundproofing-calculator/internal/notify"
)

// recommendRequest wraps the engine request with delivery options.
type recommendRequest struct {
	engine.Request
	NotifyEmail string `json:"notify_email,omitempty"`
}

// Server is the HTTP surface: one recommendation endpoint plus the usual
// operational endpoints.
type Server struct {
	engine   *engine.Engine
	notifier *notify.Notifier
	cache    cache.Cache
	obs      *observability.Observability
	logger   logger.Logger
}

func NewServer(eng *engine.Engine, notifier *notify.Notifier, cch cache.Cache, obs *observability.Observability, log logger.Logger) *Server {
	return &Server{
		engine:   eng,
		notifier: notifier,
		cache:    cch,
		obs:      obs,
		logger:   log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// Routes builds the handler mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/recommend", s.handleRecommend)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/cache/stats", s.handleCacheStats)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	rec := s.engine.GenerateRecommendations(r.Context(), req.Request)

	status := "ok"
	if len(rec.Primary) == 0 {
		status = "empty"
	}
	if s.obs != nil {
		s.obs.RecordRequestProcessed(r.Context(), status)
		s.obs.RecordRequestDuration(r.Context(), time.Since(start), status)
	}

	if s.notifier != nil && req.NotifyEmail != "" {
		// Delivery is best effort; the response never waits on SES errors.
		_ = s.notifier.SendSummary(r.Context(), req.NotifyEmail, rec)
	}

	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	if s.cache == nil {
		s.writeJSON(w, http.StatusOK, cache.Stats{})
		return
	}
	s.writeJSON(w, http.StatusOK, s.cache.Stats())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encoding failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
