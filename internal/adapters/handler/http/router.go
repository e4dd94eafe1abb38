package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/thisorthat/bot/internal/core/ports"
)

type statusResponse struct {
	LivePolls     int    `json:"live_polls"`
	Questions     int    `json:"questions"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	StartedAt     string `json:"started_at"`
}

// NewHandler exposes a small read-only surface for supervisors: liveness and
// a process status snapshot. Polls are never mutated through HTTP.
func NewHandler(polls ports.PollService, questions ports.QuestionService) http.Handler {
	startedAt := time.Now()

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		resp := statusResponse{
			LivePolls:     polls.LiveCount(),
			Questions:     questions.Count(),
			UptimeSeconds: int64(time.Since(startedAt).Seconds()),
			StartedAt:     startedAt.UTC().Format(time.RFC3339),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
		}
	})

	return r
}
