package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gamehub/progression-api/internal/models"
	"github.com/gamehub/progression-api/internal/storage"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// A missing key still means the backend answered.
	_, err := h.store.Get(ctx, models.KeyPlayerStats)
	storeOK := err == nil || errors.Is(err, storage.ErrNotFound)

	w.Header().Set("Content-Type", "application/json")
	if !storeOK {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ready":  storeOK,
		"checks": map[string]bool{"storage": storeOK},
	})
}

// Routes assembles the full HTTP surface of the service.
func (h *Handler) Routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/stats", func(r chi.Router) {
			r.Get("/", h.GetStats)
			r.Post("/sessions", h.RecordSession)
			r.Post("/reset", h.ResetStats)
			r.Get("/export", h.ExportStats)
			r.Post("/import", h.ImportStats)
			r.Put("/name", h.RenamePlayer)
		})

		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/", h.GetLeaderboard)
			r.Get("/rank/{player}", h.GetPlayerRank)
			r.Delete("/", h.ClearLeaderboard)
		})

		r.Route("/challenges", func(r chi.Router) {
			r.Get("/today", h.GetTodaysChallenges)
			r.Post("/{id}/complete", h.CompleteChallenge)
			r.Post("/reset", h.ResetChallenges)
			r.Get("/streak", h.GetStreak)
			r.Post("/streak/check", h.CheckStreak)
		})

		r.Get("/notifications", h.GetNotifications)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/sound", h.GetSoundSettings)
			r.Put("/sound", h.UpdateSoundSettings)
		})

		r.Route("/words", func(r chi.Router) {
			r.Get("/random", h.GetRandomWord)
			r.Get("/memory", h.GetMemoryEmojis)
		})
	})

	return r
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}
