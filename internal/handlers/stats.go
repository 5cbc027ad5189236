package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gamehub/progression-api/internal/models"
)

// GetStats returns the local player's progression record
// @Summary Get Player Stats
// @Tags Stats
// @Produce json
// @Success 200 {object} models.PlayerStats "Player Stats"
// @Router /stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.playerStats.Get(r.Context())
	h.jsonResponse(w, http.StatusOK, stats)
}

// RecordSession handles POST /api/v1/stats/sessions
// @Summary Record Game Session
// @Description Adds a finished session's score to the player's progression
// @Tags Stats
// @Accept json
// @Produce json
// @Param body body models.SessionRequest true "Session"
// @Success 200 {object} models.PlayerStats "Updated Stats"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /stats/sessions [post]
func (h *Handler) RecordSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	stats := h.playerStats.RecordSession(r.Context(), req.Score, req.GameType)
	h.jsonResponse(w, http.StatusOK, stats)
}

// ResetStats handles POST /api/v1/stats/reset
// @Summary Reset Player Stats
// @Tags Stats
// @Produce json
// @Success 200 {object} models.PlayerStats "Fresh Stats"
// @Router /stats/reset [post]
func (h *Handler) ResetStats(w http.ResponseWriter, r *http.Request) {
	h.playerStats.Reset(r.Context())
	h.jsonResponse(w, http.StatusOK, h.playerStats.Get(r.Context()))
}

// ExportStats handles GET /api/v1/stats/export
// @Summary Export Player Stats
// @Description Returns the progression record as a downloadable JSON snapshot
// @Tags Stats
// @Produce json
// @Success 200 {object} models.PlayerStats "Snapshot"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/export [get]
func (h *Handler) ExportStats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.playerStats.Export(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to export stats", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Export failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="gamehub-stats.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(snapshot))
}

// ImportStats handles POST /api/v1/stats/import
// @Summary Import Player Stats
// @Description Replaces the progression record with an uploaded JSON snapshot
// @Tags Stats
// @Accept json
// @Produce json
// @Success 200 {object} models.ImportResult "Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /stats/import [post]
func (h *Handler) ImportStats(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	defer r.Body.Close()

	if !h.playerStats.Import(r.Context(), string(body)) {
		h.jsonResponse(w, http.StatusBadRequest, models.ImportResult{Imported: false})
		return
	}
	h.jsonResponse(w, http.StatusOK, models.ImportResult{Imported: true})
}

// RenamePlayer handles PUT /api/v1/stats/name
// @Summary Rename Player
// @Tags Stats
// @Accept json
// @Produce json
// @Param body body models.RenameRequest true "New Name"
// @Success 200 {object} models.PlayerStats "Updated Stats"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /stats/name [put]
func (h *Handler) RenamePlayer(w http.ResponseWriter, r *http.Request) {
	var req models.RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	stats := h.playerStats.SetPlayerName(r.Context(), req.PlayerName)
	h.jsonResponse(w, http.StatusOK, stats)
}
