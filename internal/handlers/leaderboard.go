package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gamehub/progression-api/internal/models"
)

// GetLeaderboard returns the ranked player list
// @Summary Get Leaderboard
// @Tags Leaderboard
// @Produce json
// @Param sort query string false "Sort key (all, drawing, gartic, memory)" default(all)
// @Success 200 {object} map[string]interface{} "Leaderboard"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /leaderboard [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = "all"
	}

	switch sortBy {
	case "all", models.GameDrawing, models.GameGartic, models.GameMemory:
	default:
		h.errorResponse(w, http.StatusBadRequest, "Unknown sort key: "+sortBy)
		return
	}

	entries := h.leaderboard.GetAll(r.Context(), sortBy)
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"players": entries,
		"total":   len(entries),
		"sort":    sortBy,
	})
}

// GetPlayerRank returns one player's position in the total-score ranking
// @Summary Get Player Rank
// @Tags Leaderboard
// @Produce json
// @Param player path string true "Player Name"
// @Success 200 {object} map[string]interface{} "Rank"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /leaderboard/rank/{player} [get]
func (h *Handler) GetPlayerRank(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "player")

	rank, ok := h.leaderboard.Rank(r.Context(), player)
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Player not on leaderboard: "+player)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"player": player,
		"rank":   rank,
	})
}

// ClearLeaderboard drops the stored ranking; the sample board is reseeded on the next read
// @Summary Clear Leaderboard
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} map[string]string "Cleared"
// @Router /leaderboard [delete]
func (h *Handler) ClearLeaderboard(w http.ResponseWriter, r *http.Request) {
	h.leaderboard.Clear(r.Context())
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}
