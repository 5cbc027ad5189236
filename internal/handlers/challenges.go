package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gamehub/progression-api/internal/models"
)

// GetTodaysChallenges returns the three challenges for the current date
// @Summary Get Today's Challenges
// @Tags Challenges
// @Produce json
// @Success 200 {object} map[string]interface{} "Challenges"
// @Router /challenges/today [get]
func (h *Handler) GetTodaysChallenges(w http.ResponseWriter, r *http.Request) {
	challenges := h.challenges.Today(r.Context())
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"challenges": challenges,
		"streak":     h.challenges.Streak(r.Context()),
	})
}

// CompleteChallenge marks one of today's challenges as done
// @Summary Complete Challenge
// @Tags Challenges
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} models.CompleteResult "Result"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /challenges/{id}/complete [post]
func (h *Handler) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !h.challenges.Complete(r.Context(), id) {
		h.errorResponse(w, http.StatusNotFound, "Unknown challenge: "+id)
		return
	}

	h.jsonResponse(w, http.StatusOK, models.CompleteResult{
		Completed: true,
		Streak:    h.challenges.Streak(r.Context()),
	})
}

// ResetChallenges regenerates today's set with completion flags cleared
// @Summary Reset Today's Challenges
// @Tags Challenges
// @Produce json
// @Success 200 {object} map[string]interface{} "Challenges"
// @Router /challenges/reset [post]
func (h *Handler) ResetChallenges(w http.ResponseWriter, r *http.Request) {
	h.challenges.ResetToday(r.Context())
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"challenges": h.challenges.Today(r.Context()),
	})
}

// GetStreak returns the current completion streak
// @Summary Get Challenge Streak
// @Tags Challenges
// @Produce json
// @Success 200 {object} map[string]int "Streak"
// @Router /challenges/streak [get]
func (h *Handler) GetStreak(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]int{
		"streak": h.challenges.Streak(r.Context()),
	})
}

// CheckStreak expires the streak if a day was missed, then returns it
// @Summary Check Challenge Streak
// @Tags Challenges
// @Produce json
// @Success 200 {object} map[string]int "Streak"
// @Router /challenges/streak/check [post]
func (h *Handler) CheckStreak(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]int{
		"streak": h.challenges.CheckStreak(r.Context()),
	})
}
