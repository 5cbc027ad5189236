package handlers

import (
	"net/http"
	"strconv"

	"github.com/gamehub/progression-api/internal/models"
)

// GetNotifications returns recently emitted progression events, newest first
// @Summary Get Recent Notifications
// @Tags Notifications
// @Produce json
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} map[string]interface{} "Notifications"
// @Router /notifications [get]
func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	notifications := h.feed.Recent(limit)
	if notifications == nil {
		notifications = []models.Notification{}
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"total":         len(notifications),
	})
}
