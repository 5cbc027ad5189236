package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gamehub/progression-api/internal/models"
)

// GetSoundSettings returns the persisted audio preferences
// @Summary Get Sound Settings
// @Tags Settings
// @Produce json
// @Success 200 {object} models.SoundSettings "Settings"
// @Router /settings/sound [get]
func (h *Handler) GetSoundSettings(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.settings.Get(r.Context()))
}

// UpdateSoundSettings merges a partial update into the audio preferences
// @Summary Update Sound Settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body models.SoundSettingsUpdate true "Partial Update"
// @Success 200 {object} models.SoundSettings "Updated Settings"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /settings/sound [put]
func (h *Handler) UpdateSoundSettings(w http.ResponseWriter, r *http.Request) {
	var update models.SoundSettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.validator.Struct(&update); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	h.jsonResponse(w, http.StatusOK, h.settings.Update(r.Context(), update))
}
