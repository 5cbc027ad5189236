package handlers

import (
	"net/http"

	"github.com/gamehub/progression-api/internal/words"
)

// GetRandomWord returns a drawing prompt
// @Summary Get Random Word
// @Tags Words
// @Produce json
// @Param category query string false "Category (animals, objects, nature, food, sports)"
// @Success 200 {object} map[string]string "Word"
// @Router /words/random [get]
func (h *Handler) GetRandomWord(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"word":       h.words.RandomWord(category),
		"categories": words.Categories(),
	})
}

// GetMemoryEmojis returns a shuffled emoji set for a memory board
// @Summary Get Memory Board Emojis
// @Tags Words
// @Produce json
// @Param difficulty query string false "Difficulty (easy, medium, hard)" default(medium)
// @Success 200 {object} map[string]interface{} "Emojis"
// @Router /words/memory [get]
func (h *Handler) GetMemoryEmojis(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")
	if difficulty == "" {
		difficulty = "medium"
	}

	emojis := h.words.Shuffle(words.MemoryEmojis(difficulty))
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"difficulty": difficulty,
		"emojis":     emojis,
		"pairs":      len(emojis),
	})
}
