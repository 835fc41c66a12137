package http

import (
	"encoding/json"
	"net/http"

	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/utils"
	"github.com/mvelasco/cryptofolio/models"
)

func (h *Handler) settings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.UserFromContext(ctx)

	settings := h.services.SettingsService.Settings(ctx, user)
	_, _ = utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	user, _ := utils.UserFromContext(ctx)

	var settings models.UserSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.SettingsService.UpdateSettings(ctx, user, settings); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, settings, http.StatusOK)
}
