package http

import (
	"encoding/json"
	"net/http"

	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/utils"
	"github.com/mvelasco/cryptofolio/models"
)

func (h *Handler) balances(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.UserFromContext(ctx)

	balances := h.services.PortfolioService.Balances(ctx, user)
	_, _ = utils.WriteJSON(w, balances, http.StatusOK)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.UserFromContext(ctx)

	history := h.services.PortfolioService.History(ctx, user)
	if history == nil {
		history = []models.Transaction{}
	}

	_, _ = utils.WriteJSON(w, history, http.StatusOK)
}

func (h *Handler) swap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	user, _ := utils.UserFromContext(ctx)

	var req models.SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	tx, err := h.services.PortfolioService.ExecuteSwap(ctx, user, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, tx, http.StatusOK)
}
