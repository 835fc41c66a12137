package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mvelasco/cryptofolio/internal/utils"
)

func (h *Handler) instruments(w http.ResponseWriter, r *http.Request) {
	instruments, err := h.services.MarketService.Instruments(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, instruments, http.StatusOK)
}

func (h *Handler) instrument(w http.ResponseWriter, r *http.Request) {
	instrument, err := h.services.MarketService.Instrument(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, instrument, http.StatusOK)
}

func (h *Handler) chart(w http.ResponseWriter, r *http.Request) {
	instrumentID := chi.URLParam(r, "id")

	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid days parameter", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	chart, err := h.services.MarketService.Chart(r.Context(), instrumentID, days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, chart, http.StatusOK)
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	fromID := r.URL.Query().Get("from")
	toID := r.URL.Query().Get("to")

	quote, err := h.services.MarketService.Quote(r.Context(), fromID, toID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, quote, http.StatusOK)
}
