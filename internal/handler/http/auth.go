package http

import (
	"encoding/json"
	"net/http"

	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/utils"
	"github.com/mvelasco/cryptofolio/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.SessionService.Register(ctx, creds); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.SessionService.Login(ctx, creds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.TokenResponse{Token: token}, http.StatusOK)
}

// magicLink issues a one-time login token. In a real deployment the token
// would be delivered out of band; the demo returns it in the response so
// the flow can be exercised end to end.
func (h *Handler) magicLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.MagicLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.SessionService.IssueMagicLink(ctx, req.Email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handler) magicVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.MagicVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.SessionService.VerifyMagicToken(ctx, req.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.services.SessionService.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := models.SessionStatusResponse{
		Authenticated: h.services.SessionService.IsAuthenticated(ctx),
	}
	if token, ok := h.services.SessionService.Token(ctx); ok {
		status.Token = token
	}

	_, _ = utils.WriteJSON(w, status, http.StatusOK)
}
