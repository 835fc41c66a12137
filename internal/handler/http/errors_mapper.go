package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mvelasco/cryptofolio/internal/crypto"
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/service"
	"github.com/mvelasco/cryptofolio/internal/store"
	"github.com/mvelasco/cryptofolio/internal/utils"
	"github.com/mvelasco/cryptofolio/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrBotDetected:         http.StatusBadRequest,
	service.ErrFormTooFast:         http.StatusBadRequest,
	service.ErrInvalidToken:        http.StatusUnauthorized,
	service.ErrExpiredToken:        http.StatusUnauthorized,
	service.ErrSameAsset:           http.StatusBadRequest,
	service.ErrUnknownAsset:        http.StatusBadRequest,
	service.ErrInsufficientFunds:   http.StatusUnprocessableEntity,
	service.ErrQuoteExpired:        http.StatusConflict,

	store.ErrDuplicateUser: http.StatusConflict,
	store.ErrUnknownUser:   http.StatusNotFound,
	store.ErrWrongPassword: http.StatusUnauthorized,

	crypto.ErrDecryptionFailed: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps a service error to its HTTP shape. Rate-limited
// rejections get a 429 with both the Retry-After header and a retry hint in
// the body; everything else goes through the status map with a uniform
// JSON error body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var limited *service.RateLimitedError
	if errors.As(err, &limited) {
		log.Warn().Dur("retry_after", limited.RetryAfter).Msg("request rate limited")
		w.Header().Set("Retry-After", strconv.FormatInt(int64(limited.RetryAfter.Seconds())+1, 10))
		_, _ = utils.WriteJSON(w, models.ErrorResponse{
			Error:        "too many attempts",
			RetryAfterMs: limited.RetryAfter.Milliseconds(),
		}, http.StatusTooManyRequests)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(status)}, status)
		return
	}

	log.Err(err).Msg("request rejected")
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
}
