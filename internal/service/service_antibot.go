package service

import (
	"time"

	"github.com/mvelasco/cryptofolio/models"
)

// minFormAge is the shortest plausible time a human needs to fill the
// credentials form. Submissions faster than this are treated as automated.
const minFormAge = 2 * time.Second

// checkAntiBot screens a credentials submission before any credential work
// happens. A filled honeypot field counts as a failed attempt against the
// action's rate window; a too-fast submission is rejected without recording
// an attempt, since impatient retries by a real user should not burn their
// quota.
func (s *sessionManager) checkAntiBot(creds models.CredentialsRequest, actionKey string) error {
	if creds.HoneypotField != "" {
		s.limiter.Record(actionKey)
		return ErrBotDetected
	}

	if creds.FormAgeMs > 0 && creds.FormAgeMs < minFormAge.Milliseconds() {
		return ErrFormTooFast
	}

	return nil
}
