package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token is expired")

	ErrBotDetected = errors.New("bot submission detected")
	ErrFormTooFast = errors.New("form submitted too fast")

	ErrSameAsset         = errors.New("cannot swap an asset for itself")
	ErrUnknownAsset      = errors.New("unknown asset")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrQuoteExpired      = errors.New("quote is expired")
)

// RateLimitedError rejects an operation whose sliding attempt window is
// full. RetryAfter is how long until the oldest attempt falls out of the
// window and the operation may be tried again.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited: retry after %s", e.RetryAfter)
}
