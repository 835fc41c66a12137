// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

package service

import (
	"time"

	"github.com/mvelasco/cryptofolio/internal/store"
)

// Attempt-log action keys. Each action is limited independently; the key
// doubles as the storage key for its timestamp array.
const (
	ActionLogin    = "login_attempts"
	ActionRegister = "register_attempts"
	ActionMagic    = "magic_attempts"
)

const (
	rateWindow  = 10 * time.Minute
	maxAttempts = 5
)

// rateLimiter is a sliding-window limiter over persisted attempt
// timestamps. Stale timestamps are pruned on every check, so the window
// slides without any background work of its own.
type rateLimiter struct {
	attempts *store.AttemptLog
	window   time.Duration
	max      int
	now      func() time.Time
}

func newRateLimiter(attempts *store.AttemptLog, now func() time.Time) *rateLimiter {
	return &rateLimiter{
		attempts: attempts,
		window:   rateWindow,
		max:      maxAttempts,
		now:      now,
	}
}

// Check prunes timestamps older than the window and returns a
// *RateLimitedError when the remaining count has reached the limit.
// RetryAfter is measured to the moment the oldest attempt expires.
func (r *rateLimiter) Check(actionKey string) error {
	nowMs := r.now().UnixMilli()
	recent := r.prune(actionKey, nowMs)

	if len(recent) >= r.max {
		oldest := recent[0]
		retryAfter := time.Duration(oldest+r.window.Milliseconds()-nowMs) * time.Millisecond
		return &RateLimitedError{RetryAfter: retryAfter}
	}

	return nil
}

// Record appends a failed attempt at the current time.
func (r *rateLimiter) Record(actionKey string) {
	nowMs := r.now().UnixMilli()
	recent := r.prune(actionKey, nowMs)
	r.attempts.SetAttempts(actionKey, append(recent, nowMs))
}

// Reset clears the window after a successful operation.
func (r *rateLimiter) Reset(actionKey string) {
	r.attempts.Reset(actionKey)
}

// prune drops timestamps older than the window, persists the trimmed array
// when anything was removed, and returns the survivors oldest first.
func (r *rateLimiter) prune(actionKey string, nowMs int64) []int64 {
	all := r.attempts.Attempts(actionKey)
	cutoff := nowMs - r.window.Milliseconds()

	recent := all[:0:0]
	for _, ts := range all {
		if ts > cutoff {
			recent = append(recent, ts)
		}
	}

	if len(recent) != len(all) {
		r.attempts.SetAttempts(actionKey, recent)
	}

	return recent
}
