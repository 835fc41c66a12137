package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/store"
)

func newTestLimiter(t *testing.T) (*rateLimiter, *store.AttemptLog, *fakeClock) {
	t.Helper()

	attempts := store.NewAttemptLog(store.NewMemoryStore(), logger.Nop())
	clock := &fakeClock{current: time.Unix(1_700_000_000, 0)}
	limiter := newRateLimiter(attempts, clock.Now)

	return limiter, attempts, clock
}

func TestRateLimiter_AllowsUpToMax(t *testing.T) {
	limiter, _, _ := newTestLimiter(t)

	for i := 0; i < maxAttempts; i++ {
		require.NoError(t, limiter.Check(ActionLogin))
		limiter.Record(ActionLogin)
	}

	var limited *RateLimitedError
	assert.ErrorAs(t, limiter.Check(ActionLogin), &limited)
}

func TestRateLimiter_RetryAfterShrinksOverTime(t *testing.T) {
	limiter, _, clock := newTestLimiter(t)

	for i := 0; i < maxAttempts; i++ {
		limiter.Record(ActionLogin)
	}

	var first *RateLimitedError
	require.ErrorAs(t, limiter.Check(ActionLogin), &first)

	clock.Advance(3 * time.Minute)

	var second *RateLimitedError
	require.ErrorAs(t, limiter.Check(ActionLogin), &second)
	assert.Less(t, second.RetryAfter, first.RetryAfter)
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	limiter, _, clock := newTestLimiter(t)

	for i := 0; i < maxAttempts; i++ {
		limiter.Record(ActionLogin)
		clock.Advance(time.Minute)
	}

	var limited *RateLimitedError
	require.ErrorAs(t, limiter.Check(ActionLogin), &limited)

	// advance past the oldest attempt only: one slot frees up
	clock.Advance(rateWindow - 4*time.Minute)
	assert.NoError(t, limiter.Check(ActionLogin))
}

func TestRateLimiter_PrunePersistsTrimmedWindow(t *testing.T) {
	limiter, attempts, clock := newTestLimiter(t)

	limiter.Record(ActionMagic)
	clock.Advance(rateWindow + time.Minute)
	limiter.Record(ActionMagic)

	stored := attempts.Attempts(ActionMagic)
	require.Len(t, stored, 1)
	assert.Equal(t, clock.Now().UnixMilli(), stored[0])
}

func TestRateLimiter_ActionsAreIndependent(t *testing.T) {
	limiter, _, _ := newTestLimiter(t)

	for i := 0; i < maxAttempts; i++ {
		limiter.Record(ActionLogin)
	}

	assert.Error(t, limiter.Check(ActionLogin))
	assert.NoError(t, limiter.Check(ActionRegister))
	assert.NoError(t, limiter.Check(ActionMagic))
}

func TestRateLimiter_ResetClearsWindow(t *testing.T) {
	limiter, attempts, _ := newTestLimiter(t)

	for i := 0; i < maxAttempts; i++ {
		limiter.Record(ActionLogin)
	}

	limiter.Reset(ActionLogin)

	assert.NoError(t, limiter.Check(ActionLogin))
	assert.Empty(t, attempts.Attempts(ActionLogin))
}
