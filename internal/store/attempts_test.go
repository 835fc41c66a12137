package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvelasco/cryptofolio/internal/logger"
)

func TestAttemptLog_RoundTrip(t *testing.T) {
	attempts := NewAttemptLog(NewMemoryStore(), logger.Nop())

	assert.Empty(t, attempts.Attempts("login_attempts"))

	attempts.SetAttempts("login_attempts", []int64{100, 200, 300})
	assert.Equal(t, []int64{100, 200, 300}, attempts.Attempts("login_attempts"))

	attempts.Reset("login_attempts")
	assert.Empty(t, attempts.Attempts("login_attempts"))
}

func TestAttemptLog_ActionsAreIndependent(t *testing.T) {
	attempts := NewAttemptLog(NewMemoryStore(), logger.Nop())

	attempts.SetAttempts("login_attempts", []int64{100})
	attempts.SetAttempts("magic_attempts", []int64{200})

	attempts.Reset("login_attempts")

	assert.Empty(t, attempts.Attempts("login_attempts"))
	assert.Equal(t, []int64{200}, attempts.Attempts("magic_attempts"))
}

func TestAttemptLog_MalformedBlobReadsAsEmpty(t *testing.T) {
	session := NewMemoryStore()
	require.NoError(t, session.Set("login_attempts", "not json"))

	attempts := NewAttemptLog(session, logger.Nop())
	assert.Empty(t, attempts.Attempts("login_attempts"))
}
