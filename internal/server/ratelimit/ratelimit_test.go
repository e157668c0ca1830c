package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_WithinBudget(t *testing.T) {
	limiter := NewLimiter(Config{RequestsPerWindow: 3, Window: time.Minute})

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("client-a")
		assert.True(t, allowed)
		assert.Equal(t, 3, info.Limit)
		assert.Equal(t, 2-i, info.Remaining)
	}

	allowed, info := limiter.Allow("client-a")
	assert.False(t, allowed)
	assert.Zero(t, info.Remaining)
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(Config{RequestsPerWindow: 1, Window: time.Minute})

	allowed, _ := limiter.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("client-a")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("client-b")
	assert.True(t, allowed)
}

func TestAllow_WindowResets(t *testing.T) {
	limiter := NewLimiter(Config{RequestsPerWindow: 1, Window: 20 * time.Millisecond})

	allowed, _ := limiter.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("client-a")
	require.False(t, allowed)

	time.Sleep(30 * time.Millisecond)

	allowed, _ = limiter.Allow("client-a")
	assert.True(t, allowed)
}

func TestAllow_ResetAtIsStableWithinWindow(t *testing.T) {
	limiter := NewLimiter(Config{RequestsPerWindow: 5, Window: time.Minute})

	_, first := limiter.Allow("client-a")
	_, second := limiter.Allow("client-a")
	assert.Equal(t, first.ResetAt, second.ResetAt)
}

func TestNewLimiter_Defaults(t *testing.T) {
	limiter := NewLimiter(Config{})
	assert.Equal(t, DefaultRequestsPerWindow, limiter.cfg.RequestsPerWindow)
	assert.Equal(t, DefaultWindow, limiter.cfg.Window)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPM", "")
	cfg := LoadConfig()
	assert.Equal(t, DefaultRequestsPerWindow, cfg.RequestsPerWindow)

	t.Setenv("RATE_LIMIT_RPM", "120")
	cfg = LoadConfig()
	assert.Equal(t, 120, cfg.RequestsPerWindow)

	t.Setenv("RATE_LIMIT_RPM", "-5")
	cfg = LoadConfig()
	assert.Equal(t, DefaultRequestsPerWindow, cfg.RequestsPerWindow)
}
