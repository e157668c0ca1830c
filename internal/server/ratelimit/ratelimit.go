// Package ratelimit provides a fixed-window per-client request limiter.
// Windows live in an expiring cache, so idle clients cost nothing and no
// cleanup bookkeeping is needed beyond the cache's own janitor.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Defaults when the environment does not override them
const (
	DefaultRequestsPerWindow = 60
	DefaultWindow            = time.Minute
)

// Config holds limiter settings
type Config struct {
	RequestsPerWindow int
	Window            time.Duration
}

// LoadConfig reads limiter settings from the environment. RATE_LIMIT_RPM
// sets requests per minute; zero or unset uses the default.
func LoadConfig() Config {
	cfg := Config{
		RequestsPerWindow: DefaultRequestsPerWindow,
		Window:            DefaultWindow,
	}
	if raw := os.Getenv("RATE_LIMIT_RPM"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			cfg.RequestsPerWindow = parsed
		}
	}
	return cfg
}

// Info reports the window state returned with every decision
type Info struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

type window struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window counter per client ID
type Limiter struct {
	cfg     Config
	windows *gocache.Cache
}

// NewLimiter creates a limiter. Window entries expire one full window after
// last use.
func NewLimiter(cfg Config) *Limiter {
	if cfg.RequestsPerWindow <= 0 {
		cfg.RequestsPerWindow = DefaultRequestsPerWindow
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	return &Limiter{
		cfg:     cfg,
		windows: gocache.New(2*cfg.Window, cfg.Window),
	}
}

// Allow records a request for the client and reports whether it is within
// the window's budget.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	now := time.Now()

	w := l.windowFor(clientID, now)

	w.mu.Lock()
	defer w.mu.Unlock()

	if now.After(w.resetAt) {
		w.count = 0
		w.resetAt = now.Add(l.cfg.Window)
	}

	info := Info{Limit: l.cfg.RequestsPerWindow, ResetAt: w.resetAt}
	if w.count >= l.cfg.RequestsPerWindow {
		info.Remaining = 0
		return false, info
	}

	w.count++
	info.Remaining = l.cfg.RequestsPerWindow - w.count
	return true, info
}

func (l *Limiter) windowFor(clientID string, now time.Time) *window {
	if cached, ok := l.windows.Get(clientID); ok {
		return cached.(*window)
	}
	w := &window{resetAt: now.Add(l.cfg.Window)}
	// Add loses the race only to a concurrent insert of the same key.
	if err := l.windows.Add(clientID, w, gocache.DefaultExpiration); err != nil {
		if cached, ok := l.windows.Get(clientID); ok {
			return cached.(*window)
		}
	}
	return w
}
