// Package ratelimit provides per-client, per-endpoint token bucket rate limiting.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// defaultRoute keys the shared bucket used by requests that match no endpoint config
const defaultRoute = "*"

// staleAfter is how long an unused bucket is kept before cleanup drops it
const staleAfter = time.Hour

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type bucket struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter manages rate limiting for multiple clients using token buckets.
type Limiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucket // client:endpoint:method -> bucket
	config      *Config
	now         func() time.Time
	cleanupStop chan struct{}
	stopOnce    sync.Once
}

// NewLimiter creates a new rate limiter with the given configuration.
// A nil config applies DefaultConfig.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	limiter := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		now:     time.Now,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup(config.CleanupInterval)
	}

	return limiter
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
// Returns true if allowed, false if rate limited, along with rate limit information.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	// Buckets are keyed by the matched config path, not the raw request path, so
	// arbitrary URLs cannot grow the bucket map.
	route := defaultRoute
	endpointConfig := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if endpointConfig != nil {
		route = endpointConfig.Path
	} else {
		endpointConfig = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// Unlimited endpoint (e.g., health check)
	if endpointConfig.Limit <= 0 || endpointConfig.Window <= 0 {
		return true, Info{Allowed: true}
	}

	now := l.now()
	b := l.getBucket(clientID+":"+route+":"+method, *endpointConfig, now)

	allowed := b.limiter.AllowN(now, 1)
	tokens := b.limiter.TokensAt(now)

	info := Info{
		Allowed:   allowed,
		Limit:     endpointConfig.Limit,
		Remaining: max(int(tokens), 0),
		ResetTime: now.Add(untilTokens(b.limiter, tokens, float64(b.limiter.Burst()))),
	}
	if !allowed {
		info.RetryAfter = untilTokens(b.limiter, tokens, 1)
	}
	return allowed, info
}

// untilTokens returns how long the bucket needs to refill from tokens to target
func untilTokens(limiter *rate.Limiter, tokens, target float64) time.Duration {
	if tokens >= target || limiter.Limit() <= 0 {
		return 0
	}
	seconds := (target - tokens) / float64(limiter.Limit())
	return time.Duration(seconds * float64(time.Second))
}

// getBucket gets or creates the token bucket for key and marks it used.
func (l *Limiter) getBucket(key string, config EndpointConfig, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		burst := config.Burst
		if burst <= 0 {
			burst = config.Limit
		}
		every := config.Window / time.Duration(config.Limit)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(every), burst)}
		l.buckets[key] = b
	}
	b.lastAccess = now
	return b
}

// cleanup removes old unused buckets until Stop is called.
func (l *Limiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.removeStale(l.now().Add(-staleAfter))
		case <-l.cleanupStop:
			return
		}
	}
}

// removeStale drops buckets last used before cutoff.
func (l *Limiter) removeStale(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		if l.cleanupStop != nil {
			close(l.cleanupStop)
		}
	})
}
