package utils

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// pruneInterval is how often Allow drops buckets that have refilled completely.
const pruneInterval = time.Minute

// RateLimiter controls how often a user may run a command.
type RateLimiter struct {
	limits    map[string]*rate.Limiter
	perMinute int
	mu        sync.Mutex
	lastPrune time.Time

	now func() time.Time
}

// NewRateLimiter allows perMinute executions per user and command, refilled evenly over a minute.
// A non-positive perMinute disables limiting.
func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		limits:    make(map[string]*rate.Limiter),
		perMinute: perMinute,
		now:       time.Now,
	}
}

// Allow checks if a user is allowed to execute a command.
// Returns true if allowed, false if rate limited.
func (rl *RateLimiter) Allow(userID, command string) bool {
	if rl == nil || rl.perMinute <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastPrune) >= pruneInterval {
		rl.prune(now)
	}
	return rl.limiter(userID, command).AllowN(now, 1)
}

// RetryAfter returns the number of seconds until the user can try again.
func (rl *RateLimiter) RetryAfter(userID, command string) int {
	if rl == nil || rl.perMinute <= 0 {
		return 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	lim := rl.limiter(userID, command)
	tokens := lim.TokensAt(rl.now())
	if tokens >= 1 {
		return 0
	}

	seconds := (1 - tokens) / float64(lim.Limit())
	wait := int(math.Ceil(seconds - 1e-6))
	if wait < 1 {
		wait = 1
	}
	return wait
}

// prune forgets full buckets; a fresh limiter behaves the same. Must be called with rl.mu held.
func (rl *RateLimiter) prune(now time.Time) {
	for key, lim := range rl.limits {
		if lim.TokensAt(now) >= float64(lim.Burst()) {
			delete(rl.limits, key)
		}
	}
	rl.lastPrune = now
}

// limiter must be called with rl.mu held.
func (rl *RateLimiter) limiter(userID, command string) *rate.Limiter {
	key := userID + ":" + command
	lim, exists := rl.limits[key]
	if !exists {
		lim = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.perMinute)), rl.perMinute)
		rl.limits[key] = lim
	}
	return lim
}
