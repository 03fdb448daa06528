package identity

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Strict tier for credential checks.
const (
	limitLogin = rate.Limit(2)
	burstLogin = 5

	attemptTTL = 3 * time.Minute
)

type attempt struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// loginLimiter throttles login attempts per email. Stale entries are
// pruned on access instead of by a background goroutine; the core has
// no background processing.
type loginLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attempt
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{attempts: make(map[string]*attempt)}
}

func (l *loginLimiter) allow(email string) bool {
	key := strings.ToLower(email)

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for k, a := range l.attempts {
		if now.Sub(a.lastSeen) > attemptTTL {
			delete(l.attempts, k)
		}
	}

	a, ok := l.attempts[key]
	if !ok {
		a = &attempt{limiter: rate.NewLimiter(limitLogin, burstLogin)}
		l.attempts[key] = a
	}
	a.lastSeen = now

	return a.limiter.Allow()
}
