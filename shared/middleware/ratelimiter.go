package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/boardkit-dev/boardkit/shared/utils"
)

// IdentityRateLimiter keeps a token bucket per identity (account id or IP).
type IdentityRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func NewRateLimiter(rps float64, burst int) *IdentityRateLimiter {
	return &IdentityRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *IdentityRateLimiter) Allow(identity string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[identity]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[identity] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}

func RateLimit(rl *IdentityRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				http.Error(w, "Rate limit exceeded, try again later", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetAccountIdentity keys rate limiting by the authenticated account.
// Possible only after auth middleware populated the context.
func GetAccountIdentity(r *http.Request) (string, error) {
	account := GetAccountFromContext(r)
	if account == nil {
		return "", fmt.Errorf("can't get account id")
	}
	return fmt.Sprintf("account_%d", account.Id), nil
}

// GetIP extracts the client IP from RemoteAddr.
// Does NOT trust X-Real-IP or X-Forwarded-For headers (no reverse proxy).
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}

	return ip, nil
}
