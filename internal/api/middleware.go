package api

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/newfriendscc/clubsite/internal/api/respond"
	"github.com/newfriendscc/clubsite/internal/auth"
	"github.com/newfriendscc/clubsite/internal/resolver"
	"github.com/newfriendscc/clubsite/internal/store"
)

// --------------------------------------------------------------------------
// Request timing middleware
// --------------------------------------------------------------------------

// TimingMiddleware adds X-Process-Time header to all responses.
func TimingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		w.Header().Set("X-Process-Time", fmt.Sprintf("%.2fms", float64(elapsed.Microseconds())/1000.0))
	})
}

// --------------------------------------------------------------------------
// Site context middleware
// --------------------------------------------------------------------------

// SiteContextMiddleware resolves the settings singleton and the caller's
// admin flag once per request and attaches both to the request context.
// The caller's identity comes from the X-Auth-Email header, set by the
// upstream auth layer; with no header the request is anonymous.
func SiteContextMiddleware(res *resolver.Resolver, st store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sc := auth.SiteContext{
				Settings: res.Settings(r.Context()),
				IsAdmin:  auth.CheckAdmin(r.Context(), st, r.Header.Get("X-Auth-Email")),
			}
			next.ServeHTTP(w, r.WithContext(auth.WithSiteContext(r.Context(), sc)))
		})
	}
}

// RequireAdmin rejects requests whose site context lacks the admin flag.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.FromContext(r.Context()).IsAdmin {
			respond.WriteError(w, http.StatusForbidden, "FORBIDDEN", "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --------------------------------------------------------------------------
// Rate limiting middleware (IP-based token bucket)
// --------------------------------------------------------------------------

// limiterIdleTTL is how long an IP's bucket may sit unused before the
// sweep drops it. An evicted IP simply gets a fresh full bucket.
const limiterIdleTTL = 10 * time.Minute

type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(requestsPerWindow int, window time.Duration) *ipLimiter {
	rps := float64(requestsPerWindow) / window.Seconds()
	l := &ipLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Limit(rps),
		burst:    requestsPerWindow / 2,
	}
	go l.evictLoop()
	return l
}

func (l *ipLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e, exists := l.limiters[ip]; exists {
		e.lastSeen = time.Now()
		return e.limiter
	}
	e := &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst), lastSeen: time.Now()}
	l.limiters[ip] = e
	return e.limiter
}

func (l *ipLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		l.evictIdle(time.Now().Add(-limiterIdleTTL))
	}
}

// evictIdle drops every bucket not seen since the cutoff.
func (l *ipLimiter) evictIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, e := range l.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(l.limiters, ip)
		}
	}
}

// RateLimitMiddleware returns middleware that rate-limits by client IP.
func RateLimitMiddleware(requestsPerWindow int, window time.Duration) func(http.Handler) http.Handler {
	limiter := newIPLimiter(requestsPerWindow, window)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, _ := net.SplitHostPort(r.RemoteAddr)
			if ip == "" {
				ip = r.RemoteAddr
			}

			if !limiter.getLimiter(ip).Allow() {
				w.Header().Set("Retry-After", "60")
				respond.WriteError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
