package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/newfriendscc/clubsite/internal/auth"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	// 4 requests per minute gives a burst of 2; the refill rate is far too
	// slow to matter within the test.
	limited := RateLimitMiddleware(4, time.Minute)(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.7:4242"
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, req)
		codes = append(codes, w.Code)

		if w.Code == http.StatusTooManyRequests && w.Header().Get("Retry-After") == "" {
			t.Error("429 response is missing Retry-After")
		}
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("request %d: code = %d, want %d", i+1, codes[i], want[i])
		}
	}
}

func TestRateLimitIsPerIP(t *testing.T) {
	limited := RateLimitMiddleware(4, time.Minute)(okHandler)

	for _, addr := range []string{"203.0.113.7:1000", "203.0.113.7:2000"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		limited.ServeHTTP(httptest.NewRecorder(), req)
	}

	// First IP's bucket is drained; a different IP still gets through.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.9:3000"
	w := httptest.NewRecorder()
	limited.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("fresh IP: code = %d, want 200", w.Code)
	}
}

func TestLimiterEviction(t *testing.T) {
	l := newIPLimiter(10, time.Minute)
	l.getLimiter("203.0.113.7")
	l.getLimiter("198.51.100.9")

	l.mu.Lock()
	l.limiters["203.0.113.7"].lastSeen = time.Now().Add(-time.Hour)
	l.mu.Unlock()

	l.evictIdle(time.Now().Add(-limiterIdleTTL))

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.limiters["203.0.113.7"]; ok {
		t.Error("idle bucket survived eviction")
	}
	if _, ok := l.limiters["198.51.100.9"]; !ok {
		t.Error("active bucket was evicted")
	}
}

func TestLimiterEvictionResetsBucket(t *testing.T) {
	l := newIPLimiter(4, time.Minute)
	lim := l.getLimiter("203.0.113.7")
	lim.Allow()
	lim.Allow() // bucket drained

	l.evictIdle(time.Now().Add(time.Second)) // everything is "idle"

	if !l.getLimiter("203.0.113.7").Allow() {
		t.Error("re-created bucket should start full")
	}
}

func TestRequireAdmin(t *testing.T) {
	gated := RequireAdmin(okHandler)

	t.Run("anonymous request is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/admin/settings", nil)
		w := httptest.NewRecorder()
		gated.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Errorf("code = %d, want 403", w.Code)
		}
	})

	t.Run("admin context passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/admin/settings", nil)
		ctx := auth.WithSiteContext(req.Context(), auth.SiteContext{IsAdmin: true})
		w := httptest.NewRecorder()
		gated.ServeHTTP(w, req.WithContext(ctx))
		if w.Code != http.StatusOK {
			t.Errorf("code = %d, want 200", w.Code)
		}
	})
}

func TestTimingMiddleware(t *testing.T) {
	timed := TimingMiddleware(okHandler)
	w := httptest.NewRecorder()
	timed.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Process-Time") == "" {
		t.Error("X-Process-Time header not set")
	}
}
