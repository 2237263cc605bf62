package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/newfriendscc/clubsite/internal/cache"
	"github.com/newfriendscc/clubsite/internal/config"
	"github.com/newfriendscc/clubsite/internal/model"
	"github.com/newfriendscc/clubsite/internal/resolver"
	"github.com/newfriendscc/clubsite/internal/store"
)

// memStore is an in-memory settings + allow-list store for router tests.
// Everything else panics via the embedded nil interface.
type memStore struct {
	store.Store

	mu           sync.Mutex
	settings     *model.Settings
	settingsGets int
	admins       map[string]bool
}

func (m *memStore) GetSettings(ctx context.Context) (*model.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settingsGets++
	if m.settings == nil {
		return nil, store.ErrNotFound
	}
	s := *m.settings
	return &s, nil
}

func (m *memStore) UpsertSettings(ctx context.Context, s model.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &s
	return nil
}

func (m *memStore) IsAdmin(ctx context.Context, email string) (bool, error) {
	return m.admins[email], nil
}

func (m *memStore) getCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settingsGets
}

func newTestRouter(st store.Store) http.Handler {
	res := resolver.New(st, slog.New(slog.NewTextHandler(io.Discard, nil)))
	cfg := &config.Config{
		CORSAllowOrigins: []string{"http://localhost:3000"},
		CacheEnabled:     true,
	}
	return NewRouter(res, st, cache.New(true), cfg)
}

func doRequest(router http.Handler, method, path, email, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if email != "" {
		req.Header.Set("X-Auth-Email", email)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSiteContextComputedOnce(t *testing.T) {
	Convey("Given a router over a store with a settings row", t, func() {
		st := &memStore{
			settings: &model.Settings{TeamName: "Harbour CC"},
			admins:   map[string]bool{},
		}
		router := newTestRouter(st)

		Convey("One settings request fetches settings from the store exactly once", func() {
			w := doRequest(router, http.MethodGet, "/api/v1/settings", "", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "Harbour CC")
			So(st.getCount(), ShouldEqual, 1)
		})
	})
}

func TestSettingsRoundTrip(t *testing.T) {
	Convey("Given a router with an admin on the allow-list", t, func() {
		st := &memStore{
			settings: &model.Settings{TeamName: "Old Name CC"},
			admins:   map[string]bool{"captain@nfcc.com": true},
		}
		router := newTestRouter(st)

		Convey("When the settings are read, updated, and read again", func() {
			first := doRequest(router, http.MethodGet, "/api/v1/settings", "", "")
			So(first.Code, ShouldEqual, http.StatusOK)
			So(first.Body.String(), ShouldContainSubstring, "Old Name CC")

			put := doRequest(router, http.MethodPut, "/api/v1/admin/settings",
				"captain@nfcc.com", `{"team_name":"New Friends Cricket Club"}`)
			So(put.Code, ShouldEqual, http.StatusOK)

			Convey("The written team name reads back, not the cached one", func() {
				second := doRequest(router, http.MethodGet, "/api/v1/settings", "", "")
				So(second.Code, ShouldEqual, http.StatusOK)
				So(second.Body.String(), ShouldContainSubstring, "New Friends Cricket Club")
				So(second.Body.String(), ShouldNotContainSubstring, "Old Name CC")
			})
		})
	})
}

func TestAdminGate(t *testing.T) {
	Convey("Given a router with one admin on the allow-list", t, func() {
		st := &memStore{admins: map[string]bool{"captain@nfcc.com": true}}
		router := newTestRouter(st)
		body := `{"team_name":"Anything"}`

		Convey("An anonymous write is forbidden", func() {
			w := doRequest(router, http.MethodPut, "/api/v1/admin/settings", "", body)
			So(w.Code, ShouldEqual, http.StatusForbidden)
			So(w.Body.String(), ShouldContainSubstring, "FORBIDDEN")
		})

		Convey("An unlisted email is forbidden", func() {
			w := doRequest(router, http.MethodPut, "/api/v1/admin/settings", "fan@example.com", body)
			So(w.Code, ShouldEqual, http.StatusForbidden)
		})

		Convey("A listed email gets through", func() {
			w := doRequest(router, http.MethodPut, "/api/v1/admin/settings", "captain@nfcc.com", body)
			So(w.Code, ShouldEqual, http.StatusOK)
		})
	})
}

func TestCachedReadPath(t *testing.T) {
	Convey("Given a demo-mode router with no store", t, func() {
		router := newTestRouter(nil)

		Convey("The first roster read is a cache miss with an ETag", func() {
			first := doRequest(router, http.MethodGet, "/api/v1/players", "", "")
			So(first.Code, ShouldEqual, http.StatusOK)
			So(first.Header().Get("X-Cache"), ShouldEqual, "MISS")
			etag := first.Header().Get("ETag")
			So(etag, ShouldNotBeEmpty)

			Convey("A repeat read is a cache hit with the same body", func() {
				second := doRequest(router, http.MethodGet, "/api/v1/players", "", "")
				So(second.Code, ShouldEqual, http.StatusOK)
				So(second.Header().Get("X-Cache"), ShouldEqual, "HIT")
				So(second.Body.String(), ShouldEqual, first.Body.String())
			})

			Convey("A conditional read with the ETag gets 304 and no body", func() {
				req := httptest.NewRequest(http.MethodGet, "/api/v1/players", nil)
				req.Header.Set("If-None-Match", etag)
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusNotModified)
				So(w.Body.Len(), ShouldEqual, 0)
			})
		})

		Convey("An unknown player slug is a 404", func() {
			w := doRequest(router, http.MethodGet, "/api/v1/players/nobody", "", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(w.Body.String(), ShouldContainSubstring, "NOT_FOUND")
		})

		Convey("Demo content still serves the roster and settings", func() {
			players := doRequest(router, http.MethodGet, "/api/v1/players", "", "")
			So(players.Body.String(), ShouldContainSubstring, "John Smith")

			settings := doRequest(router, http.MethodGet, "/api/v1/settings", "", "")
			So(settings.Body.String(), ShouldContainSubstring, "New Friends Cricket Club")
		})
	})
}
