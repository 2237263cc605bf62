package handler

import (
	"net/http"
	"sync"

	"github.com/newfriendscc/clubsite/internal/auth"
	"github.com/newfriendscc/clubsite/internal/cache"
	"github.com/newfriendscc/clubsite/internal/model"
)

// GetSettings returns the site settings singleton.
// @Summary Site settings
// @Description Returns the site settings. Always a full object — demo defaults when no database is configured.
// @Tags site
// @Produce json
// @Success 200 {object} model.Settings
// @Router /settings [get]
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	// Already resolved once by the site-context middleware.
	sc := auth.FromContext(r.Context())
	h.serveCached(w, r, "settings", cache.TTLSettings, func() interface{} {
		if sc.Settings != nil {
			return sc.Settings
		}
		return h.res.Settings(r.Context())
	})
}

// GetStats returns the four-counter site summary.
// @Summary Site stats
// @Description Total players, total and won previous matches, and upcoming match count, computed fresh from four concurrent counts.
// @Tags site
// @Produce json
// @Success 200 {object} model.DerivedStats
// @Router /stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "stats", cache.TTLStats, func() interface{} {
		return h.res.Stats(r.Context())
	})
}

// homePayload is everything the home page needs in one response.
type homePayload struct {
	Settings        *model.Settings       `json:"settings"`
	Stats           model.DerivedStats    `json:"stats"`
	FeaturedPlayers []model.Player        `json:"featured_players"`
	NextMatch       *model.Match          `json:"next_match"`
	RecentMatches   []model.PreviousMatch `json:"recent_matches"`
	FeaturedNews    []model.NewsArticle   `json:"featured_news"`
}

// GetHome returns the full home page payload. The five independent reads
// are fired together and awaited, so the slowest single read bounds
// latency rather than the sum.
// @Summary Home page payload
// @Tags site
// @Produce json
// @Success 200 {object} handler.homePayload
// @Router /home [get]
func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "home", cache.TTLStats, func() interface{} {
		ctx := r.Context()
		var payload homePayload
		var wg sync.WaitGroup
		wg.Add(5)

		go func() { defer wg.Done(); payload.Stats = h.res.Stats(ctx) }()
		go func() { defer wg.Done(); payload.FeaturedPlayers = h.res.FeaturedPlayers(ctx) }()
		go func() { defer wg.Done(); payload.NextMatch = h.res.NextMatch(ctx) }()
		go func() { defer wg.Done(); payload.RecentMatches = h.res.RecentMatches(ctx) }()
		go func() { defer wg.Done(); payload.FeaturedNews = h.res.FeaturedNews(ctx) }()

		// Settings are already on the request context.
		payload.Settings = auth.FromContext(ctx).Settings
		wg.Wait()

		if payload.Settings == nil {
			payload.Settings = h.res.Settings(ctx)
		}
		return payload
	})
}
