package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newfriendscc/clubsite/internal/api/respond"
	"github.com/newfriendscc/clubsite/internal/cache"
	"github.com/newfriendscc/clubsite/internal/model"
	"github.com/newfriendscc/clubsite/internal/view"
)

// matchView decorates an upcoming fixture with display strings.
type matchView struct {
	model.Match
	FormattedDate string `json:"formatted_date"`
	FormattedTime string `json:"formatted_time"`
}

// resultView decorates a completed match with display strings and badge.
type resultView struct {
	model.PreviousMatch
	FormattedDate string     `json:"formatted_date"`
	Badge         view.Badge `json:"badge"`
}

func decorateMatches(matches []model.Match) []matchView {
	out := make([]matchView, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchView{
			Match:         m,
			FormattedDate: view.FormatMatchDate(m.MatchDate),
			FormattedTime: view.FormatMatchTime(m.MatchDate),
		})
	}
	return out
}

func decorateResults(matches []model.PreviousMatch) []resultView {
	out := make([]resultView, 0, len(matches))
	for _, m := range matches {
		out = append(out, resultView{
			PreviousMatch: m,
			FormattedDate: view.FormatShortDate(m.MatchDate),
			Badge:         view.ResultBadge(m.Result),
		})
	}
	return out
}

// ListUpcomingMatches returns fixtures dated now or later, soonest first.
// @Summary Upcoming matches
// @Tags matches
// @Produce json
// @Success 200 {array} handler.matchView
// @Router /matches/upcoming [get]
func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "matches:upcoming", cache.TTLMatches, func() interface{} {
		return decorateMatches(h.res.UpcomingMatches(r.Context()))
	})
}

// GetNextMatch returns the next fixture, or a null match when the season
// has none scheduled.
// @Summary Next match
// @Tags matches
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /matches/next [get]
func (h *Handler) GetNextMatch(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "matches:next", cache.TTLMatches, func() interface{} {
		m := h.res.NextMatch(r.Context())
		if m == nil {
			return map[string]interface{}{"match": nil}
		}
		return map[string]interface{}{"match": matchView{
			Match:         *m,
			FormattedDate: view.FormatMatchDate(m.MatchDate),
			FormattedTime: view.FormatMatchTime(m.MatchDate),
		}}
	})
}

// GetMatch returns one upcoming fixture by slug.
// @Summary Get match
// @Tags matches
// @Produce json
// @Param slug path string true "Match slug"
// @Success 200 {object} handler.matchView
// @Failure 404 {object} respond.ErrorResponse
// @Router /matches/{slug} [get]
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	m := h.res.MatchBySlug(r.Context(), chi.URLParam(r, "slug"))
	if m == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Match not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, matchView{
		Match:         *m,
		FormattedDate: view.FormatMatchDate(m.MatchDate),
		FormattedTime: view.FormatMatchTime(m.MatchDate),
	})
}

// ListResults returns all completed matches, most recent first.
// @Summary Match results
// @Tags results
// @Produce json
// @Success 200 {array} handler.resultView
// @Router /results [get]
func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "results", cache.TTLMatches, func() interface{} {
		return decorateResults(h.res.PreviousMatches(r.Context()))
	})
}

// ListRecentResults returns the three most recent results.
// @Summary Recent results
// @Tags results
// @Produce json
// @Success 200 {array} handler.resultView
// @Router /results/recent [get]
func (h *Handler) ListRecentResults(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "results:recent", cache.TTLMatches, func() interface{} {
		return decorateResults(h.res.RecentMatches(r.Context()))
	})
}

// GetResult returns one completed match by slug.
// @Summary Get result
// @Tags results
// @Produce json
// @Param slug path string true "Result slug"
// @Success 200 {object} handler.resultView
// @Failure 404 {object} respond.ErrorResponse
// @Router /results/{slug} [get]
func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	m := h.res.PreviousMatchBySlug(r.Context(), chi.URLParam(r, "slug"))
	if m == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Result not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, resultView{
		PreviousMatch: *m,
		FormattedDate: view.FormatShortDate(m.MatchDate),
		Badge:         view.ResultBadge(m.Result),
	})
}
