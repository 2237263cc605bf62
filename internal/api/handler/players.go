package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newfriendscc/clubsite/internal/api/respond"
	"github.com/newfriendscc/clubsite/internal/cache"
	"github.com/newfriendscc/clubsite/internal/model"
	"github.com/newfriendscc/clubsite/internal/view"
)

// playersPayload is the roster response. Season is nil when no season is
// flagged current; player SeasonStats fields are then absent too.
type playersPayload struct {
	Players []view.PlayerView  `json:"players"`
	Groups  []view.PlayerGroup `json:"groups,omitempty"`
	Season  *model.Season      `json:"season,omitempty"`
}

// ListPlayers returns the roster with current-season aggregates.
// @Summary List players
// @Description Returns all players ordered by name with per-player current-season aggregates attached. Optional role filter and role grouping.
// @Tags players
// @Produce json
// @Param role query string false "Filter by role" Enums(batsman, bowler, all-rounder, wicket-keeper)
// @Param group query bool false "Group players by role"
// @Success 200 {object} handler.playersPayload
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	grouped := r.URL.Query().Get("group") == "true"

	key := fmt.Sprintf("players:%s:%t", role, grouped)
	h.serveCached(w, r, key, cache.TTLPlayers, func() interface{} {
		ctx := r.Context()
		players := h.res.Players(ctx)
		season, lines := h.res.CurrentSeasonStats(ctx)

		var views []view.PlayerView
		if season == nil {
			views = view.AttachSeasonStats(players, nil)
		} else {
			views = view.AttachSeasonStats(players, lines)
		}

		payload := playersPayload{Season: season}
		if role != "" {
			views = view.FilterByRole(views, model.Role(role))
		}
		payload.Players = views
		if grouped {
			payload.Groups = view.GroupByRole(views)
		}
		return payload
	})
}

// ListFeaturedPlayers returns up to three featured players.
// @Summary Featured players
// @Tags players
// @Produce json
// @Success 200 {array} model.Player
// @Router /players/featured [get]
func (h *Handler) ListFeaturedPlayers(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "players:featured", cache.TTLPlayers, func() interface{} {
		return h.res.FeaturedPlayers(r.Context())
	})
}

// GetPlayer returns one player by slug.
// @Summary Get player
// @Tags players
// @Produce json
// @Param slug path string true "Player slug"
// @Success 200 {object} model.Player
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{slug} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p := h.res.PlayerBySlug(r.Context(), slug)
	if p == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Player not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, p)
}
