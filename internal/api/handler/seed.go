package handler

import (
	"log/slog"
	"net/http"

	"github.com/newfriendscc/clubsite/internal/api/respond"
	"github.com/newfriendscc/clubsite/internal/seed"
)

// SeedDemo loads the demo roster, fixtures, and articles into the
// configured store. Idempotent inserts are not attempted; this is for
// priming a fresh database, same as `clubctl seed demo`.
// @Summary Seed demo content
// @Description Inserts the demo settings, players, season stats, matches, and news into the database. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /admin/seed [post]
func (h *Handler) SeedDemo(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	res := seed.Demo(r.Context(), h.store, slog.Default())

	// Everything derived from store content may have changed.
	h.cache.Invalidate("")

	status := http.StatusOK
	if len(res.Errors) > 0 {
		status = http.StatusMultiStatus
	}
	respond.WriteJSONObject(w, status, map[string]interface{}{
		"summary": res.Summary(),
		"players": res.Players,
		"matches": res.Matches,
		"results": res.Results,
		"news":    res.Articles,
		"errors":  res.Errors,
	})
}
