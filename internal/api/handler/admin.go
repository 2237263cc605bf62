package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newfriendscc/clubsite/internal/api/respond"
	"github.com/newfriendscc/clubsite/internal/model"
	"github.com/newfriendscc/clubsite/internal/slug"
)

// Admin write endpoints. These go straight to the store — write failures
// are real errors and are surfaced, unlike the read path's fallbacks.

func (h *Handler) requireStore(w http.ResponseWriter) bool {
	if h.store == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "NOT_CONFIGURED", "No database configured; content is read-only demo data")
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body is not valid JSON")
		return false
	}
	return true
}

// UpdateSettings replaces the settings singleton.
// @Summary Update site settings
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} model.Settings
// @Failure 403 {object} respond.ErrorResponse
// @Router /admin/settings [put]
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	var s model.Settings
	if !decodeBody(w, r, &s) {
		return
	}
	if s.TeamName == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_FIELD", "team_name is required")
		return
	}
	if err := h.store.UpsertSettings(r.Context(), s); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to save settings")
		return
	}
	h.cache.Invalidate("settings")
	h.cache.Invalidate("home")
	respond.WriteJSONObject(w, http.StatusOK, s)
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

// CreatePlayer adds a squad member, deriving the slug from the name
// when none is given.
// @Summary Create player
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} model.Player
// @Failure 403 {object} respond.ErrorResponse
// @Router /admin/players [post]
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	var p model.Player
	if !decodeBody(w, r, &p) {
		return
	}
	if p.Name == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_FIELD", "name is required")
		return
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	if err := h.store.InsertPlayer(r.Context(), &p); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to create player")
		return
	}
	h.invalidatePlayers()
	respond.WriteJSONObject(w, http.StatusCreated, p)
}

// @Summary Update player
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} model.Player
// @Failure 403 {object} respond.ErrorResponse
// @Router /admin/players/{id} [put]
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	var p model.Player
	if !decodeBody(w, r, &p) {
		return
	}
	p.ID = chi.URLParam(r, "id")
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	if err := h.store.UpdatePlayer(r.Context(), p); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to update player")
		return
	}
	h.invalidatePlayers()
	respond.WriteJSONObject(w, http.StatusOK, p)
}

// @Summary Delete player
// @Tags admin
// @Param id path string true "Player ID"
// @Success 204
// @Failure 403 {object} respond.ErrorResponse
// @Router /admin/players/{id} [delete]
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	if err := h.store.DeletePlayer(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to delete player")
		return
	}
	h.invalidatePlayers()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) invalidatePlayers() {
	h.cache.Invalidate("players")
	h.cache.Invalidate("stats")
	h.cache.Invalidate("home")
}

// --------------------------------------------------------------------------
// Upcoming matches
// --------------------------------------------------------------------------

// @Summary Create match
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} model.Match
// @Failure 403 {object} respond.ErrorResponse
// @Router /admin/matches [post]
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	var m model.Match
	if !decodeBody(w, r, &m) {
		return
	}
	if m.Title == "" || m.Opponent == "" || m.MatchDate.IsZero() {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_FIELD", "title, opponent, and match_date are required")
		return
	}
	if m.Slug == "" {
		m.Slug = slug.Make(m.Title)
	}
	if err := h.store.InsertMatch(r.Context(), &m); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to create match")
		return
	}
	h.invalidateMatches()
	respond.WriteJSONObject(w, http.StatusCreated, m)
}

// @Summary Update match
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} model.Match
// @Failure 403 {object} respond.ErrorResponse
// @Router /admin/matches/{id} [put]
func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	var m model.Match
	if !decodeBody(w, r, &m) {
		return
	}
	m.ID = chi.URLParam(r, "id")
	if m.Slug == "" {
		m.Slug = slug.Make(m.Title)
	}
	if err := h.store.UpdateMatch(r.Context(), m); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to update match")
		return
	}
	h.invalidateMatches()
	respond.WriteJSONObject(w, http.StatusOK, m)
}

// @Summary Delete match
// @Tags admin
// @Param id path string true "Match ID"
// @Success 204
// @Failure 403 {object} respond.ErrorResponse
// @Router /admin/matches/{id} [delete]
func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	if err := h.store.DeleteMatch(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to delete match")
		return
	}
	h.invalidateMatches()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) invalidateMatches() {
	h.cache.Invalidate("matches")
	h.cache.Invalidate("results")
	h.cache.Invalidate("stats")
	h.cache.Invalidate("home")
}

// --------------------------------------------------------------------------
// Results
// --------------------------------------------------------------------------

// @Summary Create result
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} model.PreviousMatch
// @Failure 403 {object} respond.ErrorResponse
// @Router /admin/results [post]
func (h *Handler) CreateResult(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	var m model.PreviousMatch
	if !decodeBody(w, r, &m) {
		return
	}
	if m.Title == "" || m.Result == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_FIELD", "title and result are required")
		return
	}
	if m.Slug == "" {
		m.Slug = slug.Make(m.Title)
	}
	if err := h.store.InsertPreviousMatch(r.Context(), &m); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to create result")
		return
	}
	h.invalidateMatches()
	respond.WriteJSONObject(w, http.StatusCreated, m)
}

// @Summary Update result
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} model.PreviousMatch
// @Failure 403 {object} respond.ErrorResponse
// @Router /admin/results/{id} [put]
func (h *Handler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	var m model.PreviousMatch
	if !decodeBody(w, r, &m) {
		return
	}
	m.ID = chi.URLParam(r, "id")
	if m.Slug == "" {
		m.Slug = slug.Make(m.Title)
	}
	if err := h.store.UpdatePreviousMatch(r.Context(), m); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to update result")
		return
	}
	h.invalidateMatches()
	respond.WriteJSONObject(w, http.StatusOK, m)
}

// @Summary Delete result
// @Tags admin
// @Param id path string true "Result ID"
// @Success 204
// @Failure 403 {object} respond.ErrorResponse
// @Router /admin/results/{id} [delete]
func (h *Handler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	if err := h.store.DeletePreviousMatch(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to delete result")
		return
	}
	h.invalidateMatches()
	w.WriteHeader(http.StatusNoContent)
}

// --------------------------------------------------------------------------
// News
// --------------------------------------------------------------------------

// @Summary Create news article
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} model.NewsArticle
// @Failure 403 {object} respond.ErrorResponse
// @Router /admin/news [post]
func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	var a model.NewsArticle
	if !decodeBody(w, r, &a) {
		return
	}
	if a.Title == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_FIELD", "title is required")
		return
	}
	if a.Slug == "" {
		a.Slug = slug.Make(a.Title)
	}
	if err := h.store.InsertNews(r.Context(), &a); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to create article")
		return
	}
	h.cache.Invalidate("news")
	h.cache.Invalidate("home")
	respond.WriteJSONObject(w, http.StatusCreated, a)
}

// @Summary Update news article
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} model.NewsArticle
// @Failure 403 {object} respond.ErrorResponse
// @Router /admin/news/{id} [put]
func (h *Handler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	var a model.NewsArticle
	if !decodeBody(w, r, &a) {
		return
	}
	a.ID = chi.URLParam(r, "id")
	if a.Slug == "" {
		a.Slug = slug.Make(a.Title)
	}
	if err := h.store.UpdateNews(r.Context(), a); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to update article")
		return
	}
	h.cache.Invalidate("news")
	h.cache.Invalidate("home")
	respond.WriteJSONObject(w, http.StatusOK, a)
}

// @Summary Delete news article
// @Tags admin
// @Param id path string true "Article ID"
// @Success 204
// @Failure 403 {object} respond.ErrorResponse
// @Router /admin/news/{id} [delete]
func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	if err := h.store.DeleteNews(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to delete article")
		return
	}
	h.cache.Invalidate("news")
	h.cache.Invalidate("home")
	w.WriteHeader(http.StatusNoContent)
}
