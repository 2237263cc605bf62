package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newfriendscc/clubsite/internal/api/respond"
	"github.com/newfriendscc/clubsite/internal/cache"
)

// ListNews returns all articles, newest first.
// @Summary List news
// @Tags news
// @Produce json
// @Success 200 {array} model.NewsArticle
// @Router /news [get]
func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "news", cache.TTLNews, func() interface{} {
		return h.res.News(r.Context())
	})
}

// ListFeaturedNews returns up to three featured articles.
// @Summary Featured news
// @Tags news
// @Produce json
// @Success 200 {array} model.NewsArticle
// @Router /news/featured [get]
func (h *Handler) ListFeaturedNews(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "news:featured", cache.TTLNews, func() interface{} {
		return h.res.FeaturedNews(r.Context())
	})
}

// GetNews returns one article by slug.
// @Summary Get news article
// @Tags news
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} model.NewsArticle
// @Failure 404 {object} respond.ErrorResponse
// @Router /news/{slug} [get]
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	a := h.res.NewsBySlug(r.Context(), chi.URLParam(r, "slug"))
	if a == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Article not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, a)
}
