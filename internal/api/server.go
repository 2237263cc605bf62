package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/newfriendscc/clubsite/internal/api/handler"
	"github.com/newfriendscc/clubsite/internal/cache"
	"github.com/newfriendscc/clubsite/internal/config"
	"github.com/newfriendscc/clubsite/internal/resolver"
	"github.com/newfriendscc/clubsite/internal/store"
)

// NewRouter creates and configures the Chi router with all middleware and
// routes. st may be nil: the read endpoints then serve demo content and
// the admin subtree rejects everything.
func NewRouter(res *resolver.Resolver, st store.Store, appCache *cache.Cache, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control", "X-Auth-Email"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// Settings + admin flag, once per request
	r.Use(SiteContextMiddleware(res, st))

	// --- Handler dependencies ---
	h := handler.New(res, st, appCache)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/settings", h.GetSettings)
		r.Get("/stats", h.GetStats)
		r.Get("/home", h.GetHome)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Get("/featured", h.ListFeaturedPlayers)
			r.Get("/{slug}", h.GetPlayer)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/upcoming", h.ListUpcomingMatches)
			r.Get("/next", h.GetNextMatch)
			r.Get("/{slug}", h.GetMatch)
		})

		r.Route("/results", func(r chi.Router) {
			r.Get("/", h.ListResults)
			r.Get("/recent", h.ListRecentResults)
			r.Get("/{slug}", h.GetResult)
		})

		r.Route("/news", func(r chi.Router) {
			r.Get("/", h.ListNews)
			r.Get("/featured", h.ListFeaturedNews)
			r.Get("/{slug}", h.GetNews)
		})

		// Admin writes — gated on the allow-list via the site context
		r.Route("/admin", func(r chi.Router) {
			r.Use(RequireAdmin)

			r.Put("/settings", h.UpdateSettings)
			r.Post("/seed", h.SeedDemo)

			r.Post("/players", h.CreatePlayer)
			r.Put("/players/{id}", h.UpdatePlayer)
			r.Delete("/players/{id}", h.DeletePlayer)

			r.Post("/matches", h.CreateMatch)
			r.Put("/matches/{id}", h.UpdateMatch)
			r.Delete("/matches/{id}", h.DeleteMatch)

			r.Post("/results", h.CreateResult)
			r.Put("/results/{id}", h.UpdateResult)
			r.Delete("/results/{id}", h.DeleteResult)

			r.Post("/news", h.CreateNews)
			r.Put("/news/{id}", h.UpdateNews)
			r.Delete("/news/{id}", h.DeleteNews)
		})
	})

	return r
}
