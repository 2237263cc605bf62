// Package resolver is the read layer between the pages and the backing
// store. Every operation wraps one query and substitutes a deterministic
// default when the store is unreachable, misconfigured, or empty, so a
// page never receives a nil primary value. Errors are never propagated;
// they are classified and logged, then collapsed to the default.
package resolver

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/newfriendscc/clubsite/internal/model"
	"github.com/newfriendscc/clubsite/internal/store"
)

const featuredLimit = 3

// Resolver resolves page content with per-operation fallbacks. A nil
// store means "not configured": the site serves demo content instead.
type Resolver struct {
	store store.Store
	log   *slog.Logger
	now   func() time.Time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock overrides the wall clock, used by tests for the date-scoped
// match queries and the relative-dated demo content.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// New creates a Resolver. Pass a nil store to run in demo mode.
func New(st store.Store, log *slog.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		store: st,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Configured reports whether a backing store is attached.
func (r *Resolver) Configured() bool {
	return r.store != nil
}

// --------------------------------------------------------------------------
// Settings
// --------------------------------------------------------------------------

// Settings returns the site settings. Never nil: misconfiguration, query
// errors, and a missing row all degrade to the hardcoded default.
func (r *Resolver) Settings(ctx context.Context) *model.Settings {
	if r.store == nil {
		return fallbackSettings()
	}
	s, err := r.store.GetSettings(ctx)
	if o := classify(err); o != outcomeOK {
		r.report("settings", o, err)
		return fallbackSettings()
	}
	return s
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

// Players returns all players ordered by name. Demo sample when not
// configured; empty on query error.
func (r *Resolver) Players(ctx context.Context) []model.Player {
	if r.store == nil {
		return fallbackPlayers()
	}
	players, err := r.store.ListPlayers(ctx)
	if o := classify(err); o == outcomeFailed {
		r.report("players", o, err)
		return []model.Player{}
	}
	if players == nil {
		players = []model.Player{}
	}
	return players
}

// FeaturedPlayers returns up to three featured players ordered by name.
func (r *Resolver) FeaturedPlayers(ctx context.Context) []model.Player {
	if r.store == nil {
		return fallbackPlayers()
	}
	players, err := r.store.ListFeaturedPlayers(ctx, featuredLimit)
	if o := classify(err); o == outcomeFailed {
		r.report("featured_players", o, err)
		return []model.Player{}
	}
	if players == nil {
		players = []model.Player{}
	}
	return players
}

// PlayerBySlug returns one player or nil. There is no demo fallback for
// detail pages; unknown slugs 404 upstream.
func (r *Resolver) PlayerBySlug(ctx context.Context, slug string) *model.Player {
	if r.store == nil {
		return nil
	}
	p, err := r.store.GetPlayerBySlug(ctx, slug)
	if o := classify(err); o != outcomeOK {
		r.report("player_by_slug", o, err)
		return nil
	}
	return p
}

// --------------------------------------------------------------------------
// Matches
// --------------------------------------------------------------------------

// UpcomingMatches returns matches dated at or after the current instant,
// soonest first. The cutoff is evaluated once per call.
func (r *Resolver) UpcomingMatches(ctx context.Context) []model.Match {
	if r.store == nil {
		return []model.Match{}
	}
	matches, err := r.store.ListMatchesFrom(ctx, r.now())
	if o := classify(err); o == outcomeFailed {
		r.report("upcoming_matches", o, err)
		return []model.Match{}
	}
	if matches == nil {
		matches = []model.Match{}
	}
	return matches
}

// NextMatch returns the chronologically earliest upcoming match. When no
// store is configured it degrades to a demo fixture seven days out; when
// the store is configured but errors or is empty it returns nil. The
// asymmetry is longstanding observed behaviour and is kept as-is.
func (r *Resolver) NextMatch(ctx context.Context) *model.Match {
	if r.store == nil {
		return fallbackNextMatch(r.now())
	}
	m, err := r.store.NextMatchFrom(ctx, r.now())
	if o := classify(err); o != outcomeOK {
		r.report("next_match", o, err)
		return nil
	}
	return m
}

// MatchBySlug returns one upcoming match or nil.
func (r *Resolver) MatchBySlug(ctx context.Context, slug string) *model.Match {
	if r.store == nil {
		return nil
	}
	m, err := r.store.GetMatchBySlug(ctx, slug)
	if o := classify(err); o != outcomeOK {
		r.report("match_by_slug", o, err)
		return nil
	}
	return m
}

// PreviousMatches returns all results, most recent first.
func (r *Resolver) PreviousMatches(ctx context.Context) []model.PreviousMatch {
	if r.store == nil {
		return []model.PreviousMatch{}
	}
	matches, err := r.store.ListPreviousMatches(ctx)
	if o := classify(err); o == outcomeFailed {
		r.report("previous_matches", o, err)
		return []model.PreviousMatch{}
	}
	if matches == nil {
		matches = []model.PreviousMatch{}
	}
	return matches
}

// RecentMatches returns the three most recent results, with demo results
// when no store is configured.
func (r *Resolver) RecentMatches(ctx context.Context) []model.PreviousMatch {
	if r.store == nil {
		return fallbackRecentMatches(r.now())
	}
	matches, err := r.store.ListRecentMatches(ctx, featuredLimit)
	if o := classify(err); o == outcomeFailed {
		r.report("recent_matches", o, err)
		return []model.PreviousMatch{}
	}
	if matches == nil {
		matches = []model.PreviousMatch{}
	}
	return matches
}

// PreviousMatchBySlug returns one result or nil.
func (r *Resolver) PreviousMatchBySlug(ctx context.Context, slug string) *model.PreviousMatch {
	if r.store == nil {
		return nil
	}
	m, err := r.store.GetPreviousMatchBySlug(ctx, slug)
	if o := classify(err); o != outcomeOK {
		r.report("previous_match_by_slug", o, err)
		return nil
	}
	return m
}

// --------------------------------------------------------------------------
// News
// --------------------------------------------------------------------------

// News returns all articles, newest first.
func (r *Resolver) News(ctx context.Context) []model.NewsArticle {
	if r.store == nil {
		return []model.NewsArticle{}
	}
	articles, err := r.store.ListNews(ctx)
	if o := classify(err); o == outcomeFailed {
		r.report("news", o, err)
		return []model.NewsArticle{}
	}
	if articles == nil {
		articles = []model.NewsArticle{}
	}
	return articles
}

// FeaturedNews returns up to three featured articles, with demo articles
// when no store is configured.
func (r *Resolver) FeaturedNews(ctx context.Context) []model.NewsArticle {
	if r.store == nil {
		return fallbackFeaturedNews(r.now())
	}
	articles, err := r.store.ListFeaturedNews(ctx, featuredLimit)
	if o := classify(err); o == outcomeFailed {
		r.report("featured_news", o, err)
		return []model.NewsArticle{}
	}
	if articles == nil {
		articles = []model.NewsArticle{}
	}
	return articles
}

// NewsBySlug returns one article or nil.
func (r *Resolver) NewsBySlug(ctx context.Context, slug string) *model.NewsArticle {
	if r.store == nil {
		return nil
	}
	a, err := r.store.GetNewsBySlug(ctx, slug)
	if o := classify(err); o != outcomeOK {
		r.report("news_by_slug", o, err)
		return nil
	}
	return a
}

// --------------------------------------------------------------------------
// Derived stats
// --------------------------------------------------------------------------

// Stats assembles the home page counters from four independent counts
// issued concurrently. A count that fails contributes zero; it never
// aborts the aggregate. The four counts may reflect slightly different
// instants — no cross-query consistency is promised.
func (r *Resolver) Stats(ctx context.Context) model.DerivedStats {
	if r.store == nil {
		return fallbackStats()
	}

	now := r.now()
	var stats model.DerivedStats
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		stats.TotalPlayers = r.count(ctx, "count_players", func() (int, error) {
			return r.store.CountPlayers(ctx)
		})
	}()
	go func() {
		defer wg.Done()
		stats.UpcomingMatches = r.count(ctx, "count_upcoming", func() (int, error) {
			return r.store.CountMatchesFrom(ctx, now)
		})
	}()
	go func() {
		defer wg.Done()
		stats.MatchesWon = r.count(ctx, "count_won", func() (int, error) {
			return r.store.CountPreviousMatchesByResult(ctx, model.ResultWon)
		})
	}()
	go func() {
		defer wg.Done()
		stats.TotalMatches = r.count(ctx, "count_previous", func() (int, error) {
			return r.store.CountPreviousMatches(ctx)
		})
	}()

	wg.Wait()
	return stats
}

func (r *Resolver) count(ctx context.Context, op string, fn func() (int, error)) int {
	n, err := fn()
	if o := classify(err); o != outcomeOK {
		r.report(op, o, err)
		return 0
	}
	return n
}

// --------------------------------------------------------------------------
// Season stats
// --------------------------------------------------------------------------

// CurrentSeasonStats returns the current season and all of its per-match
// stat lines. Both are nil when no season is flagged current, when the
// store is not configured, or on error — the rendering layer then omits
// the season block entirely.
func (r *Resolver) CurrentSeasonStats(ctx context.Context) (*model.Season, []model.PlayerSeasonStat) {
	if r.store == nil {
		return nil, nil
	}
	season, err := r.store.CurrentSeason(ctx)
	if o := classify(err); o != outcomeOK {
		r.report("current_season", o, err)
		return nil, nil
	}

	lines, err := r.store.ListSeasonStats(ctx, season.ID)
	if o := classify(err); o == outcomeFailed {
		r.report("season_stats", o, err)
		return nil, nil
	}
	if lines == nil {
		// A current season with no stat lines yet is still a season:
		// players get all-zero aggregates, not an absent field.
		lines = []model.PlayerSeasonStat{}
	}
	return season, lines
}
