// Package store defines the capability surface of the backing database
// and its Postgres implementation. The resolver consumes the read subset;
// clubctl and the admin endpoints use the write subset.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/newfriendscc/clubsite/internal/model"
)

// ErrNotFound marks the zero-rows case on single-record reads. Collection
// reads return empty slices instead: zero upcoming matches is a valid,
// displayable state.
var ErrNotFound = errors.New("store: not found")

// Store is the full capability set of the backing database.
type Store interface {
	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error

	// Settings (singleton row)
	GetSettings(ctx context.Context) (*model.Settings, error)
	UpsertSettings(ctx context.Context, s model.Settings) error

	// Players
	ListPlayers(ctx context.Context) ([]model.Player, error)
	ListFeaturedPlayers(ctx context.Context, limit int) ([]model.Player, error)
	GetPlayerBySlug(ctx context.Context, slug string) (*model.Player, error)
	CountPlayers(ctx context.Context) (int, error)
	InsertPlayer(ctx context.Context, p *model.Player) error
	UpdatePlayer(ctx context.Context, p model.Player) error
	DeletePlayer(ctx context.Context, id string) error

	// Upcoming matches
	ListMatchesFrom(ctx context.Context, from time.Time) ([]model.Match, error)
	NextMatchFrom(ctx context.Context, from time.Time) (*model.Match, error)
	GetMatchBySlug(ctx context.Context, slug string) (*model.Match, error)
	CountMatchesFrom(ctx context.Context, from time.Time) (int, error)
	InsertMatch(ctx context.Context, m *model.Match) error
	UpdateMatch(ctx context.Context, m model.Match) error
	DeleteMatch(ctx context.Context, id string) error

	// Previous matches (results)
	ListPreviousMatches(ctx context.Context) ([]model.PreviousMatch, error)
	ListRecentMatches(ctx context.Context, limit int) ([]model.PreviousMatch, error)
	GetPreviousMatchBySlug(ctx context.Context, slug string) (*model.PreviousMatch, error)
	CountPreviousMatches(ctx context.Context) (int, error)
	CountPreviousMatchesByResult(ctx context.Context, result model.MatchResult) (int, error)
	InsertPreviousMatch(ctx context.Context, m *model.PreviousMatch) error
	UpdatePreviousMatch(ctx context.Context, m model.PreviousMatch) error
	DeletePreviousMatch(ctx context.Context, id string) error

	// News
	ListNews(ctx context.Context) ([]model.NewsArticle, error)
	ListFeaturedNews(ctx context.Context, limit int) ([]model.NewsArticle, error)
	GetNewsBySlug(ctx context.Context, slug string) (*model.NewsArticle, error)
	InsertNews(ctx context.Context, a *model.NewsArticle) error
	UpdateNews(ctx context.Context, a model.NewsArticle) error
	DeleteNews(ctx context.Context, id string) error

	// Seasons and per-match stat lines
	CurrentSeason(ctx context.Context) (*model.Season, error)
	ListSeasons(ctx context.Context) ([]model.Season, error)
	InsertSeason(ctx context.Context, s *model.Season) error
	SetCurrentSeason(ctx context.Context, id string) error
	ListSeasonStats(ctx context.Context, seasonID string) ([]model.PlayerSeasonStat, error)
	InsertSeasonStat(ctx context.Context, line *model.PlayerSeasonStat) error

	// Admin allow-list
	IsAdmin(ctx context.Context, email string) (bool, error)
	AddAdmin(ctx context.Context, email string) error
	RemoveAdmin(ctx context.Context, email string) error
	ListAdmins(ctx context.Context) ([]string, error)
}
