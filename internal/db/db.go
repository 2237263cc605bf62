// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newfriendscc/clubsite/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

const playerColumns = `id, name, slug, role,
	COALESCE(photo_url, ''), COALESCE(batting_style, ''), COALESCE(bowling_style, ''),
	COALESCE(age, 0), COALESCE(jersey_number, 0), is_featured, COALESCE(stats, '{}'::jsonb)`

const matchColumns = `id, title, slug, opponent, match_date,
	COALESCE(venue, ''), COALESCE(match_type, ''), COALESCE(description, '')`

const previousMatchColumns = `id, title, slug, opponent, match_date,
	COALESCE(venue, ''), COALESCE(match_type, ''), result, our_score, opponent_score,
	COALESCE(summary, ''), COALESCE(highlights, '{}'), COALESCE(season_id::text, '')`

const newsColumns = `id, title, slug, COALESCE(excerpt, ''), COALESCE(body, ''),
	is_featured, published_at`

// registerPreparedStatements registers every read statement the resolver
// and auth layers use. Prepared statements eliminate parse overhead on
// every request; write statements are infrequent and stay inline.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Settings (singleton row)
		"settings_get": `SELECT team_name, COALESCE(team_logo_url, ''), COALESCE(tagline, ''),
			COALESCE(description, ''), COALESCE(contact_email, ''), COALESCE(social_links, '{}'::jsonb)
			FROM ` + config.SettingsTable + ` LIMIT 1`,

		// Players
		"players_list":     "SELECT " + playerColumns + " FROM " + config.PlayersTable + " ORDER BY name ASC",
		"players_featured": "SELECT " + playerColumns + " FROM " + config.PlayersTable + " WHERE is_featured ORDER BY name ASC LIMIT $1",
		"player_by_slug":   "SELECT " + playerColumns + " FROM " + config.PlayersTable + " WHERE slug = $1",
		"players_count":    "SELECT COUNT(*) FROM " + config.PlayersTable,

		// Upcoming matches
		"matches_from":       "SELECT " + matchColumns + " FROM " + config.MatchesTable + " WHERE match_date >= $1 ORDER BY match_date ASC",
		"match_next":         "SELECT " + matchColumns + " FROM " + config.MatchesTable + " WHERE match_date >= $1 ORDER BY match_date ASC LIMIT 1",
		"match_by_slug":      "SELECT " + matchColumns + " FROM " + config.MatchesTable + " WHERE slug = $1",
		"matches_from_count": "SELECT COUNT(*) FROM " + config.MatchesTable + " WHERE match_date >= $1",

		// Previous matches (results)
		"previous_list":         "SELECT " + previousMatchColumns + " FROM " + config.PreviousMatchesTable + " ORDER BY match_date DESC",
		"previous_recent":       "SELECT " + previousMatchColumns + " FROM " + config.PreviousMatchesTable + " ORDER BY match_date DESC LIMIT $1",
		"previous_by_slug":      "SELECT " + previousMatchColumns + " FROM " + config.PreviousMatchesTable + " WHERE slug = $1",
		"previous_count":        "SELECT COUNT(*) FROM " + config.PreviousMatchesTable,
		"previous_result_count": "SELECT COUNT(*) FROM " + config.PreviousMatchesTable + " WHERE result = $1",

		// News
		"news_list":     "SELECT " + newsColumns + " FROM " + config.NewsTable + " ORDER BY published_at DESC",
		"news_featured": "SELECT " + newsColumns + " FROM " + config.NewsTable + " WHERE is_featured ORDER BY published_at DESC LIMIT $1",
		"news_by_slug":  "SELECT " + newsColumns + " FROM " + config.NewsTable + " WHERE slug = $1",

		// Seasons + per-match stat lines
		"season_current": "SELECT id, name, start_date, end_date, is_current FROM " + config.SeasonsTable + " WHERE is_current LIMIT 1",
		"seasons_list":   "SELECT id, name, start_date, end_date, is_current FROM " + config.SeasonsTable + " ORDER BY start_date DESC",
		"season_stats_by_season": `SELECT id, player_id, season_id,
			COALESCE(runs, 0), COALESCE(balls_played, 0), is_fifty, is_hundred, not_out,
			COALESCE(wickets, 0), is_five_wicket, is_ten_wicket,
			COALESCE(catches, 0), COALESCE(stumpings, 0), COALESCE(runouts, 0)
			FROM ` + config.SeasonStatsTable + " WHERE season_id = $1",

		// Admin allow-list
		"admin_check": "SELECT 1 FROM " + config.AdminUsersTable + " WHERE email = $1",
		"admin_list":  "SELECT email FROM " + config.AdminUsersTable + " ORDER BY email ASC",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
