package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/newfriendscc/clubsite/internal/config"
	"github.com/newfriendscc/clubsite/internal/model"
)

// --------------------------------------------------------------------------
// Upcoming matches
// --------------------------------------------------------------------------

func (s *Postgres) ListMatchesFrom(ctx context.Context, from time.Time) ([]model.Match, error) {
	rows, err := s.pool.Query(ctx, "matches_from", from)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var matches []model.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

func (s *Postgres) NextMatchFrom(ctx context.Context, from time.Time) (*model.Match, error) {
	m, err := scanMatch(s.pool.QueryRow(ctx, "match_next", from))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("next match: %w", err)
	}
	return m, nil
}

func (s *Postgres) GetMatchBySlug(ctx context.Context, slug string) (*model.Match, error) {
	m, err := scanMatch(s.pool.QueryRow(ctx, "match_by_slug", slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get match %q: %w", slug, err)
	}
	return m, nil
}

func (s *Postgres) CountMatchesFrom(ctx context.Context, from time.Time) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, "matches_from_count", from).Scan(&n); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return n, nil
}

func (s *Postgres) InsertMatch(ctx context.Context, m *model.Match) error {
	if m.ID == "" {
		m.ID = newID()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO `+config.MatchesTable+` (
			id, title, slug, opponent, match_date, venue, match_type, description
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		m.ID, m.Title, m.Slug, m.Opponent, m.MatchDate,
		nilEmpty(m.Venue), nilEmpty(m.MatchType), nilEmpty(m.Description),
	)
	if err != nil {
		return fmt.Errorf("insert match %q: %w", m.Title, err)
	}
	return nil
}

func (s *Postgres) UpdateMatch(ctx context.Context, m model.Match) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE `+config.MatchesTable+` SET
			title = $2, slug = $3, opponent = $4, match_date = $5,
			venue = $6, match_type = $7, description = $8, updated_at = NOW()
		WHERE id = $1`,
		m.ID, m.Title, m.Slug, m.Opponent, m.MatchDate,
		nilEmpty(m.Venue), nilEmpty(m.MatchType), nilEmpty(m.Description),
	)
	if err != nil {
		return fmt.Errorf("update match %s: %w", m.ID, err)
	}
	return nil
}

func (s *Postgres) DeleteMatch(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, "DELETE FROM "+config.MatchesTable+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete match %s: %w", id, err)
	}
	return nil
}

func scanMatch(row pgx.Row) (*model.Match, error) {
	var m model.Match
	err := row.Scan(
		&m.ID, &m.Title, &m.Slug, &m.Opponent, &m.MatchDate,
		&m.Venue, &m.MatchType, &m.Description,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// --------------------------------------------------------------------------
// Previous matches (results)
// --------------------------------------------------------------------------

func (s *Postgres) ListPreviousMatches(ctx context.Context) ([]model.PreviousMatch, error) {
	rows, err := s.pool.Query(ctx, "previous_list")
	if err != nil {
		return nil, fmt.Errorf("list previous matches: %w", err)
	}
	defer rows.Close()
	return scanPreviousMatches(rows)
}

func (s *Postgres) ListRecentMatches(ctx context.Context, limit int) ([]model.PreviousMatch, error) {
	rows, err := s.pool.Query(ctx, "previous_recent", limit)
	if err != nil {
		return nil, fmt.Errorf("list recent matches: %w", err)
	}
	defer rows.Close()
	return scanPreviousMatches(rows)
}

func (s *Postgres) GetPreviousMatchBySlug(ctx context.Context, slug string) (*model.PreviousMatch, error) {
	m, err := scanPreviousMatch(s.pool.QueryRow(ctx, "previous_by_slug", slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get previous match %q: %w", slug, err)
	}
	return m, nil
}

func (s *Postgres) CountPreviousMatches(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, "previous_count").Scan(&n); err != nil {
		return 0, fmt.Errorf("count previous matches: %w", err)
	}
	return n, nil
}

func (s *Postgres) CountPreviousMatchesByResult(ctx context.Context, result model.MatchResult) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, "previous_result_count", string(result)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s matches: %w", result, err)
	}
	return n, nil
}

func (s *Postgres) InsertPreviousMatch(ctx context.Context, m *model.PreviousMatch) error {
	if m.ID == "" {
		m.ID = newID()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO `+config.PreviousMatchesTable+` (
			id, title, slug, opponent, match_date, venue, match_type,
			result, our_score, opponent_score, summary, highlights, season_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		m.ID, m.Title, m.Slug, m.Opponent, m.MatchDate,
		nilEmpty(m.Venue), nilEmpty(m.MatchType),
		m.Result, m.OurScore, m.OpponentScore,
		nilEmpty(m.Summary), m.Highlights, nilEmpty(m.SeasonID),
	)
	if err != nil {
		return fmt.Errorf("insert previous match %q: %w", m.Title, err)
	}
	return nil
}

func (s *Postgres) UpdatePreviousMatch(ctx context.Context, m model.PreviousMatch) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE `+config.PreviousMatchesTable+` SET
			title = $2, slug = $3, opponent = $4, match_date = $5,
			venue = $6, match_type = $7, result = $8, our_score = $9,
			opponent_score = $10, summary = $11, highlights = $12,
			season_id = $13, updated_at = NOW()
		WHERE id = $1`,
		m.ID, m.Title, m.Slug, m.Opponent, m.MatchDate,
		nilEmpty(m.Venue), nilEmpty(m.MatchType),
		m.Result, m.OurScore, m.OpponentScore,
		nilEmpty(m.Summary), m.Highlights, nilEmpty(m.SeasonID),
	)
	if err != nil {
		return fmt.Errorf("update previous match %s: %w", m.ID, err)
	}
	return nil
}

func (s *Postgres) DeletePreviousMatch(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, "DELETE FROM "+config.PreviousMatchesTable+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete previous match %s: %w", id, err)
	}
	return nil
}

func scanPreviousMatch(row pgx.Row) (*model.PreviousMatch, error) {
	var m model.PreviousMatch
	err := row.Scan(
		&m.ID, &m.Title, &m.Slug, &m.Opponent, &m.MatchDate,
		&m.Venue, &m.MatchType, &m.Result, &m.OurScore, &m.OpponentScore,
		&m.Summary, &m.Highlights, &m.SeasonID,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanPreviousMatches(rows pgx.Rows) ([]model.PreviousMatch, error) {
	var matches []model.PreviousMatch
	for rows.Next() {
		m, err := scanPreviousMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan previous match: %w", err)
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}
