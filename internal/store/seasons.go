package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/newfriendscc/clubsite/internal/config"
	"github.com/newfriendscc/clubsite/internal/model"
)

func (s *Postgres) CurrentSeason(ctx context.Context) (*model.Season, error) {
	season, err := scanSeason(s.pool.QueryRow(ctx, "season_current"))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("current season: %w", err)
	}
	return season, nil
}

func (s *Postgres) ListSeasons(ctx context.Context) ([]model.Season, error) {
	rows, err := s.pool.Query(ctx, "seasons_list")
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	defer rows.Close()

	var seasons []model.Season
	for rows.Next() {
		season, err := scanSeason(rows)
		if err != nil {
			return nil, fmt.Errorf("scan season: %w", err)
		}
		seasons = append(seasons, *season)
	}
	return seasons, rows.Err()
}

func (s *Postgres) InsertSeason(ctx context.Context, season *model.Season) error {
	if season.ID == "" {
		season.ID = newID()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO `+config.SeasonsTable+` (id, name, start_date, end_date, is_current)
		VALUES ($1,$2,$3,$4,$5)`,
		season.ID, season.Name, season.StartDate, season.EndDate, season.IsCurrent,
	)
	if err != nil {
		return fmt.Errorf("insert season %q: %w", season.Name, err)
	}
	return nil
}

// SetCurrentSeason flags one season as current and clears the flag on
// all others in one transaction, preserving the at-most-one invariant.
func (s *Postgres) SetCurrentSeason(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "UPDATE "+config.SeasonsTable+" SET is_current = false WHERE is_current"); err != nil {
		return fmt.Errorf("clear current season: %w", err)
	}
	tag, err := tx.Exec(ctx, "UPDATE "+config.SeasonsTable+" SET is_current = true WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("set current season %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

func (s *Postgres) ListSeasonStats(ctx context.Context, seasonID string) ([]model.PlayerSeasonStat, error) {
	rows, err := s.pool.Query(ctx, "season_stats_by_season", seasonID)
	if err != nil {
		return nil, fmt.Errorf("list season stats: %w", err)
	}
	defer rows.Close()

	var lines []model.PlayerSeasonStat
	for rows.Next() {
		var l model.PlayerSeasonStat
		err := rows.Scan(
			&l.ID, &l.PlayerID, &l.SeasonID,
			&l.Runs, &l.BallsPlayed, &l.IsFifty, &l.IsHundred, &l.NotOut,
			&l.Wickets, &l.IsFiveWkt, &l.IsTenWkt,
			&l.Catches, &l.Stumpings, &l.Runouts,
		)
		if err != nil {
			return nil, fmt.Errorf("scan season stat: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (s *Postgres) InsertSeasonStat(ctx context.Context, line *model.PlayerSeasonStat) error {
	if line.ID == "" {
		line.ID = newID()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO `+config.SeasonStatsTable+` (
			id, player_id, season_id, runs, balls_played, is_fifty, is_hundred,
			not_out, wickets, is_five_wicket, is_ten_wicket, catches, stumpings, runouts
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		line.ID, line.PlayerID, line.SeasonID,
		line.Runs, line.BallsPlayed, line.IsFifty, line.IsHundred,
		line.NotOut, line.Wickets, line.IsFiveWkt, line.IsTenWkt,
		line.Catches, line.Stumpings, line.Runouts,
	)
	if err != nil {
		return fmt.Errorf("insert season stat: %w", err)
	}
	return nil
}

func scanSeason(row pgx.Row) (*model.Season, error) {
	var season model.Season
	err := row.Scan(&season.ID, &season.Name, &season.StartDate, &season.EndDate, &season.IsCurrent)
	if err != nil {
		return nil, err
	}
	return &season, nil
}
