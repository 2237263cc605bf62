package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/newfriendscc/clubsite/internal/config"
	"github.com/newfriendscc/clubsite/internal/model"
)

func (s *Postgres) ListPlayers(ctx context.Context) ([]model.Player, error) {
	rows, err := s.pool.Query(ctx, "players_list")
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()
	return scanPlayers(rows)
}

func (s *Postgres) ListFeaturedPlayers(ctx context.Context, limit int) ([]model.Player, error) {
	rows, err := s.pool.Query(ctx, "players_featured", limit)
	if err != nil {
		return nil, fmt.Errorf("list featured players: %w", err)
	}
	defer rows.Close()
	return scanPlayers(rows)
}

func (s *Postgres) GetPlayerBySlug(ctx context.Context, slug string) (*model.Player, error) {
	p, err := scanPlayer(s.pool.QueryRow(ctx, "player_by_slug", slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get player %q: %w", slug, err)
	}
	return p, nil
}

func (s *Postgres) CountPlayers(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, "players_count").Scan(&n); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return n, nil
}

func (s *Postgres) InsertPlayer(ctx context.Context, p *model.Player) error {
	if p.ID == "" {
		p.ID = newID()
	}
	stats, _ := json.Marshal(p.Stats)
	_, err := s.pool.Exec(ctx, `
		INSERT INTO `+config.PlayersTable+` (
			id, name, slug, role, photo_url, batting_style, bowling_style,
			age, jersey_number, is_featured, stats
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.Name, p.Slug, p.Role, nilEmpty(p.PhotoURL),
		nilEmpty(p.BattingStyle), nilEmpty(p.BowlingStyle),
		nilZero(p.Age), nilZero(p.JerseyNumber), p.IsFeatured, stats,
	)
	if err != nil {
		return fmt.Errorf("insert player %q: %w", p.Name, err)
	}
	return nil
}

func (s *Postgres) UpdatePlayer(ctx context.Context, p model.Player) error {
	stats, _ := json.Marshal(p.Stats)
	_, err := s.pool.Exec(ctx, `
		UPDATE `+config.PlayersTable+` SET
			name = $2, slug = $3, role = $4, photo_url = $5,
			batting_style = $6, bowling_style = $7, age = $8,
			jersey_number = $9, is_featured = $10, stats = $11,
			updated_at = NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.Slug, p.Role, nilEmpty(p.PhotoURL),
		nilEmpty(p.BattingStyle), nilEmpty(p.BowlingStyle),
		nilZero(p.Age), nilZero(p.JerseyNumber), p.IsFeatured, stats,
	)
	if err != nil {
		return fmt.Errorf("update player %s: %w", p.ID, err)
	}
	return nil
}

func (s *Postgres) DeletePlayer(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, "DELETE FROM "+config.PlayersTable+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete player %s: %w", id, err)
	}
	return nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var p model.Player
	var stats []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Role,
		&p.PhotoURL, &p.BattingStyle, &p.BowlingStyle,
		&p.Age, &p.JerseyNumber, &p.IsFeatured, &stats,
	)
	if err != nil {
		return nil, err
	}
	if len(stats) > 0 {
		if err := json.Unmarshal(stats, &p.Stats); err != nil {
			return nil, fmt.Errorf("decode career stats: %w", err)
		}
	}
	return &p, nil
}

func scanPlayers(rows pgx.Rows) ([]model.Player, error) {
	var players []model.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}
