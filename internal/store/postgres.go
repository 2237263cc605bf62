package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/newfriendscc/clubsite/internal/config"
	"github.com/newfriendscc/clubsite/internal/db"
	"github.com/newfriendscc/clubsite/internal/model"
)

// Postgres implements Store on a pgx connection pool. All read queries go
// through the prepared statements registered in internal/db.
type Postgres struct {
	pool *db.Pool
}

var _ Store = (*Postgres)(nil)

// NewPostgres wraps a connection pool as a Store.
func NewPostgres(pool *db.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.pool.HealthCheck(ctx)
}

// --------------------------------------------------------------------------
// Settings
// --------------------------------------------------------------------------

func (s *Postgres) GetSettings(ctx context.Context) (*model.Settings, error) {
	var out model.Settings
	var links []byte
	err := s.pool.QueryRow(ctx, "settings_get").Scan(
		&out.TeamName, &out.TeamLogoURL, &out.Tagline,
		&out.Description, &out.ContactEmail, &links,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if len(links) > 0 {
		if err := json.Unmarshal(links, &out.SocialLinks); err != nil {
			return nil, fmt.Errorf("decode social links: %w", err)
		}
	}
	return &out, nil
}

func (s *Postgres) UpsertSettings(ctx context.Context, in model.Settings) error {
	links, _ := json.Marshal(in.SocialLinks)
	_, err := s.pool.Exec(ctx, `
		INSERT INTO `+config.SettingsTable+` (
			id, team_name, team_logo_url, tagline, description, contact_email, social_links
		) VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			team_name = EXCLUDED.team_name,
			team_logo_url = EXCLUDED.team_logo_url,
			tagline = EXCLUDED.tagline,
			description = EXCLUDED.description,
			contact_email = EXCLUDED.contact_email,
			social_links = EXCLUDED.social_links,
			updated_at = NOW()`,
		in.TeamName, nilEmpty(in.TeamLogoURL), nilEmpty(in.Tagline),
		nilEmpty(in.Description), nilEmpty(in.ContactEmail), links,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

// --------------------------------------------------------------------------
// Admin allow-list
// --------------------------------------------------------------------------

func (s *Postgres) IsAdmin(ctx context.Context, email string) (bool, error) {
	var one int
	err := s.pool.QueryRow(ctx, "admin_check", email).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("admin check: %w", err)
	}
	return true, nil
}

func (s *Postgres) AddAdmin(ctx context.Context, email string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO `+config.AdminUsersTable+` (id, email)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING`,
		newID(), email,
	)
	if err != nil {
		return fmt.Errorf("add admin %q: %w", email, err)
	}
	return nil
}

func (s *Postgres) RemoveAdmin(ctx context.Context, email string) error {
	_, err := s.pool.Exec(ctx, "DELETE FROM "+config.AdminUsersTable+" WHERE email = $1", email)
	if err != nil {
		return fmt.Errorf("remove admin %q: %w", email, err)
	}
	return nil
}

func (s *Postgres) ListAdmins(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, "admin_list")
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var e string
		if err := rows.Scan(&e); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}
