package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/newfriendscc/clubsite/internal/config"
	"github.com/newfriendscc/clubsite/internal/model"
)

func (s *Postgres) ListNews(ctx context.Context) ([]model.NewsArticle, error) {
	rows, err := s.pool.Query(ctx, "news_list")
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}

func (s *Postgres) ListFeaturedNews(ctx context.Context, limit int) ([]model.NewsArticle, error) {
	rows, err := s.pool.Query(ctx, "news_featured", limit)
	if err != nil {
		return nil, fmt.Errorf("list featured news: %w", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}

func (s *Postgres) GetNewsBySlug(ctx context.Context, slug string) (*model.NewsArticle, error) {
	a, err := scanArticle(s.pool.QueryRow(ctx, "news_by_slug", slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get news %q: %w", slug, err)
	}
	return a, nil
}

func (s *Postgres) InsertNews(ctx context.Context, a *model.NewsArticle) error {
	if a.ID == "" {
		a.ID = newID()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO `+config.NewsTable+` (
			id, title, slug, excerpt, body, is_featured, published_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.Title, a.Slug, nilEmpty(a.Excerpt), nilEmpty(a.Body),
		a.IsFeatured, a.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert news %q: %w", a.Title, err)
	}
	return nil
}

func (s *Postgres) UpdateNews(ctx context.Context, a model.NewsArticle) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE `+config.NewsTable+` SET
			title = $2, slug = $3, excerpt = $4, body = $5,
			is_featured = $6, published_at = $7, updated_at = NOW()
		WHERE id = $1`,
		a.ID, a.Title, a.Slug, nilEmpty(a.Excerpt), nilEmpty(a.Body),
		a.IsFeatured, a.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("update news %s: %w", a.ID, err)
	}
	return nil
}

func (s *Postgres) DeleteNews(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, "DELETE FROM "+config.NewsTable+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete news %s: %w", id, err)
	}
	return nil
}

func scanArticle(row pgx.Row) (*model.NewsArticle, error) {
	var a model.NewsArticle
	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Body,
		&a.IsFeatured, &a.PublishedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanArticles(rows pgx.Rows) ([]model.NewsArticle, error) {
	var articles []model.NewsArticle
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}
