package store

import (
	"context"
	"errors"

	"github.com/dengnews/shortlink/internal/content"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresContentStore is a PostgreSQL implementation of content.Store.
type PostgresContentStore struct {
	pool *pgxpool.Pool
}

// NewPostgresContentStore creates a new PostgreSQL-backed article store.
func NewPostgresContentStore(pool *pgxpool.Pool) *PostgresContentStore {
	return &PostgresContentStore{pool: pool}
}

func (p *PostgresContentStore) GetBySlug(ctx context.Context, slug string) (*content.Article, error) {
	return p.findOne(ctx, `SELECT slug FROM articles WHERE slug = $1`, slug)
}

func (p *PostgresContentStore) GetBySlugFold(ctx context.Context, slug string) (*content.Article, error) {
	return p.findOne(ctx, `SELECT slug FROM articles WHERE LOWER(slug) = LOWER($1)`, slug)
}

func (p *PostgresContentStore) FirstBySlugPrefix(ctx context.Context, prefix string) (*content.Article, error) {
	query := `
		SELECT slug FROM articles
		WHERE slug LIKE $1 || '%'
		ORDER BY slug
		LIMIT 1
	`

	return p.findOne(ctx, query, prefix)
}

func (p *PostgresContentStore) findOne(ctx context.Context, query, arg string) (*content.Article, error) {
	var slug string

	err := p.pool.QueryRow(ctx, query, arg).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrNotFound
		}

		return nil, err
	}

	article := &content.Article{
		Slug:         slug,
		Translations: make(map[content.Locale]*content.Translation),
	}

	if err := p.loadTranslations(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (p *PostgresContentStore) loadTranslations(ctx context.Context, article *content.Article) error {
	query := `
		SELECT locale, title, excerpt, content
		FROM article_translations
		WHERE slug = $1
	`

	rows, err := p.pool.Query(ctx, query, article.Slug)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			locale string
			tr     content.Translation
		)

		if err := rows.Scan(&locale, &tr.Title, &tr.Excerpt, &tr.Content); err != nil {
			return err
		}

		tr.Locale = content.Locale(locale)
		article.Translations[tr.Locale] = &tr
	}

	return rows.Err()
}
