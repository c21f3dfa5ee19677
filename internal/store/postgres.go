package store

import (
	"context"
	"errors"

	"github.com/dengnews/shortlink/internal/content"
	"github.com/dengnews/shortlink/internal/shortlink"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLinkStore is a PostgreSQL implementation of shortlink.MappingStore.
type PostgresLinkStore struct {
	pool *pgxpool.Pool
}

// NewPostgresLinkStore creates a new PostgreSQL-backed mapping store.
func NewPostgresLinkStore(pool *pgxpool.Pool) *PostgresLinkStore {
	return &PostgresLinkStore{pool: pool}
}

func (p *PostgresLinkStore) Save(ctx context.Context, link *shortlink.ShortLink) error {
	query := `
		INSERT INTO short_links (code, slug, locale, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code) DO NOTHING
	`

	tag, err := p.pool.Exec(ctx, query,
		link.Code,
		link.Slug,
		string(link.Locale),
		link.CreatedAt,
		link.ExpiresAt,
	)
	if err != nil {
		return err
	}

	// Zero rows means the unique constraint rejected the insert; the caller
	// treats that as a collision and redraws.
	if tag.RowsAffected() == 0 {
		return shortlink.ErrCodeTaken
	}

	return nil
}

func (p *PostgresLinkStore) GetByCode(ctx context.Context, code string) (*shortlink.ShortLink, error) {
	query := `
		SELECT code, slug, locale, created_at, expires_at
		FROM short_links
		WHERE code = $1
	`

	return p.scanLink(p.pool.QueryRow(ctx, query, code))
}

func (p *PostgresLinkStore) GetByTarget(
	ctx context.Context, slug string, locale content.Locale,
) (*shortlink.ShortLink, error) {
	query := `
		SELECT code, slug, locale, created_at, expires_at
		FROM short_links
		WHERE slug = $1 AND locale = $2
		ORDER BY created_at
		LIMIT 1
	`

	return p.scanLink(p.pool.QueryRow(ctx, query, slug, string(locale)))
}

func (p *PostgresLinkStore) scanLink(row pgx.Row) (*shortlink.ShortLink, error) {
	var (
		link   shortlink.ShortLink
		locale string
	)

	err := row.Scan(&link.Code, &link.Slug, &locale, &link.CreatedAt, &link.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortlink.ErrNotFound
		}

		return nil, err
	}

	link.Locale = content.Locale(locale)

	return &link, nil
}
