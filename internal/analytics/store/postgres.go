package store

import (
	"context"

	"github.com/dengnews/shortlink/internal/analytics"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres persists analytics events to PostgreSQL.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new PostgreSQL-backed analytics store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) SaveLinkCreated(ctx context.Context, event *analytics.LinkCreatedEvent) error {
	query := `
		INSERT INTO link_created_events (id, code, slug, locale, reused, created_at, client_ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := p.pool.Exec(ctx, query,
		event.ID,
		event.Code,
		event.Slug,
		event.Locale,
		event.Reused,
		event.CreatedAt,
		event.ClientIP,
		event.UserAgent,
	)

	return err
}

func (p *Postgres) SaveLinkResolved(ctx context.Context, event *analytics.LinkResolvedEvent) error {
	query := `
		INSERT INTO link_resolved_events (id, code, slug, locale, tier, resolved_at, client_ip, user_agent, referrer)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := p.pool.Exec(ctx, query,
		event.ID,
		event.Code,
		event.Slug,
		event.Locale,
		event.Tier,
		event.ResolvedAt,
		event.ClientIP,
		event.UserAgent,
		event.Referrer,
	)

	return err
}

// Compile-time check.
var _ analytics.Store = (*Postgres)(nil)
