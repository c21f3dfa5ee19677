package store

import (
	"context"
	"strconv"
	"time"

	"github.com/dengnews/shortlink/internal/content"
	"github.com/dengnews/shortlink/internal/shortlink"
	"github.com/redis/go-redis/v9"
)

// RedisLinkCache wraps a mapping store with Redis caching for reads. The
// redirect path is the site's hottest route, so code lookups are served from
// cache when possible.
type RedisLinkCache struct {
	store     shortlink.MappingStore
	client    *redis.Client
	prefix    string // "link:" for code -> link hashes
	targetKey string // "link_targets" for slug|locale -> code
	ttl       time.Duration
}

// NewRedisLinkCache creates a new Redis-cached mapping store decorator.
func NewRedisLinkCache(
	store shortlink.MappingStore, client *redis.Client, ttl time.Duration,
) *RedisLinkCache {
	return &RedisLinkCache{
		store:     store,
		client:    client,
		prefix:    "link:",
		targetKey: "link_targets",
		ttl:       ttl,
	}
}

// Save stores a link in the underlying store and updates the cache.
func (r *RedisLinkCache) Save(ctx context.Context, link *shortlink.ShortLink) error {
	if err := r.store.Save(ctx, link); err != nil {
		return err
	}

	// Write-through: update cache after successful save.
	r.cacheLink(ctx, link)

	return nil
}

// GetByCode retrieves a link by its code, checking cache first.
func (r *RedisLinkCache) GetByCode(ctx context.Context, code string) (*shortlink.ShortLink, error) {
	if link, err := r.getFromCache(ctx, code); err == nil {
		return link, nil
	}

	link, err := r.store.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	r.cacheLink(ctx, link)

	return link, nil
}

// GetByTarget retrieves a link by its (slug, locale) pair, checking the
// target index cache first.
func (r *RedisLinkCache) GetByTarget(
	ctx context.Context, slug string, locale content.Locale,
) (*shortlink.ShortLink, error) {
	code, err := r.client.HGet(ctx, r.targetKey, targetField(slug, locale)).Result()
	if err == nil {
		if link, err := r.getFromCache(ctx, code); err == nil {
			return link, nil
		}
	}

	link, err := r.store.GetByTarget(ctx, slug, locale)
	if err != nil {
		return nil, err
	}

	r.cacheLink(ctx, link)

	return link, nil
}

func (r *RedisLinkCache) getFromCache(ctx context.Context, code string) (*shortlink.ShortLink, error) {
	result, err := r.client.HGetAll(ctx, r.prefix+code).Result()
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, shortlink.ErrNotFound
	}

	link := &shortlink.ShortLink{
		Code:   result["code"],
		Slug:   result["slug"],
		Locale: content.Locale(result["locale"]),
	}

	if ts, ok := result["created_at"]; ok {
		if nanos, err := strconv.ParseInt(ts, 10, 64); err == nil {
			link.CreatedAt = time.Unix(0, nanos)
		}
	}

	if ts, ok := result["expires_at"]; ok {
		if nanos, err := strconv.ParseInt(ts, 10, 64); err == nil {
			expiresAt := time.Unix(0, nanos)
			link.ExpiresAt = &expiresAt
		}
	}

	return link, nil
}

func (r *RedisLinkCache) cacheLink(ctx context.Context, link *shortlink.ShortLink) {
	pipe := r.client.Pipeline()
	key := r.prefix + link.Code

	fields := map[string]interface{}{
		"code":       link.Code,
		"slug":       link.Slug,
		"locale":     string(link.Locale),
		"created_at": link.CreatedAt.UnixNano(),
	}
	if link.ExpiresAt != nil {
		fields["expires_at"] = link.ExpiresAt.UnixNano()
	}

	pipe.HSet(ctx, key, fields)

	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}

	pipe.HSet(ctx, r.targetKey, targetField(link.Slug, link.Locale), link.Code)

	_, _ = pipe.Exec(ctx)
}

func targetField(slug string, locale content.Locale) string {
	return slug + "|" + string(locale)
}

// Compile-time check.
var _ shortlink.MappingStore = (*RedisLinkCache)(nil)
