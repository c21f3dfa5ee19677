package shortlink

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/dengnews/shortlink/internal/content"
	"go.uber.org/zap"
)

// Tier records which lookup tier verified a resolution.
type Tier string

const (
	// TierExact means the slug matched an article exactly.
	TierExact Tier = "exact"
	// TierFold means the slug matched case-insensitively.
	TierFold Tier = "fold"
	// TierPrefix means an article was recovered by slug prefix.
	TierPrefix Tier = "prefix"
	// TierUnverified means no tier matched; the redirect is best-effort.
	TierUnverified Tier = "unverified"
)

// prefixLen is how much of the slug the prefix tier searches with.
const prefixLen = 10

// Resolution is the outcome of resolving a short code.
type Resolution struct {
	Slug   string
	Locale content.Locale
	Tier   Tier
}

// Path returns the redirect target, with the slug percent-encoded exactly
// once regardless of how it was stored.
func (r *Resolution) Path() string {
	return "/" + string(r.Locale) + "/content/" + url.PathEscape(r.Slug)
}

// Resolver turns a short code back into a content path, tolerating slug
// drift: articles renamed or re-encoded since the link was minted.
type Resolver struct {
	links         MappingStore
	articles      content.Store
	defaultLocale content.Locale
	lookupTimeout time.Duration
	logger        *zap.Logger
}

// NewResolver creates a resolver. lookupTimeout bounds each article lookup
// tier; a tier that times out is skipped, not fatal.
func NewResolver(
	links MappingStore,
	articles content.Store,
	defaultLocale content.Locale,
	lookupTimeout time.Duration,
	logger *zap.Logger,
) *Resolver {
	return &Resolver{
		links:         links,
		articles:      articles,
		defaultLocale: defaultLocale,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// Resolve maps a code to its redirect target. It returns ErrNotFound only
// when the code itself is unknown; a slug that no longer matches any article
// still resolves, leaving the content page to report the miss.
func (r *Resolver) Resolve(ctx context.Context, code string) (*Resolution, error) {
	link, err := r.links.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	res := &Resolution{
		Slug:   normalizeSlug(link.Slug),
		Locale: link.Locale.OrDefault(r.defaultLocale),
		Tier:   TierUnverified,
	}

	if article, tier := r.verify(ctx, res.Slug); article != nil {
		res.Tier = tier
		// The match may have corrected casing or encoding; redirect to the
		// slug the article is actually stored under.
		res.Slug = article.Slug
	}

	return res, nil
}

// verify walks the lookup tiers and returns the first article found, or nil
// when every tier missed or failed.
func (r *Resolver) verify(ctx context.Context, slug string) (*content.Article, Tier) {
	tiers := []struct {
		tier   Tier
		lookup func(ctx context.Context) (*content.Article, error)
	}{
		{TierExact, func(ctx context.Context) (*content.Article, error) {
			return r.articles.GetBySlug(ctx, slug)
		}},
		{TierFold, func(ctx context.Context) (*content.Article, error) {
			return r.articles.GetBySlugFold(ctx, slug)
		}},
		{TierPrefix, func(ctx context.Context) (*content.Article, error) {
			return r.articles.FirstBySlugPrefix(ctx, slugPrefix(slug))
		}},
	}

	for _, t := range tiers {
		tierCtx, cancel := context.WithTimeout(ctx, r.lookupTimeout)
		article, err := t.lookup(tierCtx)
		cancel()

		if err == nil {
			return article, t.tier
		}

		if !errors.Is(err, content.ErrNotFound) {
			r.logger.Warn("article lookup tier failed",
				zap.String("tier", string(t.tier)),
				zap.String("slug", slug),
				zap.Error(err),
			)
		}
	}

	return nil, TierUnverified
}

// normalizeSlug percent-decodes a slug once when it carries encoding
// sequences, so that links minted from encoded URLs still match.
func normalizeSlug(slug string) string {
	if !strings.Contains(slug, "%") {
		return slug
	}

	decoded, err := url.PathUnescape(slug)
	if err != nil {
		return slug
	}

	return decoded
}

// slugPrefix returns up to the first prefixLen characters of slug.
func slugPrefix(slug string) string {
	runes := []rune(slug)
	if len(runes) > prefixLen {
		return string(runes[:prefixLen])
	}

	return slug
}
