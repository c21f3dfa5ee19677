package shortlink

import (
	"context"

	"github.com/dengnews/shortlink/internal/content"
)

// MappingStore persists code -> (slug, locale) rows. Uniqueness of Code is
// enforced by the store, not by callers.
type MappingStore interface {
	// Save inserts a new short link. It returns ErrCodeTaken when the code
	// already exists; it never overwrites.
	Save(ctx context.Context, link *ShortLink) error

	// GetByCode returns the link with the exact code, or ErrNotFound.
	GetByCode(ctx context.Context, code string) (*ShortLink, error)

	// GetByTarget returns the link registered for the exact (slug, locale)
	// pair, or ErrNotFound.
	GetByTarget(ctx context.Context, slug string, locale content.Locale) (*ShortLink, error)
}
