package content

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no article matches a lookup.
var ErrNotFound = errors.New("article not found")

// Store provides read access to the article catalog.
type Store interface {
	// GetBySlug returns the article whose slug matches exactly.
	GetBySlug(ctx context.Context, slug string) (*Article, error)

	// GetBySlugFold returns the article whose slug matches case-insensitively.
	GetBySlugFold(ctx context.Context, slug string) (*Article, error)

	// FirstBySlugPrefix returns the first article whose slug starts with
	// prefix. Which article is "first" is store-defined but stable.
	FirstBySlugPrefix(ctx context.Context, prefix string) (*Article, error)
}
