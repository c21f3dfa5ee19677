package store

import (
	"context"
	"sort"
	"strings"

	"github.com/dengnews/shortlink/internal/content"
)

// MemoryContentStore is an in-memory, read-only implementation of
// content.Store, seeded once at construction.
type MemoryContentStore struct {
	articles []content.Article // sorted by slug
	bySlug   map[string]*content.Article
}

// NewMemoryContentStore creates a content store over a fixed article set.
func NewMemoryContentStore(articles []content.Article) *MemoryContentStore {
	sorted := make([]content.Article, len(articles))
	copy(sorted, articles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Slug < sorted[j].Slug })

	bySlug := make(map[string]*content.Article, len(sorted))
	for i := range sorted {
		bySlug[sorted[i].Slug] = &sorted[i]
	}

	return &MemoryContentStore{
		articles: sorted,
		bySlug:   bySlug,
	}
}

func (m *MemoryContentStore) GetBySlug(_ context.Context, slug string) (*content.Article, error) {
	article, ok := m.bySlug[slug]
	if !ok {
		return nil, content.ErrNotFound
	}

	return article, nil
}

func (m *MemoryContentStore) GetBySlugFold(_ context.Context, slug string) (*content.Article, error) {
	for i := range m.articles {
		if strings.EqualFold(m.articles[i].Slug, slug) {
			return &m.articles[i], nil
		}
	}

	return nil, content.ErrNotFound
}

func (m *MemoryContentStore) FirstBySlugPrefix(_ context.Context, prefix string) (*content.Article, error) {
	for i := range m.articles {
		if strings.HasPrefix(m.articles[i].Slug, prefix) {
			return &m.articles[i], nil
		}
	}

	return nil, content.ErrNotFound
}
