package store

import (
	"context"
	"sync"

	"github.com/dengnews/shortlink/internal/content"
	"github.com/dengnews/shortlink/internal/shortlink"
)

// MemoryLinkStore is an in-memory implementation of shortlink.MappingStore.
type MemoryLinkStore struct {
	mu     sync.RWMutex
	byCode map[string]shortlink.ShortLink
	byPair map[pairKey]string // (slug, locale) -> code
}

type pairKey struct {
	slug   string
	locale content.Locale
}

// NewMemoryLinkStore creates a new in-memory mapping store.
func NewMemoryLinkStore() *MemoryLinkStore {
	return &MemoryLinkStore{
		byCode: make(map[string]shortlink.ShortLink),
		byPair: make(map[pairKey]string),
	}
}

func (m *MemoryLinkStore) Save(_ context.Context, link *shortlink.ShortLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byCode[link.Code]; ok {
		return shortlink.ErrCodeTaken
	}

	m.byCode[link.Code] = *link

	// First writer wins the pair index; a duplicate pair keeps both codes
	// resolvable, matching the store-level uniqueness model.
	key := pairKey{slug: link.Slug, locale: link.Locale}
	if _, ok := m.byPair[key]; !ok {
		m.byPair[key] = link.Code
	}

	return nil
}

func (m *MemoryLinkStore) GetByCode(_ context.Context, code string) (*shortlink.ShortLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, ok := m.byCode[code]
	if !ok {
		return nil, shortlink.ErrNotFound
	}

	return &link, nil
}

func (m *MemoryLinkStore) GetByTarget(
	_ context.Context, slug string, locale content.Locale,
) (*shortlink.ShortLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	code, ok := m.byPair[pairKey{slug: slug, locale: locale}]
	if !ok {
		return nil, shortlink.ErrNotFound
	}

	link := m.byCode[code]

	return &link, nil
}
