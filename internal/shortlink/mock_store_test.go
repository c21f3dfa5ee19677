package shortlink_test

import (
	"context"
	"errors"

	"github.com/dengnews/shortlink/internal/content"
	"github.com/dengnews/shortlink/internal/shortlink"
)

var errMock = errors.New("mock error")

// mockMappingStore is a test double for shortlink.MappingStore that can be
// configured to return errors per call.
type mockMappingStore struct {
	saveErr     error
	getCodeErr  error
	getPairErr  error
	saved       []*shortlink.ShortLink
	getCodeLink *shortlink.ShortLink
}

func (m *mockMappingStore) Save(_ context.Context, link *shortlink.ShortLink) error {
	if m.saveErr != nil {
		return m.saveErr
	}

	m.saved = append(m.saved, link)

	return nil
}

func (m *mockMappingStore) GetByCode(_ context.Context, _ string) (*shortlink.ShortLink, error) {
	if m.getCodeErr != nil {
		return nil, m.getCodeErr
	}

	return m.getCodeLink, nil
}

func (m *mockMappingStore) GetByTarget(
	_ context.Context, _ string, _ content.Locale,
) (*shortlink.ShortLink, error) {
	if m.getPairErr != nil {
		return nil, m.getPairErr
	}

	return nil, shortlink.ErrNotFound
}

// erroringContentStore fails every lookup with the configured error.
type erroringContentStore struct {
	err error
}

func (e *erroringContentStore) GetBySlug(_ context.Context, _ string) (*content.Article, error) {
	return nil, e.err
}

func (e *erroringContentStore) GetBySlugFold(_ context.Context, _ string) (*content.Article, error) {
	return nil, e.err
}

func (e *erroringContentStore) FirstBySlugPrefix(_ context.Context, _ string) (*content.Article, error) {
	return nil, e.err
}
