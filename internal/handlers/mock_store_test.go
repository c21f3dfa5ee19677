package handlers_test

import (
	"context"
	"errors"

	"github.com/dengnews/shortlink/internal/content"
	"github.com/dengnews/shortlink/internal/shortlink"
)

var errMock = errors.New("mock error")

// mockMappingStore is a test double for shortlink.MappingStore that can be
// configured to return errors.
type mockMappingStore struct {
	saveErr    error
	getCodeErr error
	getPairErr error
}

func (m *mockMappingStore) Save(_ context.Context, _ *shortlink.ShortLink) error {
	return m.saveErr
}

func (m *mockMappingStore) GetByCode(_ context.Context, _ string) (*shortlink.ShortLink, error) {
	if m.getCodeErr != nil {
		return nil, m.getCodeErr
	}

	return nil, shortlink.ErrNotFound
}

func (m *mockMappingStore) GetByTarget(
	_ context.Context, _ string, _ content.Locale,
) (*shortlink.ShortLink, error) {
	if m.getPairErr != nil {
		return nil, m.getPairErr
	}

	return nil, shortlink.ErrNotFound
}
