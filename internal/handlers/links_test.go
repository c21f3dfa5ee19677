package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dengnews/shortlink/internal/analytics"
	"github.com/dengnews/shortlink/internal/content"
	"github.com/dengnews/shortlink/internal/handlers"
	"github.com/dengnews/shortlink/internal/messaging"
	"github.com/dengnews/shortlink/internal/shortlink"
	"github.com/dengnews/shortlink/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBaseURL = "https://dengnews.net"

// noopPublish returns a publish function that always succeeds.
func noopPublish[T any]() messaging.Publish[T] {
	return func(_ *T) error { return nil }
}

// errorPublish returns a publish function that always fails.
func errorPublish[T any](err error) messaging.Publish[T] {
	return func(_ *T) error { return err }
}

func newTestHandler(t *testing.T, links shortlink.MappingStore) *handlers.LinkHandler {
	t.Helper()

	return newTestHandlerWithPublishers(
		t,
		links,
		noopPublish[analytics.LinkCreatedEvent](),
		noopPublish[analytics.LinkResolvedEvent](),
	)
}

func newTestHandlerWithPublishers(
	t *testing.T,
	links shortlink.MappingStore,
	publishCreated messaging.Publish[analytics.LinkCreatedEvent],
	publishResolved messaging.Publish[analytics.LinkResolvedEvent],
) *handlers.LinkHandler {
	t.Helper()

	newCode, err := shortlink.NewCodeFunc()
	require.NoError(t, err)

	articles := store.NewMemoryContentStore(content.Seed())
	generator := shortlink.NewGenerator(links, newCode)
	resolver := shortlink.NewResolver(
		links, articles, content.LocaleKurdish, 100*time.Millisecond, zap.NewNop())

	return handlers.NewLinkHandler(
		generator,
		resolver,
		testBaseURL,
		content.LocaleKurdish,
		publishCreated,
		publishResolved,
		zap.NewNop(),
	)
}

func TestCreateLink(t *testing.T) {
	t.Run("creates a short link", func(t *testing.T) {
		handler := newTestHandler(t, store.NewMemoryLinkStore())

		resp, err := handler.CreateLink(context.Background(), &handlers.CreateLinkRequest{
			Slug:   "arrest-of-jafer-sadeqi",
			Locale: "fa",
		})

		require.NoError(t, err)
		assert.Len(t, resp.Body.Code, shortlink.CodeLength)
		assert.Equal(t, testBaseURL+"/s/"+resp.Body.Code, resp.Body.ShortURL)
	})

	t.Run("repeated calls return the same code", func(t *testing.T) {
		handler := newTestHandler(t, store.NewMemoryLinkStore())

		req := &handlers.CreateLinkRequest{Slug: "teachers-strike-spreads", Locale: "ku"}

		resp1, err1 := handler.CreateLink(context.Background(), req)
		resp2, err2 := handler.CreateLink(context.Background(), req)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, resp1.Body.Code, resp2.Body.Code)
	})

	t.Run("empty locale falls back to the default", func(t *testing.T) {
		links := store.NewMemoryLinkStore()
		handler := newTestHandler(t, links)

		resp, err := handler.CreateLink(context.Background(), &handlers.CreateLinkRequest{
			Slug: "water-crisis-in-sanandaj",
		})

		require.NoError(t, err)

		link, err := links.GetByCode(context.Background(), resp.Body.Code)
		require.NoError(t, err)
		assert.Equal(t, content.LocaleKurdish, link.Locale)
	})

	t.Run("rejects a missing slug", func(t *testing.T) {
		handler := newTestHandler(t, store.NewMemoryLinkStore())

		resp, err := handler.CreateLink(context.Background(), &handlers.CreateLinkRequest{})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("rejects an unknown locale", func(t *testing.T) {
		handler := newTestHandler(t, store.NewMemoryLinkStore())

		resp, err := handler.CreateLink(context.Background(), &handlers.CreateLinkRequest{
			Slug:   "arrest-of-jafer-sadeqi",
			Locale: "de",
		})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("returns an error when the store fails", func(t *testing.T) {
		handler := newTestHandler(t, &mockMappingStore{getPairErr: errMock})

		resp, err := handler.CreateLink(context.Background(), &handlers.CreateLinkRequest{
			Slug: "arrest-of-jafer-sadeqi",
		})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("succeeds even when publish fails", func(t *testing.T) {
		handler := newTestHandlerWithPublishers(
			t,
			store.NewMemoryLinkStore(),
			errorPublish[analytics.LinkCreatedEvent](errors.New("publish error")),
			noopPublish[analytics.LinkResolvedEvent](),
		)

		resp, err := handler.CreateLink(context.Background(), &handlers.CreateLinkRequest{
			Slug: "arrest-of-jafer-sadeqi",
		})

		// Publish errors are logged, not returned.
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Body.Code)
	})
}

func TestResolveLink(t *testing.T) {
	t.Run("returns the registered target", func(t *testing.T) {
		links := store.NewMemoryLinkStore()
		handler := newTestHandler(t, links)

		created, err := handler.CreateLink(context.Background(), &handlers.CreateLinkRequest{
			Slug:   "arrest-of-jafer-sadeqi",
			Locale: "fa",
		})
		require.NoError(t, err)

		resp, err := handler.ResolveLink(context.Background(), &handlers.ResolveLinkRequest{
			Code: created.Body.Code,
		})

		require.NoError(t, err)
		assert.Equal(t, "arrest-of-jafer-sadeqi", resp.Body.Slug)
		assert.Equal(t, "fa", resp.Body.Locale)
	})

	t.Run("returns 404 for an unknown code", func(t *testing.T) {
		handler := newTestHandler(t, store.NewMemoryLinkStore())

		resp, err := handler.ResolveLink(context.Background(), &handlers.ResolveLinkRequest{
			Code: "zzzzzz",
		})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("returns 500 on a store error", func(t *testing.T) {
		handler := newTestHandler(t, &mockMappingStore{getCodeErr: errMock})

		resp, err := handler.ResolveLink(context.Background(), &handlers.ResolveLinkRequest{
			Code: "x7Kd2a",
		})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}

func TestRedirect(t *testing.T) {
	t.Run("redirects to the content path", func(t *testing.T) {
		handler := newTestHandler(t, store.NewMemoryLinkStore())

		created, err := handler.CreateLink(context.Background(), &handlers.CreateLinkRequest{
			Slug:   "arrest-of-jafer-sadeqi",
			Locale: "fa",
		})
		require.NoError(t, err)

		resp, err := handler.Redirect(context.Background(), &handlers.RedirectRequest{
			Code: created.Body.Code,
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusTemporaryRedirect, resp.Status)
		assert.Equal(t, "/fa/content/arrest-of-jafer-sadeqi", resp.Headers.Location)
	})

	t.Run("returns 404 for an unknown code", func(t *testing.T) {
		handler := newTestHandler(t, store.NewMemoryLinkStore())

		resp, err := handler.Redirect(context.Background(), &handlers.RedirectRequest{Code: "zzzzzz"})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("returns 404 for an empty code", func(t *testing.T) {
		handler := newTestHandler(t, store.NewMemoryLinkStore())

		resp, err := handler.Redirect(context.Background(), &handlers.RedirectRequest{})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("downgrades store errors to 404", func(t *testing.T) {
		handler := newTestHandler(t, &mockMappingStore{getCodeErr: errMock})

		resp, err := handler.Redirect(context.Background(), &handlers.RedirectRequest{Code: "x7Kd2a"})

		assert.Nil(t, resp)

		var statusErr interface{ GetStatus() int }

		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.GetStatus())
	})

	t.Run("succeeds even when publish fails", func(t *testing.T) {
		links := store.NewMemoryLinkStore()
		handler := newTestHandlerWithPublishers(
			t,
			links,
			noopPublish[analytics.LinkCreatedEvent](),
			errorPublish[analytics.LinkResolvedEvent](errors.New("publish error")),
		)

		created, err := handler.CreateLink(context.Background(), &handlers.CreateLinkRequest{
			Slug: "teachers-strike-spreads",
		})
		require.NoError(t, err)

		resp, err := handler.Redirect(context.Background(), &handlers.RedirectRequest{
			Code: created.Body.Code,
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusTemporaryRedirect, resp.Status)
	})

	t.Run("uses request metadata from context", func(t *testing.T) {
		var captured *analytics.LinkResolvedEvent

		links := store.NewMemoryLinkStore()
		handler := newTestHandlerWithPublishers(
			t,
			links,
			noopPublish[analytics.LinkCreatedEvent](),
			func(event *analytics.LinkResolvedEvent) error {
				captured = event

				return nil
			},
		)

		created, err := handler.CreateLink(context.Background(), &handlers.CreateLinkRequest{
			Slug:   "arrest-of-jafer-sadeqi",
			Locale: "en",
		})
		require.NoError(t, err)

		ctx := handlers.ContextWithRequestMeta(context.Background(), handlers.RequestMeta{
			ClientIP:  "192.168.1.1",
			UserAgent: "TestAgent/1.0",
			Referrer:  "https://referrer.example",
		})

		_, err = handler.Redirect(ctx, &handlers.RedirectRequest{Code: created.Body.Code})

		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, "192.168.1.1", captured.ClientIP)
		assert.Equal(t, "TestAgent/1.0", captured.UserAgent)
		assert.Equal(t, "https://referrer.example", captured.Referrer)
		assert.Equal(t, string(shortlink.TierExact), captured.Tier)
	})
}
