package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/dengnews/shortlink/internal/analytics"
	"github.com/dengnews/shortlink/internal/content"
	"github.com/dengnews/shortlink/internal/messaging"
	"github.com/dengnews/shortlink/internal/shortlink"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LinkHandler handles short link operations.
type LinkHandler struct {
	generator       *shortlink.Generator
	resolver        *shortlink.Resolver
	baseURL         string
	defaultLocale   content.Locale
	publishCreated  messaging.Publish[analytics.LinkCreatedEvent]
	publishResolved messaging.Publish[analytics.LinkResolvedEvent]
	logger          *zap.Logger
}

// NewLinkHandler creates a new short link handler.
func NewLinkHandler(
	generator *shortlink.Generator,
	resolver *shortlink.Resolver,
	baseURL string,
	defaultLocale content.Locale,
	publishCreated messaging.Publish[analytics.LinkCreatedEvent],
	publishResolved messaging.Publish[analytics.LinkResolvedEvent],
	logger *zap.Logger,
) *LinkHandler {
	return &LinkHandler{
		generator:       generator,
		resolver:        resolver,
		baseURL:         baseURL,
		defaultLocale:   defaultLocale,
		publishCreated:  publishCreated,
		publishResolved: publishResolved,
		logger:          logger,
	}
}

// CreateLink mints a short link for a (slug, locale) pair, returning the
// existing one when the pair is already registered.
func (h *LinkHandler) CreateLink(ctx context.Context, req *CreateLinkRequest) (*CreateLinkResponse, error) {
	if req.Slug == "" {
		return nil, huma.Error400BadRequest("slug is required")
	}

	locale := h.defaultLocale
	if req.Locale != "" {
		locale = content.Locale(req.Locale)
		if !locale.IsSupported() {
			return nil, huma.Error400BadRequest("locale must be one of ku, fa, en")
		}
	}

	link, created, err := h.generator.GetOrCreate(ctx, req.Slug, locale)
	if err != nil {
		if errors.Is(err, shortlink.ErrCodeSpaceExhausted) {
			h.logger.Error("short code space exhausted",
				zap.String("slug", req.Slug),
				zap.String("locale", string(locale)),
			)

			return nil, huma.Error500InternalServerError("could not allocate a short code")
		}

		h.logger.Error("failed to create short link",
			zap.String("slug", req.Slug),
			zap.String("locale", string(locale)),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to create short link")
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkCreatedEvent{
		ID:        uuid.NewString(),
		Code:      link.Code,
		Slug:      link.Slug,
		Locale:    string(link.Locale),
		Reused:    !created,
		CreatedAt: link.CreatedAt,
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
	}

	if err := h.publishCreated(event); err != nil {
		h.logger.Error("failed to publish link created event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	resp := &CreateLinkResponse{}
	resp.Body.Code = link.Code
	resp.Body.ShortURL = h.baseURL + "/s/" + link.Code

	return resp, nil
}

// ResolveLink returns the (slug, locale) target of a short code.
func (h *LinkHandler) ResolveLink(ctx context.Context, req *ResolveLinkRequest) (*ResolveLinkResponse, error) {
	res, err := h.resolver.Resolve(ctx, req.Code)
	if err != nil {
		if errors.Is(err, shortlink.ErrNotFound) {
			return nil, huma.Error404NotFound("short link not found")
		}

		h.logger.Error("failed to resolve short link",
			zap.String("code", req.Code),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to resolve short link")
	}

	resp := &ResolveLinkResponse{}
	resp.Body.Slug = res.Slug
	resp.Body.Locale = string(res.Locale)

	return resp, nil
}

// Redirect follows a short link to its content path. Internal failures are
// downgraded to not-found so a broken backend never surfaces a server error
// on a shared link.
func (h *LinkHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	if req.Code == "" {
		return nil, huma.Error404NotFound("short link not found")
	}

	res, err := h.resolver.Resolve(ctx, req.Code)
	if err != nil {
		if !errors.Is(err, shortlink.ErrNotFound) {
			h.logger.Error("short link resolution failed, downgrading to not found",
				zap.String("code", req.Code),
				zap.Error(err),
			)
		}

		return nil, huma.Error404NotFound("short link not found")
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkResolvedEvent{
		ID:         uuid.NewString(),
		Code:       req.Code,
		Slug:       res.Slug,
		Locale:     string(res.Locale),
		Tier:       string(res.Tier),
		ResolvedAt: time.Now().UTC(),
		ClientIP:   meta.ClientIP,
		UserAgent:  meta.UserAgent,
		Referrer:   meta.Referrer,
	}

	if err := h.publishResolved(event); err != nil {
		h.logger.Error("failed to publish link resolved event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	resp := &RedirectResponse{
		Status: http.StatusTemporaryRedirect,
	}
	resp.Headers.Location = res.Path()

	return resp, nil
}
