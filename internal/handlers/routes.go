package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/dengnews/shortlink/internal/ratelimit"
)

// RegisterRoutes registers all short link routes with per-endpoint rate limit
// configuration.
func RegisterRoutes(api huma.API, linkHandler *LinkHandler) {
	// GET /api/links - mint or fetch a short link
	// Write-ish despite the method: it can insert a row, so it gets the
	// stricter limits.
	huma.Register(api, huma.Operation{
		OperationID: "create-link",
		Method:      http.MethodGet,
		Path:        "/api/links",
		Summary:     "Create short link",
		Description: "Mints a short link for an article slug and locale, reusing an existing one.",
		Tags:        []string{"Links"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 30},
					{Window: time.Hour, Max: 300},
				},
			},
		},
	}, linkHandler.CreateLink)

	// GET /api/links/resolve - resolve a code to its target
	huma.Register(api, huma.Operation{
		OperationID: "resolve-link",
		Method:      http.MethodGet,
		Path:        "/api/links/resolve",
		Summary:     "Resolve short link",
		Description: "Returns the article slug and locale a short code points at.",
		Tags:        []string{"Links"},
	}, linkHandler.ResolveLink)

	// GET /s/{code} - reader-facing redirect, the site's hottest route
	huma.Register(api, huma.Operation{
		OperationID: "follow-link",
		Method:      http.MethodGet,
		Path:        "/s/{code}",
		Summary:     "Follow short link",
		Description: "Redirects to the canonical content path for the short code.",
		Tags:        []string{"Links"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 1000},
				},
			},
		},
	}, linkHandler.Redirect)
}
