package middleware

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/dengnews/shortlink/internal/handlers"
)

// RequestMeta stamps the request context with the reader-facing details
// the analytics events record: client address, user agent, and the page
// the reader came from.
func RequestMeta(_ huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		meta := handlers.RequestMeta{
			ClientIP:  clientIP(ctx),
			UserAgent: ctx.Header("User-Agent"),
			Referrer:  ctx.Header("Referer"),
		}

		next(huma.WithContext(ctx, handlers.ContextWithRequestMeta(ctx.Context(), meta)))
	}
}
