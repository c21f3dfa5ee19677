package middleware

import (
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/dengnews/shortlink/internal/ratelimit"
)

// RateLimit guards every route with the policy's sliding-window budgets.
// Clients are told apart by clientKey. Operations opt out or bring their
// own budgets through ratelimit.MetadataKey metadata; the redirect route
// does the latter, since reader traffic dwarfs what the API budgets are
// sized for.
func RateLimit(
	api huma.API, limiter *ratelimit.Limiter, logger *zap.Logger,
) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		op := ctx.Operation()
		cfg := ratelimit.ConfigFor(op)

		if cfg != nil && cfg.Disabled {
			next(ctx)
			return
		}

		client := clientKey(ctx)

		var (
			verdict ratelimit.Verdict
			err     error
		)

		if cfg != nil && len(cfg.Limits) > 0 {
			verdict, err = limiter.CheckRoute(ctx.Context(), client, op.Path, cfg.Limits)
		} else {
			verdict, err = limiter.Check(ctx.Context(), client, ratelimit.ScopesFor(ctx.Method(), op))
		}

		if err != nil {
			logger.Error("rate limit check failed",
				zap.String("path", operationPath(op)),
				zap.Error(err),
			)

			// Fail closed: a limiter that cannot count cannot protect
			// the write path.
			_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal server error", err)

			return
		}

		if !verdict.Allowed {
			logger.Warn("request over budget",
				zap.String("path", operationPath(op)),
				zap.String("method", ctx.Method()),
				zap.String("scope", string(verdict.Scope)),
				zap.Int64("count", verdict.Count),
				zap.Int64("max", verdict.Limit.Max),
				zap.String("client_ip", clientIP(ctx)),
			)

			ctx.SetHeader("Retry-After", strconv.Itoa(verdict.RetryAfter()))
			_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests, verdict.Message())

			return
		}

		next(ctx)
	}
}

func operationPath(op *huma.Operation) string {
	if op == nil {
		return ""
	}

	return op.Path
}
