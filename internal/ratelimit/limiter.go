package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Verdict is the outcome of a limit check. A denied verdict carries the
// budget that ran out so callers can tell the client what it hit.
type Verdict struct {
	Allowed bool
	Scope   Scope
	Limit   LimitConfig
	Count   int64
}

// Message renders a denial for the client. Allowed verdicts have no message.
func (v Verdict) Message() string {
	if v.Allowed {
		return ""
	}

	if v.Scope != "" {
		return fmt.Sprintf("rate limit exceeded: %s budget, %d/%d requests in %s",
			v.Scope, v.Count, v.Limit.Max, v.Limit.Window)
	}

	return fmt.Sprintf("rate limit exceeded: %d/%d requests in %s",
		v.Count, v.Limit.Max, v.Limit.Window)
}

// RetryAfter is the number of seconds a denied client should wait, rounded
// up to a full second so sub-second windows do not advertise zero.
func (v Verdict) RetryAfter() int {
	secs := int(v.Limit.Window / time.Second)
	if secs < 1 {
		secs = 1
	}

	return secs
}

// Limiter enforces a policy's sliding-window budgets. Counting and checking
// are one step: every check records the request, including denied ones, so
// a client hammering a spent budget keeps it spent.
type Limiter struct {
	store  Store
	policy *Policy
}

func NewLimiter(store Store, policy *Policy) *Limiter {
	return &Limiter{store: store, policy: policy}
}

// Check draws one request against every budget of every scope, in order,
// and denies on the first budget that is out.
func (l *Limiter) Check(ctx context.Context, client string, scopes []Scope) (Verdict, error) {
	for _, scope := range scopes {
		for _, limit := range l.policy.Limits[scope] {
			count, err := l.store.Record(ctx, scopeKey(client, scope, limit.Window), limit.Window)
			if err != nil {
				return Verdict{}, fmt.Errorf("recording %s request: %w", scope, err)
			}

			if count > limit.Max {
				return Verdict{Scope: scope, Limit: limit, Count: count}, nil
			}
		}
	}

	return Verdict{Allowed: true}, nil
}

// CheckRoute draws one request against an operation's own budgets instead of
// the policy's. Counters are keyed by route template, so every request a
// client sends to /s/{code} shares one counter whatever the code is.
func (l *Limiter) CheckRoute(
	ctx context.Context, client, route string, limits []LimitConfig,
) (Verdict, error) {
	for _, limit := range limits {
		count, err := l.store.Record(ctx, routeKey(client, route, limit.Window), limit.Window)
		if err != nil {
			return Verdict{}, fmt.Errorf("recording %s request: %w", route, err)
		}

		if count > limit.Max {
			return Verdict{Limit: limit, Count: count}, nil
		}
	}

	return Verdict{Allowed: true}, nil
}

// Keys embed the window so an hourly and a per-minute budget on the same
// scope count independently.
func scopeKey(client string, scope Scope, window time.Duration) string {
	return fmt.Sprintf("%s:%s:%d", client, scope, window.Milliseconds())
}

func routeKey(client, route string, window time.Duration) string {
	return fmt.Sprintf("%s:route:%s:%d", client, route, window.Milliseconds())
}
