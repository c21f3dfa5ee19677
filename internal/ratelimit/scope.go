package ratelimit

import "github.com/danielgtaylor/huma/v2"

// Scope buckets traffic for limiting. The redirect route carries nearly all
// of the service's volume, so reads and writes get separate budgets rather
// than one shared counter.
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeRead   Scope = "read"
	ScopeWrite  Scope = "write"
)

// MetadataKey is the huma operation metadata key an endpoint sets to tune
// its own limiting. The value must be an EndpointConfig.
const MetadataKey = "rateLimit"

// EndpointConfig tunes limiting for a single operation. The zero value
// changes nothing.
type EndpointConfig struct {
	// Scope forces the operation into a bucket, overriding the HTTP-method
	// classification. Link creation needs this: it is a GET that inserts
	// rows, and without the override it would ride the read budget.
	Scope Scope

	// Limits replaces the policy budgets with the operation's own. When
	// set, Scope and the method classification are ignored.
	Limits []LimitConfig

	// Disabled exempts the operation entirely.
	Disabled bool
}

// ConfigFor extracts an operation's EndpointConfig, or nil when the
// operation carries none.
func ConfigFor(op *huma.Operation) *EndpointConfig {
	if op == nil || op.Metadata == nil {
		return nil
	}

	cfg, ok := op.Metadata[MetadataKey].(EndpointConfig)
	if !ok {
		return nil
	}

	return &cfg
}

// ScopesFor returns the budgets one request draws from: the global bucket
// always, plus read or write by HTTP method unless the operation's config
// forces a bucket.
func ScopesFor(method string, op *huma.Operation) []Scope {
	if cfg := ConfigFor(op); cfg != nil && cfg.Scope != "" {
		return []Scope{ScopeGlobal, cfg.Scope}
	}

	switch method {
	case "GET", "HEAD", "OPTIONS":
		return []Scope{ScopeGlobal, ScopeRead}
	default:
		return []Scope{ScopeGlobal, ScopeWrite}
	}
}
