package ratelimit_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dengnews/shortlink/internal/ratelimit"
)

func opWithConfig(cfg ratelimit.EndpointConfig) *huma.Operation {
	return &huma.Operation{
		Metadata: map[string]any{ratelimit.MetadataKey: cfg},
	}
}

func TestScopesFor(t *testing.T) {
	cases := []struct {
		name   string
		method string
		op     *huma.Operation
		want   []ratelimit.Scope
	}{
		{
			name:   "GET rides the read budget",
			method: http.MethodGet,
			op:     &huma.Operation{},
			want:   []ratelimit.Scope{ratelimit.ScopeGlobal, ratelimit.ScopeRead},
		},
		{
			name:   "HEAD rides the read budget",
			method: http.MethodHead,
			op:     &huma.Operation{},
			want:   []ratelimit.Scope{ratelimit.ScopeGlobal, ratelimit.ScopeRead},
		},
		{
			name:   "OPTIONS rides the read budget",
			method: http.MethodOptions,
			op:     &huma.Operation{},
			want:   []ratelimit.Scope{ratelimit.ScopeGlobal, ratelimit.ScopeRead},
		},
		{
			name:   "POST rides the write budget",
			method: http.MethodPost,
			op:     &huma.Operation{},
			want:   []ratelimit.Scope{ratelimit.ScopeGlobal, ratelimit.ScopeWrite},
		},
		{
			name:   "DELETE rides the write budget",
			method: http.MethodDelete,
			op:     &huma.Operation{},
			want:   []ratelimit.Scope{ratelimit.ScopeGlobal, ratelimit.ScopeWrite},
		},
		{
			name:   "a creating GET can be forced onto the write budget",
			method: http.MethodGet,
			op:     opWithConfig(ratelimit.EndpointConfig{Scope: ratelimit.ScopeWrite}),
			want:   []ratelimit.Scope{ratelimit.ScopeGlobal, ratelimit.ScopeWrite},
		},
		{
			name:   "an empty scope override falls back to the method",
			method: http.MethodGet,
			op:     opWithConfig(ratelimit.EndpointConfig{Disabled: false}),
			want:   []ratelimit.Scope{ratelimit.ScopeGlobal, ratelimit.ScopeRead},
		},
		{
			name:   "nil operations classify by method alone",
			method: http.MethodGet,
			op:     nil,
			want:   []ratelimit.Scope{ratelimit.ScopeGlobal, ratelimit.ScopeRead},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ratelimit.ScopesFor(tc.method, tc.op))
		})
	}
}

func TestConfigFor(t *testing.T) {
	t.Run("nil operation has no config", func(t *testing.T) {
		assert.Nil(t, ratelimit.ConfigFor(nil))
	})

	t.Run("operation without metadata has no config", func(t *testing.T) {
		assert.Nil(t, ratelimit.ConfigFor(&huma.Operation{}))
	})

	t.Run("wrong value type under the key is ignored", func(t *testing.T) {
		op := &huma.Operation{
			Metadata: map[string]any{ratelimit.MetadataKey: "loose string"},
		}
		assert.Nil(t, ratelimit.ConfigFor(op))
	})

	t.Run("config comes back intact", func(t *testing.T) {
		op := opWithConfig(ratelimit.EndpointConfig{
			Limits:   []ratelimit.LimitConfig{{Window: time.Minute, Max: 1000}},
			Disabled: true,
		})

		cfg := ratelimit.ConfigFor(op)
		require.NotNil(t, cfg)
		assert.True(t, cfg.Disabled)
		require.Len(t, cfg.Limits, 1)
		assert.Equal(t, int64(1000), cfg.Limits[0].Max)
	})
}
