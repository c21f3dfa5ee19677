package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// clientIP resolves the requesting client's address. The service runs
// behind a reverse proxy in production, so forwarding headers win over the
// transport address: X-Forwarded-For's first hop, then X-Real-IP, then the
// remote address with its port stripped.
func clientIP(ctx huma.Context) string {
	if fwd := ctx.Header("X-Forwarded-For"); fwd != "" {
		ip, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(ip)
	}

	if ip := ctx.Header("X-Real-IP"); ip != "" {
		return ip
	}

	addr := ctx.RemoteAddr()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}

	return addr
}

// clientKey identifies a client for limiting purposes. Address plus user
// agent separates readers sharing a NAT without tracking anyone across
// agents, and the hash keeps limiter keys short and uniform.
func clientKey(ctx huma.Context) string {
	sum := sha256.Sum256([]byte(clientIP(ctx) + "|" + ctx.Header("User-Agent")))
	return hex.EncodeToString(sum[:])
}
