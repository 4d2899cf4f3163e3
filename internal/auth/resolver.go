// Package auth resolves the Linkup credential for an inbound request and
// identifies the originating client for rate limiting.
package auth

import (
	"net"
	"net/http"
	"strings"
)

// minKeyLength is the shortest user-supplied key we will trust. Anything
// shorter is treated as absent and the fallback key is used instead. The
// downstream API is the real authority on key validity.
const minKeyLength = 10

// Resolver extracts API keys from requests, falling back to a
// process-wide default key for free-tier callers.
type Resolver struct {
	fallbackKey string
}

// NewResolver creates a Resolver with the given fallback key. An empty
// fallback means unauthenticated requests cannot be served at all.
func NewResolver(fallbackKey string) *Resolver {
	return &Resolver{fallbackKey: fallbackKey}
}

// Resolve returns the API key to use for the request and whether it was
// supplied by the caller. The key may be empty if the caller supplied
// nothing usable and no fallback is configured.
func (r *Resolver) Resolve(req *http.Request) (key string, userProvided bool) {
	userKey := req.URL.Query().Get("apiKey")
	if userKey == "" {
		userKey = req.URL.Query().Get("api_key")
	}
	if len(userKey) > minKeyLength {
		return userKey, true
	}
	return r.fallbackKey, false
}

// ClientIP extracts the originating client IP, honoring common proxy
// headers before falling back to the connection's remote address.
func ClientIP(req *http.Request) string {
	if forwarded := req.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if realIP := req.Header.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	if cfIP := req.Header.Get("Cf-Connecting-Ip"); cfIP != "" {
		return cfIP
	}
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		if req.RemoteAddr != "" {
			return req.RemoteAddr
		}
		return "unknown"
	}
	return host
}
